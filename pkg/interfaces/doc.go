// Package interfaces 定义公共接口
//
// # Core Layer 接口
//
//   - identity/         - 身份管理（Identity、Manager）
//
// # 设计原则
//
// 本包仅包含纯接口定义，具体实现位于 internal/core/identity。
package interfaces
