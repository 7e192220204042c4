// Package lib 包含与架构组件无关的基础设施工具库
//
//   - crypto: 密码学原语（C25519/P384 密钥对、Speck128 分组密码）
//   - pow: 两种身份类型的工作量证明引擎
//
// # 使用示例
//
//	import (
//	    "github.com/dep2p/go-identity/pkg/lib/crypto"
//	    "github.com/dep2p/go-identity/pkg/lib/pow"
//	)
package lib
