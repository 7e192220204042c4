// Package identity 提供身份原语的具体实现。
//
// 身份模块负责：
// - 工作量证明门控的密钥对生成
// - 签名、验证与密钥协商
// - 身份的二进制/文本编解码与内存态管理
package identity

import (
	"context"

	"go.uber.org/fx"

	"github.com/dep2p/go-identity/config"
	"github.com/dep2p/go-identity/internal/metrics"
	ifc "github.com/dep2p/go-identity/pkg/interfaces/identity"
)

// ============================================================================
//                              模块输入依赖
// ============================================================================

// ModuleInput 定义模块输入依赖。
type ModuleInput struct {
	fx.In

	// Config 可选，缺省时使用 config.DefaultIdentityConfig()。
	Config *config.IdentityConfig `optional:"true"`
}

// ============================================================================
//                              模块输出服务
// ============================================================================

// ModuleOutput 定义模块输出服务。
type ModuleOutput struct {
	fx.Out

	Manager ifc.Manager `name:"identity_manager"`
}

// ============================================================================
//                              服务提供
// ============================================================================

// ProvideRecorder 提供工作量证明指标记录器，供其他模块复用同一记录器。
func ProvideRecorder() *metrics.PoWRecorder {
	return metrics.NewPoWRecorder()
}

// ProvideServices 提供模块服务：校验配置并构造一个 Manager。
func ProvideServices(input ModuleInput, rec *metrics.PoWRecorder) (ModuleOutput, error) {
	cfg := config.DefaultIdentityConfig()
	if input.Config != nil {
		cfg = *input.Config
	}
	if err := cfg.Validate(); err != nil {
		return ModuleOutput{}, err
	}

	return ModuleOutput{Manager: NewManager(rec)}, nil
}

// ============================================================================
//                              模块定义
// ============================================================================

// Module 返回 fx 模块配置。
func Module() fx.Option {
	return fx.Module("identity",
		fx.Provide(ProvideRecorder),
		fx.Provide(ProvideServices),
		fx.Invoke(registerLifecycle),
	)
}

type lifecycleInput struct {
	fx.In
	LC      fx.Lifecycle
	Manager ifc.Manager `name:"identity_manager"`
}

// registerLifecycle 挂接生命周期钩子；身份管理器本身无后台状态，仅记录
// 启停事件供上层诊断。
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			log.Info("identity module started")
			return nil
		},
		OnStop: func(_ context.Context) error {
			log.Info("identity module stopped")
			return nil
		},
	})
}
