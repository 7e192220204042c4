// Package main 启动一个长期运行的身份服务进程：通过 fx 组装 identity
// 模块，在启动时按配置的类型生成一枚新身份，并在收到中断信号时优雅退出。
// 它不读取配置中的 IdentityFile，也不从文件加载身份。
//
// 这是 identity.Module() 作为 fx 组件被宿主应用组装的示例；多数调用方
// 会把该模块嵌入自己的 fx.App 而不是直接运行这个二进制。
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-identity/config"
	"github.com/dep2p/go-identity/internal/core/identity"
	ifc "github.com/dep2p/go-identity/pkg/interfaces/identity"
)

func main() {
	idType := flag.String("type", "V1", "身份类型: V0 或 V1")
	flag.Parse()

	cfg := config.DefaultIdentityConfig().WithType(*idType)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "配置无效: %v\n", err)
		os.Exit(1)
	}

	app := fx.New(
		fx.Provide(func() *config.IdentityConfig { return &cfg }),
		identity.Module(),
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),
		fx.Invoke(mintOnStart),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "启动失败: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = app.Stop(ctx) }()

	<-app.Done()
}

type mintInput struct {
	fx.In
	LC      fx.Lifecycle
	Manager ifc.Manager `name:"identity_manager"`
	Config  *config.IdentityConfig
}

// mintOnStart 在 fx 生命周期的 OnStart 钩子里按配置生成一枚身份并打印
// 其地址，演示 Module() 暴露的 Manager 如何被宿主代码消费。
func mintOnStart(input mintInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			var t ifc.Type
			switch input.Config.Type {
			case "V0":
				t = ifc.TypeV0
			default:
				t = ifc.TypeV1
			}

			id, err := input.Manager.Create(t)
			if err != nil {
				return fmt.Errorf("mint identity: %w", err)
			}
			fmt.Printf("minted %s identity, address=%x\n", id.Type(), id.Address())
			return nil
		},
	})
}
