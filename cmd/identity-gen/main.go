// Package main 提供一个独立的身份生成与校验命令行工具。
//
// 使用方法:
//
//	go run ./cmd/identity-gen -type V1 -out node.identity
//	go run ./cmd/identity-gen -validate node.identity
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dep2p/go-identity/internal/core/identity"
	"github.com/dep2p/go-identity/internal/metrics"
	ifc "github.com/dep2p/go-identity/pkg/interfaces/identity"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	idType := flag.String("type", "V1", "身份类型: V0 或 V1")
	out := flag.String("out", "", "输出文件路径；为空则写入标准输出")
	includePrivate := flag.Bool("include-private", true, "输出中是否包含私有材料")
	validatePath := flag.String("validate", "", "校验指定文件中的身份而非生成新身份")
	flag.Parse()

	rec := metrics.NewPoWRecorder()
	mgr := identity.NewManager(rec)

	if *validatePath != "" {
		return validateFile(mgr, *validatePath)
	}

	var t ifc.Type
	switch *idType {
	case "V0":
		t = ifc.TypeV0
	case "V1":
		t = ifc.TypeV1
	default:
		return fmt.Errorf("未知身份类型 %q：必须为 V0 或 V1", *idType)
	}

	fmt.Fprintf(os.Stderr, "正在生成 %s 身份（工作量证明可能耗时数秒）...\n", t)
	id, err := mgr.Create(t)
	if err != nil {
		return fmt.Errorf("生成身份失败: %w", err)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.OpenFile(*out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("打开输出文件失败: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := mgr.Save(w, id, *includePrivate); err != nil {
		return fmt.Errorf("写入身份失败: %w", err)
	}

	fmt.Fprintf(os.Stderr, "已生成身份，地址 = %x\n", id.Address())
	return nil
}

func validateFile(mgr ifc.Manager, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("打开身份文件失败: %w", err)
	}
	defer f.Close()

	id, err := mgr.Load(f)
	if err != nil {
		return fmt.Errorf("解析身份失败: %w", err)
	}

	if !id.LocallyValidate() {
		return fmt.Errorf("身份校验失败：地址/指纹/工作量证明不一致")
	}

	fmt.Printf("身份有效：类型=%s 地址=%x 持有私钥=%v\n", id.Type(), id.Address(), id.HasPrivate())
	return nil
}
