package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// IdentityConfig 身份配置
//
// 管理节点身份的类型与存储位置：
//   - 身份类型（V0/V1）
//   - 身份文件路径
//   - 缺失时是否自动生成
type IdentityConfig struct {
	// Type 身份类型
	// 可选值: "V0", "V1"
	Type string `json:"type"`

	// IdentityFile 身份文件路径
	// 如果为空，将在内存中生成临时身份
	// 生产环境建议持久化存储
	IdentityFile string `json:"identity_file"`

	// AutoGenerate 当身份文件不存在时是否自动生成
	AutoGenerate bool `json:"auto_generate"`
}

// DefaultIdentityConfig 返回默认身份配置
func DefaultIdentityConfig() IdentityConfig {
	return IdentityConfig{
		Type:         "V1",
		IdentityFile: "",
		AutoGenerate: true,
	}
}

// Validate 验证身份配置，汇总所有发现的问题而不是在第一个错误处中断，
// 便于调用方一次性看到配置里所有需要修正的地方。
func (c IdentityConfig) Validate() error {
	var err error

	switch c.Type {
	case "V0", "V1":
		// 有效类型
	default:
		err = multierr.Append(err, fmt.Errorf("invalid identity type %q: must be V0 or V1", c.Type))
	}

	if c.IdentityFile == "" && !c.AutoGenerate {
		err = multierr.Append(err, errors.New("identity config has no identity_file and auto_generate is disabled"))
	}

	return err
}

// WithType 设置身份类型
func (c IdentityConfig) WithType(t string) IdentityConfig {
	c.Type = t
	return c
}

// WithIdentityFile 设置身份文件路径
func (c IdentityConfig) WithIdentityFile(path string) IdentityConfig {
	c.IdentityFile = path
	return c
}

// WithAutoGenerate 设置是否自动生成身份
func (c IdentityConfig) WithAutoGenerate(auto bool) IdentityConfig {
	c.AutoGenerate = auto
	return c
}
