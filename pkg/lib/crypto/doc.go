// Package crypto 提供身份原语所需的密钥组合与签名/协商算法
//
// 本包不实现通用密钥体系，只提供两种身份类型所需的组合密钥：
//
//   - C25519：Ed25519 签名密钥与 X25519 密钥协商密钥的组合（V0 身份、V1 身份共用）
//   - P384：NIST P-384 ECDSA 签名密钥与 ECDH 密钥协商密钥的组合（仅 V1 身份）
//
// 以及一个独立的 Speck128 分组密码实现，供 pkg/lib/pow 的 V1 工作量证明使用。
//
// # 快速开始
//
// 生成 C25519 组合密钥对：
//
//	pub, priv, err := crypto.GenerateC25519(rand.Reader)
//
// 签名和验证：
//
//	sig := priv.Sign(data)
//	ok := pub.Verify(data, sig)
//
// # 安全特性
//
//   - 常量时间比较防止时序攻击
//   - GenerateC25519Default/GenerateP384Default 使用 crypto/rand；
//     GenerateC25519/GenerateP384 使用调用方传入的随机源
//
// # 架构层
//
//   - 层级：pkg（公共包）
//   - 位置：Level 0（基础类型，无循环依赖）
package crypto
