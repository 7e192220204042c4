// Package crypto 提供身份原语所需的密钥组合与签名/协商算法
package crypto

import "errors"

// ============================================================================
//                              错误定义
// ============================================================================

// 密钥相关错误
var (
	// ErrInvalidKeySize 密钥大小无效
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidPublicKey 公钥无效
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPrivateKey 私钥无效
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrNoPrivateKey 缺少私钥，无法完成需要私钥的操作
	ErrNoPrivateKey = errors.New("no private key material held")
)

// 签名相关错误
var (
	// ErrInvalidSignature 签名无效
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrSignatureTooShort 签名缓冲区太短
	ErrSignatureTooShort = errors.New("signature buffer too short")
)
