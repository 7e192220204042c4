package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"
)

// C25519 组合密钥的各分量大小。每个密钥是两个独立曲线密钥的拼接：
// 一个 Ed25519 签名密钥，一个 X25519（Curve25519 ECDH）密钥。
const (
	// C25519PublicKeySize 组合公钥大小：32 字节 Ed25519 验证密钥 ∥ 32 字节 X25519 公共点
	C25519PublicKeySize = ed25519.PublicKeySize + 32
	// C25519PrivateKeySize 组合私钥大小：32 字节 Ed25519 种子 ∥ 32 字节 X25519 标量
	C25519PrivateKeySize = 32 + 32
	// C25519SignatureSize Ed25519 签名大小
	C25519SignatureSize = ed25519.SignatureSize
	// C25519SharedSecretSize X25519 协商产生的共享点大小
	C25519SharedSecretSize = 32
)

// C25519PublicKey 是一对组合曲线公钥：Ed25519 验证密钥与 X25519 公共点。
type C25519PublicKey struct {
	Sign  [ed25519.PublicKeySize]byte // Ed25519 验证密钥
	Agree [32]byte                   // X25519 公共点
}

// C25519PrivateKey 是一对组合曲线私钥：Ed25519 签名密钥与 X25519 标量。
type C25519PrivateKey struct {
	SignKey  ed25519.PrivateKey // 64 字节：种子 ∥ 公钥
	AgreeKey [32]byte           // X25519 标量
}

// Raw 返回组合公钥的规范字节表示：Ed25519 验证密钥 ∥ X25519 公共点。
func (k *C25519PublicKey) Raw() []byte {
	out := make([]byte, 0, C25519PublicKeySize)
	out = append(out, k.Sign[:]...)
	out = append(out, k.Agree[:]...)
	return out
}

// Equals 使用常量时间比较两个组合公钥是否相等。
func (k *C25519PublicKey) Equals(other *C25519PublicKey) bool {
	if other == nil {
		return false
	}
	return subtle.ConstantTimeCompare(k.Raw(), other.Raw()) == 1
}

// Verify 使用组合公钥中的 Ed25519 分量验证签名。
func (k *C25519PublicKey) Verify(data, sig []byte) bool {
	if len(sig) != C25519SignatureSize {
		return false
	}
	return ed25519.Verify(k.Sign[:], data, sig)
}

// Raw 返回组合私钥的规范字节表示：Ed25519 私钥种子 ∥ X25519 标量。
//
// 注意这里返回的是 32 字节的 Ed25519 种子，而不是 crypto/ed25519 内部
// 64 字节的"种子+公钥"表示，以匹配组合私钥固定 64 字节的外部布局。
func (k *C25519PrivateKey) Raw() []byte {
	out := make([]byte, 0, C25519PrivateKeySize)
	out = append(out, k.SignKey.Seed()...)
	out = append(out, k.AgreeKey[:]...)
	return out
}

// Equals 使用常量时间比较两个组合私钥是否相等。
func (k *C25519PrivateKey) Equals(other *C25519PrivateKey) bool {
	if other == nil {
		return false
	}
	return subtle.ConstantTimeCompare(k.Raw(), other.Raw()) == 1
}

// Public 返回与此私钥对应的组合公钥。
func (k *C25519PrivateKey) Public() *C25519PublicKey {
	pub := &C25519PublicKey{}
	copy(pub.Sign[:], k.SignKey.Public().(ed25519.PublicKey)) //nolint:errcheck // Ed25519 Public 总是返回 ed25519.PublicKey
	curve25519.ScalarBaseMult(&pub.Agree, &k.AgreeKey)
	return pub
}

// Sign 使用组合私钥中的 Ed25519 分量对数据签名。
func (k *C25519PrivateKey) Sign(data []byte) []byte {
	return ed25519.Sign(k.SignKey, data)
}

// Agree 使用组合私钥中的 X25519 分量与对方的 X25519 公共点执行 ECDH，
// 返回 32 字节共享点（尚未经过哈希扩展）。
func (k *C25519PrivateKey) Agree(theirPublic *C25519PublicKey) ([C25519SharedSecretSize]byte, error) {
	var shared [C25519SharedSecretSize]byte
	out, err := curve25519.X25519(k.AgreeKey[:], theirPublic.Agree[:])
	if err != nil {
		return shared, fmt.Errorf("x25519 agree: %w", err)
	}
	copy(shared[:], out)
	return shared, nil
}

// GenerateC25519 使用给定随机源生成一个新的组合密钥对。
func GenerateC25519(src io.Reader) (*C25519PublicKey, *C25519PrivateKey, error) {
	signPub, signPriv, err := ed25519.GenerateKey(src)
	if err != nil {
		return nil, nil, fmt.Errorf("generate ed25519: %w", err)
	}

	var agreePriv [32]byte
	if _, err := io.ReadFull(src, agreePriv[:]); err != nil {
		return nil, nil, fmt.Errorf("generate x25519 scalar: %w", err)
	}
	// clamp 由 curve25519.X25519/ScalarBaseMult 在底层完成，这里不需要手动夹紧。

	priv := &C25519PrivateKey{SignKey: signPriv, AgreeKey: agreePriv}
	pub := &C25519PublicKey{}
	copy(pub.Sign[:], signPub)
	curve25519.ScalarBaseMult(&pub.Agree, &priv.AgreeKey)

	return pub, priv, nil
}

// GenerateC25519Default 使用 crypto/rand 生成一个新的组合密钥对。
func GenerateC25519Default() (*C25519PublicKey, *C25519PrivateKey, error) {
	return GenerateC25519(rand.Reader)
}

// UnmarshalC25519PublicKey 从规范字节形式还原组合公钥。
func UnmarshalC25519PublicKey(data []byte) (*C25519PublicKey, error) {
	if len(data) != C25519PublicKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeySize, C25519PublicKeySize, len(data))
	}
	pub := &C25519PublicKey{}
	copy(pub.Sign[:], data[:ed25519.PublicKeySize])
	copy(pub.Agree[:], data[ed25519.PublicKeySize:])
	return pub, nil
}

// UnmarshalC25519PrivateKey 从规范字节形式（种子 ∥ X25519 标量）还原组合私钥。
func UnmarshalC25519PrivateKey(data []byte) (*C25519PrivateKey, error) {
	if len(data) != C25519PrivateKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeySize, C25519PrivateKeySize, len(data))
	}
	priv := &C25519PrivateKey{SignKey: ed25519.NewKeyFromSeed(data[:32])}
	copy(priv.AgreeKey[:], data[32:])
	return priv, nil
}
