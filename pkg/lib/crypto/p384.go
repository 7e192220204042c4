package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"math/big"
)

// P384 组合密钥的各分量大小。NIST P-384 的公钥以压缩点形式存储：
// 1 字节符号前缀 ∥ 48 字节 X 坐标。
const (
	// P384FieldSize P-384 曲线域大小（字节）
	P384FieldSize = 48
	// P384PublicKeySize 压缩公钥大小：1 字节前缀 ∥ 48 字节 X
	P384PublicKeySize = 1 + P384FieldSize
	// P384PrivateKeySize 私钥标量大小
	P384PrivateKeySize = P384FieldSize
	// P384SignatureSize ECDSA-P384 签名大小：各填充为 48 字节的 R ∥ S，共 96 字节
	P384SignatureSize = 2 * P384FieldSize
	// P384SharedSecretSize ECDH-P384 共享点 X 坐标大小
	P384SharedSecretSize = P384FieldSize
)

func p384Curve() elliptic.Curve { return elliptic.P384() }

// P384PublicKey 是压缩形式的 NIST P-384 公钥。
type P384PublicKey struct {
	k *ecdsa.PublicKey
}

// P384PrivateKey 是 NIST P-384 私钥。
type P384PrivateKey struct {
	k *ecdsa.PrivateKey
}

// Raw 返回压缩公钥字节（49 字节：前缀 ∥ X）。
func (k *P384PublicKey) Raw() []byte {
	return compressP384PublicKey(k.k)
}

// Equals 比较两个 P384 公钥是否相等。
func (k *P384PublicKey) Equals(other *P384PublicKey) bool {
	if other == nil {
		return false
	}
	return k.k.X.Cmp(other.k.X) == 0 && k.k.Y.Cmp(other.k.Y) == 0
}

// Verify 使用此公钥验证一个 48 字节摘要上的 ECDSA 签名。
//
// 签名格式为 96 字节：R（填充至 48 字节）∥ S（填充至 48 字节），与
// sign 产出的格式一致。
func (k *P384PublicKey) Verify(digest, sig []byte) bool {
	if len(sig) != P384SignatureSize {
		return false
	}
	r := new(big.Int).SetBytes(sig[:P384FieldSize])
	s := new(big.Int).SetBytes(sig[P384FieldSize:])
	return ecdsa.Verify(k.k, digest, r, s)
}

// Raw 返回私钥标量的固定长度大端字节表示（48 字节）。
func (k *P384PrivateKey) Raw() []byte {
	return p384PaddedBytes(k.k.D, P384FieldSize)
}

// Equals 比较两个 P384 私钥是否相等，使用常量时间比较标量字节。
func (k *P384PrivateKey) Equals(other *P384PrivateKey) bool {
	if other == nil {
		return false
	}
	return subtle.ConstantTimeCompare(k.Raw(), other.Raw()) == 1
}

// Public 返回与此私钥对应的公钥。
func (k *P384PrivateKey) Public() *P384PublicKey {
	return &P384PublicKey{k: &k.k.PublicKey}
}

// Sign 对一个 48 字节摘要产生 ECDSA-P384 签名，返回 96 字节 R∥S。
func (k *P384PrivateKey) Sign(digest []byte) ([]byte, error) {
	r, s, err := ecdsa.Sign(rand.Reader, k.k, digest)
	if err != nil {
		return nil, fmt.Errorf("ecdsa sign: %w", err)
	}
	out := make([]byte, P384SignatureSize)
	copy(out[:P384FieldSize], p384PaddedBytes(r, P384FieldSize))
	copy(out[P384FieldSize:], p384PaddedBytes(s, P384FieldSize))
	return out, nil
}

// Agree 使用此私钥与对方公钥执行 ECDH-P384，返回共享点的 X 坐标（48 字节）。
func (k *P384PrivateKey) Agree(theirPublic *P384PublicKey) [P384SharedSecretSize]byte {
	x, _ := p384Curve().ScalarMult(theirPublic.k.X, theirPublic.k.Y, k.k.D.Bytes())
	var out [P384SharedSecretSize]byte
	copy(out[:], p384PaddedBytes(x, P384FieldSize))
	return out
}

// GenerateP384 使用给定随机源生成一个新的 P-384 密钥对。
func GenerateP384(src io.Reader) (*P384PublicKey, *P384PrivateKey, error) {
	priv, err := ecdsa.GenerateKey(p384Curve(), src)
	if err != nil {
		return nil, nil, fmt.Errorf("generate p384: %w", err)
	}
	return &P384PublicKey{k: &priv.PublicKey}, &P384PrivateKey{k: priv}, nil
}

// GenerateP384Default 使用 crypto/rand 生成一个新的 P-384 密钥对。
func GenerateP384Default() (*P384PublicKey, *P384PrivateKey, error) {
	return GenerateP384(rand.Reader)
}

// UnmarshalP384PublicKey 从压缩字节形式还原 P-384 公钥。
func UnmarshalP384PublicKey(data []byte) (*P384PublicKey, error) {
	x, y := decompressP384PublicKey(data)
	if x == nil || y == nil {
		return nil, ErrInvalidPublicKey
	}
	return &P384PublicKey{k: &ecdsa.PublicKey{Curve: p384Curve(), X: x, Y: y}}, nil
}

// UnmarshalP384PrivateKey 从固定长度大端标量还原 P-384 私钥。
func UnmarshalP384PrivateKey(data []byte) (*P384PrivateKey, error) {
	if len(data) != P384PrivateKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeySize, P384PrivateKeySize, len(data))
	}
	d := new(big.Int).SetBytes(data)
	curve := p384Curve()
	x, y := curve.ScalarBaseMult(data)
	return &P384PrivateKey{k: &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: curve, X: x, Y: y},
		D:         d,
	}}, nil
}

// compressP384PublicKey 压缩公钥：0x02 表示 Y 为偶数，0x03 表示 Y 为奇数。
func compressP384PublicKey(pub *ecdsa.PublicKey) []byte {
	out := make([]byte, P384PublicKeySize)
	if pub.Y.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	copy(out[1:], p384PaddedBytes(pub.X, P384FieldSize))
	return out
}

// decompressP384PublicKey 还原 P-384 曲线方程 y² = x³ - 3x + b (mod P) 的 Y 坐标。
func decompressP384PublicKey(data []byte) (*big.Int, *big.Int) {
	if len(data) != P384PublicKeySize {
		return nil, nil
	}
	prefix := data[0]
	if prefix != 0x02 && prefix != 0x03 {
		return nil, nil
	}

	curve := p384Curve()
	x := new(big.Int).SetBytes(data[1:])
	params := curve.Params()

	// x³ - 3x + b (mod P)
	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)
	threeX := new(big.Int).Lsh(x, 1)
	threeX.Add(threeX, x)
	ySquared := new(big.Int).Sub(x3, threeX)
	ySquared.Add(ySquared, params.B)
	ySquared.Mod(ySquared, params.P)

	y := new(big.Int).ModSqrt(ySquared, params.P)
	if y == nil {
		return nil, nil
	}
	if y.Bit(0) != uint(prefix&1) {
		y.Sub(params.P, y)
	}
	if !curve.IsOnCurve(x, y) {
		return nil, nil
	}
	return x, y
}

// p384PaddedBytes 将大整数编码为固定长度的大端字节数组。
func p384PaddedBytes(n *big.Int, size int) []byte {
	b := n.Bytes()
	if len(b) >= size {
		return b[len(b)-size:]
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}
