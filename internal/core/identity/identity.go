package identity

import (
	"github.com/dep2p/go-identity/internal/util/logger"
	"github.com/dep2p/go-identity/pkg/lib/crypto"
	ifc "github.com/dep2p/go-identity/pkg/interfaces/identity"
)

var log = logger.Logger("identity")

// 复合材料的固定布局大小，见规范 §3（Data Model）。
const (
	compoundPublicSize  = 1 + crypto.C25519PublicKeySize + crypto.P384PublicKeySize  // nonce ∥ c25519_pub ∥ p384_pub = 114
	compoundPrivateSize = crypto.C25519PrivateKeySize + crypto.P384PrivateKeySize     // c25519_priv ∥ p384_priv = 112
)

// Identity 是身份原语的具体实现，创建/解析后不可变。
type Identity struct {
	typ   ifc.Type
	nonce byte // 仅 V1 使用

	c25519Pub  *crypto.C25519PublicKey
	c25519Priv *crypto.C25519PrivateKey // 为 nil 表示不持有该分量的私钥
	p384Pub    *crypto.P384PublicKey    // 仅 V1 使用
	p384Priv   *crypto.P384PrivateKey   // 仅 V1 使用；为 nil 表示不持有

	hasPrivate bool
	address    ifc.Address
	fp         ifc.Fingerprint
}

// NIL 是全零的哨兵身份，用作"缺失"占位值。它是包内唯一允许存在的
// 全局可变状态例外——本身只读，从不被修改。
var NIL = &Identity{}

// Type 返回身份类型。
func (id *Identity) Type() ifc.Type { return id.typ }

// Address 返回 40 位网络地址。
func (id *Identity) Address() ifc.Address { return id.address }

// Fingerprint 返回指纹。
func (id *Identity) Fingerprint() ifc.Fingerprint { return id.fp }

// HasPrivate 报告是否持有私有材料。
func (id *Identity) HasPrivate() bool { return id.hasPrivate }

// compoundPublicBytes 返回 V1 身份的复合公钥镜像：
// nonce(1) ∥ c25519_pub(64) ∥ p384_pub(49)，恰好 114 字节。
//
// 这是 PoW 与指纹共同哈希的字节镶像，必须逐字节稳定——因此用显式的
// 拼接而不是依赖编译器对聚合类型的内存布局。
func (id *Identity) compoundPublicBytes() []byte {
	return buildCompoundPublic(id.nonce, id.c25519Pub, id.p384Pub)
}

func buildCompoundPublic(nonce byte, c25519Pub *crypto.C25519PublicKey, p384Pub *crypto.P384PublicKey) []byte {
	buf := make([]byte, 0, compoundPublicSize)
	buf = append(buf, nonce)
	buf = append(buf, c25519Pub.Raw()...)
	buf = append(buf, p384Pub.Raw()...)
	return buf
}

// compoundPrivateBytes 返回 V1 身份的复合私钥镜像：
// c25519_priv(64) ∥ p384_priv(48)，恰好 112 字节。
func (id *Identity) compoundPrivateBytes() []byte {
	return buildCompoundPrivate(id.c25519Priv, id.p384Priv)
}

func buildCompoundPrivate(c25519Priv *crypto.C25519PrivateKey, p384Priv *crypto.P384PrivateKey) []byte {
	buf := make([]byte, 0, compoundPrivateSize)
	buf = append(buf, c25519Priv.Raw()...)
	buf = append(buf, p384Priv.Raw()...)
	return buf
}
