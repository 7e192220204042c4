// Package identity 定义身份原语的公共契约。
//
// 具体实现位于 internal/core/identity；本包只描述行为，不持有任何
// 具体的密钥或字节表示，方便上层以接口方式依赖身份而不绑定实现细节。
package identity

import "io"

// Type 是身份类型标签。
type Type uint8

const (
	// TypeV0 是基于 C25519 组合密钥与 Salsa20 frankenhash 的身份类型。
	TypeV0 Type = 0
	// TypeV1 是基于 C25519+P384 复合密钥与 Speck128 排序哈希的身份类型。
	TypeV1 Type = 1
)

// String 返回身份类型名称。
func (t Type) String() string {
	switch t {
	case TypeV0:
		return "V0"
	case TypeV1:
		return "V1"
	default:
		return "Unknown"
	}
}

// Address 是 40 位（5 字节）网络地址，大端序存储。
type Address [5]byte

// Fingerprint 绑定一个地址与其公共材料的 SHA-384 哈希。
type Fingerprint struct {
	Address Address
	Hash    [48]byte
}

// Identity 是身份原语的公共行为契约。
type Identity interface {
	// Type 返回身份类型（V0 或 V1）。
	Type() Type

	// Address 返回该身份的 40 位网络地址。
	Address() Address

	// Fingerprint 返回该身份的指纹（地址 + 公共材料的 SHA-384 哈希）。
	Fingerprint() Fingerprint

	// HasPrivate 报告该身份是否持有私有材料。
	HasPrivate() bool

	// LocallyValidate 在不依赖任何外部状态的情况下校验地址、指纹与
	// 工作量证明之间的一致性。
	LocallyValidate() bool

	// Sign 使用身份的私有材料对 data 签名；不持有私有材料时返回 nil。
	Sign(data []byte) []byte

	// Verify 使用身份的公共材料验证 data 上的签名 sig。
	Verify(data, sig []byte) bool

	// Agree 与另一身份的公共材料执行密钥协商，返回 48 字节共享密钥；
	// 不持有私有材料时返回 (zero, false)。
	Agree(other Identity) ([48]byte, bool)

	// HashWithPrivate 返回公共材料与私有材料拼接后的 SHA-384 哈希；
	// 不持有私有材料时返回全零值。
	HashWithPrivate() [48]byte

	// Marshal 返回该身份的二进制编码；includePrivate 控制是否附带私有块。
	Marshal(includePrivate bool) []byte

	// String 返回该身份的文本编码；includePrivate 控制是否附带私有块。
	String(includePrivate bool) string
}

// Manager 提供身份的创建、解析与序列化读写，自身不做任何文件 I/O——
// 调用方通过 io.Reader/io.Writer 接入自己选择的存储介质。
type Manager interface {
	// Create 按给定类型生成一个新身份，阻塞直至工作量证明通过。
	Create(t Type) (Identity, error)

	// Parse 从文本形式还原一个身份。
	Parse(s string) (Identity, error)

	// Unmarshal 从二进制形式还原一个身份。
	Unmarshal(data []byte) (Identity, error)

	// Load 从 r 读取文本形式的身份并还原。
	Load(r io.Reader) (Identity, error)

	// Save 将身份以文本形式写入 w；includePrivate 控制是否附带私有块。
	Save(w io.Writer, id Identity, includePrivate bool) error
}
