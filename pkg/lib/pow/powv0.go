package pow

import (
	"crypto/sha512"
	"encoding/binary"

	"golang.org/x/crypto/salsa20/salsa"
)

const (
	// V0ScratchSize 是 V0 frankenhash 顺序填充阶段使用的暂存区大小（2 MiB）。
	V0ScratchSize = 2097152
	// V0DigestSize 是 frankenhash 输出摘要的大小。
	V0DigestSize = 64
	// V0AcceptThreshold 摘要首字节必须小于该阈值才算通过工作量证明。
	V0AcceptThreshold = 17
	// V0AddressOffset 摘要中候选地址五个字节的起始偏移。
	V0AddressOffset = 59
)

// salsa20Chain 是一个顺序前进的 Salsa20 密钥流发生器：每次 cryptBlock
// 调用都产生紧接前一次调用之后的 64 字节密钥流并递增内部计数器。
//
// 生态中的 salsa20 实现都以"一次性加密一段数据"为接口，不提供跨调用
// 保持计数器的能力；这里基于 golang.org/x/crypto/salsa20/salsa 的底层
// Core 函数自行维护计数器，以便在填充阶段与混合阶段之间延续同一条
// 密钥流，这正是 frankenhash 要求的"不可随机寻址"特性。
type salsa20Chain struct {
	key     [32]byte
	nonce   [8]byte
	counter uint64
}

func newSalsa20Chain(key [32]byte, nonce [8]byte) *salsa20Chain {
	return &salsa20Chain{key: key, nonce: nonce}
}

// cryptBlock 对恰好 64 字节的块就地加密（与下一段密钥流 XOR）。
func (c *salsa20Chain) cryptBlock(block []byte) {
	var in [16]byte
	copy(in[:8], c.nonce[:])
	binary.LittleEndian.PutUint64(in[8:], c.counter)
	c.counter++

	var out [64]byte
	salsa.Core(&out, &in, &c.key, &salsa.Sigma)
	for i := 0; i < 64; i++ {
		block[i] ^= out[i]
	}
}

// FrankenhashV0 是 V0 身份所用的记忆困难哈希函数（算法细节见规范 §4.1）。
//
// 输入 64 字节的 C25519 组合公钥，输出 64 字节摘要。摘要首字节小于 17
// 时代表通过工作量证明；摘要字节 59..64（5 字节）是候选地址。
func FrankenhashV0(publicKey []byte) [V0DigestSize]byte {
	digest := sha512.Sum512(publicKey)

	var key [32]byte
	var nonce [8]byte
	copy(key[:], digest[0:32])
	copy(nonce[:], digest[32:40])
	chain := newSalsa20Chain(key, nonce)

	// 顺序填充：block i (i>=1) 先复制 block i-1 的内容，再就地加密，
	// 形成不可并行、不可随机寻址的 CBC 式依赖链。
	genmem := make([]byte, V0ScratchSize)
	chain.cryptBlock(genmem[0:64])
	for i := 64; i < V0ScratchSize; i += 64 {
		copy(genmem[i:i+64], genmem[i-64:i])
		chain.cryptBlock(genmem[i : i+64])
	}

	// 混合阶段：以网络字节序读取 genmem 中的 64 位字，派生两个索引，
	// 在暂存区与摘要之间互换内容，并继续同一条密钥流加密摘要。
	words := V0ScratchSize / 8
	for i := 0; i < words; {
		idx1 := binary.BigEndian.Uint64(genmem[i*8:i*8+8]) % 8
		i++
		idx2 := binary.BigEndian.Uint64(genmem[i*8:i*8+8]) % uint64(words)
		i++

		d1 := binary.BigEndian.Uint64(digest[idx1*8 : idx1*8+8])
		tmp := binary.BigEndian.Uint64(genmem[idx2*8 : idx2*8+8])
		binary.BigEndian.PutUint64(genmem[idx2*8:idx2*8+8], d1)
		binary.BigEndian.PutUint64(digest[idx1*8:idx1*8+8], tmp)

		chain.cryptBlock(digest[:])
	}

	return digest
}

// PassesV0 报告 64 字节摘要是否满足 V0 工作量证明的接受条件。
func PassesV0(digest [V0DigestSize]byte) bool {
	return digest[0] < V0AcceptThreshold
}

// AddressV0 从 V0 摘要中提取候选 40 位地址（大端序 5 字节）。
func AddressV0(digest [V0DigestSize]byte) [5]byte {
	var addr [5]byte
	copy(addr[:], digest[V0AddressOffset:V0AddressOffset+5])
	return addr
}
