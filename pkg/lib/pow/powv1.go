package pow

import (
	"crypto/sha512"
	"encoding/binary"
	"sort"

	"github.com/dep2p/go-identity/pkg/lib/crypto"
)

const (
	// V1ScratchWords 是 V1 工作量证明暂存区的 64 位字数（768 KiB）。
	V1ScratchWords = 98304
	// V1SpeckRounds 是 V1 工作量证明所用 Speck128 的轮数。
	V1SpeckRounds = 24
	// V1DigestSize 是排序结束后写入暂存区首部的最终摘要大小。
	V1DigestSize = 48
	// V1Modulus 是判定工作量证明是否通过的模数。
	V1Modulus = 180
)

// SortHashV1 是 V1 身份所用的记忆困难哈希函数（算法细节见规范 §4.2）。
//
// 输入是恰好 114 字节的 V1 复合公钥镜像（nonce ∥ c25519_pub ∥ p384_pub）。
// 返回工作量证明是否通过，以及排序结束后对暂存区整体求得的最终摘要。
//
// 本函数始终以小端序解释暂存区中的 64 位字：规范允许的大端主机字节序
// 往返交换在纯 Go 实现里没有对应的可观察差异，所以这里不维护一套运行
// 时字节序检测，直接固定使用小端序即可在所有目标平台上得到一致结果。
func SortHashV1(input []byte) (passes bool, digest [V1DigestSize]byte) {
	b := make([]uint64, V1ScratchWords)

	seed := sha512.Sum512(input)
	for i := 0; i < 8; i++ {
		b[i] = binary.LittleEndian.Uint64(seed[i*8 : i*8+8])
	}

	speck := crypto.NewSpeck128(V1SpeckRounds)
	speck.InitXY(b[4], b[5])

	for i := 0; i < V1ScratchWords-8; {
		x0, y0 := b[i], b[i+1]
		x1, y1 := b[i+2], b[i+3]
		x2, y2 := b[i+4], b[i+5]
		x3, y3 := b[i+6], b[i+7]
		i += 8

		// 跨块混合，确保四个块不能独立计算。
		x0 += x1
		x1 += x2
		x2 += x3
		x3 += y0

		x0, y0, x1, y1, x2, y2, x3, y3 = speck.EncryptXYXYXYXY(x0, y0, x1, y1, x2, y2, x3, y3)

		b[i], b[i+1] = x0, y0
		b[i+2], b[i+3] = x1, y1
		b[i+4], b[i+5] = x2, y2
		b[i+6], b[i+7] = x3, y3
	}

	// 全局排序，必须先计算出整块数据才能进行——这是排序哈希抵抗
	// GPU 加速的核心。
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })

	h := sha512.New384()
	wordBuf := make([]byte, 8)
	for _, w := range b {
		binary.LittleEndian.PutUint64(wordBuf, w)
		h.Write(wordBuf) //nolint:errcheck // hash.Hash.Write 永不返回错误
	}
	h.Write(input) //nolint:errcheck

	sum := h.Sum(nil)
	copy(digest[:], sum)

	s := binary.LittleEndian.Uint64(sum[0:8]) + binary.LittleEndian.Uint64(sum[8:16])
	return s%V1Modulus == 0, digest
}
