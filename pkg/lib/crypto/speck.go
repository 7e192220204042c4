package crypto

// Speck128 是 Speck 分组密码家族中 128 位块、128 位密钥变体的精简实现。
//
// 生态中没有现成的 Go 实现：Speck 从未进入 golang.org/x/crypto，标准库也不
// 提供。V1 工作量证明选择 Speck 而非 AES 正是因为它在各类 CPU 架构上的开销
// 均衡（AES-NI 只在部分平台上快），因此这里只实现引擎真正用到的子集——
// 按轮数参数化的加密，不提供解密，因为工作量证明只向一个方向混合数据。
type Speck128 struct {
	rounds int
	rk     []uint64 // 轮密钥
}

// NewSpeck128 构造一个指定轮数的 Speck128 实例，尚未设定密钥。
func NewSpeck128(rounds int) *Speck128 {
	return &Speck128{rounds: rounds, rk: make([]uint64, rounds)}
}

// InitXY 使用一对 64 位字（组成 128 位密钥）派生轮密钥。
//
// 对应 Speck128 的 (x,y) 密钥扩展：rk[0] 为 x；第 i 轮以 i 为轮常量
// 通过 speckRound 推进 (a, b)，并把新的 b 存为 rk[i+1]。
func (s *Speck128) InitXY(x, y uint64) {
	a, b := y, x
	s.rk[0] = b
	for i := 0; i < s.rounds-1; i++ {
		a, b = speckRound(a, b, uint64(i))
		s.rk[i+1] = b
	}
}

func speckRound(x, y, k uint64) (uint64, uint64) {
	x = rotr64(x, 8)
	x += y
	x ^= k
	y = rotl64(y, 3)
	y ^= x
	return x, y
}

func rotr64(x uint64, r uint) uint64 { return (x >> r) | (x << (64 - r)) }
func rotl64(x uint64, r uint) uint64 { return (x << r) | (x >> (64 - r)) }

// EncryptBlock 加密单个 128 位块 (x,y)，返回密文块。
func (s *Speck128) EncryptBlock(x, y uint64) (uint64, uint64) {
	for i := 0; i < s.rounds; i++ {
		x, y = speckRound(x, y, s.rk[i])
	}
	return x, y
}

// EncryptXYXYXYXY 并行加密四个 128 位块，布局与引擎的交织存取顺序一致：
// 调用方以 (x0,y0,x1,y1,x2,y2,x3,y3) 的顺序传入/取回四个块。
func (s *Speck128) EncryptXYXYXYXY(x0, y0, x1, y1, x2, y2, x3, y3 uint64) (uint64, uint64, uint64, uint64, uint64, uint64, uint64, uint64) {
	x0, y0 = s.EncryptBlock(x0, y0)
	x1, y1 = s.EncryptBlock(x1, y1)
	x2, y2 = s.EncryptBlock(x2, y2)
	x3, y3 = s.EncryptBlock(x3, y3)
	return x0, y0, x1, y1, x2, y2, x3, y3
}
