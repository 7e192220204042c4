// Package identity 实现 pkg/interfaces/identity 所描述的身份原语。
//
// 一个身份绑定一个 40 位网络地址到一组或两组公私钥对，由一个记忆
// 困难的工作量证明守护：V0 只持有 C25519 组合密钥，由 Salsa20
// frankenhash 守护；V1 额外持有 P-384 复合密钥，由 Speck128 排序
// 哈希守护。身份在创建/解析之后不可变，可被多个读者安全共享。
package identity
