// Package pow 实现两种身份类型各自的记忆困难工作量证明引擎。
//
// V0 使用 Salsa20 驱动的顺序填充加索引置换混合（"frankenhash"）；
// V1 使用 Speck128 驱动的填充加全局排序。两者都故意设计为难以
// 并行化或用专用硬件加速：V0 的填充阶段形成前后依赖的加密链，
// V1 的排序阶段要求整块数据都已计算完毕才能开始。
//
// 两个函数都是纯函数：给定相同输入总是产生相同输出，不持有状态，
// 不做 I/O。调用方负责控制尝试次数与超时。
package pow
