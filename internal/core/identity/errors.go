package identity

import "errors"

// ============================================================================
//                              错误定义
// ============================================================================

var (
	// ErrUnsupportedType generate 遇到未知身份类型
	ErrUnsupportedType = errors.New("unsupported identity type")

	// ErrReservedAddress 地址落在保留地址集合中
	ErrReservedAddress = errors.New("address is reserved")

	// ErrMalformedInput 解码时遇到截断、长度错误或非法字符
	ErrMalformedInput = errors.New("malformed identity encoding")

	// ErrAddressMismatch V1 地址与指纹哈希不一致
	ErrAddressMismatch = errors.New("address does not match fingerprint hash")

	// ErrProofOfWorkFailed 工作量证明未通过
	ErrProofOfWorkFailed = errors.New("proof of work check failed")

	// ErrNoPrivateMaterial 操作需要私有材料但身份不持有
	ErrNoPrivateMaterial = errors.New("identity holds no private material")

	// ErrScratchAllocation 工作量证明暂存区分配失败
	ErrScratchAllocation = errors.New("failed to allocate proof-of-work scratch buffer")
)
