package identity

import (
	"crypto/sha512"

	ifc "github.com/dep2p/go-identity/pkg/interfaces/identity"
)

// IsReservedAddress 报告一个地址是否落在保留集合中：全零，或前导字节为 0xFF。
func IsReservedAddress(addr ifc.Address) bool {
	if addr == (ifc.Address{}) {
		return true
	}
	return addr[0] == 0xFF
}

// fingerprintV0 为 V0 身份计算指纹：地址本身已知（由 PoW 摘要给出），
// 哈希是对 C25519 组合公钥的 SHA-384。
func fingerprintV0(address ifc.Address, c25519PubRaw []byte) ifc.Fingerprint {
	return ifc.Fingerprint{
		Address: address,
		Hash:    sha512.Sum384(c25519PubRaw),
	}
}

// fingerprintV1 为 V1 身份计算指纹：哈希是对复合公钥镜像的 SHA-384，
// 地址是该哈希的前 5 个字节（大端序）。
func fingerprintV1(compoundPublic []byte) ifc.Fingerprint {
	hash := sha512.Sum384(compoundPublic)
	var addr ifc.Address
	copy(addr[:], hash[0:5])
	return ifc.Fingerprint{Address: addr, Hash: hash}
}
