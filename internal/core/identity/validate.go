package identity

import (
	"github.com/dep2p/go-identity/pkg/lib/pow"
	ifc "github.com/dep2p/go-identity/pkg/interfaces/identity"
)

// LocallyValidate recomputes the proof-of-work and address/fingerprint
// invariants for id without consulting any external state. It never
// panics: any inconsistency is reported as false.
func (id *Identity) LocallyValidate() bool {
	if IsReservedAddress(id.address) || id.address == (ifc.Address{}) {
		return false
	}

	switch id.typ {
	case ifc.TypeV0:
		digest := pow.FrankenhashV0(id.c25519Pub.Raw())
		candidate := pow.AddressV0(digest)
		var addr ifc.Address
		copy(addr[:], candidate[:])
		return addr == id.address && pow.PassesV0(digest)

	case ifc.TypeV1:
		fp := fingerprintV1(id.compoundPublicBytes())
		if fp.Address != id.address {
			return false
		}
		pass, _ := pow.SortHashV1(id.compoundPublicBytes())
		return pass

	default:
		return false
	}
}
