package identity

import (
	"crypto/sha512"

	"github.com/dep2p/go-identity/pkg/lib/crypto"
	ifc "github.com/dep2p/go-identity/pkg/interfaces/identity"
)

// Agree performs key agreement against other's public material using id's
// private material, per the matrix in §4.5:
//
//	self V0, other V0 or V1: X25519 only, key = SHA-512(shared)[:48]
//	self V1, other V1:       X25519 + ECDH-P384, key = SHA-384(r1 ∥ r2)
//	self V1, other V0:       X25519 only, same as the first row
//
// It returns (zero, false) if id holds no private half.
func (id *Identity) Agree(other ifc.Identity) ([48]byte, bool) {
	if !id.hasPrivate {
		return [48]byte{}, false
	}

	otherImpl, ok := other.(*Identity)
	if !ok {
		return [48]byte{}, false
	}

	if id.typ == ifc.TypeV1 && otherImpl.typ == ifc.TypeV1 {
		return agreeV1V1(id, otherImpl)
	}
	return agreeC25519Only(id.c25519Priv, otherImpl.c25519Pub)
}

func agreeC25519Only(priv *crypto.C25519PrivateKey, theirPub *crypto.C25519PublicKey) ([48]byte, bool) {
	shared, err := priv.Agree(theirPub)
	if err != nil {
		return [48]byte{}, false
	}
	digest := sha512.Sum512(shared[:])
	var key [48]byte
	copy(key[:], digest[:48])
	return key, true
}

func agreeV1V1(self, other *Identity) ([48]byte, bool) {
	r1, err := self.c25519Priv.Agree(other.c25519Pub)
	if err != nil {
		return [48]byte{}, false
	}
	r2 := self.p384Priv.Agree(other.p384Pub)

	combined := make([]byte, 0, crypto.C25519SharedSecretSize+crypto.P384SharedSecretSize)
	combined = append(combined, r1[:]...)
	combined = append(combined, r2[:]...)
	return sha512.Sum384(combined), true
}
