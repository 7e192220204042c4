package identity

import (
	"crypto/sha512"
	"crypto/subtle"

	"github.com/dep2p/go-identity/pkg/lib/crypto"
	ifc "github.com/dep2p/go-identity/pkg/interfaces/identity"
)

// signatureSize is the on-the-wire signature size for both identity types.
const signatureSize = 96

// Sign produces a signature over data using id's private material. It
// returns nil if id holds no private half or if the identity's type does
// not support signing (unreachable for the two defined types, kept as a
// defensive dispatch per §7's "Unsupported" error kind).
func (id *Identity) Sign(data []byte) []byte {
	if !id.hasPrivate {
		return nil
	}
	switch id.typ {
	case ifc.TypeV0:
		return signV0(id.c25519Priv, data)
	case ifc.TypeV1:
		return signV1(id.p384Priv, id.compoundPublicBytes(), data)
	default:
		return nil
	}
}

// Verify checks a signature produced by Sign against data. Type dispatch is
// strict: a V0 identity never attempts V1 verification and vice versa,
// resolving the source's V0 sign-path fall-through as an oversight (see
// design notes) by never allowing it here either.
func (id *Identity) Verify(data, sig []byte) bool {
	if len(sig) != signatureSize {
		return false
	}
	switch id.typ {
	case ifc.TypeV0:
		return verifyV0(id.c25519Pub, data, sig)
	case ifc.TypeV1:
		return verifyV1(id.p384Pub, id.compoundPublicBytes(), data, sig)
	default:
		return false
	}
}

// signV0 wraps the 64-byte Ed25519 signature in the project's combined
// format: signature ∥ first 32 bytes of SHA-512(data), giving a fixed
// 96-byte envelope for both identity types.
func signV0(priv *crypto.C25519PrivateKey, data []byte) []byte {
	sig := priv.Sign(data)
	digest := sha512.Sum512(data)

	out := make([]byte, signatureSize)
	copy(out[:crypto.C25519SignatureSize], sig)
	copy(out[crypto.C25519SignatureSize:], digest[:32])
	return out
}

func verifyV0(pub *crypto.C25519PublicKey, data, sig []byte) bool {
	if !pub.Verify(data, sig[:crypto.C25519SignatureSize]) {
		return false
	}
	digest := sha512.Sum512(data)
	return subtle.ConstantTimeCompare(sig[crypto.C25519SignatureSize:], digest[:32]) == 1
}

// signV1 hashes data together with the compound public so that a V1
// signature commits to both of the identity's subkeys: tampering with
// either key after signing invalidates every prior signature.
func signV1(priv *crypto.P384PrivateKey, compoundPublic, data []byte) []byte {
	h := sha512.Sum384(append(append([]byte{}, data...), compoundPublic...))
	sig, err := priv.Sign(h[:])
	if err != nil {
		return nil
	}
	return sig
}

func verifyV1(pub *crypto.P384PublicKey, compoundPublic, data, sig []byte) bool {
	h := sha512.Sum384(append(append([]byte{}, data...), compoundPublic...))
	return pub.Verify(h[:], sig)
}

// HashWithPrivate returns the SHA-384 of the identity's public material
// concatenated with its private material, or an all-zero value if id holds
// no private half. It is used internally to derive a stable cache key for
// an in-memory Manager, never for persistence.
func (id *Identity) HashWithPrivate() [48]byte {
	if !id.hasPrivate {
		return [48]byte{}
	}
	switch id.typ {
	case ifc.TypeV0:
		return sha512.Sum384(append(append([]byte{}, id.c25519Pub.Raw()...), id.c25519Priv.Raw()...))
	case ifc.TypeV1:
		pub := id.compoundPublicBytes()
		priv := id.compoundPrivateBytes()
		return sha512.Sum384(append(pub, priv...))
	default:
		return [48]byte{}
	}
}
