package identity

import (
	"fmt"

	"github.com/dep2p/go-identity/pkg/lib/crypto"
	ifc "github.com/dep2p/go-identity/pkg/interfaces/identity"
)

// Marshal encodes id into the canonical binary form:
//
//	address[5] | type[1] | public_block | priv_len[1] | [private_block]
//
// Big-endian, no padding, no outer length prefix.
func (id *Identity) Marshal(includePrivate bool) []byte {
	var out []byte
	out = append(out, id.address[:]...)

	switch id.typ {
	case ifc.TypeV0:
		out = append(out, byte(ifc.TypeV0))
		out = append(out, id.c25519Pub.Raw()...)
		if includePrivate && id.hasPrivate {
			out = append(out, byte(crypto.C25519PrivateKeySize))
			out = append(out, id.c25519Priv.Raw()...)
		} else {
			out = append(out, 0)
		}

	case ifc.TypeV1:
		out = append(out, byte(ifc.TypeV1))
		out = append(out, id.compoundPublicBytes()...)
		if includePrivate && id.hasPrivate {
			out = append(out, byte(compoundPrivateSize))
			out = append(out, id.compoundPrivateBytes()...)
		} else {
			out = append(out, 0)
		}
	}

	return out
}

// Unmarshal decodes data produced by Marshal. On any malformed input the
// returned error is non-nil and the *Identity return value is nil — there
// is no partially-constructed identity to hand back.
func Unmarshal(data []byte) (*Identity, error) {
	if len(data) < 5+1 {
		return nil, fmt.Errorf("%w: truncated header", ErrMalformedInput)
	}

	var addr ifc.Address
	copy(addr[:], data[:5])

	switch ifc.Type(data[5]) {
	case ifc.TypeV0:
		return unmarshalV0(addr, data[6:])
	case ifc.TypeV1:
		return unmarshalV1(addr, data[6:])
	default:
		return nil, fmt.Errorf("%w: unknown type byte %d", ErrMalformedInput, data[5])
	}
}

func unmarshalV0(addr ifc.Address, rest []byte) (*Identity, error) {
	if len(rest) < crypto.C25519PublicKeySize+1 {
		return nil, fmt.Errorf("%w: truncated v0 public block", ErrMalformedInput)
	}

	pub, err := crypto.UnmarshalC25519PublicKey(rest[:crypto.C25519PublicKeySize])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	rest = rest[crypto.C25519PublicKeySize:]

	privLen := int(rest[0])
	rest = rest[1:]

	id := &Identity{
		typ:       ifc.TypeV0,
		c25519Pub: pub,
		address:   addr,
		fp:        fingerprintV0(addr, pub.Raw()),
	}

	switch privLen {
	case 0:
		return id, nil
	case crypto.C25519PrivateKeySize:
		if len(rest) < privLen {
			return nil, fmt.Errorf("%w: truncated v0 private block", ErrMalformedInput)
		}
		priv, err := crypto.UnmarshalC25519PrivateKey(rest[:privLen])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		id.c25519Priv = priv
		id.hasPrivate = true
		return id, nil
	default:
		return nil, fmt.Errorf("%w: illegal v0 priv_len %d", ErrMalformedInput, privLen)
	}
}

func unmarshalV1(addr ifc.Address, rest []byte) (*Identity, error) {
	if len(rest) < compoundPublicSize+1 {
		return nil, fmt.Errorf("%w: truncated v1 public block", ErrMalformedInput)
	}

	publicBlock := rest[:compoundPublicSize]
	nonce := publicBlock[0]
	c25519Pub, err := crypto.UnmarshalC25519PublicKey(publicBlock[1 : 1+crypto.C25519PublicKeySize])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	p384Pub, err := crypto.UnmarshalP384PublicKey(publicBlock[1+crypto.C25519PublicKeySize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	rest = rest[compoundPublicSize:]

	fp := fingerprintV1(publicBlock)
	if fp.Address != addr {
		return nil, fmt.Errorf("%w", ErrAddressMismatch)
	}

	privLen := int(rest[0])
	rest = rest[1:]

	id := &Identity{
		typ:       ifc.TypeV1,
		nonce:     nonce,
		c25519Pub: c25519Pub,
		p384Pub:   p384Pub,
		address:   addr,
		fp:        fp,
	}

	switch privLen {
	case 0:
		return id, nil
	case compoundPrivateSize:
		if len(rest) < privLen {
			return nil, fmt.Errorf("%w: truncated v1 private block", ErrMalformedInput)
		}
		privateBlock := rest[:privLen]
		c25519Priv, err := crypto.UnmarshalC25519PrivateKey(privateBlock[:crypto.C25519PrivateKeySize])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		p384Priv, err := crypto.UnmarshalP384PrivateKey(privateBlock[crypto.C25519PrivateKeySize:])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		id.c25519Priv = c25519Priv
		id.p384Priv = p384Priv
		id.hasPrivate = true
		return id, nil
	default:
		return nil, fmt.Errorf("%w: illegal v1 priv_len %d", ErrMalformedInput, privLen)
	}
}
