package identity

import (
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dep2p/go-identity/pkg/lib/crypto"
	ifc "github.com/dep2p/go-identity/pkg/interfaces/identity"
)

// base32Alphabet is the project's base32 alphabet for V1 text blocks: the
// RFC 4648 base32hex alphabet, lowercased so it reads consistently next to
// V0's lowercase hex fields. No ecosystem library is needed for a custom
// alphabet — encoding/base32.NewEncoding already supports one directly.
const base32Alphabet = "0123456789abcdefghijklmnopqrstuv"

var base32Codec = base32.NewEncoding(base32Alphabet).WithPadding(base32.NoPadding)

// String encodes id into the canonical text form:
//
//	address:type:public[:private]
//
// V0 hex-encodes its 64-byte blocks; V1 base32-encodes its compound blocks.
func (id *Identity) String(includePrivate bool) string {
	parts := []string{hex.EncodeToString(id.address[:])}

	switch id.typ {
	case ifc.TypeV0:
		parts = append(parts, "0", hex.EncodeToString(id.c25519Pub.Raw()))
		if includePrivate && id.hasPrivate {
			parts = append(parts, hex.EncodeToString(id.c25519Priv.Raw()))
		}

	case ifc.TypeV1:
		parts = append(parts, "1", base32Codec.EncodeToString(id.compoundPublicBytes()))
		if includePrivate && id.hasPrivate {
			parts = append(parts, base32Codec.EncodeToString(id.compoundPrivateBytes()))
		}
	}

	return strings.Join(parts, ":")
}

// ParseString decodes the text form produced by String. It tolerates up to
// four colon-separated fields; a present-but-empty fourth field (no private
// block) is valid and yields has_private=false, per the decision recorded
// for this parser's handling of "addr:0:pub:".
func ParseString(s string) (*Identity, error) {
	fields := strings.SplitN(s, ":", 4)
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: expected at least 3 colon-separated fields", ErrMalformedInput)
	}

	addrBytes, err := hex.DecodeString(fields[0])
	if err != nil || len(addrBytes) != 5 {
		return nil, fmt.Errorf("%w: invalid address field", ErrMalformedInput)
	}
	var addr ifc.Address
	copy(addr[:], addrBytes)
	if IsReservedAddress(addr) {
		return nil, fmt.Errorf("%w", ErrReservedAddress)
	}

	switch fields[1] {
	case "0":
		return parseTextV0(addr, fields)
	case "1":
		return parseTextV1(addr, fields)
	default:
		return nil, fmt.Errorf("%w: unknown type character %q", ErrMalformedInput, fields[1])
	}
}

func parseTextV0(addr ifc.Address, fields []string) (*Identity, error) {
	pubBytes, err := hex.DecodeString(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid v0 public hex", ErrMalformedInput)
	}
	pub, err := crypto.UnmarshalC25519PublicKey(pubBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	id := &Identity{
		typ:       ifc.TypeV0,
		c25519Pub: pub,
		address:   addr,
		fp:        fingerprintV0(addr, pub.Raw()),
	}

	if len(fields) == 4 && fields[3] != "" {
		privBytes, err := hex.DecodeString(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid v0 private hex", ErrMalformedInput)
		}
		priv, err := crypto.UnmarshalC25519PrivateKey(privBytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		id.c25519Priv = priv
		id.hasPrivate = true
	}

	return id, nil
}

func parseTextV1(addr ifc.Address, fields []string) (*Identity, error) {
	pubBytes, err := base32Codec.DecodeString(fields[2])
	if err != nil || len(pubBytes) != compoundPublicSize {
		return nil, fmt.Errorf("%w: invalid v1 public block", ErrMalformedInput)
	}

	nonce := pubBytes[0]
	c25519Pub, err := crypto.UnmarshalC25519PublicKey(pubBytes[1 : 1+crypto.C25519PublicKeySize])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	p384Pub, err := crypto.UnmarshalP384PublicKey(pubBytes[1+crypto.C25519PublicKeySize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	fp := fingerprintV1(pubBytes)
	if fp.Address != addr {
		return nil, fmt.Errorf("%w", ErrAddressMismatch)
	}

	id := &Identity{
		typ:       ifc.TypeV1,
		nonce:     nonce,
		c25519Pub: c25519Pub,
		p384Pub:   p384Pub,
		address:   addr,
		fp:        fp,
	}

	if len(fields) == 4 && fields[3] != "" {
		privBytes, err := base32Codec.DecodeString(fields[3])
		if err != nil || len(privBytes) != compoundPrivateSize {
			return nil, fmt.Errorf("%w: invalid v1 private block", ErrMalformedInput)
		}
		c25519Priv, err := crypto.UnmarshalC25519PrivateKey(privBytes[:crypto.C25519PrivateKeySize])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		p384Priv, err := crypto.UnmarshalP384PrivateKey(privBytes[crypto.C25519PrivateKeySize:])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		id.c25519Priv = c25519Priv
		id.p384Priv = p384Priv
		id.hasPrivate = true
	}

	return id, nil
}
