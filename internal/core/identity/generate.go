package identity

import (
	"fmt"

	"github.com/dep2p/go-identity/internal/metrics"
	"github.com/dep2p/go-identity/pkg/lib/crypto"
	"github.com/dep2p/go-identity/pkg/lib/pow"
	ifc "github.com/dep2p/go-identity/pkg/interfaces/identity"
)

// Generate mints a new identity of the given type using crypto/rand as the
// randomness source. It blocks until the memory-hard proof of work for that
// type has been satisfied and the resulting address is not reserved.
//
// Generate has no cooperative cancellation point: callers that need to
// abandon a long-running mint must run it on a worker they can discard.
func Generate(t ifc.Type) (*Identity, error) {
	return generate(t, nil)
}

// GenerateWithMetrics is Generate instrumented with a PoWRecorder, used by
// the fx-wired Manager so attempt counts and mint duration are observable.
func GenerateWithMetrics(t ifc.Type, rec *metrics.PoWRecorder) (*Identity, error) {
	return generate(t, rec)
}

func generate(t ifc.Type, rec *metrics.PoWRecorder) (*Identity, error) {
	switch t {
	case ifc.TypeV0:
		done := rec.Timer("V0")
		id, err := generateV0(rec)
		done(err == nil)
		return id, err
	case ifc.TypeV1:
		done := rec.Timer("V1")
		id, err := generateV1(rec)
		done(err == nil)
		return id, err
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, t)
	}
}

// generateV0 implements §4.3's V0 generation loop: generate a C25519 pair,
// test it against the frankenhash acceptance rule, and retry entirely
// (fresh key pair) until both the PoW and the address-not-reserved
// invariant hold.
func generateV0(rec *metrics.PoWRecorder) (*Identity, error) {
	for {
		pub, priv, err := crypto.GenerateC25519Default()
		if err != nil {
			return nil, fmt.Errorf("generate c25519: %w", err)
		}

		rec.RecordAttempt("V0")
		digest := pow.FrankenhashV0(pub.Raw())
		if !pow.PassesV0(digest) {
			continue
		}

		var addr ifc.Address
		candidate := pow.AddressV0(digest)
		copy(addr[:], candidate[:])
		if IsReservedAddress(addr) {
			log.Debug("v0 candidate address reserved, retrying", "address", addr)
			continue
		}

		id := &Identity{
			typ:        ifc.TypeV0,
			c25519Pub:  pub,
			c25519Priv: priv,
			hasPrivate: true,
			address:    addr,
			fp:         fingerprintV0(addr, pub.Raw()),
		}
		log.Info("minted v0 identity", "address", addr)
		return id, nil
	}
}

// generateV1 implements §4.3's V1 generation loop: an outer loop that
// (re)generates both key pairs, an inner loop that walks the 1-byte nonce
// until the sort-hash PoW passes (regenerating only the P-384 pair when the
// nonce wraps), and a final reserved-address check that restarts the whole
// outer loop on failure.
func generateV1(rec *metrics.PoWRecorder) (*Identity, error) {
	for {
		c25519Pub, c25519Priv, err := crypto.GenerateC25519Default()
		if err != nil {
			return nil, fmt.Errorf("generate c25519: %w", err)
		}
		p384Pub, p384Priv, err := crypto.GenerateP384Default()
		if err != nil {
			return nil, fmt.Errorf("generate p384: %w", err)
		}

		var nonce byte
		for {
			rec.RecordAttempt("V1")
			compound := buildCompoundPublic(nonce, c25519Pub, p384Pub)
			if pass, _ := pow.SortHashV1(compound); pass {
				break
			}
			nonce++
			if nonce == 0 {
				p384Pub, p384Priv, err = crypto.GenerateP384Default()
				if err != nil {
					return nil, fmt.Errorf("regenerate p384: %w", err)
				}
			}
		}

		compound := buildCompoundPublic(nonce, c25519Pub, p384Pub)
		fp := fingerprintV1(compound)
		if IsReservedAddress(fp.Address) {
			log.Debug("v1 candidate address reserved, restarting outer loop", "address", fp.Address)
			continue
		}

		id := &Identity{
			typ:        ifc.TypeV1,
			nonce:      nonce,
			c25519Pub:  c25519Pub,
			c25519Priv: c25519Priv,
			p384Pub:    p384Pub,
			p384Priv:   p384Priv,
			hasPrivate: true,
			address:    fp.Address,
			fp:         fp,
		}
		log.Info("minted v1 identity", "address", fp.Address)
		return id, nil
	}
}
