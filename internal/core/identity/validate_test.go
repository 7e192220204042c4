package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-identity/pkg/lib/crypto"
	ifc "github.com/dep2p/go-identity/pkg/interfaces/identity"
)

func TestLocallyValidate_RejectsTamperedV0Public(t *testing.T) {
	id, err := Generate(ifc.TypeV0)
	require.NoError(t, err)

	pub, _, err := crypto.GenerateC25519Default()
	require.NoError(t, err)
	tampered := &Identity{
		typ:       ifc.TypeV0,
		c25519Pub: pub,
		address:   id.Address(), // 地址保留为原身份的（很可能不再满足 PoW 或与指纹一致）
		fp:        fingerprintV0(id.Address(), pub.Raw()),
	}
	assert.False(t, tampered.LocallyValidate())
}

func TestLocallyValidate_RejectsReservedAddress(t *testing.T) {
	id, err := Generate(ifc.TypeV0)
	require.NoError(t, err)

	tampered := &Identity{
		typ:       ifc.TypeV0,
		c25519Pub: id.c25519Pub,
		address:   ifc.Address{},
		fp:        id.fp,
	}
	assert.False(t, tampered.LocallyValidate())
}

func TestIsReservedAddress(t *testing.T) {
	assert.True(t, IsReservedAddress(ifc.Address{}))
	assert.True(t, IsReservedAddress(ifc.Address{0xFF, 1, 2, 3, 4}))
	assert.False(t, IsReservedAddress(ifc.Address{0x01, 0x02, 0x03, 0x04, 0x05}))
}
