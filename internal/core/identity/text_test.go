package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ifc "github.com/dep2p/go-identity/pkg/interfaces/identity"
)

func TestStringParseString_V0_RoundTrip(t *testing.T) {
	id, err := Generate(ifc.TypeV0)
	require.NoError(t, err)

	text := id.String(true)
	back, err := ParseString(text)
	require.NoError(t, err)
	assert.Equal(t, id.Address(), back.Address())
	assert.True(t, back.HasPrivate())
	assert.Equal(t, text, back.String(true))
}

func TestStringParseString_V1_RoundTrip(t *testing.T) {
	id, err := Generate(ifc.TypeV1)
	require.NoError(t, err)

	text := id.String(true)
	back, err := ParseString(text)
	require.NoError(t, err)
	assert.Equal(t, id.Address(), back.Address())
	assert.True(t, back.HasPrivate())
	assert.Equal(t, text, back.String(true))
}

// TestParseString_EmptyPrivateFieldIsValid 校验 "addr:0:pub:" 这种第四个
// 字段存在但为空的输入合法，解析结果不持有私有材料。
func TestParseString_EmptyPrivateFieldIsValid(t *testing.T) {
	id, err := Generate(ifc.TypeV0)
	require.NoError(t, err)

	text := id.String(false) + ":"
	back, err := ParseString(text)
	require.NoError(t, err)
	assert.False(t, back.HasPrivate())
	assert.Equal(t, id.Address(), back.Address())
}

func TestParseString_TooFewFields(t *testing.T) {
	_, err := ParseString("aabbccddee:0")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseString_UnknownTypeCharacter(t *testing.T) {
	_, err := ParseString("aabbccddee:9:deadbeef")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseString_ReservedAddressRejected(t *testing.T) {
	_, err := ParseString("0000000000:0:deadbeef")
	assert.ErrorIs(t, err, ErrReservedAddress)
}

func TestParseString_InvalidHexAddress(t *testing.T) {
	_, err := ParseString("zzzzzzzzzz:0:deadbeef")
	assert.ErrorIs(t, err, ErrMalformedInput)
}
