package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ifc "github.com/dep2p/go-identity/pkg/interfaces/identity"
)

// TestIdentity_ImplementsInterface 验证 Identity 实现接口。
func TestIdentity_ImplementsInterface(t *testing.T) {
	var _ ifc.Identity = (*Identity)(nil)
}

func TestNIL_IsZeroValue(t *testing.T) {
	assert.Equal(t, ifc.Type(0), NIL.Type())
	assert.False(t, NIL.HasPrivate())
	assert.False(t, NIL.LocallyValidate())
}

func TestGenerate_V0_RoundTrip(t *testing.T) {
	id, err := Generate(ifc.TypeV0)
	require.NoError(t, err)
	require.True(t, id.HasPrivate())
	assert.True(t, id.LocallyValidate())
	assert.False(t, IsReservedAddress(id.Address()))
}

func TestGenerate_V1_RoundTrip(t *testing.T) {
	id, err := Generate(ifc.TypeV1)
	require.NoError(t, err)
	require.True(t, id.HasPrivate())
	assert.True(t, id.LocallyValidate())
	assert.False(t, IsReservedAddress(id.Address()))
}

// TestGenerate_AddressDerivedFromFingerprint 校验 §1 FINGERPRINT 模块的
// "地址仅由公共材料派生" 不变量：对同一枚身份重新计算指纹必须得到相同地址。
func TestGenerate_AddressDerivedFromFingerprint(t *testing.T) {
	id, err := Generate(ifc.TypeV1)
	require.NoError(t, err)

	recomputed := fingerprintV1(id.compoundPublicBytes())
	assert.Equal(t, id.Address(), recomputed.Address)
	assert.Equal(t, id.Fingerprint().Hash, recomputed.Hash)
}

func TestSignVerify_V0(t *testing.T) {
	id, err := Generate(ifc.TypeV0)
	require.NoError(t, err)

	msg := []byte("hello v0")
	sig := id.Sign(msg)
	require.Len(t, sig, signatureSize)
	assert.True(t, id.Verify(msg, sig))
	assert.False(t, id.Verify([]byte("tampered"), sig))
}

func TestSignVerify_V1(t *testing.T) {
	id, err := Generate(ifc.TypeV1)
	require.NoError(t, err)

	msg := []byte("hello v1")
	sig := id.Sign(msg)
	require.NotEmpty(t, sig)
	assert.True(t, id.Verify(msg, sig))
	assert.False(t, id.Verify([]byte("tampered"), sig))
}

// TestVerify_StrictTypeDispatch 校验签名校验的类型分发是严格的：一个 V0
// 身份的签名永远无法通过 V1 的验证路径，即便签名长度恰好相同。
func TestVerify_StrictTypeDispatch(t *testing.T) {
	v0, err := Generate(ifc.TypeV0)
	require.NoError(t, err)
	v1, err := Generate(ifc.TypeV1)
	require.NoError(t, err)

	msg := []byte("cross type")
	sigV0 := v0.Sign(msg)
	assert.False(t, v1.Verify(msg, sigV0))
}

func TestAgree_Symmetry(t *testing.T) {
	a, err := Generate(ifc.TypeV1)
	require.NoError(t, err)
	b, err := Generate(ifc.TypeV1)
	require.NoError(t, err)

	secretAB, okAB := a.Agree(b)
	secretBA, okBA := b.Agree(a)
	require.True(t, okAB)
	require.True(t, okBA)
	assert.Equal(t, secretAB, secretBA)
}

func TestAgree_MixedTypesFallsBackToC25519Only(t *testing.T) {
	v0, err := Generate(ifc.TypeV0)
	require.NoError(t, err)
	v1, err := Generate(ifc.TypeV1)
	require.NoError(t, err)

	secret1, ok1 := v0.Agree(v1)
	secret2, ok2 := v1.Agree(v0)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, secret1, secret2)
}

func TestAgree_NoPrivateMaterial(t *testing.T) {
	id, err := Generate(ifc.TypeV1)
	require.NoError(t, err)

	stripped, err := Unmarshal(id.Marshal(false))
	require.NoError(t, err)

	_, ok := stripped.Agree(id)
	assert.False(t, ok)
}

// TestMarshal_StripPrivateIsIdempotent 校验去除私有材料后的编解码往返
// 不会再引入私有材料，且地址/指纹保持不变。
func TestMarshal_StripPrivateIsIdempotent(t *testing.T) {
	id, err := Generate(ifc.TypeV1)
	require.NoError(t, err)

	public := id.Marshal(false)
	stripped, err := Unmarshal(public)
	require.NoError(t, err)
	assert.False(t, stripped.HasPrivate())
	assert.Equal(t, id.Address(), stripped.Address())
	assert.Equal(t, id.Fingerprint(), stripped.Fingerprint())

	twice, err := Unmarshal(stripped.Marshal(false))
	require.NoError(t, err)
	assert.Equal(t, stripped.Marshal(false), twice.Marshal(false))
}

func TestHashWithPrivate_EmptyWithoutPrivate(t *testing.T) {
	id, err := Generate(ifc.TypeV0)
	require.NoError(t, err)

	stripped, err := Unmarshal(id.Marshal(false))
	require.NoError(t, err)
	assert.Equal(t, [48]byte{}, stripped.HashWithPrivate())
	assert.NotEqual(t, [48]byte{}, id.HashWithPrivate())
}
