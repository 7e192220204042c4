package identity

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-identity/internal/metrics"
	ifc "github.com/dep2p/go-identity/pkg/interfaces/identity"
)

func TestManager_CreateSaveLoad(t *testing.T) {
	mgr := NewManager(metrics.NewPoWRecorder())

	id, err := mgr.Create(ifc.TypeV1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mgr.Save(&buf, id, true))

	loaded, err := mgr.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, id.Address(), loaded.Address())
	assert.True(t, loaded.HasPrivate())
}

func TestManager_NilRecorderIsSafe(t *testing.T) {
	mgr := NewManager(nil)
	id, err := mgr.Create(ifc.TypeV0)
	require.NoError(t, err)
	assert.True(t, id.HasPrivate())
}

func TestManager_CachesByHashWithPrivate(t *testing.T) {
	mgr := NewManager(nil)
	id, err := mgr.Create(ifc.TypeV0)
	require.NoError(t, err)

	impl := id.(*Identity)
	key := impl.HashWithPrivate()

	mgr.mu.RLock()
	cached, ok := mgr.cache[key]
	mgr.mu.RUnlock()

	require.True(t, ok)
	assert.Same(t, impl, cached)
}

func TestManager_ParseDoesNotCachePublicOnlyIdentities(t *testing.T) {
	mgr := NewManager(nil)
	id, err := mgr.Create(ifc.TypeV0)
	require.NoError(t, err)
	impl := id.(*Identity)

	publicOnly, err := mgr.Parse(impl.String(false))
	require.NoError(t, err)
	assert.False(t, publicOnly.HasPrivate())

	mgr.mu.RLock()
	defer mgr.mu.RUnlock()
	assert.Len(t, mgr.cache, 1)
}

// fakeIdentity 是一个满足 ifc.Identity 接口但不是 *Identity 的桩实现，
// 用来触发 Save 对"非本包身份"的拒绝路径。
type fakeIdentity struct{}

func (fakeIdentity) Type() ifc.Type                         { return ifc.TypeV0 }
func (fakeIdentity) Address() ifc.Address                   { return ifc.Address{} }
func (fakeIdentity) Fingerprint() ifc.Fingerprint            { return ifc.Fingerprint{} }
func (fakeIdentity) HasPrivate() bool                        { return false }
func (fakeIdentity) LocallyValidate() bool                   { return false }
func (fakeIdentity) Sign(data []byte) []byte                 { return nil }
func (fakeIdentity) Verify(data, sig []byte) bool            { return false }
func (fakeIdentity) Agree(other ifc.Identity) ([48]byte, bool) { return [48]byte{}, false }
func (fakeIdentity) HashWithPrivate() [48]byte               { return [48]byte{} }
func (fakeIdentity) Marshal(includePrivate bool) []byte      { return nil }
func (fakeIdentity) String(includePrivate bool) string       { return "" }

func TestManager_SaveRejectsForeignIdentity(t *testing.T) {
	mgr := NewManager(nil)
	var buf bytes.Buffer
	err := mgr.Save(&buf, fakeIdentity{}, true)
	assert.ErrorIs(t, err, ErrMalformedInput)
}
