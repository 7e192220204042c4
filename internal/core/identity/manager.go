package identity

import (
	"fmt"
	"io"
	"sync"

	"github.com/dep2p/go-identity/internal/metrics"
	ifc "github.com/dep2p/go-identity/pkg/interfaces/identity"
)

// Manager implements pkg/interfaces/identity.Manager. It performs no file
// I/O itself — Load/Save operate against whatever io.Reader/io.Writer the
// caller provides — and keeps a small in-memory cache, keyed by
// HashWithPrivate, of the identities holding private material that it has
// created, parsed or unmarshalled. Public-only identities are not cached,
// and no Manager method reads from the cache.
type Manager struct {
	recorder *metrics.PoWRecorder

	mu    sync.RWMutex
	cache map[[48]byte]*Identity
}

// NewManager constructs a Manager. rec may be nil, in which case no
// generation metrics are recorded.
func NewManager(rec *metrics.PoWRecorder) *Manager {
	return &Manager{recorder: rec, cache: make(map[[48]byte]*Identity)}
}

// Create mints a new identity of type t, recording PoW attempt/duration
// metrics if the Manager was constructed with a recorder.
func (m *Manager) Create(t ifc.Type) (ifc.Identity, error) {
	id, err := GenerateWithMetrics(t, m.recorder)
	if err != nil {
		return nil, err
	}
	m.store(id)
	return id, nil
}

// Parse decodes the text form produced by (*Identity).String.
func (m *Manager) Parse(s string) (ifc.Identity, error) {
	id, err := ParseString(s)
	if err != nil {
		return nil, err
	}
	m.store(id)
	return id, nil
}

// Unmarshal decodes the binary form produced by (*Identity).Marshal.
func (m *Manager) Unmarshal(data []byte) (ifc.Identity, error) {
	id, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	m.store(id)
	return id, nil
}

// Load reads a single line of text form from r and parses it.
func (m *Manager) Load(r io.Reader) (ifc.Identity, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read identity: %w", err)
	}
	return m.Parse(stripTrailingNewline(string(data)))
}

// Save writes id's text form (with a trailing newline) to w.
func (m *Manager) Save(w io.Writer, id ifc.Identity, includePrivate bool) error {
	impl, ok := id.(*Identity)
	if !ok {
		return fmt.Errorf("%w: identity not produced by this package", ErrMalformedInput)
	}
	_, err := fmt.Fprintln(w, impl.String(includePrivate))
	return err
}

func (m *Manager) store(id *Identity) {
	if !id.hasPrivate {
		return
	}
	key := id.HashWithPrivate()
	m.mu.Lock()
	m.cache[key] = id
	m.mu.Unlock()
}

func stripTrailingNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
