package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"points-ledger/app/kv"
)

// Manager issues, resolves and revokes session tokens. The randomness
// source and clock are injected so tests can pin them; production code
// uses crypto/rand and time.Now.
type Manager struct {
	store kv.Store
	rand  io.Reader
	ttl   time.Duration
	now   func() time.Time
}

func NewManager(store kv.Store) *Manager {
	return &Manager{store: store, rand: rand.Reader, ttl: DefaultTTL, now: time.Now}
}

func (m *Manager) WithTTL(ttl time.Duration) *Manager {
	if ttl > 0 {
		m.ttl = ttl
	}
	return m
}

func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

func (m *Manager) WithRand(r io.Reader) *Manager {
	m.rand = r
	return m
}

// Resolve extracts the token from the request cookie and loads the session
// record. It returns (nil, nil) for anonymous requests: missing cookie,
// unknown or store-expired token, or a record older than the TTL. Only a
// store failure produces an error.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (*Session, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return nil, nil
	}
	return m.Lookup(ctx, c.Value)
}

// Lookup resolves a raw token. Split out of Resolve for callers that do
// not hold an *http.Request (tests, the logout path).
func (m *Manager) Lookup(ctx context.Context, token string) (*Session, error) {
	raw, err := m.store.Get(ctx, keyPrefix+token)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session lookup: %w", err)
	}
	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}
	// Application-level staleness check, independent of the store TTL.
	if s.LoginTime > 0 && m.now().UnixMilli()-s.LoginTime > m.ttl.Milliseconds() {
		_ = m.store.Delete(ctx, keyPrefix+token)
		return nil, nil
	}
	return &s, nil
}

// Create mints an opaque 256-bit token and stores the session under it.
func (m *Manager) Create(ctx context.Context, s Session) (string, error) {
	buf := make([]byte, 32)
	if _, err := io.ReadFull(m.rand, buf); err != nil {
		return "", fmt.Errorf("session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if s.LoginTime == 0 {
		s.LoginTime = m.now().UnixMilli()
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("session encode: %w", err)
	}
	if err := m.store.Set(ctx, keyPrefix+token, string(raw), m.ttl); err != nil {
		return "", fmt.Errorf("session store: %w", err)
	}
	return token, nil
}

// Destroy revokes a token. Destroying an unknown token succeeds.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, keyPrefix+token)
}

// TokenFromRequest returns the raw cookie token, or "" when absent.
func (m *Manager) TokenFromRequest(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func (m *Manager) TTL() time.Duration { return m.ttl }
