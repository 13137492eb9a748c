package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"points-ledger/app/kv"
	"points-ledger/app/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGate(t *testing.T) (*Auth, *session.Manager) {
	t.Helper()
	m := session.NewManager(kv.NewMemoryStore())
	return &Auth{Sessions: m}, m
}

func login(t *testing.T, m *session.Manager, role string) string {
	t.Helper()
	token, err := m.Create(context.Background(), session.Session{UserID: 1, Username: "u", Role: role})
	require.NoError(t, err)
	return token
}

func get(handler http.Handler, token string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		r.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	return rec
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	gate, _ := newGate(t)
	h := gate.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := get(h, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"authentication required"}`, rec.Body.String())
}

func TestRequireAuthRejectsUnknownToken(t *testing.T) {
	gate, _ := newGate(t)
	h := gate.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := get(h, "bogus")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthPassesSessionToHandler(t *testing.T) {
	gate, m := newGate(t)
	token := login(t, m, "user")

	var got *session.Session
	h := gate.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetSession(r.Context())
	}))

	rec := get(h, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "user", got.Role)
}

func TestRequireAdminDistinguishes401And403(t *testing.T) {
	gate, m := newGate(t)
	h := gate.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// no session at all
	rec := get(h, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// authenticated but not admin
	userToken := login(t, m, "user")
	rec = get(h, userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// admin passes
	adminToken := login(t, m, "admin")
	rec = get(h, adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetSessionWithoutGate(t *testing.T) {
	assert.Nil(t, GetSession(context.Background()))
}
