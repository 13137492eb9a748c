// Package session owns the whole cookie/token lifecycle. Nothing else in
// the codebase parses the session cookie or touches session records.
package session

import "time"

const (
	CookieName = "session"

	// DefaultTTL bounds a session twice: the KV store expires the entry,
	// and Manager.Resolve independently rejects records whose login time
	// is older than this. The effective lifetime is the minimum of both.
	DefaultTTL = 24 * time.Hour

	keyPrefix = "session:"
)

// Session is written once at login and never mutated; it disappears at
// logout or when the TTL elapses. JSON field names match the records the
// legacy system stored, so existing entries remain resolvable.
type Session struct {
	UserID    uint   `json:"userId"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	LoginTime int64  `json:"loginTime"` // epoch millis
}

func (s *Session) IsAdmin() bool { return s.Role == "admin" }
