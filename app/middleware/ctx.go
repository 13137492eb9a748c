package middleware

import (
	"context"

	"points-ledger/app/session"
)

// GetSession returns the session the gate attached, or nil on routes that
// allow anonymous access.
func GetSession(ctx context.Context) *session.Session {
	if v := ctx.Value(sessionKey); v != nil {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return nil
}
