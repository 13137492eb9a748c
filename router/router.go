package router

import (
	"net/http"

	"points-ledger/app/controllers"
	"points-ledger/app/middleware"
)

// NewRouter wires every route through exactly one gate level: public,
// RequireAuth or RequireAdmin. Handlers never re-check authorization.
func NewRouter(
	authCtrl *controllers.AuthController,
	queryCtrl *controllers.QueryController,
	adminCtrl *controllers.AdminController,
	cfgCtrl *controllers.ConfigController,
	qrCtrl *controllers.QRController,
	mw *middleware.Auth,
) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("POST /api/auth/login", authCtrl.Login)
	mux.HandleFunc("POST /api/auth/logout", authCtrl.Logout)
	mux.HandleFunc("GET /api/auth/check", authCtrl.Check)
	mux.HandleFunc("POST /api/auth/register", authCtrl.Register)
	mux.HandleFunc("POST /api/query", queryCtrl.Query)
	mux.HandleFunc("GET /api/config/system", cfgCtrl.Get)

	// admin only
	mux.Handle("GET /api/admin/points", mw.RequireAdmin(http.HandlerFunc(adminCtrl.ListPoints)))
	mux.Handle("POST /api/admin/upload", mw.RequireAdmin(http.HandlerFunc(adminCtrl.Upload)))
	mux.Handle("POST /api/config/system", mw.RequireAdmin(http.HandlerFunc(cfgCtrl.Set)))
	mux.Handle("POST /api/qr/generate", mw.RequireAdmin(http.HandlerFunc(qrCtrl.Generate)))

	return mux
}
