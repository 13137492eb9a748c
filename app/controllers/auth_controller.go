package controllers

import (
	"errors"
	"net/http"

	"points-ledger/app/dto"
	"points-ledger/app/models"
	"points-ledger/app/services"
	"points-ledger/app/session"
	"points-ledger/global"
)

const (
	adminLanding = "/admin/points.html"
	userLanding  = "/query.html"
	loginPage    = "/login.html"
)

type AuthController struct {
	Users    *services.UserService
	Sessions *session.Manager
}

func NewAuthController(users *services.UserService, sessions *session.Manager) *AuthController {
	return &AuthController{Users: users, Sessions: sessions}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	u, err := c.Users.ValidateCredentials(username, password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		// one message for every failure mode, so the response does not
		// reveal whether the username exists
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}
	if err != nil {
		global.Logger.Error().Err(err).Msg("login: credential check failed")
		writeInternalError(w)
		return
	}

	token, err := c.Sessions.Create(r.Context(), session.Session{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	})
	if err != nil {
		global.Logger.Error().Err(err).Msg("login: session create failed")
		writeInternalError(w)
		return
	}
	c.Sessions.SetCookie(w, token)

	redirect := userLanding
	if u.Role == models.RoleAdmin {
		redirect = adminLanding
	}
	writeJSON(w, http.StatusOK, dto.LoginResponse{Success: true, Redirect: redirect})
}

// Logout always clears the cookie, even when no session existed.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	token := c.Sessions.TokenFromRequest(r)
	session.ClearCookie(w)
	if err := c.Sessions.Destroy(r.Context(), token); err != nil {
		global.Logger.Error().Err(err).Msg("logout: session destroy failed")
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, dto.BasicResponse{Success: true, Message: "logged out"})
}

func (c *AuthController) Check(w http.ResponseWriter, r *http.Request) {
	s, err := c.Sessions.Resolve(r.Context(), r)
	if err != nil {
		global.Logger.Error().Err(err).Msg("auth check: session resolve failed")
		writeJSON(w, http.StatusInternalServerError, dto.CheckResponse{Authenticated: false, Error: "internal error"})
		return
	}
	if s == nil {
		writeJSON(w, http.StatusUnauthorized, dto.CheckResponse{Authenticated: false, Error: "not authenticated"})
		return
	}
	writeJSON(w, http.StatusOK, dto.CheckResponse{
		Authenticated: true,
		User:          &dto.SessionUser{ID: s.UserID, Username: s.Username, Role: s.Role},
	})
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	email := r.PostFormValue("email")
	if username == "" || password == "" || email == "" {
		writeError(w, http.StatusBadRequest, "username, password and email are required")
		return
	}

	if _, err := c.Users.Register(username, password, email); err != nil {
		if errors.Is(err, services.ErrConflict) {
			writeError(w, http.StatusConflict, "username or email already taken")
			return
		}
		global.Logger.Error().Err(err).Msg("register failed")
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, dto.RegisterResponse{Success: true, Message: "registered", Redirect: loginPage})
}
