package controllers

import (
	"errors"
	"io"
	"net/http"

	"points-ledger/app/dto"
	"points-ledger/app/services"
	"points-ledger/global"
)

type ConfigController struct {
	Config *services.ConfigService
}

func NewConfigController(cfg *services.ConfigService) *ConfigController {
	return &ConfigController{Config: cfg}
}

// Get serves the stored blob verbatim. Reading is public; only writes are
// admin-gated.
func (c *ConfigController) Get(w http.ResponseWriter, r *http.Request) {
	raw, err := c.Config.Get(r.Context())
	if err != nil {
		global.Logger.Error().Err(err).Msg("config read failed")
		writeInternalError(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(raw))
}

func (c *ConfigController) Set(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "cannot read request body")
		return
	}
	if err := c.Config.Set(r.Context(), raw); err != nil {
		if errors.Is(err, services.ErrNotJSON) {
			writeError(w, http.StatusBadRequest, "config must be valid json")
			return
		}
		global.Logger.Error().Err(err).Msg("config write failed")
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, dto.BasicResponse{Success: true})
}
