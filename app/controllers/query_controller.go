package controllers

import (
	"net/http"

	"points-ledger/app/dto"
	"points-ledger/app/services"
	"points-ledger/global"
)

type QueryController struct {
	Points *services.PointsService
}

func NewQueryController(points *services.PointsService) *QueryController {
	return &QueryController{Points: points}
}

// Query is deliberately public: anyone holding a user id may look up its
// points. That is a product decision, not a missing gate.
func (c *QueryController) Query(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	userID := r.PostFormValue("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	rec, err := c.Points.Query(userID)
	if err != nil {
		global.Logger.Error().Err(err).Str("user_id", userID).Msg("points query failed")
		writeInternalError(w)
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "no points record for this user")
		return
	}
	writeJSON(w, http.StatusOK, dto.QueryResponse{Success: true, Data: rec})
}
