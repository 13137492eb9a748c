package controllers

import (
	"encoding/json"
	"net/http"

	"points-ledger/app/dto"
	"points-ledger/app/services"
	"points-ledger/global"
)

type QRController struct {
	QR *services.QRService
}

func NewQRController(qr *services.QRService) *QRController {
	return &QRController{QR: qr}
}

func (c *QRController) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.QRGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	id, data, err := c.QR.Generate(r.Context(), req.URL, req.Expiry)
	if err != nil {
		global.Logger.Error().Err(err).Msg("qr generate failed")
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, dto.QRGenerateResponse{Success: true, QRID: id, QRData: data})
}
