package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"points-ledger/app/dto"
	"points-ledger/app/services"
	"points-ledger/app/upload"
	"points-ledger/global"
)

type AdminController struct {
	Points   *services.PointsService
	MaxBytes int64
}

func NewAdminController(points *services.PointsService, maxBytes int64) *AdminController {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &AdminController{Points: points, MaxBytes: maxBytes}
}

func (c *AdminController) ListPoints(w http.ResponseWriter, r *http.Request) {
	rows, err := c.Points.Leaderboard()
	if err != nil {
		global.Logger.Error().Err(err).Msg("points listing failed")
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, dto.ListPointsResponse{Success: true, Data: rows})
}

func (c *AdminController) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(c.MaxBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	rows, err := upload.Parse(header.Filename, file)
	if err != nil {
		var perr *upload.ParseError
		if errors.As(err, &perr) {
			writeError(w, http.StatusBadRequest, perr.Error())
			return
		}
		global.Logger.Error().Err(err).Str("filename", header.Filename).Msg("upload read failed")
		writeInternalError(w)
		return
	}

	n, err := c.Points.Import(rows)
	if err != nil {
		global.Logger.Error().Err(err).Msg("points import failed")
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, dto.UploadResponse{
		Success:  true,
		Message:  fmt.Sprintf("imported %d of %d rows", n, len(rows)),
		Imported: n,
	})
}
