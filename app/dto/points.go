package dto

import "points-ledger/app/models"

type QueryResponse struct {
	Success bool                 `json:"success"`
	Data    *models.PointsRecord `json:"data"`
}

type ListPointsResponse struct {
	Success bool                  `json:"success"`
	Data    []models.PointsRecord `json:"data"`
}

type UploadResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Imported int    `json:"imported"`
}
