package dto

type QRGenerateRequest struct {
	URL    string `json:"url"`
	Expiry int64  `json:"expiry"`
}

type QRGenerateResponse struct {
	Success bool   `json:"success"`
	QRID    string `json:"qrId"`
	QRData  string `json:"qrData"`
}
