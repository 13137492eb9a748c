package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"points-ledger/app/kv"

	"github.com/google/uuid"
)

const defaultQRExpiry = 86400 // seconds

// QRRenderer produces an embeddable image for a query URL. Real rendering
// is delegated; the default emits a plain SVG data URL placeholder.
type QRRenderer func(target string) string

func PlaceholderRenderer(target string) string {
	return fmt.Sprintf(`data:image/svg+xml,<svg xmlns="http://www.w3.org/2000/svg" width="200" height="200"><text x="100" y="100" text-anchor="middle">QR: %s</text></svg>`, url.QueryEscape(target))
}

type qrRecord struct {
	URL     string `json:"url"`
	Expiry  int64  `json:"expiry"`
	Created int64  `json:"created"`
}

type QRService struct {
	store  kv.Store
	render QRRenderer
	now    func() time.Time
}

func NewQRService(store kv.Store, render QRRenderer) *QRService {
	if render == nil {
		render = PlaceholderRenderer
	}
	return &QRService{store: store, render: render, now: time.Now}
}

// Generate stores QR metadata under a fresh id with the requested expiry
// and returns the id plus rendered image data.
func (s *QRService) Generate(ctx context.Context, target string, expirySeconds int64) (id, data string, err error) {
	if expirySeconds <= 0 {
		expirySeconds = defaultQRExpiry
	}
	id = uuid.NewString()
	raw, err := json.Marshal(qrRecord{URL: target, Expiry: expirySeconds, Created: s.now().UnixMilli()})
	if err != nil {
		return "", "", err
	}
	ttl := time.Duration(expirySeconds) * time.Second
	if err := s.store.Set(ctx, "qr_"+id, string(raw), ttl); err != nil {
		return "", "", err
	}
	return id, s.render(target), nil
}
