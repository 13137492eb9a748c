package services

import (
	"context"
	"encoding/json"
	"errors"

	"points-ledger/app/kv"
)

const systemConfigKey = "system_config"

// ErrNotJSON rejects config payloads that are not valid JSON. The blob is
// otherwise opaque to the server.
var ErrNotJSON = errors.New("config payload is not valid json")

type ConfigService struct {
	store kv.Store
}

func NewConfigService(store kv.Store) *ConfigService {
	return &ConfigService{store: store}
}

// Get returns the stored blob, or "{}" when nothing was ever saved.
func (s *ConfigService) Get(ctx context.Context) (string, error) {
	raw, err := s.store.Get(ctx, systemConfigKey)
	if errors.Is(err, kv.ErrNotFound) {
		return "{}", nil
	}
	if err != nil {
		return "", err
	}
	return raw, nil
}

func (s *ConfigService) Set(ctx context.Context, raw []byte) error {
	if !json.Valid(raw) {
		return ErrNotJSON
	}
	return s.store.Set(ctx, systemConfigKey, string(raw), 0)
}
