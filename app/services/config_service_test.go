package services

import (
	"context"
	"testing"

	"points-ledger/app/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaultsToEmptyObject(t *testing.T) {
	svc := NewConfigService(kv.NewMemoryStore())

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "{}", got)
}

func TestConfigRoundtrip(t *testing.T) {
	svc := NewConfigService(kv.NewMemoryStore())
	ctx := context.Background()

	blob := `{"announcement":"maintenance tonight","query_enabled":true}`
	require.NoError(t, svc.Set(ctx, []byte(blob)))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, blob, got)
}

func TestConfigRejectsInvalidJSON(t *testing.T) {
	svc := NewConfigService(kv.NewMemoryStore())

	err := svc.Set(context.Background(), []byte("{broken"))
	assert.ErrorIs(t, err, ErrNotJSON)
}
