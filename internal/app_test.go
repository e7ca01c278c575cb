package internal

import (
	"context"
	"log/slog"
	"testing"

	"catalog-service/internal/adapters/memory"
	"catalog-service/internal/configs"
	"catalog-service/internal/contextkeys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("verbose"))
}

func TestNewListingStorage(t *testing.T) {
	logger := contextkeys.LoggerFromContext(context.Background())

	storage, err := newListingStorage(context.Background(), &configs.AppConfig{
		Storage: configs.StorageConfig{Driver: configs.StorageMemory},
	}, logger)
	require.NoError(t, err)
	assert.IsType(t, &memory.ListingStorageAdapter{}, storage)

	_, err = newListingStorage(context.Background(), &configs.AppConfig{
		Storage: configs.StorageConfig{Driver: "redis"},
	}, logger)
	assert.Error(t, err)
}
