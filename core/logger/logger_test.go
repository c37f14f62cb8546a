package logger_test

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"inventory-sync/core/logger"
	"inventory-sync/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		enabled zapcore.Level
		wantErr bool
	}{
		{"Debug console", logger.Config{Level: "debug", Format: "console"}, zapcore.DebugLevel, false},
		{"Info json", logger.Config{Level: "info", Format: "json"}, zapcore.InfoLevel, false},
		{"Warn", logger.Config{Level: "warn", Format: "json"}, zapcore.WarnLevel, false},
		{"Default level", logger.Config{Format: "json"}, zapcore.InfoLevel, false},
		{"Invalid level", logger.Config{Level: "loud"}, zapcore.InfoLevel, true},
		{"Invalid format", logger.Config{Level: "info", Format: "xml"}, zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.enabled))
			assert.False(t, l.Core().Enabled(tt.enabled-1))
		})
	}
}

func TestNew_Output(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sync.log")
	l, err := logger.New(&logger.Config{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	l.Info("Inventory plan ready", zap.Int("create", 2))
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"Inventory plan ready"`)
	assert.Contains(t, string(data), `"level":"info"`)
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals(rayid.LocalsKey, "abc-123")
		logger.WithRayID(base, c).Info("handled")
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc-123", logs.All()[0].ContextMap()["ray_id"])

	t.Run("NoRayID", func(t *testing.T) {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			assert.Same(t, base, logger.WithRayID(base, c))
			return c.SendStatus(fiber.StatusNoContent)
		})
		_, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
	})
}
