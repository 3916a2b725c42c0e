package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"secretsanta/internal/app"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("SECRETSANTA_PASSPHRASE", "Correct-Horse-1!")
	t.Setenv("SECRETSANTA_NOTIFY_URL", "http://127.0.0.1:8080")
	t.Setenv("SECRETSANTA_HTTP_TIMEOUT", "2s")

	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "Correct-Horse-1!", cfg.Passphrase)
	require.Equal(t, "http://127.0.0.1:8080", cfg.NotifyURL)
	require.Equal(t, 2*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfig_BadDuration(t *testing.T) {
	t.Setenv("SECRETSANTA_HTTP_TIMEOUT", "soon")

	_, err := app.LoadConfig()
	require.ErrorContains(t, err, "parse env:")
}

func TestNewWire(t *testing.T) {
	w, err := app.NewWire(app.Config{LogLevel: "info", LogFormat: "text"})
	require.NoError(t, err)
	require.NotNil(t, w.Draws)
	require.NotNil(t, w.Assigner)
	require.Nil(t, w.Notifier)

	w, err = app.NewWire(app.Config{NotifyURL: "http://127.0.0.1:1", Seed: "office"})
	require.NoError(t, err)
	require.NotNil(t, w.Notifier)

	_, err = app.NewWire(app.Config{LogLevel: "shouty"})
	require.Error(t, err)
}
