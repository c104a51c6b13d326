package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tecu23/devcontainer-server/internal/requestlog"
	"github.com/tecu23/devcontainer-server/pkg/config"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

var testNow = time.Date(2024, 5, 1, 12, 30, 45, 678000000, time.UTC)

// newTestApp builds an application with a capturing recorder and a fixed clock
func newTestApp(t *testing.T, cfg *config.Config) (*application, *requestlog.Capture) {
	t.Helper()

	app := newApplication(cfg, zap.NewNop(), zap.NewNop(), testNow.Add(-42*time.Second))
	capture := &requestlog.Capture{}
	app.Recorder = capture
	app.Stdout = &bytes.Buffer{}
	app.now = func() time.Time { return testNow }
	app.Env.Now = app.now
	app.Env.Hostname = func() (string, error) { return "devbox", nil }
	app.exit = func(code int) { t.Fatalf("unexpected exit(%d)", code) }

	return app, capture
}

func TestLoadConfigPortFlagWins(t *testing.T) {
	env := func(key string) (string, bool) {
		if key == "PORT" {
			return "not-a-port", true
		}
		return "", false
	}

	_, err := loadConfig(env, "")
	require.ErrorIs(t, err, config.ErrInvalidPort)

	cfg, err := loadConfig(env, "4000")
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.Port)

	_, err = loadConfig(env, "70000")
	assert.ErrorIs(t, err, config.ErrInvalidPort)
}

func TestRequestLinesOnConsole(t *testing.T) {
	var buf bytes.Buffer
	console := requestlog.NewConsoleLogger(zapcore.AddSync(&buf))

	app := newApplication(&config.Config{Port: "3000"}, zap.NewNop(), console, time.Now())
	app.now = func() time.Time { return testNow }

	h := app.routes()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	assert.Equal(t,
		"2024-05-01T12:30:45.678Z - GET /health\n"+
			"2024-05-01T12:30:45.678Z - GET /nonexistent\n",
		buf.String())
}
