package main

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/tecu23/devcontainer-server/internal/requestlog"
	"github.com/tecu23/devcontainer-server/pkg/envinfo"
)

const greeting = "🚀 Hello from DigitalOcean Dev Container!"

type rootResponse struct {
	Message     string           `json:"message"`
	Environment envinfo.Snapshot `json:"environment"`
	Timestamp   string           `json:"timestamp"`
}

// handleRoot handles the GET / endpoint
func (app *application) handleRoot(w http.ResponseWriter, _ *http.Request) {
	app.writeJSON(w, http.StatusOK, rootResponse{
		Message:     greeting,
		Environment: app.Env.Snapshot(),
		Timestamp:   app.now().UTC().Format(requestlog.TimeFormat),
	})
}

func (app *application) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		app.Logger.Error("Failed to encode response", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
