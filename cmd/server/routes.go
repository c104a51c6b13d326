// Package main is the entry point of the application
package main

import (
	"net/http"

	"github.com/tecu23/devcontainer-server/internal/requestlog"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/{$}", app.getOnly(app.handleRoot))
	mux.HandleFunc("/health", app.getOnly(app.handleHealth))

	return requestlog.Middleware(app.Recorder, app.now, mux)
}
