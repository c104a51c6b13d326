// Package main is the entry point of the application
package main

import (
	"net/http"
)

type healthResponse struct {
	Status       string `json:"status"`
	DevContainer bool   `json:"devContainer"`
}

// handleHealth handles the GET /health endpoint.
// devContainer is always true, independent of the configured flag.
func (app *application) handleHealth(w http.ResponseWriter, _ *http.Request) {
	app.writeJSON(w, http.StatusOK, healthResponse{
		Status:       "healthy",
		DevContainer: true,
	})
}
