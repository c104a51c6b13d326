// Package main is the entry point of the application
package main

import (
	"net/http"

	"go.uber.org/zap"
)

// getOnly answers anything but GET and HEAD with a 404, the same as an unknown path
func (app *application) getOnly(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			app.Logger.Debug("method not routed", zap.String("method", r.Method), zap.String("path", r.URL.Path))
			http.NotFound(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
