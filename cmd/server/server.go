package main

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// serve binds the configured port and serves until the process exits
func (app *application) serve() error {
	ln, err := net.Listen("tcp", app.Config.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", app.Config.Addr(), err)
	}

	app.Server = app.newServer()
	app.watchSignals()

	return app.serveOn(ln)
}

// watchSignals routes SIGTERM to awaitTermination. The returned func stops
// delivery to the watcher.
func (app *application) watchSignals() (stop func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM)
	go app.awaitTermination(quit)

	return func() { signal.Stop(quit) }
}

func (app *application) newServer() *http.Server {
	return &http.Server{
		Addr:         app.Config.Addr(),
		Handler:      app.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     zap.NewStdLog(app.Logger),
	}
}

func (app *application) serveOn(ln net.Listener) error {
	port := app.Config.Port
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = fmt.Sprint(addr.Port)
	}

	app.Logger.Debug("Starting server", zap.String("address", ln.Addr().String()))
	app.printBanner(app.Stdout, port)

	if err := app.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// awaitTermination exits the process as soon as a signal arrives.
// In-flight requests are not drained.
func (app *application) awaitTermination(quit <-chan os.Signal) {
	<-quit
	app.Console.Info("SIGTERM received. Shutting down gracefully...")
	_ = app.Console.Sync()

	app.exit(0)
}
