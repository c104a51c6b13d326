// Package main is the entry point of the application
package main

import (
	"errors"
	"flag"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tecu23/devcontainer-server/internal/requestlog"
	"github.com/tecu23/devcontainer-server/pkg/config"
	"github.com/tecu23/devcontainer-server/pkg/envinfo"
)

// application encapsulates global dependencies.
// Logger carries diagnostics; Console writes the plain stdout lines.
type application struct {
	Logger   *zap.Logger
	Console  *zap.Logger
	Config   *config.Config
	Recorder requestlog.Recorder
	Env      *envinfo.Provider
	Server   *http.Server
	Stdout   io.Writer

	StartTime time.Time

	now  func() time.Time
	exit func(code int)
}

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	port := flag.String("port", "", "server port, overrides PORT")
	flag.Parse()

	// .env is optional, but a broken one is not
	envErr := godotenv.Load()
	if errors.Is(envErr, fs.ErrNotExist) {
		envErr = nil
	}

	cfg, cfgErr := loadConfig(os.LookupEnv, *port)

	// Initialize logger
	logger := initLogger(*debug || (cfgErr == nil && cfg.Debug))
	defer logger.Sync()

	if envErr != nil {
		logger.Fatal("loading env error", zap.Error(envErr))
	}
	if cfgErr != nil {
		logger.Fatal("loading config error", zap.Error(cfgErr))
	}

	console := requestlog.NewConsoleLogger(zapcore.Lock(os.Stdout))
	defer console.Sync()

	app := newApplication(cfg, logger, console, time.Now())

	err := app.serve()
	if err != nil {
		logger.Fatal("error serving", zap.Error(err))
	}
}

// loadConfig resolves the configuration with a non-empty -port flag taking
// the place of PORT, so an invalid PORT does not matter when the flag is set.
func loadConfig(lookup config.LookupFunc, portFlag string) (*config.Config, error) {
	if portFlag != "" {
		lookup = config.Override(lookup, "PORT", portFlag)
	}
	return config.Load(lookup)
}

func newApplication(cfg *config.Config, logger, console *zap.Logger, startTime time.Time) *application {
	return &application{
		Logger:    logger,
		Console:   console,
		Config:    cfg,
		Recorder:  requestlog.NewZapRecorder(console),
		Env:       envinfo.NewProvider(cfg.DevContainer, startTime),
		Stdout:    os.Stdout,
		StartTime: startTime,
		now:       time.Now,
		exit:      os.Exit,
	}
}

func initLogger(debug bool) *zap.Logger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	return logger
}
