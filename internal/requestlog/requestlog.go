// Package requestlog records one line per incoming HTTP request
package requestlog

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TimeFormat is ISO-8601 in UTC with millisecond precision
const TimeFormat = "2006-01-02T15:04:05.000Z"

// RequestIDHeader carries the generated record ID back to the client
const RequestIDHeader = "X-Request-Id"

// Record describes a single request. It is used once and discarded.
type Record struct {
	ID     uuid.UUID
	Time   time.Time
	Method string
	Path   string
}

// Timestamp returns the record time formatted with TimeFormat
func (r Record) Timestamp() string {
	return r.Time.UTC().Format(TimeFormat)
}

// String renders the record as "<timestamp> - <method> <path>"
func (r Record) String() string {
	return r.Timestamp() + " - " + r.Method + " " + r.Path
}

// Recorder receives request records
type Recorder interface {
	Record(rec Record)
}

// NewConsoleLogger returns an info-level logger that writes only the
// message of each entry, one plain line per entry, to ws.
func NewConsoleLogger(ws zapcore.WriteSyncer) *zap.Logger {
	encoderCfg := zapcore.EncoderConfig{
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), ws, zapcore.InfoLevel)
	return zap.New(core)
}

// ZapRecorder writes records through a zap logger
type ZapRecorder struct {
	logger *zap.Logger
}

// NewZapRecorder creates a recorder backed by logger. Pair it with
// NewConsoleLogger to get "<timestamp> - <method> <path>" lines.
func NewZapRecorder(logger *zap.Logger) *ZapRecorder {
	return &ZapRecorder{logger: logger}
}

// Record logs rec at info level
func (z *ZapRecorder) Record(rec Record) {
	z.logger.Info(rec.String())
}

// Discard drops every record
var Discard Recorder = discard{}

type discard struct{}

func (discard) Record(Record) {}

// Capture keeps records in memory
type Capture struct {
	mu      sync.Mutex
	records []Record
}

// Record appends rec
func (c *Capture) Record(rec Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = append(c.records, rec)
}

// Records returns a copy of everything recorded so far
func (c *Capture) Records() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Middleware records every request before passing it on to next.
// It never short-circuits.
func Middleware(rec Recorder, now func() time.Time, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		record := Record{
			ID:     uuid.New(),
			Time:   now(),
			Method: r.Method,
			Path:   r.URL.Path,
		}

		w.Header().Set(RequestIDHeader, record.ID.String())
		rec.Record(record)

		next.ServeHTTP(w, r)
	})
}
