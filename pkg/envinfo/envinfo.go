// Package envinfo builds the environment snapshot reported by the root endpoint
package envinfo

import (
	"fmt"
	"os"
	"runtime"
	"time"
)

// Snapshot is a read-only view of the running environment
type Snapshot struct {
	IsDevContainer bool   `json:"isDevContainer"`
	NodeVersion    string `json:"nodeVersion"` // runtime version, key kept for client compatibility
	Platform       string `json:"platform"`
	Hostname       string `json:"hostname"`
	Uptime         string `json:"uptime"`
}

// Provider computes snapshots from injected inputs
type Provider struct {
	DevContainer bool
	StartTime    time.Time

	Now      func() time.Time
	Hostname func() (string, error)
}

// NewProvider creates a provider for a process started at startTime
func NewProvider(devContainer bool, startTime time.Time) *Provider {
	return &Provider{
		DevContainer: devContainer,
		StartTime:    startTime,
		Now:          time.Now,
		Hostname:     os.Hostname,
	}
}

// Snapshot computes a fresh snapshot. Nothing is cached between calls.
func (p *Provider) Snapshot() Snapshot {
	hostname, err := p.Hostname()
	if err != nil {
		hostname = ""
	}

	return Snapshot{
		IsDevContainer: p.DevContainer,
		NodeVersion:    runtime.Version(),
		Platform:       runtime.GOOS,
		Hostname:       hostname,
		Uptime:         FormatUptime(p.Uptime()),
	}
}

// Uptime returns the time elapsed since the provider's start time
func (p *Provider) Uptime() time.Duration {
	d := p.Now().Sub(p.StartTime)
	if d < 0 {
		return 0
	}
	return d
}

// FormatUptime renders d as whole seconds, e.g. "42 seconds"
func FormatUptime(d time.Duration) string {
	return fmt.Sprintf("%d seconds", int64(d/time.Second))
}
