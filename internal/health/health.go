// Package health probes the backend once at startup so the home screen can
// say whether the server is up.
package health

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"toolboard/internal/logger"
)

// DownMessage is the notification shown when the probe fails.
const DownMessage = "Server didn't respond."

// Status of the backend as last seen by a Prober.
type Status int

const (
	StatusUnknown Status = iota
	StatusUp
	StatusDown
)

func (s Status) String() string {
	switch s {
	case StatusUp:
		return "up"
	case StatusDown:
		return "down"
	default:
		return "unknown"
	}
}

// Pinger is the part of the request client the probe needs.
type Pinger interface {
	Ping(ctx context.Context) (json.RawMessage, error)
}

// Result of one probe.
type Result struct {
	Status  Status
	Message string
	Latency time.Duration
	Err     error
}

// Prober issues GET / against the backend. A failed probe is reported to the
// caller; it never blocks the tools, which work or fail on their own.
type Prober struct {
	pinger Pinger

	downLogged bool // only log an unreachable backend once
}

func NewProber(p Pinger) *Prober {
	return &Prober{pinger: p}
}

// Probe pings the backend and logs the response body.
func (p *Prober) Probe(ctx context.Context) Result {
	log := logger.FromContext(ctx)
	start := time.Now()

	body, err := p.pinger.Ping(ctx)
	latency := time.Since(start)
	if err != nil {
		if !p.downLogged {
			log.Warn("backend probe failed", zap.Duration("latency", latency), zap.Error(err))
			p.downLogged = true
		}
		return Result{Status: StatusDown, Message: DownMessage, Latency: latency, Err: err}
	}
	p.downLogged = false

	var payload struct {
		Message string `json:"message"`
	}
	// The body only has to be JSON; an unexpected shape still counts as up.
	_ = json.Unmarshal(body, &payload)

	log.Info("backend probe", zap.Duration("latency", latency), zap.ByteString("body", body))
	return Result{Status: StatusUp, Message: payload.Message, Latency: latency}
}
