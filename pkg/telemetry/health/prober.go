package health

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ollama-bridge/pkg/telemetry/metrics"

	"github.com/robfig/cron/v3"
)

// ScheduleOff disables the prober.
const ScheduleOff = "off"

// Pinger checks backend reachability. *ollama.Client implements it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Status is the result of the most recent probe.
type Status struct {
	Healthy   bool
	CheckedAt time.Time
	Duration  time.Duration
	Err       error
}

// Prober pings the backend on a schedule.
type Prober struct {
	pinger   Pinger
	schedule string
	metrics  *metrics.Collector
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
	last    *Status
}

// NewProber creates a prober. collector may be nil.
func NewProber(pinger Pinger, schedule string, collector *metrics.Collector) *Prober {
	return &Prober{
		pinger:   pinger,
		schedule: schedule,
		metrics:  collector,
		cron:     cron.New(),
		logger:   slog.Default().With("component", "health.prober"),
	}
}

// Start probes once right away, then on every tick of the schedule until
// ctx is cancelled or Stop is called. An empty or "off" schedule does
// nothing.
func (p *Prober) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.schedule == "" || p.schedule == ScheduleOff {
		p.logger.Info("backend probe disabled")
		return nil
	}
	if p.running {
		return nil
	}

	if _, err := cron.ParseStandard(p.schedule); err != nil {
		return fmt.Errorf("invalid probe schedule %q: %w", p.schedule, err)
	}

	// Each run gets its own scheduler so a restart after Stop holds one entry.
	c := cron.New()
	if _, err := c.AddFunc(p.schedule, func() {
		p.Probe(ctx)
	}); err != nil {
		return fmt.Errorf("failed to schedule backend probe: %w", err)
	}

	c.Start()
	p.cron = c
	p.running = true

	p.logger.Info("backend probe started", "schedule", p.schedule)

	go p.Probe(ctx)

	go func() {
		<-ctx.Done()
		p.stop(c)
	}()

	return nil
}

// Probe pings the backend once, records the result and logs a transition
// between up and down.
func (p *Prober) Probe(ctx context.Context) Status {
	start := time.Now()
	err := p.pinger.Ping(ctx)
	status := Status{
		Healthy:   err == nil,
		CheckedAt: start,
		Duration:  time.Since(start),
		Err:       err,
	}

	p.metrics.RecordBackendProbe(status.Healthy, status.Duration)

	p.mu.Lock()
	previous := p.last
	p.last = &status
	p.mu.Unlock()

	switch {
	case previous == nil && status.Healthy:
		p.logger.Info("ollama backend reachable")
	case previous == nil:
		p.logger.Warn("ollama backend unreachable", "error", err)
	case previous.Healthy && !status.Healthy:
		p.logger.Warn("ollama backend went down", "error", err)
	case !previous.Healthy && status.Healthy:
		p.logger.Info("ollama backend recovered", "down_since", previous.CheckedAt)
	default:
		p.logger.Debug("backend probe", "healthy", status.Healthy, "duration_ms", status.Duration.Milliseconds())
	}

	return status
}

// Stop stops the schedule and waits for a running probe to finish.
func (p *Prober) Stop() {
	p.stop(nil)
}

// stop halts the active scheduler. A non-nil only limits it to that
// scheduler, so a cancelled context from an earlier run cannot stop a later one.
func (p *Prober) stop(only *cron.Cron) {
	p.mu.Lock()
	if !p.running || (only != nil && p.cron != only) {
		p.mu.Unlock()
		return
	}
	p.running = false
	c := p.cron
	p.mu.Unlock()

	<-c.Stop().Done()
	p.logger.Info("backend probe stopped")
}

// IsRunning returns true if the schedule is active.
func (p *Prober) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.running
}

// Last returns the most recent probe result, or nil before the first probe.
func (p *Prober) Last() *Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.last == nil {
		return nil
	}
	status := *p.last
	return &status
}

// NextRun returns the next scheduled probe time, or nil when not scheduled.
func (p *Prober) NextRun() *time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()

	entries := p.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	return &next
}
