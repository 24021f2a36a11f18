package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/munchbay/vendor-gateway/pkg/logger"
	"github.com/munchbay/vendor-gateway/pkg/metrics"
)

const monitorName = "order_activity"

// Poller drives the monitor on a fixed cadence. A cycle that fails is logged
// and counted, never propagated; the ticker keeps firing until the context
// is cancelled.
type Poller struct {
	monitor      *Monitor
	logg         *logger.Logger
	metrics      *metrics.PollCycleMetrics
	interval     time.Duration
	cycleTimeout time.Duration
}

// PollerParams configure the polling loop.
type PollerParams struct {
	Monitor      *Monitor
	Logger       *logger.Logger
	Metrics      *metrics.PollCycleMetrics
	Interval     time.Duration
	CycleTimeout time.Duration
}

// NewPoller validates wiring for the polling loop.
func NewPoller(params PollerParams) (*Poller, error) {
	if params.Monitor == nil {
		return nil, fmt.Errorf("monitor required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Metrics == nil {
		return nil, fmt.Errorf("metrics required")
	}
	if params.Interval <= 0 {
		return nil, fmt.Errorf("interval must be positive")
	}
	if params.CycleTimeout <= 0 {
		return nil, fmt.Errorf("cycle timeout must be positive")
	}
	return &Poller{
		monitor:      params.Monitor,
		logg:         params.Logger,
		metrics:      params.Metrics,
		interval:     params.Interval,
		cycleTimeout: params.CycleTimeout,
	}, nil
}

// Run polls immediately, then on every tick until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	ctx = p.logg.WithField(ctx, "monitor", monitorName)
	p.logg.Info(p.logg.WithField(ctx, "interval", p.interval.String()), "order monitor started")

	p.runCycle(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logg.Info(ctx, "order monitor stopped")
			return
		case <-ticker.C:
			p.runCycle(ctx)
		}
	}
}

// runCycle bounds one poll with its own timeout so a stalled upstream call
// cannot bleed into the next tick.
func (p *Poller) runCycle(ctx context.Context) {
	cycleCtx, cancel := context.WithTimeout(ctx, p.cycleTimeout)
	defer cancel()

	start := time.Now()
	err := p.monitor.PollOnce(cycleCtx)
	elapsed := time.Since(start)

	p.metrics.ObserveDuration(monitorName, elapsed)
	if err != nil {
		p.metrics.IncFailure(monitorName)
		p.logg.Error(p.logg.WithField(ctx, "elapsed", elapsed.String()), "order monitor cycle failed", err)
		return
	}
	p.metrics.IncSuccess(monitorName)
	p.logg.Debug(p.logg.WithField(ctx, "elapsed", elapsed.String()), "order monitor cycle complete")
}
