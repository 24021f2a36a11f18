package monitor

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/munchbay/vendor-gateway/pkg/logger"
	"github.com/munchbay/vendor-gateway/pkg/metrics"
)

func newTestPoller(t *testing.T, platform Platform, interval time.Duration) *Poller {
	t.Helper()
	logg := logger.New(logger.Options{
		ServiceName: "poller-test",
		Level:       zerolog.Disabled,
		Output:      io.Discard,
	})
	mon, err := New(Params{Platform: platform, Logger: logg, RestaurantID: "rest_1"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	poller, err := NewPoller(PollerParams{
		Monitor:      mon,
		Logger:       logg,
		Metrics:      metrics.NewPollCycleMetrics(nil),
		Interval:     interval,
		CycleTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("NewPoller returned error: %v", err)
	}
	return poller
}

func TestPollerRunsFirstCycleImmediately(t *testing.T) {
	platform := &fakePlatform{}
	poller := newTestPoller(t, platform, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for calls, _ := platform.callCounts(); calls == 0; calls, _ = platform.callCounts() {
		select {
		case <-deadline:
			t.Fatal("first cycle never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after context cancel")
	}
}

func TestPollerSurvivesFailingCycles(t *testing.T) {
	platform := &fakePlatform{allErr: errors.New("upstream down")}
	poller := newTestPoller(t, platform, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for {
		calls, _ := platform.callCounts()
		if calls >= 3 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("expected repeated cycles despite failures, got %d", calls)
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after context cancel")
	}
}

func TestNewPollerValidation(t *testing.T) {
	logg := logger.New(logger.Options{Output: io.Discard})
	mon := &Monitor{}

	cases := []struct {
		name   string
		params PollerParams
	}{
		{"missing monitor", PollerParams{Logger: logg, Metrics: metrics.NewPollCycleMetrics(nil), Interval: time.Second, CycleTimeout: time.Second}},
		{"missing logger", PollerParams{Monitor: mon, Metrics: metrics.NewPollCycleMetrics(nil), Interval: time.Second, CycleTimeout: time.Second}},
		{"missing metrics", PollerParams{Monitor: mon, Logger: logg, Interval: time.Second, CycleTimeout: time.Second}},
		{"zero interval", PollerParams{Monitor: mon, Logger: logg, Metrics: metrics.NewPollCycleMetrics(nil), CycleTimeout: time.Second}},
		{"zero cycle timeout", PollerParams{Monitor: mon, Logger: logg, Metrics: metrics.NewPollCycleMetrics(nil), Interval: time.Second}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewPoller(tc.params); err == nil {
				t.Error("expected error")
			}
		})
	}
}
