package retention

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"borrowing-service/internal/pkg/clock"
)

// Scheduler runs a sweep every day at a fixed wall-clock time in the clock's
// location.
type Scheduler struct {
	sweeper *Sweeper
	clock   clock.Clock
	hour    int
	minute  int
	logger  *slog.Logger

	// after is replaced in tests
	after func(d time.Duration) <-chan time.Time

	cancel context.CancelFunc
	done   chan struct{}
	mu     sync.Mutex
}

func NewScheduler(sweeper *Sweeper, clk clock.Clock, hour, minute int, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		sweeper: sweeper,
		clock:   clk,
		hour:    hour,
		minute:  minute,
		logger:  logger,
		after:   time.After,
	}
}

// NextRun returns the first scheduled instant strictly after now.
func (s *Scheduler) NextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, s.minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.loop(ctx, s.done)
}

// Stop cancels a sweep in progress and waits for the loop to exit or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	for {
		now := s.clock.Now()
		next := s.NextRun(now)
		s.logger.Debug("next retention sweep scheduled", "at", next)

		select {
		case <-ctx.Done():
			return
		case <-s.after(next.Sub(now)):
			s.sweeper.Sweep(ctx)
		}
	}
}
