package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler polls the engine once at start and then on a fixed interval.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *zap.Logger
}

func NewScheduler(engine *Engine, interval time.Duration, log *zap.Logger) (*Scheduler, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %s", interval)
	}

	s := &Scheduler{
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		engine: engine,
		log:    log,
	}

	expr := fmt.Sprintf("@every %s", interval)
	if _, err := s.cron.AddFunc(expr, s.tick); err != nil {
		return nil, fmt.Errorf("schedule due poll %q: %w", expr, err)
	}
	return s, nil
}

func (s *Scheduler) tick() {
	s.engine.Poll(context.Background())
}

func (s *Scheduler) Start() {
	s.tick()
	s.cron.Start()
	s.log.Info("due booking scheduler started")
}

// Stop waits for a running tick to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.log.Info("due booking scheduler stopped")
	case <-ctx.Done():
		s.log.Warn("due booking scheduler stop timed out")
	}
}
