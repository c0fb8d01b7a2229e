package usecase

import (
	"context"
	"log/slog"
	"sync"

	"hirebot/internal/pkg/config"
	"hirebot/internal/pkg/errs"
)

// NotifierService ties the listener and the scheduler to one start/stop lifecycle.
type NotifierService struct {
	listener  *Listener
	scheduler *Scheduler
	cfg       config.DispatchConfig
	logger    *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewNotifierService(listener *Listener, scheduler *Scheduler, cfg config.Config, logger *slog.Logger) *NotifierService {
	return &NotifierService{
		listener:  listener,
		scheduler: scheduler,
		cfg:       cfg.Dispatch,
		logger:    logger.With(slog.String("component", "notifier")),
	}
}

// Start arms the scheduler and begins listening. It does not block.
func (s *NotifierService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return nil
	}

	if err := s.scheduler.Start(ctx); err != nil {
		return errs.Wrap(err, "start scheduler")
	}

	runCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		s.listener.Run(runCtx)
	}()

	s.logger.Info("notifier started")
	return nil
}

// Stop cancels the listener, stops the scheduler and drains in-flight dispatches
// for at most the configured drain timeout.
func (s *NotifierService) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}

	cancel()
	select {
	case <-done:
	case <-ctx.Done():
		// timers must not outlive the service even when the listener is stuck
		if err := s.scheduler.Stop(ctx); err != nil {
			s.logger.Warn("scheduler did not stop cleanly", "error", err.Error())
		}
		return errs.Wrap(ctx.Err(), "wait for listener exit")
	}

	drainCtx, drainCancel := context.WithTimeout(ctx, s.cfg.DrainTimeout)
	defer drainCancel()

	if err := s.scheduler.Stop(drainCtx); err != nil {
		s.logger.Warn("scheduler did not stop cleanly", "error", err.Error())
	}
	if err := s.listener.Drain(drainCtx); err != nil {
		s.logger.Warn("in-flight dispatches abandoned", "error", err.Error())
	}

	s.logger.Info("notifier stopped")
	return nil
}

type Health struct {
	Listener       ListenerState
	ArmedReminders int
}

func (h Health) Healthy() bool {
	return h.Listener == StateListening
}

func (s *NotifierService) Health() Health {
	return Health{
		Listener:       s.listener.State(),
		ArmedReminders: s.scheduler.ArmedCount(),
	}
}
