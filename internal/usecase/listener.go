package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"hirebot/internal/domain/notification"
	"hirebot/internal/infra/metrics"
	"hirebot/internal/pkg/config"
	"hirebot/internal/pkg/errs"
	"hirebot/internal/usecase/shared"
)

type ListenerState int32

const (
	StateDisconnected ListenerState = iota
	StateConnecting
	StateListening
	StateStopped
)

func (s ListenerState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateListening:
		return "listening"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

const closeTimeout = 5 * time.Second

// Listener keeps one dedicated subscription connection alive and turns every
// notification into an independent dispatch unit.
type Listener struct {
	connector  shared.ListenConnector
	dispatcher EventDispatcher
	channels   notification.Channels
	backoff    time.Duration
	logger     *slog.Logger

	state atomic.Int32
	units sync.WaitGroup
}

func NewListener(connector shared.ListenConnector, dispatcher EventDispatcher, cfg config.Config, logger *slog.Logger) *Listener {
	l := &Listener{
		connector:  connector,
		dispatcher: dispatcher,
		channels:   notification.NewChannels(cfg.Listener.StatusChannel, cfg.Listener.ActivityChannel),
		backoff:    cfg.Listener.ReconnectBackoff,
		logger:     logger.With(slog.String("component", "listener")),
	}
	l.setState(StateDisconnected)
	return l
}

func (l *Listener) State() ListenerState {
	return ListenerState(l.state.Load())
}

// Run only returns once ctx is cancelled. Connection failures are retried
// after a fixed backoff.
func (l *Listener) Run(ctx context.Context) {
	l.logger.Info("starting database listener", "channels", l.channels.Names())

	for {
		if ctx.Err() != nil {
			break
		}

		l.setState(StateConnecting)
		err := l.session(ctx)
		if ctx.Err() != nil {
			break
		}

		l.setState(StateDisconnected)
		metrics.IncReconnect()
		l.logger.Error("listener connection lost, retrying after backoff",
			"backoff", l.backoff,
			"error", errs.Mark(err, errs.ErrConnectivity).Error(),
		)

		if !sleepCtx(ctx, l.backoff) {
			break
		}
	}

	l.setState(StateStopped)
	l.logger.Info("database listener stopped")
}

// Drain waits for in-flight dispatch units until ctx expires.
func (l *Listener) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		l.units.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "drain in-flight dispatches")
	}
}

func (l *Listener) session(ctx context.Context) error {
	conn, err := l.connector.Connect(ctx)
	if err != nil {
		return errs.Wrap(err, "connect listener")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
		defer cancel()
		if err := conn.Close(closeCtx); err != nil {
			l.logger.Warn("failed to close listener connection", "error", err.Error())
		}
	}()

	for _, name := range l.channels.Names() {
		if err := conn.Listen(ctx, name); err != nil {
			return errs.Wrap(err, "listen "+name)
		}
	}

	l.setState(StateListening)
	l.logger.Info("listening for database notifications", "channels", l.channels.Names())

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return errs.Wrap(err, "wait for notification")
		}
		l.handle(ctx, n)
	}
}

// handle never blocks on delivery: the dispatch runs in its own goroutine.
func (l *Listener) handle(ctx context.Context, n *shared.Notification) {
	log := l.logger.With(
		slog.String("channel", n.Channel),
		slog.String("payload", n.Payload),
		slog.Uint64("pid", uint64(n.PID)),
	)
	log.Info("received database notification")
	metrics.IncNotificationReceived(n.Channel)

	ch := l.channels.Resolve(n.Channel)
	ev, err := notification.ParsePayload(ch, n.Payload)
	if err != nil {
		if errors.Is(err, errs.ErrUnknownChannel) {
			log.Warn("notification on unhandled channel")
		} else {
			log.Error("dropping malformed notification", "error", err.Error())
		}
		metrics.IncHandlerOutcome(ch.String(), string(OutcomeMalformed))
		return
	}

	// units outlive the receive loop so shutdown can drain them
	unitCtx := context.WithoutCancel(ctx)

	l.units.Add(1)
	go func() {
		defer l.units.Done()
		outcome := l.dispatch(unitCtx, ev)
		metrics.IncHandlerOutcome(ev.Channel.String(), string(outcome))
	}()
}

func (l *Listener) dispatch(ctx context.Context, ev notification.ChangeEvent) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("dispatch unit panicked",
				"channel", ev.Channel.String(), "subject_id", ev.SubjectID, "panic", r)
			outcome = OutcomePanicked
		}
	}()

	switch ev.Channel {
	case notification.ChannelStatus:
		return l.dispatcher.DispatchApplicationUpdate(ctx, ev.SubjectID)
	case notification.ChannelActivity:
		return l.dispatcher.DispatchActivityUpdate(ctx, ev.SubjectID)
	default:
		return OutcomeMalformed
	}
}

func (l *Listener) setState(s ListenerState) {
	l.state.Store(int32(s))
	metrics.SetListenerState(int(s))
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
