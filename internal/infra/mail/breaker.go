package mail

import (
	"context"
	"log/slog"
	"time"

	"parcel/config"
	"parcel/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
)

const (
	defaultBreakerMaxRequests      = 1
	defaultBreakerTimeout          = 30 * time.Second
	defaultBreakerFailureThreshold = 5
)

// ErrTransportUnavailable is returned while the breaker rejects dispatches.
var ErrTransportUnavailable = errors.New("mail transport unavailable")

// breakerTransport stops calling a failing transport until it has had time to recover.
type breakerTransport struct {
	next   service.MailTransport
	cb     *gobreaker.CircuitBreaker
	logger *slog.Logger
}

// NewBreakerTransport wraps next in a circuit breaker named name.
func NewBreakerTransport(name string, next service.MailTransport, cfg config.BreakerConfig, logger *slog.Logger) service.MailTransport {
	maxRequests := cfg.MaxRequests
	if maxRequests == 0 {
		maxRequests = defaultBreakerMaxRequests
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultBreakerTimeout
	}
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = defaultBreakerFailureThreshold
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: maxRequests,
		Interval:    cfg.Interval,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Mail circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &breakerTransport{
		next:   next,
		cb:     gobreaker.NewCircuitBreaker(settings),
		logger: logger,
	}
}

// Dispatch forwards the event unless the breaker is open.
func (b *breakerTransport) Dispatch(ctx context.Context, event *service.MailEvent) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Dispatch(ctx, event)
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.Wrap(ErrTransportUnavailable, err.Error())
	}

	return err
}

// Close closes the wrapped transport
func (b *breakerTransport) Close() error {
	return b.next.Close()
}
