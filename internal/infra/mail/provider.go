package mail

import (
	"context"
	"log/slog"

	"parcel/config"
	"parcel/internal/domain/service"
	"parcel/internal/infra/pubsub"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	ProviderSMTP   = config.MailProviderSMTP
	ProviderPubSub = config.MailProviderPubSub
	ProviderLocal  = config.MailProviderLocal
)

// noopTransport drops events when no provider is configured; notifications are still recorded
type noopTransport struct {
	logger *slog.Logger
}

func (t *noopTransport) Dispatch(ctx context.Context, event *service.MailEvent) error {
	t.logger.Debug("[NoopMail] Mail dispatch disabled, skipping",
		slog.String("notification_id", event.NotificationID),
	)

	return nil
}

func (t *noopTransport) Close() error {
	return nil
}

// TransportParams holds dependencies for MailTransport, injected by Fx
type TransportParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMailTransport creates the MailTransport selected by configuration
func NewMailTransport(params TransportParams) (service.MailTransport, error) {
	logger := params.Logger

	var mailCfg config.MailConfig
	if params.Config.Mail != nil {
		mailCfg = *params.Config.Mail
	}

	var transport service.MailTransport

	switch mailCfg.Provider {
	case "":
		logger.Info("Mail provider not configured, notifications are only recorded")

		return &noopTransport{logger: logger}, nil

	case ProviderSMTP:
		logger.Info("Using SMTP mail transport",
			slog.String("host", mailCfg.SMTP.Host),
			slog.Int("port", mailCfg.SMTP.Port),
		)

		transport = NewSMTPTransport(mailCfg.SMTP, logger)

	case ProviderLocal, ProviderPubSub:
		cfg := params.Config.PubSub
		if cfg == nil {
			return nil, errors.Errorf("pubsub section is required for %s provider", mailCfg.Provider)
		}

		if mailCfg.Provider == ProviderLocal {
			if cfg.LocalEndpoint == "" {
				return nil, errors.New("local endpoint is required for local provider")
			}
			logger.Info("Using local HTTP mail transport", slog.String("endpoint", cfg.LocalEndpoint))

			transport = pubsub.NewLocalHTTPTransport(cfg.LocalEndpoint, logger)

			break
		}

		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for pubsub provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for pubsub provider")
		}

		var err error
		transport, err = pubsub.NewGooglePubSubTransport(params.Ctx, cfg.ProjectID, cfg.TopicID, cfg.CredentialsFile, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown mail provider: %s", mailCfg.Provider)
	}

	transport = NewBreakerTransport("mail-"+mailCfg.Provider, transport, mailCfg.Breaker, logger)

	// Register lifecycle hook to close transport on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing MailTransport")

			return transport.Close()
		},
	})

	return transport, nil
}

// NewRelayTransport creates the SMTP transport of the mail relay worker,
// which delivers events published by the pubsub and local providers.
func NewRelayTransport(params TransportParams) service.MailTransport {
	var mailCfg config.MailConfig
	if params.Config.Mail != nil {
		mailCfg = *params.Config.Mail
	}

	params.Logger.Info("Using SMTP relay transport",
		slog.String("host", mailCfg.SMTP.Host),
		slog.Int("port", mailCfg.SMTP.Port),
	)

	transport := NewBreakerTransport("mail-relay", NewSMTPTransport(mailCfg.SMTP, params.Logger), mailCfg.Breaker, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing relay MailTransport")

			return transport.Close()
		},
	})

	return transport
}

// Module provides the mail FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailTransport, NewEmailSender),
)
