// Package mail records notifications and hands them to the configured mail transport.
package mail

import (
	"context"
	"log/slog"
	"time"

	"parcel/config"
	deliverycontext "parcel/internal/delivery/context"
	"parcel/internal/domain/entity"
	"parcel/internal/domain/repository"
	"parcel/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type emailSender struct {
	notificationRepo repository.NotificationRepository
	transport        service.MailTransport
	metrics          service.LifecycleMetrics
	from             string
	now              func() time.Time
	logger           *slog.Logger
}

// EmailSenderParams holds dependencies for EmailSender, injected by Fx.
type EmailSenderParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Transport        service.MailTransport
	Metrics          service.LifecycleMetrics
	Config           *config.Config
	Logger           *slog.Logger
}

// NewEmailSender creates the EmailSender backed by the notification log.
func NewEmailSender(params EmailSenderParams) service.EmailSender {
	from := ""
	if params.Config != nil && params.Config.Mail != nil {
		from = params.Config.Mail.From
	}

	return &emailSender{
		notificationRepo: params.NotificationRepo,
		transport:        params.Transport,
		metrics:          params.Metrics,
		from:             from,
		now:              time.Now,
		logger:           params.Logger,
	}
}

// Send dispatches the message and persists it. A transport failure is logged
// and counted; only a failure to persist the record is returned.
func (s *emailSender) Send(ctx context.Context, input service.SendInput) (*entity.Notification, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	notification := &entity.Notification{
		ID:        uuid.New(),
		Emails:    input.Emails,
		Title:     input.Title,
		Content:   input.Content,
		AdminID:   input.AdminID,
		CreatedAt: s.now(),
	}

	if len(input.Emails) != 0 {
		event := &service.MailEvent{
			RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
			NotificationID: notification.ID.String(),
			From:           s.from,
			To:             input.Emails,
			Subject:        input.Title,
			Body:           input.Content,
		}
		if input.AdminID != nil {
			event.AdminID = input.AdminID.String()
		}

		dispatchErr := s.transport.Dispatch(ctx, event)
		s.metrics.RecordNotification(dispatchErr == nil)
		if dispatchErr != nil {
			logger.Warn("Failed to dispatch notification",
				slog.String("notification_id", event.NotificationID),
				slog.String("title", input.Title),
				slog.Any("error", dispatchErr),
			)
		}
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to record notification")
	}

	return notification, nil
}
