package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"parcel/config"
	deliverycontext "parcel/internal/delivery/context"
	"parcel/internal/domain/entity"
	"parcel/internal/domain/service"
	"parcel/internal/infra/metrics"
	mockRepo "parcel/internal/mocks/repository"
	mockSvc "parcel/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type emailSenderFixtures struct {
	sender           service.EmailSender
	notificationRepo *mockRepo.MockNotificationRepository
	transport        *mockSvc.MockMailTransport
	registry         *prometheus.Registry
}

func createTestEmailSender(t *testing.T) emailSenderFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	transport := mockSvc.NewMockMailTransport(t)
	registry := prometheus.NewRegistry()

	sender := NewEmailSender(EmailSenderParams{
		NotificationRepo: notificationRepo,
		Transport:        transport,
		Metrics:          metrics.NewWithRegistry(registry),
		Config:           &config.Config{Mail: &config.MailConfig{From: "noreply@parcel.test"}},
		Logger:           newDiscardLogger(),
	})

	return emailSenderFixtures{
		sender:           sender,
		notificationRepo: notificationRepo,
		transport:        transport,
		registry:         registry,
	}
}

func notificationsCounter(t *testing.T, registry *prometheus.Registry, outcome string) float64 {
	t.Helper()

	families, err := registry.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != "parcel_notifications_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "outcome" && label.GetValue() == outcome {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}

	return 0
}

func TestEmailSender_Send_DispatchesAndRecords(t *testing.T) {
	fx := createTestEmailSender(t)

	adminID := uuid.New()
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	input := service.SendInput{
		Emails:  []string{"recipient@parcel.test"},
		Title:   "Purchase confirmed",
		Content: "Your purchase was registered successfully.",
		AdminID: &adminID,
	}

	var dispatched *service.MailEvent
	fx.transport.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*service.MailEvent")).
		Run(func(_ context.Context, event *service.MailEvent) { dispatched = event }).
		Return(nil)
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	notification, err := fx.sender.Send(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Emails, notification.Emails)
	assert.Equal(t, &adminID, notification.AdminID)

	require.NotNil(t, dispatched)
	assert.Equal(t, "req-42", dispatched.RequestID)
	assert.Equal(t, notification.ID.String(), dispatched.NotificationID)
	assert.Equal(t, adminID.String(), dispatched.AdminID)
	assert.Equal(t, "noreply@parcel.test", dispatched.From)
	assert.Equal(t, input.Title, dispatched.Subject)
	assert.Equal(t, 1.0, notificationsCounter(t, fx.registry, "delivered"))
}

func TestEmailSender_Send_RecordsEvenWhenTransportFails(t *testing.T) {
	fx := createTestEmailSender(t)
	ctx := context.Background()

	fx.transport.EXPECT().Dispatch(ctx, mock.Anything).Return(errors.New("relay down"))
	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	notification, err := fx.sender.Send(ctx, service.SendInput{
		Emails: []string{"recipient@parcel.test"},
		Title:  "Goodbye",
	})

	require.NoError(t, err)
	assert.NotNil(t, notification)
	assert.Equal(t, 1.0, notificationsCounter(t, fx.registry, "failed"))
}

func TestEmailSender_Send_PersistenceFailure(t *testing.T) {
	fx := createTestEmailSender(t)
	ctx := context.Background()

	fx.transport.EXPECT().Dispatch(ctx, mock.Anything).Return(nil)
	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("db down"))

	notification, err := fx.sender.Send(ctx, service.SendInput{Emails: []string{"a@parcel.test"}})

	assert.Nil(t, notification)
	assert.ErrorContains(t, err, "failed to record notification")
}

func TestEmailSender_Send_NoRecipientsSkipsTransport(t *testing.T) {
	fx := createTestEmailSender(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool { return len(n.Emails) == 0 })).
		Return(nil)

	_, err := fx.sender.Send(ctx, service.SendInput{Title: "empty"})

	require.NoError(t, err)
	fx.transport.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	assert.Equal(t, 0, mustGatherAndCount(t, fx.registry))
}

func mustGatherAndCount(t *testing.T, registry *prometheus.Registry) int {
	t.Helper()

	count, err := testutil.GatherAndCount(registry, "parcel_notifications_total")
	require.NoError(t, err)

	return count
}
