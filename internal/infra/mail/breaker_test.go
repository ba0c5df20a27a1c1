package mail

import (
	"context"
	"testing"
	"time"

	"parcel/config"
	"parcel/internal/domain/service"
	mockSvc "parcel/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBreakerTransport_OpensAfterConsecutiveFailures(t *testing.T) {
	next := mockSvc.NewMockMailTransport(t)
	transport := NewBreakerTransport("mail-test", next, config.BreakerConfig{
		FailureThreshold: 2,
		Timeout:          time.Minute,
	}, newDiscardLogger())

	ctx := context.Background()
	event := &service.MailEvent{NotificationID: "n"}
	relayErr := errors.New("relay down")

	next.EXPECT().Dispatch(ctx, event).Return(relayErr).Times(2)

	assert.ErrorIs(t, transport.Dispatch(ctx, event), relayErr)
	assert.ErrorIs(t, transport.Dispatch(ctx, event), relayErr)

	// Open: the wrapped transport is not called again.
	err := transport.Dispatch(ctx, event)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransportUnavailable))
	next.AssertNumberOfCalls(t, "Dispatch", 2)
}

func TestBreakerTransport_PassesThroughSuccess(t *testing.T) {
	next := mockSvc.NewMockMailTransport(t)
	transport := NewBreakerTransport("mail-test", next, config.BreakerConfig{}, newDiscardLogger())

	next.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(nil)
	next.EXPECT().Close().Return(nil)

	require.NoError(t, transport.Dispatch(context.Background(), &service.MailEvent{}))
	require.NoError(t, transport.Close())
}
