package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"parcel/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPTransport_Dispatch(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	event := &service.MailEvent{
		RequestID:      "req-1",
		NotificationID: "notif-1",
		AdminID:        "admin-1",
		From:           "noreply@parcel.test",
		To:             []string{"recipient@parcel.test"},
		Subject:        "Purchase confirmed",
		Body:           "Your purchase was registered successfully.",
	}

	transport := NewLocalHTTPTransport(server.URL, newDiscardLogger())
	require.NoError(t, transport.Dispatch(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "notif-1", received.Message.MessageID)
	assert.Equal(t, "admin-1", received.Message.Attributes["admin_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.MailEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPTransport_DispatchNonSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	transport := NewLocalHTTPTransport(server.URL, newDiscardLogger())
	err := transport.Dispatch(context.Background(), &service.MailEvent{NotificationID: "n"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestEventAttributes(t *testing.T) {
	attrs := eventAttributes(&service.MailEvent{NotificationID: "n"})
	assert.Equal(t, map[string]string{"notification_id": "n"}, attrs)
}
