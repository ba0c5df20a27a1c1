package mail

import (
	"context"
	"testing"

	"parcel/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTransportParams(t *testing.T, cfg *config.Config) TransportParams {
	return TransportParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: cfg,
		Logger: newDiscardLogger(),
	}
}

func TestNewMailTransport_NoProviderIsNoop(t *testing.T) {
	transport, err := NewMailTransport(newTransportParams(t, &config.Config{Mail: &config.MailConfig{}}))

	require.NoError(t, err)
	assert.IsType(t, &noopTransport{}, transport)
}

func TestNewMailTransport_SMTPIsWrappedInBreaker(t *testing.T) {
	cfg := &config.Config{Mail: &config.MailConfig{
		Provider: ProviderSMTP,
		SMTP:     config.SMTPConfig{Host: "localhost", Port: 1025},
	}}

	transport, err := NewMailTransport(newTransportParams(t, cfg))

	require.NoError(t, err)
	wrapped, ok := transport.(*breakerTransport)
	require.True(t, ok)
	assert.IsType(t, &smtpTransport{}, wrapped.next)
}

func TestNewMailTransport_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr string
	}{
		{
			name:    "unknown provider",
			cfg:     &config.Config{Mail: &config.MailConfig{Provider: "carrier-pigeon"}},
			wantErr: "unknown mail provider",
		},
		{
			name:    "local without endpoint",
			cfg:     &config.Config{Mail: &config.MailConfig{Provider: ProviderLocal}, PubSub: &config.PubSubConfig{}},
			wantErr: "local endpoint is required",
		},
		{
			name:    "pubsub without project",
			cfg:     &config.Config{Mail: &config.MailConfig{Provider: ProviderPubSub}, PubSub: &config.PubSubConfig{TopicID: "mail"}},
			wantErr: "project ID is required",
		},
		{
			name:    "pubsub without section",
			cfg:     &config.Config{Mail: &config.MailConfig{Provider: ProviderPubSub}},
			wantErr: "pubsub section is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport, err := NewMailTransport(newTransportParams(t, tt.cfg))

			assert.Nil(t, transport)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewRelayTransport_IgnoresProvider(t *testing.T) {
	cfg := &config.Config{Mail: &config.MailConfig{
		Provider: ProviderPubSub,
		SMTP:     config.SMTPConfig{Host: "relay.internal", Port: 587},
	}}

	transport := NewRelayTransport(newTransportParams(t, cfg))

	wrapped, ok := transport.(*breakerTransport)
	require.True(t, ok)
	relay, ok := wrapped.next.(*smtpTransport)
	require.True(t, ok)
	assert.Equal(t, "relay.internal:587", relay.addr)
	assert.False(t, relay.implicitTLS)
}
