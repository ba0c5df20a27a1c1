package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"parcel/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// googlePubSubTransport hands mail events to a Google Cloud Pub/Sub topic
// consumed by an external mail worker
type googlePubSubTransport struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubTransport creates a new Google Pub/Sub mail transport. An empty
// credentialsFile uses application default credentials.
func NewGooglePubSubTransport(ctx context.Context, projectID, topicID, credentialsFile string, logger *slog.Logger) (service.MailTransport, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub mail transport initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubTransport{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// Dispatch publishes the event and waits for the server acknowledgement
func (p *googlePubSubTransport) Dispatch(ctx context.Context, event *service.MailEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}

	p.logger.Debug("[GooglePubSub] Publishing mail event",
		slog.String("notification_id", event.NotificationID),
		slog.Int("recipient_count", len(event.To)),
	)

	result := p.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Debug("[GooglePubSub] Mail event published",
		slog.String("notification_id", event.NotificationID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubTransport) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

// eventAttributes builds the message attributes used for filtering and tracing
func eventAttributes(event *service.MailEvent) map[string]string {
	attributes := map[string]string{
		"notification_id": event.NotificationID,
	}
	if event.AdminID != "" {
		attributes["admin_id"] = event.AdminID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
