package pubsub

import (
	"context"
	"log/slog"

	"photocard/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googleTransport publishes to one Cloud Pub/Sub topic and waits for the
// server id of every message.
type googleTransport struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// newGoogleTransport fails fast when the topic does not exist.
func newGoogleTransport(ctx context.Context, projectID, topicID string, logger *slog.Logger) (*googleTransport, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s", topic)
	}

	return &googleTransport{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger.With(slog.String("topic", topic)),
	}, nil
}

func (t *googleTransport) send(ctx context.Context, msg *outbound) error {
	serverID, err := t.publisher.Publish(ctx, &pubsub.Message{
		Data:       msg.Data,
		Attributes: msg.Attributes,
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish %s", msg.Attributes[AttrEventType])
	}

	t.logger.Debug("event published",
		slog.String("event_type", msg.Attributes[AttrEventType]),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending publishes before releasing the client.
func (t *googleTransport) Close() error {
	t.publisher.Stop()

	return errors.WithStack(t.client.Close())
}
