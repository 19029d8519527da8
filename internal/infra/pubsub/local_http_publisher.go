package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"photocard/internal/errors"
)

const (
	localSubscription = "projects/local/subscriptions/photocard-notifier"
	localSendTimeout  = 10 * time.Second
)

// pushEnvelope is the body Cloud Pub/Sub posts to a push subscription.
type pushEnvelope struct {
	Message      pushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

type pushedMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// localHTTPTransport posts each message straight to the notifier's push
// endpoint, so development runs without a Pub/Sub emulator.
type localHTTPTransport struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

func newLocalHTTPTransport(endpoint string, logger *slog.Logger) *localHTTPTransport {
	return &localHTTPTransport{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localSendTimeout},
		logger:   logger.With(slog.String("endpoint", endpoint)),
		now:      time.Now,
	}
}

func (t *localHTTPTransport) send(ctx context.Context, msg *outbound) error {
	body, err := json.Marshal(pushEnvelope{
		Message: pushedMessage{
			Data:        base64.StdEncoding.EncodeToString(msg.Data),
			Attributes:  msg.Attributes,
			MessageID:   msg.ID,
			PublishTime: t.now().UTC().Format(time.RFC3339),
		},
		Subscription: localSubscription,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if id := msg.Attributes[AttrRequestID]; id != "" {
		req.Header.Set("X-Request-Id", id)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "push to notifier")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("notifier answered %d for %s", resp.StatusCode, msg.ID)
	}

	t.logger.Debug("event pushed", slog.String("message_id", msg.ID))

	return nil
}

func (t *localHTTPTransport) Close() error {
	t.client.CloseIdleConnections()

	return nil
}
