package notifications

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const cafeCreatedTopic = "New_cafe_created"

type Ntfy struct {
	baseURL string
	enabled bool
	client  *http.Client
}

func NewNtfy(enableNotifications bool, notificationsBaseURL string, client *http.Client) *Ntfy {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Ntfy{
		baseURL: strings.TrimRight(notificationsBaseURL, "/"),
		enabled: enableNotifications,
		client:  client,
	}
}

/* Publishes a "new cafe" message to the ntfy topic. A disabled notifier does nothing. */
func (ntf *Ntfy) CafeCreated(ctx context.Context, name, location string) error {
	if !ntf.enabled {
		return nil
	}

	topic := ntf.baseURL + "/" + cafeCreatedTopic
	message := fmt.Sprintf("New cafe created:\nName: %s\nLocation: %s", name, location)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, topic, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("delivering message to topic (%s): %w", topic, err)
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	resp, err := ntf.client.Do(req)
	if err != nil {
		return fmt.Errorf("delivering message to topic (%s): %w", topic, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return NewErrNotificationFailed(resp.StatusCode)
	}
	return nil
}

type ErrNotificationFailed struct {
	statusCode int
}

func (e ErrNotificationFailed) Error() string {
	return fmt.Sprintf("ntfy wrong response - want: 200 OK, got: %d", e.statusCode)
}

func NewErrNotificationFailed(statusCode int) ErrNotificationFailed {
	return ErrNotificationFailed{statusCode: statusCode}
}
