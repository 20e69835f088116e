// Package expo implements the push gateway against the Expo push API.
package expo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"steeple/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL is the public Expo push API endpoint.
	DefaultBaseURL = "https://exp.host/--/api/v2"

	// maxBatchSize is Expo's documented per-request message limit.
	maxBatchSize = 100

	defaultTimeout = 15 * time.Second

	// statusDeviceNotRegistered marks a token the push service has
	// permanently invalidated. Other per-receipt errors are transient.
	statusDeviceNotRegistered = "DeviceNotRegistered"
)

// pushMessage is a single entry in an Expo push request.
type pushMessage struct {
	To       string         `json:"to"`
	Title    string         `json:"title,omitempty"`
	Body     string         `json:"body,omitempty"`
	Sound    string         `json:"sound,omitempty"`
	Priority string         `json:"priority,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

// pushTicket is a single entry in an Expo push response, index-aligned with
// the request messages.
type pushTicket struct {
	Status  string `json:"status"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
	Details struct {
		Error string `json:"error,omitempty"`
	} `json:"details,omitempty"`
}

type pushResponse struct {
	Data   []pushTicket `json:"data"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors,omitempty"`
}

type expoClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a push gateway backed by the Expo push API.
// An empty baseURL falls back to the public endpoint.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) service.PushGateway {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &expoClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// MaxBatchSize returns Expo's per-request message limit.
func (c *expoClient) MaxBatchSize() int {
	return maxBatchSize
}

// SendBatchNotification sends one push request for the given tokens and
// classifies the per-token tickets. Tokens the service reports as
// DeviceNotRegistered are returned as invalid so the caller can retire them.
func (c *expoClient) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}
	if len(tokens) > maxBatchSize {
		return 0, 0, nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), maxBatchSize)
	}

	messages := make([]pushMessage, 0, len(tokens))
	for _, token := range tokens {
		messages = append(messages, pushMessage{
			To:       token,
			Title:    title,
			Body:     body,
			Sound:    "default",
			Priority: "high",
			Data:     toMessageData(data),
		})
	}

	payload, err := json.Marshal(messages)
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to encode push messages")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/push/send", bytes.NewReader(payload))
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to create push request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to send push request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to read push response")
	}

	if resp.StatusCode != http.StatusOK {
		return 0, 0, nil, errors.Errorf("push request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed pushResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to decode push response")
	}
	if len(parsed.Errors) > 0 {
		return 0, 0, nil, errors.Errorf("push request rejected: %s: %s", parsed.Errors[0].Code, parsed.Errors[0].Message)
	}
	if len(parsed.Data) != len(tokens) {
		return 0, 0, nil, errors.Errorf("push response ticket count mismatch: got %d, want %d", len(parsed.Data), len(tokens))
	}

	// Tickets are index-aligned with the request messages.
	invalidTokens = make([]string, 0)
	for idx, ticket := range parsed.Data {
		if ticket.Status == "ok" {
			successCount++

			continue
		}

		failureCount++
		if ticket.Details.Error == statusDeviceNotRegistered {
			invalidTokens = append(invalidTokens, tokens[idx])

			continue
		}

		if c.logger != nil {
			c.logger.Warn("Push ticket reported a transient error",
				slog.String("error", ticket.Details.Error),
				slog.String("message", ticket.Message),
			)
		}
	}

	return successCount, failureCount, invalidTokens, nil
}

func toMessageData(data map[string]string) map[string]any {
	if len(data) == 0 {
		return nil
	}

	converted := make(map[string]any, len(data))
	for key, value := range data {
		converted[key] = value
	}

	return converted
}
