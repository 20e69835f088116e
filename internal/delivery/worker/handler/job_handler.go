package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"steeple/config"
	deliverycontext "steeple/internal/delivery/context"
	"steeple/internal/domain/constants"
	"steeple/internal/domain/service"
	"steeple/internal/usecase"
	"steeple/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// JobHandler handles Pub/Sub push messages carrying scheduled job events
type JobHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	rankingUC      usecase.RankingUsecase
	maintenanceUC  usecase.MaintenanceUsecase
}

// JobHandlerParams holds dependencies for the JobHandler
type JobHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	RankingUC     usecase.RankingUsecase
	MaintenanceUC usecase.MaintenanceUsecase
}

// NewJobHandler creates a new Pub/Sub job handler
func NewJobHandler(params JobHandlerParams) *JobHandler {
	// Push auth is only verifiable for the Google provider outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &JobHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		rankingUC:      params.RankingUC,
		maintenanceUC:  params.MaintenanceUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *JobHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse job event
	var event service.JobEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse job event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing job event",
		slog.String("job", event.Job),
		slog.Time("scheduled_at", event.ScheduledAt),
	)

	start := time.Now()
	if err := h.processJob(ctx, &event, reqLogger); err != nil {
		reqLogger.Error("[Worker] Failed to process job",
			slog.String("job", event.Job),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Job processed successfully",
		slog.String("job", event.Job),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *JobHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.JobEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processJob dispatches a job event to its use case
func (h *JobHandler) processJob(ctx context.Context, event *service.JobEvent, logger *slog.Logger) error {
	switch event.Job {
	case constants.JobWeeklyRanking:
		ranking, err := h.rankingUC.RunWeeklyRanking(ctx, time.Now())
		if err != nil {
			return newRetryableError(err)
		}
		if ranking == nil {
			logger.Info("[Worker] Ranking window held no posts, nothing announced")

			return nil
		}

		logger.Info("[Worker] Weekly ranking announced",
			slog.Int("entries", len(ranking.Entries)),
		)

		return nil

	case constants.JobTokenPrune:
		report, err := h.maintenanceUC.PruneDuplicateTokens(ctx)
		if err != nil {
			return newRetryableError(err)
		}

		logger.Info("[Worker] Token prune finished",
			slog.Int("scanned", report.Scanned),
			slog.Int("duplicates", report.Duplicates),
			slog.Int("owners_repaired", report.OwnersRepaired),
			slog.Int("failures", report.Failures),
		)

		return nil

	default:
		// Unknown jobs are dropped, retrying cannot fix them
		return errors.Errorf("unknown job: %s", event.Job)
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
