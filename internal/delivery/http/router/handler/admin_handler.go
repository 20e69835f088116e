package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "steeple/internal/delivery/context"
	"steeple/internal/delivery/http/response"
	"steeple/internal/domain/constants"
	"steeple/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// AdminHandler enqueues maintenance and aggregation jobs for the notifier worker.
type AdminHandler struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// TriggerTokenPrune enqueues a duplicate token sanitation run
func (h *AdminHandler) TriggerTokenPrune(c echo.Context) error {
	return h.publishJob(c, constants.JobTokenPrune)
}

// TriggerWeeklyRanking enqueues a weekly devotion ranking run
func (h *AdminHandler) TriggerWeeklyRanking(c echo.Context) error {
	return h.publishJob(c, constants.JobWeeklyRanking)
}

// publishJob publishes a job event carrying the caller's request ID for tracing
func (h *AdminHandler) publishJob(c echo.Context, job string) error {
	event := &service.JobEvent{
		RequestID:   deliverycontext.GetRequestID(c),
		Job:         job,
		ScheduledAt: time.Now(),
	}

	if err := h.publisher.PublishJobEvent(c.Request().Context(), event); err != nil {
		h.logger.Error("Failed to publish job event",
			slog.String("job", job),
			slog.Any("error", err),
		)

		return response.InternalServerError(c, "JOB_PUBLISH_FAILED", "Failed to enqueue job")
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"job": job}, "Job enqueued successfully")
}
