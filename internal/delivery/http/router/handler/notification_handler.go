package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"steeple/internal/delivery/http/response"
	"steeple/internal/usecase"
	"steeple/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	InboxUC usecase.InboxUsecase
	Logger  *slog.Logger
}

// NotificationHandler holds dependencies for inbox handlers
type NotificationHandler struct {
	inboxUC usecase.InboxUsecase
	logger  *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		inboxUC: params.InboxUC,
		logger:  params.Logger,
	}
}

// ListNotifications handles retrieving the member's inbox page, newest first
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	notifications, err := h.inboxUC.ListNotifications(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// MarkRead handles stamping the read timestamp on an inbox entry
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.inboxUC.MarkRead(c.Request().Context(), notificationID, userID); err != nil {
		if errors.Is(err, impl.ErrNotificationNotFound) {
			return response.NotFound(c, "NOTIFICATION_NOT_FOUND", "Notification not found")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification marked as read"}, "Notification marked as read")
}

// getUserID extracts the member ID from the context. On a missing or
// malformed ID it writes the 401 itself and returns a non-nil error so the
// caller stops instead of proceeding with a zero member ID.
func (h *NotificationHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		if err := response.Unauthorized(c, "INVALID_TOKEN", "Invalid member ID in token"); err != nil {
			return uuid.Nil, err
		}

		return uuid.Nil, echo.ErrUnauthorized
	}

	return userID, nil
}
