package handler

import (
	"log/slog"
	"net/http"

	"steeple/internal/delivery/http/response"
	"steeple/internal/usecase"
	"steeple/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	TokenUC usecase.TokenUsecase
	Logger  *slog.Logger
}

// DeviceHandler holds dependencies for device token handlers
type DeviceHandler struct {
	tokenUC usecase.TokenUsecase
	logger  *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		tokenUC: params.TokenUC,
		logger:  params.Logger,
	}
}

// RegisterTokenRequest represents the request body for registering a push token.
// The token may be blank: simulators and members who denied the push permission
// still register so the device identity is tracked.
type RegisterTokenRequest struct {
	Token    string `json:"token"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"omitempty,oneof=ios android"`
}

// SetNotificationsRequest represents the request body for the per-device opt-out flag
type SetNotificationsRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// RegisterToken handles push token registration
func (h *DeviceHandler) RegisterToken(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req RegisterTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	info := &usecase.TokenInfo{
		Token:    req.Token,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	}

	token, err := h.tokenUC.RegisterToken(c.Request().Context(), userID, info)
	if err != nil {
		// A failed registration must never block app usage: log it and
		// answer as if nothing happened.
		h.logger.Error("Failed to register push token",
			slog.String("member_id", userID.String()),
			slog.String("device_id", req.DeviceID),
			slog.String("error", err.Error()),
		)

		return c.NoContent(http.StatusNoContent)
	}

	if token == nil {
		// Blank token, nothing was stored.
		return response.Success(c, http.StatusOK, nil, "No push token provided, registration skipped")
	}

	return response.Success(c, http.StatusCreated, token, "Push token registered successfully")
}

// GetDevices handles retrieving all of the member's token records
func (h *DeviceHandler) GetDevices(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	tokens, err := h.tokenUC.GetOwnerDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tokens, "Devices retrieved successfully")
}

// RemoveDevice handles deleting a token record
func (h *DeviceHandler) RemoveDevice(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	tokenID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.tokenUC.RemoveDevice(c.Request().Context(), userID, tokenID); err != nil {
		return h.handleDeviceError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device removed successfully"}, "Device removed successfully")
}

// SetNotificationsEnabled handles the per-device notification opt-out flag
func (h *DeviceHandler) SetNotificationsEnabled(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	tokenID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	var req SetNotificationsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notifications input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.tokenUC.SetNotificationsEnabled(c.Request().Context(), userID, tokenID, *req.Enabled); err != nil {
		return h.handleDeviceError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification settings updated"}, "Notification settings updated")
}

// handleDeviceError maps device use case errors to HTTP responses
func (h *DeviceHandler) handleDeviceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, impl.ErrDeviceNotFound):
		return response.NotFound(c, "DEVICE_NOT_FOUND", "Device not found")
	case errors.Is(err, impl.ErrDeviceUnauthorized):
		return response.Forbidden(c, "DEVICE_OWNERSHIP_VIOLATION", "You do not have access to this device")
	default:
		return response.HandleAppError(c, err)
	}
}

// getUserID extracts the member ID from the context. On a missing or
// malformed ID it writes the 401 itself and returns a non-nil error so the
// caller stops instead of proceeding with a zero member ID.
func (h *DeviceHandler) getUserID(c echo.Context) (uuid.UUID, error) {
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
