package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"steeple/internal/delivery/http/validator"
	"steeple/internal/domain/entity"
	mockUsecase "steeple/internal/mocks/usecase"
	"steeple/internal/usecase"
	"steeple/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceHandlerFixtures holds all test dependencies for device handler tests.
type deviceHandlerFixtures struct {
	handler *DeviceHandler
	tokenUC *mockUsecase.MockTokenUsecase
	userID  uuid.UUID
}

func createTestDeviceHandler(t *testing.T) deviceHandlerFixtures {
	tokenUC := mockUsecase.NewMockTokenUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := NewDeviceHandler(DeviceHandlerParams{
		TokenUC: tokenUC,
		Logger:  logger,
	})

	return deviceHandlerFixtures{
		handler: h,
		tokenUC: tokenUC,
		userID:  uuid.New(),
	}
}

// newTestContext builds an echo context with the validator installed and the
// authenticated member set, as the auth middleware would.
func newTestContext(method, path, body string, userID any) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("userID", userID)
	}

	return c, rec
}

func TestDeviceHandler_RegisterToken(t *testing.T) {
	f := createTestDeviceHandler(t)

	body := `{"token":"ExponentPushToken[abc]","device_id":"iPhone15,2-ios17","platform":"ios"}`
	c, rec := newTestContext(http.MethodPost, "/devices/token", body, f.userID)

	f.tokenUC.EXPECT().
		RegisterToken(mock.Anything, f.userID, &usecase.TokenInfo{
			Token:    "ExponentPushToken[abc]",
			DeviceID: "iPhone15,2-ios17",
			Platform: "ios",
		}).
		Return(&entity.DeviceToken{ID: uuid.New(), OwnerID: f.userID}, nil)

	require.NoError(t, f.handler.RegisterToken(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDeviceHandler_RegisterToken_BlankToken(t *testing.T) {
	f := createTestDeviceHandler(t)

	// A member who denied the push permission still registers the device.
	body := `{"device_id":"sim-device"}`
	c, rec := newTestContext(http.MethodPost, "/devices/token", body, f.userID)

	f.tokenUC.EXPECT().
		RegisterToken(mock.Anything, f.userID, &usecase.TokenInfo{DeviceID: "sim-device"}).
		Return(nil, nil)

	require.NoError(t, f.handler.RegisterToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_RegisterToken_MissingDeviceID(t *testing.T) {
	f := createTestDeviceHandler(t)

	c, rec := newTestContext(http.MethodPost, "/devices/token", `{"token":"t"}`, f.userID)

	require.NoError(t, f.handler.RegisterToken(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeviceHandler_RegisterToken_InvalidPlatform(t *testing.T) {
	f := createTestDeviceHandler(t)

	body := `{"token":"t","device_id":"d","platform":"windows"}`
	c, rec := newTestContext(http.MethodPost, "/devices/token", body, f.userID)

	require.NoError(t, f.handler.RegisterToken(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeviceHandler_RegisterToken_NoAuth(t *testing.T) {
	f := createTestDeviceHandler(t)

	c, rec := newTestContext(http.MethodPost, "/devices/token", `{"device_id":"d"}`, nil)

	// The handler must stop at the auth check: the use case mock has no
	// expectations, so any call past it fails the test.
	err := f.handler.RegisterToken(c)
	require.ErrorIs(t, err, echo.ErrUnauthorized)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeviceHandler_RegisterToken_UpsertFailureSwallowed(t *testing.T) {
	f := createTestDeviceHandler(t)

	body := `{"token":"ExponentPushToken[abc]","device_id":"d","platform":"ios"}`
	c, rec := newTestContext(http.MethodPost, "/devices/token", body, f.userID)

	f.tokenUC.EXPECT().
		RegisterToken(mock.Anything, f.userID, mock.AnythingOfType("*usecase.TokenInfo")).
		Return(nil, errors.New("database error"))

	// Registration failures are logged and hidden from the client so a
	// broken token store never blocks app usage.
	require.NoError(t, f.handler.RegisterToken(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeviceHandler_GetDevices(t *testing.T) {
	f := createTestDeviceHandler(t)

	c, rec := newTestContext(http.MethodGet, "/devices", "", f.userID)

	f.tokenUC.EXPECT().
		GetOwnerDevices(mock.Anything, f.userID).
		Return([]*entity.DeviceToken{{ID: uuid.New(), OwnerID: f.userID}}, nil)

	require.NoError(t, f.handler.GetDevices(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_RemoveDevice_NotFound(t *testing.T) {
	f := createTestDeviceHandler(t)

	tokenID := uuid.New()
	c, rec := newTestContext(http.MethodDelete, "/devices/"+tokenID.String(), "", f.userID)
	c.SetParamNames("id")
	c.SetParamValues(tokenID.String())

	f.tokenUC.EXPECT().
		RemoveDevice(mock.Anything, f.userID, tokenID).
		Return(impl.ErrDeviceNotFound)

	require.NoError(t, f.handler.RemoveDevice(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeviceHandler_RemoveDevice_Unauthorized(t *testing.T) {
	f := createTestDeviceHandler(t)

	tokenID := uuid.New()
	c, rec := newTestContext(http.MethodDelete, "/devices/"+tokenID.String(), "", f.userID)
	c.SetParamNames("id")
	c.SetParamValues(tokenID.String())

	f.tokenUC.EXPECT().
		RemoveDevice(mock.Anything, f.userID, tokenID).
		Return(impl.ErrDeviceUnauthorized)

	require.NoError(t, f.handler.RemoveDevice(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeviceHandler_RemoveDevice_BadID(t *testing.T) {
	f := createTestDeviceHandler(t)

	c, rec := newTestContext(http.MethodDelete, "/devices/not-a-uuid", "", f.userID)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, f.handler.RemoveDevice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeviceHandler_SetNotificationsEnabled(t *testing.T) {
	f := createTestDeviceHandler(t)

	tokenID := uuid.New()
	c, rec := newTestContext(http.MethodPatch, "/devices/"+tokenID.String()+"/notifications", `{"enabled":false}`, f.userID)
	c.SetParamNames("id")
	c.SetParamValues(tokenID.String())

	f.tokenUC.EXPECT().
		SetNotificationsEnabled(mock.Anything, f.userID, tokenID, false).
		Return(nil)

	require.NoError(t, f.handler.SetNotificationsEnabled(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_SetNotificationsEnabled_MissingFlag(t *testing.T) {
	f := createTestDeviceHandler(t)

	tokenID := uuid.New()
	c, rec := newTestContext(http.MethodPatch, "/devices/"+tokenID.String()+"/notifications", `{}`, f.userID)
	c.SetParamNames("id")
	c.SetParamValues(tokenID.String())

	require.NoError(t, f.handler.SetNotificationsEnabled(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
