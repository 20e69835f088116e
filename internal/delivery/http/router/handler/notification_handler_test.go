package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"steeple/internal/domain/entity"
	mockUsecase "steeple/internal/mocks/usecase"
	"steeple/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationHandlerFixtures holds all test dependencies for notification handler tests.
type notificationHandlerFixtures struct {
	handler *NotificationHandler
	inboxUC *mockUsecase.MockInboxUsecase
	userID  uuid.UUID
}

func createTestNotificationHandler(t *testing.T) notificationHandlerFixtures {
	inboxUC := mockUsecase.NewMockInboxUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := NewNotificationHandler(NotificationHandlerParams{
		InboxUC: inboxUC,
		Logger:  logger,
	})

	return notificationHandlerFixtures{
		handler: h,
		inboxUC: inboxUC,
		userID:  uuid.New(),
	}
}

func TestNotificationHandler_ListNotifications(t *testing.T) {
	f := createTestNotificationHandler(t)

	c, rec := newTestContext(http.MethodGet, "/notifications?limit=10&offset=20", "", f.userID)

	f.inboxUC.EXPECT().
		ListNotifications(mock.Anything, f.userID, 10, 20).
		Return([]*entity.InboxNotification{{ID: uuid.New(), RecipientID: f.userID}}, nil)

	require.NoError(t, f.handler.ListNotifications(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_ListNotifications_DefaultPaging(t *testing.T) {
	f := createTestNotificationHandler(t)

	c, rec := newTestContext(http.MethodGet, "/notifications", "", f.userID)

	// Missing query params come through as zero; the use case applies its
	// own default page size.
	f.inboxUC.EXPECT().
		ListNotifications(mock.Anything, f.userID, 0, 0).
		Return([]*entity.InboxNotification{}, nil)

	require.NoError(t, f.handler.ListNotifications(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_ListNotifications_NoAuth(t *testing.T) {
	f := createTestNotificationHandler(t)

	c, rec := newTestContext(http.MethodGet, "/notifications", "", nil)

	err := f.handler.ListNotifications(c)
	require.ErrorIs(t, err, echo.ErrUnauthorized)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	f := createTestNotificationHandler(t)

	notificationID := uuid.New()
	c, rec := newTestContext(http.MethodPost, "/notifications/"+notificationID.String()+"/read", "", f.userID)
	c.SetParamNames("id")
	c.SetParamValues(notificationID.String())

	f.inboxUC.EXPECT().
		MarkRead(mock.Anything, notificationID, f.userID).
		Return(nil)

	require.NoError(t, f.handler.MarkRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_MarkRead_NotFound(t *testing.T) {
	f := createTestNotificationHandler(t)

	notificationID := uuid.New()
	c, rec := newTestContext(http.MethodPost, "/notifications/"+notificationID.String()+"/read", "", f.userID)
	c.SetParamNames("id")
	c.SetParamValues(notificationID.String())

	f.inboxUC.EXPECT().
		MarkRead(mock.Anything, notificationID, f.userID).
		Return(impl.ErrNotificationNotFound)

	require.NoError(t, f.handler.MarkRead(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotificationHandler_MarkRead_BadID(t *testing.T) {
	f := createTestNotificationHandler(t)

	c, rec := newTestContext(http.MethodPost, "/notifications/not-a-uuid/read", "", f.userID)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, f.handler.MarkRead(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
