package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"steeple/internal/domain/constants"
	"steeple/internal/domain/service"
	mockService "steeple/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAdminHandler(t *testing.T) (*AdminHandler, *mockService.MockEventPublisher) {
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := NewAdminHandler(AdminHandlerParams{
		Publisher: publisher,
		Logger:    logger,
	})

	return h, publisher
}

func TestAdminHandler_TriggerTokenPrune(t *testing.T) {
	h, publisher := createTestAdminHandler(t)

	c, rec := newTestContext(http.MethodPost, "/admin/jobs/prune", "", nil)

	var published *service.JobEvent
	publisher.EXPECT().
		PublishJobEvent(mock.Anything, mock.AnythingOfType("*service.JobEvent")).
		Run(func(_ context.Context, event *service.JobEvent) {
			published = event
		}).
		Return(nil)

	require.NoError(t, h.TriggerTokenPrune(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	require.NotNil(t, published)
	assert.Equal(t, constants.JobTokenPrune, published.Job)
	assert.NotEmpty(t, published.RequestID)
	assert.False(t, published.ScheduledAt.IsZero())
}

func TestAdminHandler_TriggerWeeklyRanking(t *testing.T) {
	h, publisher := createTestAdminHandler(t)

	c, rec := newTestContext(http.MethodPost, "/admin/jobs/weekly-ranking", "", nil)

	var published *service.JobEvent
	publisher.EXPECT().
		PublishJobEvent(mock.Anything, mock.AnythingOfType("*service.JobEvent")).
		Run(func(_ context.Context, event *service.JobEvent) {
			published = event
		}).
		Return(nil)

	require.NoError(t, h.TriggerWeeklyRanking(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	require.NotNil(t, published)
	assert.Equal(t, constants.JobWeeklyRanking, published.Job)
}

func TestAdminHandler_PublishFailure(t *testing.T) {
	h, publisher := createTestAdminHandler(t)

	c, rec := newTestContext(http.MethodPost, "/admin/jobs/prune", "", nil)

	publisher.EXPECT().
		PublishJobEvent(mock.Anything, mock.AnythingOfType("*service.JobEvent")).
		Return(errors.New("broker unavailable"))

	require.NoError(t, h.TriggerTokenPrune(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
