package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"steeple/config"
	"steeple/internal/domain/constants"
	"steeple/internal/domain/entity"
	"steeple/internal/domain/service"
	mockUsecase "steeple/internal/mocks/usecase"
	"steeple/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// jobHandlerFixtures holds all test dependencies for job handler tests.
type jobHandlerFixtures struct {
	handler       *JobHandler
	rankingUC     *mockUsecase.MockRankingUsecase
	maintenanceUC *mockUsecase.MockMaintenanceUsecase
}

func createTestJobHandler(t *testing.T) jobHandlerFixtures {
	rankingUC := mockUsecase.NewMockRankingUsecase(t)
	maintenanceUC := mockUsecase.NewMockMaintenanceUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := NewJobHandler(JobHandlerParams{
		Config:        &config.Config{},
		Logger:        logger,
		RankingUC:     rankingUC,
		MaintenanceUC: maintenanceUC,
	})

	return jobHandlerFixtures{
		handler:       h,
		rankingUC:     rankingUC,
		maintenanceUC: maintenanceUC,
	}
}

// pushRequest wraps a job event in the Pub/Sub push envelope and performs
// the request against the handler.
func pushRequest(t *testing.T, h *JobHandler, event *service.JobEvent) *httptest.ResponseRecorder {
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	return rawPushRequest(t, h, base64.StdEncoding.EncodeToString(payload))
}

func rawPushRequest(t *testing.T, h *JobHandler, data string) *httptest.ResponseRecorder {
	var pushMsg PubSubMessage
	pushMsg.Message.Data = data
	pushMsg.Message.MessageID = "msg-1"
	pushMsg.Subscription = "projects/local/subscriptions/job-sub"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec
}

func TestJobHandler_HandlePush_TokenPrune(t *testing.T) {
	f := createTestJobHandler(t)

	f.maintenanceUC.EXPECT().
		PruneDuplicateTokens(mock.Anything).
		Return(&usecase.PruneReport{Scanned: 10, Duplicates: 2, OwnersRepaired: 2}, nil)

	rec := pushRequest(t, f.handler, &service.JobEvent{
		RequestID:   "req-prune",
		Job:         constants.JobTokenPrune,
		ScheduledAt: time.Now(),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJobHandler_HandlePush_WeeklyRanking(t *testing.T) {
	f := createTestJobHandler(t)

	f.rankingUC.EXPECT().
		RunWeeklyRanking(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(&entity.WeeklyRanking{Entries: []entity.RankingEntry{{Rank: 1}}}, nil)

	rec := pushRequest(t, f.handler, &service.JobEvent{
		Job:         constants.JobWeeklyRanking,
		ScheduledAt: time.Now(),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJobHandler_HandlePush_EmptyRankingWindow(t *testing.T) {
	f := createTestJobHandler(t)

	f.rankingUC.EXPECT().
		RunWeeklyRanking(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	rec := pushRequest(t, f.handler, &service.JobEvent{
		Job:         constants.JobWeeklyRanking,
		ScheduledAt: time.Now(),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJobHandler_HandlePush_RetryableFailure(t *testing.T) {
	f := createTestJobHandler(t)

	f.rankingUC.EXPECT().
		RunWeeklyRanking(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil, errors.New("database down"))

	rec := pushRequest(t, f.handler, &service.JobEvent{
		Job:         constants.JobWeeklyRanking,
		ScheduledAt: time.Now(),
	})

	// 503 asks Pub/Sub to redeliver the message.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestJobHandler_HandlePush_UnknownJobIsDropped(t *testing.T) {
	f := createTestJobHandler(t)

	rec := pushRequest(t, f.handler, &service.JobEvent{
		Job:         "make_coffee",
		ScheduledAt: time.Now(),
	})

	// 200 acknowledges the message; retrying cannot fix an unknown job.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJobHandler_HandlePush_BadBase64(t *testing.T) {
	f := createTestJobHandler(t)

	rec := rawPushRequest(t, f.handler, "not-base64!!!")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJobHandler_RetryableError(t *testing.T) {
	base := errors.New("boom")
	wrapped := newRetryableError(base)

	assert.True(t, isRetryableError(wrapped))
	assert.False(t, isRetryableError(base))
	assert.ErrorIs(t, wrapped, base)
	assert.Contains(t, wrapped.Error(), "retryable")
}
