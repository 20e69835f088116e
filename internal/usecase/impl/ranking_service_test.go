package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"steeple/internal/domain/entity"
	mockRepo "steeple/internal/mocks/repository"
	mockUsecase "steeple/internal/mocks/usecase"
	"steeple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// rankingServiceFixtures holds all test dependencies for ranking service tests.
type rankingServiceFixtures struct {
	service      usecase.RankingUsecase
	devotionRepo *mockRepo.MockDevotionRepository
	dispatcher   *mockUsecase.MockDispatchUsecase
	location     *time.Location
}

func createTestRankingService(t *testing.T, topN int) rankingServiceFixtures {
	devotionRepo := mockRepo.NewMockDevotionRepository(t)
	dispatcher := mockUsecase.NewMockDispatchUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service, err := NewRankingService(devotionRepo, dispatcher, RankingParams{
		Timezone: "Asia/Seoul",
		TopN:     topN,
		Title:    "Weekly devotion ranking",
		Body:     "This week's devotion ranking has been updated.",
	}, logger)
	require.NoError(t, err)

	location, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	return rankingServiceFixtures{
		service:      service,
		devotionRepo: devotionRepo,
		dispatcher:   dispatcher,
		location:     location,
	}
}

func TestRankingService_InvalidTimezone(t *testing.T) {
	devotionRepo := mockRepo.NewMockDevotionRepository(t)
	dispatcher := mockUsecase.NewMockDispatchUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewRankingService(devotionRepo, dispatcher, RankingParams{
		Timezone: "Mars/Olympus",
	}, logger)
	assert.Error(t, err)
}

func TestRankingService_WeekWindow(t *testing.T) {
	f := createTestRankingService(t, 5)

	ctx := context.Background()

	// Monday 2025-06-16 09:00 KST: the job fires right after last week
	// closed, so the window is Mon 2025-06-09 through Sun 2025-06-15.
	now := time.Date(2025, 6, 16, 9, 0, 0, 0, f.location)
	wantStart := time.Date(2025, 6, 9, 0, 0, 0, 0, f.location)
	wantEnd := time.Date(2025, 6, 15, 23, 59, 59, 999000000, f.location)

	f.devotionRepo.EXPECT().
		FindPostsBetween(ctx, wantStart, wantEnd).
		Return([]*entity.DevotionPost{}, nil)

	ranking, err := f.service.RunWeeklyRanking(ctx, now)
	require.NoError(t, err)
	assert.Nil(t, ranking)
}

func TestRankingService_WeekWindow_SundayTrigger(t *testing.T) {
	f := createTestRankingService(t, 5)

	ctx := context.Background()

	// Sunday 2025-06-22 23:59 KST still targets the week of June 9-15.
	now := time.Date(2025, 6, 22, 23, 59, 0, 0, f.location)
	wantStart := time.Date(2025, 6, 9, 0, 0, 0, 0, f.location)
	wantEnd := time.Date(2025, 6, 15, 23, 59, 59, 999000000, f.location)

	f.devotionRepo.EXPECT().
		FindPostsBetween(ctx, wantStart, wantEnd).
		Return([]*entity.DevotionPost{}, nil)

	_, err := f.service.RunWeeklyRanking(ctx, now)
	require.NoError(t, err)
}

func TestRankingService_RunWeeklyRanking_RanksAndNotifies(t *testing.T) {
	f := createTestRankingService(t, 5)

	ctx := context.Background()
	now := time.Date(2025, 6, 16, 9, 0, 0, 0, f.location)

	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	posts := []*entity.DevotionPost{
		{ID: uuid.New(), AuthorID: alice, AuthorName: "Alice"},
		{ID: uuid.New(), AuthorID: bob, AuthorName: "Bob"},
		{ID: uuid.New(), AuthorID: bob, AuthorName: "Bob"},
		{ID: uuid.New(), AuthorID: carol, AuthorName: "Carol"},
		{ID: uuid.New(), AuthorID: bob, AuthorName: "Bob"},
	}

	f.devotionRepo.EXPECT().
		FindPostsBetween(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(posts, nil)

	f.dispatcher.EXPECT().
		BroadcastPush(ctx, &usecase.PushContent{
			Title: "Weekly devotion ranking",
			Body:  "This week's devotion ranking has been updated.",
			Data:  map[string]string{"screen": "Ranking"},
		}).
		Return(&usecase.DispatchResult{SuccessCount: 10}, nil)

	inboxed := make(map[uuid.UUID]int)
	f.dispatcher.EXPECT().
		SendInApp(ctx, mock.AnythingOfType("*entity.InboxNotification")).
		Run(func(_ context.Context, notification *entity.InboxNotification) {
			inboxed[notification.RecipientID]++
			assert.Equal(t, entity.NotificationRankingUpdate, notification.Type)
		}).
		Return(nil)

	ranking, err := f.service.RunWeeklyRanking(ctx, now)
	require.NoError(t, err)
	require.NotNil(t, ranking)

	require.Len(t, ranking.Entries, 3)
	// Bob leads with three posts; Alice and Carol tie on one and keep
	// their first-posted order.
	assert.Equal(t, entity.RankingEntry{Rank: 1, MemberID: bob, Name: "Bob", Count: 3}, ranking.Entries[0])
	assert.Equal(t, entity.RankingEntry{Rank: 2, MemberID: alice, Name: "Alice", Count: 1}, ranking.Entries[1])
	assert.Equal(t, entity.RankingEntry{Rank: 3, MemberID: carol, Name: "Carol", Count: 1}, ranking.Entries[2])

	// Every participant gets exactly one inbox entry.
	assert.Equal(t, map[uuid.UUID]int{alice: 1, bob: 1, carol: 1}, inboxed)
}

func TestRankingService_RunWeeklyRanking_TruncatesToTopN(t *testing.T) {
	f := createTestRankingService(t, 2)

	ctx := context.Background()
	now := time.Date(2025, 6, 16, 9, 0, 0, 0, f.location)

	authors := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	posts := []*entity.DevotionPost{
		{ID: uuid.New(), AuthorID: authors[0], AuthorName: "A"},
		{ID: uuid.New(), AuthorID: authors[1], AuthorName: "B"},
		{ID: uuid.New(), AuthorID: authors[2], AuthorName: "C"},
		{ID: uuid.New(), AuthorID: authors[0], AuthorName: "A"},
	}

	f.devotionRepo.EXPECT().
		FindPostsBetween(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(posts, nil)

	f.dispatcher.EXPECT().
		BroadcastPush(ctx, mock.AnythingOfType("*usecase.PushContent")).
		Return(&usecase.DispatchResult{}, nil)

	f.dispatcher.EXPECT().
		SendInApp(ctx, mock.AnythingOfType("*entity.InboxNotification")).
		Return(nil)

	ranking, err := f.service.RunWeeklyRanking(ctx, now)
	require.NoError(t, err)
	require.NotNil(t, ranking)

	// Only the top two entries are announced, but all three participants
	// still get inbox entries.
	require.Len(t, ranking.Entries, 2)
	assert.Equal(t, authors[0], ranking.Entries[0].MemberID)
	assert.Equal(t, authors[1], ranking.Entries[1].MemberID)
}

func TestRankingService_RunWeeklyRanking_EmptyWindowIsNoOp(t *testing.T) {
	f := createTestRankingService(t, 5)

	ctx := context.Background()
	now := time.Date(2025, 6, 16, 9, 0, 0, 0, f.location)

	f.devotionRepo.EXPECT().
		FindPostsBetween(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]*entity.DevotionPost{}, nil)

	// No broadcast and no inbox entries for an empty window.
	ranking, err := f.service.RunWeeklyRanking(ctx, now)
	require.NoError(t, err)
	assert.Nil(t, ranking)
}

func TestRankingService_RunWeeklyRanking_BroadcastError(t *testing.T) {
	f := createTestRankingService(t, 5)

	ctx := context.Background()
	now := time.Date(2025, 6, 16, 9, 0, 0, 0, f.location)

	posts := []*entity.DevotionPost{
		{ID: uuid.New(), AuthorID: uuid.New(), AuthorName: "A"},
	}

	f.devotionRepo.EXPECT().
		FindPostsBetween(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(posts, nil)

	f.dispatcher.EXPECT().
		BroadcastPush(ctx, mock.AnythingOfType("*usecase.PushContent")).
		Return(nil, errors.New("gateway down"))

	ranking, err := f.service.RunWeeklyRanking(ctx, now)
	assert.Error(t, err)
	assert.Nil(t, ranking)
	assert.Contains(t, err.Error(), "failed to broadcast ranking push")
}

func TestRankingService_RunWeeklyRanking_InboxFailureContinues(t *testing.T) {
	f := createTestRankingService(t, 5)

	ctx := context.Background()
	now := time.Date(2025, 6, 16, 9, 0, 0, 0, f.location)

	alice := uuid.New()
	bob := uuid.New()
	posts := []*entity.DevotionPost{
		{ID: uuid.New(), AuthorID: alice, AuthorName: "Alice"},
		{ID: uuid.New(), AuthorID: bob, AuthorName: "Bob"},
	}

	f.devotionRepo.EXPECT().
		FindPostsBetween(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(posts, nil)

	f.dispatcher.EXPECT().
		BroadcastPush(ctx, mock.AnythingOfType("*usecase.PushContent")).
		Return(&usecase.DispatchResult{}, nil)

	seen := make([]uuid.UUID, 0, 2)
	f.dispatcher.EXPECT().
		SendInApp(ctx, mock.AnythingOfType("*entity.InboxNotification")).
		RunAndReturn(func(_ context.Context, notification *entity.InboxNotification) error {
			seen = append(seen, notification.RecipientID)
			if notification.RecipientID == alice {
				return errors.New("database error")
			}

			return nil
		})

	ranking, err := f.service.RunWeeklyRanking(ctx, now)
	require.NoError(t, err)
	require.NotNil(t, ranking)
	assert.Equal(t, []uuid.UUID{alice, bob}, seen)
}
