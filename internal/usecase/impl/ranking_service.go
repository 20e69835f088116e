package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"steeple/internal/domain/entity"
	"steeple/internal/domain/repository"
	"steeple/internal/usecase"

	"github.com/google/uuid"
)

// RankingParams configures the weekly devotion ranking job.
type RankingParams struct {
	Timezone string // IANA zone the week window is anchored to.
	TopN     int    // Number of ranking entries to announce.
	Title    string // Broadcast push title.
	Body     string // Broadcast push body.
}

type rankingService struct {
	devotionRepo repository.DevotionRepository
	dispatcher   usecase.DispatchUsecase
	location     *time.Location
	topN         int
	title        string
	body         string
	logger       *slog.Logger
}

// NewRankingService creates a new ranking service instance
func NewRankingService(
	devotionRepo repository.DevotionRepository,
	dispatcher usecase.DispatchUsecase,
	params RankingParams,
	logger *slog.Logger,
) (usecase.RankingUsecase, error) {
	location, err := time.LoadLocation(params.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load ranking timezone %q: %w", params.Timezone, err)
	}

	topN := params.TopN
	if topN <= 0 {
		topN = 5
	}

	return &rankingService{
		devotionRepo: devotionRepo,
		dispatcher:   dispatcher,
		location:     location,
		topN:         topN,
		title:        params.Title,
		body:         params.Body,
		logger:       logger,
	}, nil
}

// RunWeeklyRanking aggregates last week's devotion posts, announces the
// top entries with a broadcast push, and writes an inbox entry for every
// member who posted inside the window. A window with no posts is a no-op.
func (s *rankingService) RunWeeklyRanking(ctx context.Context, now time.Time) (*entity.WeeklyRanking, error) {
	weekStart, weekEnd := s.weekWindow(now)

	posts, err := s.devotionRepo.FindPostsBetween(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to find devotion posts: %w", err)
	}

	if len(posts) == 0 {
		s.logger.Info("No devotion posts in ranking window, skipping",
			slog.Time("week_start", weekStart),
			slog.Time("week_end", weekEnd),
		)

		return nil, nil
	}

	ranking := s.buildRanking(posts, weekStart, weekEnd)

	s.logger.Info("Weekly ranking computed",
		slog.Time("week_start", weekStart),
		slog.Time("week_end", weekEnd),
		slog.Int("posts", len(posts)),
		slog.Int("entries", len(ranking.Entries)),
	)

	content := &usecase.PushContent{
		Title: s.title,
		Body:  s.body,
		Data:  map[string]string{"screen": "Ranking"},
	}
	if _, err := s.dispatcher.BroadcastPush(ctx, content); err != nil {
		return nil, fmt.Errorf("failed to broadcast ranking push: %w", err)
	}

	s.notifyParticipants(ctx, posts)

	return ranking, nil
}

// weekWindow computes the Monday-through-Sunday window of the week containing
// now minus seven days, in the configured time zone. The job runs shortly
// after a week closes, so "last week" is the target.
func (s *rankingService) weekWindow(now time.Time) (time.Time, time.Time) {
	ref := now.In(s.location).AddDate(0, 0, -7)

	// Days since Monday (Go weeks start on Sunday).
	offset := (int(ref.Weekday()) + 6) % 7

	weekStart := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, s.location).
		AddDate(0, 0, -offset)
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Millisecond)

	return weekStart, weekEnd
}

// buildRanking counts posts per author in first-seen order and keeps the top
// entries. The stable sort preserves that order among equal counts, so ties
// rank by who posted first.
func (s *rankingService) buildRanking(posts []*entity.DevotionPost, weekStart, weekEnd time.Time) *entity.WeeklyRanking {
	counts := make(map[uuid.UUID]int, len(posts))
	names := make(map[uuid.UUID]string, len(posts))
	order := make([]uuid.UUID, 0, len(posts))

	for _, post := range posts {
		if _, ok := counts[post.AuthorID]; !ok {
			order = append(order, post.AuthorID)
			names[post.AuthorID] = post.AuthorName
		}
		counts[post.AuthorID]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > s.topN {
		order = order[:s.topN]
	}

	entries := make([]entity.RankingEntry, 0, len(order))
	for idx, memberID := range order {
		entries = append(entries, entity.RankingEntry{
			Rank:     idx + 1,
			MemberID: memberID,
			Name:     names[memberID],
			Count:    counts[memberID],
		})
	}

	return &entity.WeeklyRanking{
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Entries:   entries,
	}
}

// notifyParticipants writes one inbox entry per member who posted in the
// window. A failed entry is logged and skipped so one member's failure does
// not silence the rest.
func (s *rankingService) notifyParticipants(ctx context.Context, posts []*entity.DevotionPost) {
	notified := make(map[uuid.UUID]struct{}, len(posts))

	for _, post := range posts {
		if _, ok := notified[post.AuthorID]; ok {
			continue
		}
		notified[post.AuthorID] = struct{}{}

		notification := &entity.InboxNotification{
			RecipientID: post.AuthorID,
			Type:        entity.NotificationRankingUpdate,
			Message:     s.body,
			Screen:      "Ranking",
		}
		if err := s.dispatcher.SendInApp(ctx, notification); err != nil {
			s.logger.Error("Failed to write ranking inbox entry",
				slog.String("member_id", post.AuthorID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
}
