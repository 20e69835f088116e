package entity

import (
	"time"

	"github.com/google/uuid"
)

// RankingEntry is one row of a computed weekly ranking. Rankings are derived
// per aggregation run and never persisted.
type RankingEntry struct {
	Rank     int       `json:"rank"`      // 1-based position after sorting by count descending.
	MemberID uuid.UUID `json:"member_id"` // The ranked member.
	Name     string    `json:"name"`      // Display name of the ranked member.
	Count    int       `json:"count"`     // Number of devotion posts inside the week window.
}

// WeeklyRanking is the result of one aggregation run over a fixed
// Monday-through-Sunday window.
type WeeklyRanking struct {
	WeekStart time.Time      `json:"week_start"` // Monday 00:00:00.000 in the church time zone.
	WeekEnd   time.Time      `json:"week_end"`   // Sunday 23:59:59.999 in the church time zone.
	Entries   []RankingEntry `json:"entries"`    // Top-N entries, ties resolved by first-seen input order.
}
