package domain

import "time"

// Round is one completed playthrough of a course. Rounds are immutable once
// saved: there are no update or delete operations.
type Round struct {
	ID       int64
	Course   string
	PlayedAt time.Time
}

// HoleEntry is the recorded outcome for a single hole within a round.
// Every entry belongs to exactly one round; a round's entries collectively
// cover all holes of the course played, in course order.
type HoleEntry struct {
	ID      int64
	RoundID int64
	Hole    int
	Strokes int
	FIR     bool
	GIR     bool
	Putts   int
	Weather Weather
}

// RoundSummary is the derived per-round aggregate: field sums over the
// round's hole entries, no per-hole detail. Rounds without hole entries
// never appear in summaries (inner-join semantics).
type RoundSummary struct {
	RoundID  int64
	Course   string
	PlayedAt time.Time
	Strokes  int
	FIR      int
	GIR      int
	Putts    int
}

// RoundTotals holds the field sums for a single round's hole entries.
// Computed in memory right after submission so the caller gets instant
// feedback without a storage round-trip.
type RoundTotals struct {
	Strokes int
	FIR     int
	GIR     int
	Putts   int
}

// StatsOverview is the cross-round statistics report. When HasData is false
// no rounds exist and the numeric fields are meaningless; callers must
// branch on it rather than render zeros as real averages.
type StatsOverview struct {
	HasData     bool
	TotalRounds int
	AvgScore    float64
	AvgPutts    float64
	FairwayPct  float64
	GreenPct    float64
}
