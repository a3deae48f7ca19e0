// Package stats derives reporting metrics from stored round data. The
// functions in this file are pure: they operate on already-fetched snapshots
// and never touch storage, so every page view re-fetches and re-aggregates
// from scratch.
package stats

import (
	"github.com/fairwaylabs/golftrack-backend/internal/domain"
)

// TotalRounds returns the number of round summaries.
func TotalRounds(summaries []domain.RoundSummary) int {
	return len(summaries)
}

// AverageScore returns the arithmetic mean of per-round stroke totals.
// Returns domain.ErrNoData for an empty input: an average over zero rounds
// is undefined and callers must render "no data" instead of a number.
func AverageScore(summaries []domain.RoundSummary) (float64, error) {
	if len(summaries) == 0 {
		return 0, domain.ErrNoData
	}
	var total int
	for _, s := range summaries {
		total += s.Strokes
	}
	return float64(total) / float64(len(summaries)), nil
}

// AveragePutts returns the arithmetic mean of per-round putt totals.
// Same empty-input policy as AverageScore.
func AveragePutts(summaries []domain.RoundSummary) (float64, error) {
	if len(summaries) == 0 {
		return 0, domain.ErrNoData
	}
	var total int
	for _, s := range summaries {
		total += s.Putts
	}
	return float64(total) / float64(len(summaries)), nil
}

// FairwayPercentage returns the share of hole entries with the fairway hit,
// as a percentage. Unlike the averages, an empty input is defined as 0, not
// an error. Every entry counts in the denominator, including holes without
// a fairway.
func FairwayPercentage(entries []domain.HoleEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var hit int
	for _, e := range entries {
		if e.FIR {
			hit++
		}
	}
	return float64(hit) / float64(len(entries)) * 100
}

// GreenPercentage returns the share of hole entries with the green hit in
// regulation, as a percentage. Same empty-input policy as FairwayPercentage.
func GreenPercentage(entries []domain.HoleEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var hit int
	for _, e := range entries {
		if e.GIR {
			hit++
		}
	}
	return float64(hit) / float64(len(entries)) * 100
}

// RoundTotals sums the fields of one round's hole entries. Used right after
// submission for instant feedback without a storage round-trip.
func RoundTotals(entries []domain.HoleEntry) domain.RoundTotals {
	var t domain.RoundTotals
	for _, e := range entries {
		t.Strokes += e.Strokes
		t.Putts += e.Putts
		if e.FIR {
			t.FIR++
		}
		if e.GIR {
			t.GIR++
		}
	}
	return t
}
