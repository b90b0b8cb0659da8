// Package stats contains history-derived signals and reporting.
package stats

import (
	"time"

	"github.com/vidyajay1/Lumora/internal/model"
)

// defaultSuccessRate is assumed until any history exists.
const defaultSuccessRate = 0.8

// CategoryFrequency counts category occurrences over the last window history entries.
func CategoryFrequency(history []model.Challenge, window int) map[string]int {
	freq := map[string]int{}
	if window <= 0 || len(history) == 0 {
		return freq
	}
	start := 0
	if len(history) > window {
		start = len(history) - window
	}
	for _, ch := range history[start:] {
		freq[ch.Category]++
	}
	return freq
}

// SuccessRate computes the completed fraction of the history log.
func SuccessRate(history []model.Challenge) float64 {
	if len(history) == 0 {
		return defaultSuccessRate
	}
	completed := 0
	for _, ch := range history {
		if ch.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(history))
}

// RecentCompletions returns the latest n completion records, newest first.
func RecentCompletions(profile *model.UserProfile, n int) []model.CompletionRecord {
	if profile == nil || n <= 0 || len(profile.CompletedChallenges) == 0 {
		return nil
	}
	records := profile.CompletedChallenges
	if len(records) > n {
		records = records[len(records)-n:]
	}
	out := make([]model.CompletionRecord, len(records))
	for i, rec := range records {
		out[len(records)-1-i] = rec
	}
	return out
}

// Summary aggregates the profile and history into headline numbers.
type Summary struct {
	CurrentStreak   int
	TotalChallenges int
	SuccessRate     float64
	JoinDate        time.Time
}

// BuildSummary derives a Summary from the profile and history log.
func BuildSummary(profile *model.UserProfile, history []model.Challenge) Summary {
	s := Summary{SuccessRate: SuccessRate(history)}
	if profile != nil {
		s.CurrentStreak = profile.CurrentStreak
		s.TotalChallenges = profile.TotalChallenges
		s.JoinDate = profile.JoinDate
	}
	return s
}
