// Package progress tracks challenge completions and the daily streak.
package progress

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/vidyajay1/Lumora/internal/model"
	"github.com/vidyajay1/Lumora/internal/stats"
	"github.com/vidyajay1/Lumora/internal/userdata"
)

// Tracker owns the user profile and its streak transitions.
type Tracker struct {
	data *userdata.Store
	now  func() time.Time
}

// New returns a Tracker over the given persistence layer.
func New(data *userdata.Store) *Tracker {
	return &Tracker{data: data, now: time.Now}
}

// Bootstrap loads the profile, creating and persisting a fresh one on first
// launch. Storage failures are logged and absorbed: the returned profile is
// always usable.
func (t *Tracker) Bootstrap(ctx context.Context) *model.UserProfile {
	profile, err := t.data.LoadProfile(ctx)
	if err != nil {
		logErrf("failed to load profile: %v\n", err)
	}
	if profile != nil {
		return profile
	}
	now := t.now()
	profile = &model.UserProfile{
		ID:          fmt.Sprintf("user_%d", now.UnixMilli()),
		Name:        "Challenger",
		JoinDate:    now,
		Preferences: userdata.DefaultPreferences(),
	}
	if err := t.data.SaveProfile(ctx, profile); err != nil {
		logErrf("failed to save new profile: %v\n", err)
	}
	return profile
}

// UpdateProgress records a completion state change for a challenge and
// recomputes the streak. Returns false when persistence fails; never panics
// or propagates errors.
func (t *Tracker) UpdateProgress(ctx context.Context, challengeID string, completed bool) bool {
	now := t.now()
	day := model.DayKey(now)
	if err := t.data.UpdateDailyChallenge(ctx, day, challengeID, completed); err != nil {
		logErrf("failed to update daily batch: %v\n", err)
		return false
	}
	t.markHistory(ctx, challengeID, completed, now)

	if !completed {
		return true
	}

	profile := t.Bootstrap(ctx)
	profile.CurrentStreak = nextStreak(profile, now)
	profile.CompletedChallenges = append(profile.CompletedChallenges, model.CompletionRecord{
		ID:          challengeID,
		CompletedAt: now,
	})
	profile.TotalChallenges++

	if err := t.data.SaveProfile(ctx, profile); err != nil {
		logErrf("failed to save profile: %v\n", err)
		return false
	}
	return true
}

// nextStreak computes the streak value after a completion at now, given the
// profile state before the new record is appended. Day comparison is a
// string-exact calendar day match.
//
// Same-day repeat completions leave the streak unchanged.
func nextStreak(profile *model.UserProfile, now time.Time) int {
	if len(profile.CompletedChallenges) == 0 {
		return 1
	}
	prev := profile.CompletedChallenges[len(profile.CompletedChallenges)-1]
	prevDay := model.DayKey(prev.CompletedAt)
	today := model.DayKey(now)
	yesterday := model.DayKey(now.AddDate(0, 0, -1))

	switch prevDay {
	case yesterday:
		return profile.CurrentStreak + 1
	case today:
		return profile.CurrentStreak
	default:
		return 1
	}
}

// Summary assembles the headline progress numbers for the UIs.
func (t *Tracker) Summary(ctx context.Context) stats.Summary {
	profile, err := t.data.LoadProfile(ctx)
	if err != nil {
		logErrf("failed to load profile: %v\n", err)
	}
	history, err := t.data.LoadHistory(ctx)
	if err != nil {
		logErrf("failed to load history: %v\n", err)
	}
	return stats.BuildSummary(profile, history)
}

// markHistory flips the completed flag on the matching history entry so the
// success-rate signal tracks real completions. Best effort.
func (t *Tracker) markHistory(ctx context.Context, challengeID string, completed bool, now time.Time) {
	history, err := t.data.LoadHistory(ctx)
	if err != nil {
		logErrf("failed to load history: %v\n", err)
		return
	}
	changed := false
	for i := range history {
		if history[i].ID != challengeID {
			continue
		}
		history[i].Completed = completed
		if completed {
			at := now
			history[i].CompletedAt = &at
		} else {
			history[i].CompletedAt = nil
		}
		changed = true
	}
	if !changed {
		return
	}
	if err := t.data.SaveHistory(ctx, history); err != nil {
		logErrf("failed to save history: %v\n", err)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
