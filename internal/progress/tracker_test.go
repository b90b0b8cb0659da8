package progress

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/vidyajay1/Lumora/internal/kv"
	"github.com/vidyajay1/Lumora/internal/model"
	"github.com/vidyajay1/Lumora/internal/userdata"
)

func newTestTracker(t *testing.T) (*Tracker, *userdata.Store) {
	t.Helper()
	dir := t.TempDir()
	st, err := kv.Open(filepath.Join(dir, "lumora.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	data := userdata.New(st)
	return New(data), data
}

func TestBootstrapCreatesProfile(t *testing.T) {
	tracker, data := newTestTracker(t)
	ctx := context.Background()

	before, err := data.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if before != nil {
		t.Fatalf("expected no profile before bootstrap")
	}

	profile := tracker.Bootstrap(ctx)
	if profile.CurrentStreak != 0 || profile.TotalChallenges != 0 {
		t.Fatalf("fresh profile should start at zero: %+v", profile)
	}
	if profile.ID == "" || profile.Name == "" {
		t.Fatalf("incomplete profile: %+v", profile)
	}

	again := tracker.Bootstrap(ctx)
	if again.ID != profile.ID {
		t.Fatalf("bootstrap must load the existing profile, got %s vs %s", again.ID, profile.ID)
	}
}

func TestFirstCompletionStartsStreak(t *testing.T) {
	tracker, data := newTestTracker(t)
	ctx := context.Background()
	tracker.now = func() time.Time { return time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local) }

	if ok := tracker.UpdateProgress(ctx, "ch_1", true); !ok {
		t.Fatalf("update should succeed")
	}
	profile, err := data.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if profile.CurrentStreak != 1 {
		t.Fatalf("expected streak 1, got %d", profile.CurrentStreak)
	}
	if profile.TotalChallenges != 1 {
		t.Fatalf("expected 1 total, got %d", profile.TotalChallenges)
	}
	if len(profile.CompletedChallenges) != 1 || profile.CompletedChallenges[0].ID != "ch_1" {
		t.Fatalf("unexpected completion log: %+v", profile.CompletedChallenges)
	}
}

func TestConsecutiveDaysIncrementStreak(t *testing.T) {
	tracker, data := newTestTracker(t)
	ctx := context.Background()
	day := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)

	for i := 0; i < 3; i++ {
		current := day.AddDate(0, 0, i)
		tracker.now = func() time.Time { return current }
		if ok := tracker.UpdateProgress(ctx, "ch", true); !ok {
			t.Fatalf("update %d should succeed", i)
		}
	}
	profile, err := data.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if profile.CurrentStreak != 3 {
		t.Fatalf("expected streak 3 after three consecutive days, got %d", profile.CurrentStreak)
	}
}

func TestGapResetsStreak(t *testing.T) {
	tracker, data := newTestTracker(t)
	ctx := context.Background()
	day := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)

	tracker.now = func() time.Time { return day }
	tracker.UpdateProgress(ctx, "ch_1", true)
	tracker.now = func() time.Time { return day.AddDate(0, 0, 1) }
	tracker.UpdateProgress(ctx, "ch_2", true)
	tracker.now = func() time.Time { return day.AddDate(0, 0, 4) }
	tracker.UpdateProgress(ctx, "ch_3", true)

	profile, err := data.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if profile.CurrentStreak != 1 {
		t.Fatalf("expected streak reset to 1 after a gap, got %d", profile.CurrentStreak)
	}
	if profile.TotalChallenges != 3 {
		t.Fatalf("expected 3 totals, got %d", profile.TotalChallenges)
	}
}

func TestSameDayRepeatKeepsStreak(t *testing.T) {
	tracker, data := newTestTracker(t)
	ctx := context.Background()
	day := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)

	tracker.now = func() time.Time { return day }
	tracker.UpdateProgress(ctx, "ch_1", true)
	tracker.now = func() time.Time { return day.AddDate(0, 0, 1) }
	tracker.UpdateProgress(ctx, "ch_2", true)
	tracker.now = func() time.Time { return day.AddDate(0, 0, 1).Add(2 * time.Hour) }
	tracker.UpdateProgress(ctx, "ch_3", true)

	profile, err := data.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if profile.CurrentStreak != 2 {
		t.Fatalf("same-day repeat should keep streak at 2, got %d", profile.CurrentStreak)
	}
	if profile.TotalChallenges != 3 {
		t.Fatalf("totals should still count every completion, got %d", profile.TotalChallenges)
	}
}

func TestUpdateProgressMarksDailyAndHistory(t *testing.T) {
	tracker, data := newTestTracker(t)
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	tracker.now = func() time.Time { return now }
	day := model.DayKey(now)

	batch := []model.Challenge{{ID: "ch_1"}, {ID: "ch_2"}}
	if err := data.SaveDaily(ctx, day, batch); err != nil {
		t.Fatalf("save daily: %v", err)
	}
	if err := data.SaveHistory(ctx, batch); err != nil {
		t.Fatalf("save history: %v", err)
	}

	if ok := tracker.UpdateProgress(ctx, "ch_1", true); !ok {
		t.Fatalf("update should succeed")
	}

	daily, err := data.LoadDaily(ctx, day)
	if err != nil {
		t.Fatalf("load daily: %v", err)
	}
	if !daily[0].Completed || daily[1].Completed {
		t.Fatalf("unexpected daily flags: %+v", daily)
	}
	history, err := data.LoadHistory(ctx)
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	if !history[0].Completed || history[0].CompletedAt == nil {
		t.Fatalf("history entry should be marked completed: %+v", history[0])
	}
}

func TestUncompleteDoesNotTouchProfile(t *testing.T) {
	tracker, data := newTestTracker(t)
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	tracker.now = func() time.Time { return now }

	tracker.UpdateProgress(ctx, "ch_1", true)
	if ok := tracker.UpdateProgress(ctx, "ch_1", false); !ok {
		t.Fatalf("uncomplete should succeed")
	}
	profile, err := data.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if profile.TotalChallenges != 1 || profile.CurrentStreak != 1 {
		t.Fatalf("uncomplete must not rewrite the completion log: %+v", profile)
	}
}

func TestSummary(t *testing.T) {
	tracker, data := newTestTracker(t)
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	tracker.now = func() time.Time { return now }

	if err := data.SaveHistory(ctx, []model.Challenge{{ID: "ch_1"}, {ID: "ch_2"}}); err != nil {
		t.Fatalf("save history: %v", err)
	}
	tracker.UpdateProgress(ctx, "ch_1", true)

	summary := tracker.Summary(ctx)
	if summary.CurrentStreak != 1 || summary.TotalChallenges != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.SuccessRate != 0.5 {
		t.Fatalf("expected success rate 0.5, got %f", summary.SuccessRate)
	}
}
