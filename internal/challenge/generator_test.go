package challenge

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/vidyajay1/Lumora/internal/kv"
	"github.com/vidyajay1/Lumora/internal/model"
	"github.com/vidyajay1/Lumora/internal/userdata"
)

var testDay = time.Date(2024, 1, 1, 9, 30, 0, 0, time.Local)

func newTestGenerator(t *testing.T, seed int64) (*Generator, *userdata.Store) {
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
	gen := New(data)
	gen.rnd = rand.New(rand.NewSource(seed))
	gen.now = func() time.Time { return testDay }
	return gen, data
}

func TestGenerateDailyProducesThree(t *testing.T) {
	gen, _ := newTestGenerator(t, 1)
	challenges := gen.GenerateDaily(context.Background())
	if len(challenges) != 3 {
		t.Fatalf("expected 3 challenges, got %d", len(challenges))
	}
	for _, ch := range challenges {
		if ch.ID == "" || ch.Title == "" || ch.Description == "" {
			t.Fatalf("incomplete challenge: %+v", ch)
		}
		if !ch.AIGenerated {
			t.Fatalf("challenge should be marked as generated")
		}
	}
}

func TestGeneratedCategoriesAreConfigured(t *testing.T) {
	gen, data := newTestGenerator(t, 2)
	ctx := context.Background()
	prefs := userdata.DefaultPreferences()
	if err := data.SavePreferences(ctx, prefs); err != nil {
		t.Fatalf("save preferences: %v", err)
	}
	gen.Initialize(ctx)

	configured := map[string]bool{}
	for _, cat := range prefs.Categories {
		configured[cat] = true
	}
	seen := map[string]bool{}
	for _, ch := range gen.GenerateDaily(ctx) {
		if !configured[ch.Category] {
			t.Fatalf("category %q not in configured set", ch.Category)
		}
		seen[ch.Category] = true
	}
	// Three distinct categories configured: draws are without replacement.
	if len(seen) != 3 {
		t.Fatalf("expected 3 distinct categories, got %v", seen)
	}
}

func TestSingleCategoryPreferences(t *testing.T) {
	gen, data := newTestGenerator(t, 3)
	ctx := context.Background()
	prefs := userdata.DefaultPreferences()
	prefs.Categories = []string{"health"}
	if err := data.SavePreferences(ctx, prefs); err != nil {
		t.Fatalf("save preferences: %v", err)
	}
	gen.Initialize(ctx)

	challenges := gen.GenerateDaily(ctx)
	if len(challenges) != 3 {
		t.Fatalf("expected 3 challenges, got %d", len(challenges))
	}
	for _, ch := range challenges {
		if ch.Category != "health" {
			t.Fatalf("expected health, got %q", ch.Category)
		}
	}
}

func TestDifficultyModifiers(t *testing.T) {
	cases := []struct {
		difficulty model.Difficulty
		time       int
		effort     int
	}{
		{model.DifficultyEasy, 5, 1},
		{model.DifficultyMedium, 15, 2},
		{model.DifficultyHard, 30, 3},
	}
	for _, tc := range cases {
		gen, data := newTestGenerator(t, 4)
		ctx := context.Background()
		prefs := userdata.DefaultPreferences()
		prefs.Difficulty = tc.difficulty
		if err := data.SavePreferences(ctx, prefs); err != nil {
			t.Fatalf("save preferences: %v", err)
		}
		gen.Initialize(ctx)
		for _, ch := range gen.GenerateDaily(ctx) {
			if ch.EstimatedTime != tc.time {
				t.Fatalf("%s: expected estimated time %d, got %d", tc.difficulty, tc.time, ch.EstimatedTime)
			}
			if ch.EffortLevel != tc.effort {
				t.Fatalf("%s: expected effort %d, got %d", tc.difficulty, tc.effort, ch.EffortLevel)
			}
		}
	}
}

func TestTodaysChallengesIdempotent(t *testing.T) {
	gen, data := newTestGenerator(t, 5)
	ctx := context.Background()

	first := gen.TodaysChallenges(ctx)
	if len(first) != 3 {
		t.Fatalf("expected 3 challenges, got %d", len(first))
	}
	second := gen.TodaysChallenges(ctx)
	if len(second) != 3 {
		t.Fatalf("expected 3 cached challenges, got %d", len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("slot %d regenerated: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
	history, err := data.LoadHistory(ctx)
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("second call must not grow history: got %d entries", len(history))
	}
}

func TestTodaysChallengesNewDayRegenerates(t *testing.T) {
	gen, data := newTestGenerator(t, 6)
	ctx := context.Background()

	first := gen.TodaysChallenges(ctx)
	gen.now = func() time.Time { return testDay.AddDate(0, 0, 1) }
	second := gen.TodaysChallenges(ctx)
	if first[0].ID == second[0].ID {
		t.Fatalf("expected a fresh batch on the next day")
	}
	history, err := data.LoadHistory(ctx)
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	if len(history) != 6 {
		t.Fatalf("expected 6 history entries across two days, got %d", len(history))
	}
}

func TestPersonalizationFactors(t *testing.T) {
	gen, data := newTestGenerator(t, 7)
	ctx := context.Background()

	challenges := gen.GenerateDaily(ctx)
	factors := challenges[0].Personalization
	if factors.Hour != 9 {
		t.Fatalf("expected hour 9, got %d", factors.Hour)
	}
	if factors.Weekday != int(time.Monday) {
		t.Fatalf("expected Monday, got %d", factors.Weekday)
	}
	if factors.SuccessRate != 0.8 {
		t.Fatalf("expected default success rate 0.8 with empty history, got %f", factors.SuccessRate)
	}

	history := []model.Challenge{
		{Category: "health", Completed: true},
		{Category: "health", Completed: false},
	}
	if err := data.SaveHistory(ctx, history); err != nil {
		t.Fatalf("save history: %v", err)
	}
	gen.Initialize(ctx)
	factors = gen.GenerateDaily(ctx)[0].Personalization
	if factors.CategoryFrequency["health"] != 2 {
		t.Fatalf("expected health frequency 2, got %v", factors.CategoryFrequency)
	}
	if factors.SuccessRate != 0.5 {
		t.Fatalf("expected success rate 0.5, got %f", factors.SuccessRate)
	}
}

func TestPadWithReplacementForSmallCategorySets(t *testing.T) {
	gen, data := newTestGenerator(t, 8)
	ctx := context.Background()
	prefs := userdata.DefaultPreferences()
	prefs.Categories = []string{"health", "learning"}
	if err := data.SavePreferences(ctx, prefs); err != nil {
		t.Fatalf("save preferences: %v", err)
	}
	gen.Initialize(ctx)

	picked := gen.pickCategories()
	if len(picked) != 3 {
		t.Fatalf("expected 3 picks, got %v", picked)
	}
	// The first two draws are without replacement, so both categories appear.
	firstTwo := map[string]bool{picked[0]: true, picked[1]: true}
	if !firstTwo["health"] || !firstTwo["learning"] {
		t.Fatalf("expected both categories in first two slots, got %v", picked)
	}
}
