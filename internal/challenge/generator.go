// Package challenge generates the daily challenge batches.
package challenge

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/vidyajay1/Lumora/internal/model"
	"github.com/vidyajay1/Lumora/internal/stats"
	"github.com/vidyajay1/Lumora/internal/userdata"
)

// batchSize is the number of challenges generated per calendar day.
const batchSize = 3

// factorWindow is how many recent history entries feed category frequency.
const factorWindow = 10

// Generator produces and caches the per-day challenge batches.
// Construct one per process and pass it around; it holds the loaded
// preferences and history between calls.
type Generator struct {
	data *userdata.Store
	rnd  *rand.Rand
	now  func() time.Time

	prefs       model.Preferences
	history     []model.Challenge
	initialized bool
}

// New returns a Generator seeded with the current time.
func New(data *userdata.Store) *Generator {
	return &Generator{
		data: data,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

// Initialize loads preferences and history. Storage failures are logged and
// absorbed: the generator falls back to defaults and an empty history.
func (g *Generator) Initialize(ctx context.Context) {
	prefs, err := g.data.LoadPreferences(ctx)
	if err != nil {
		logErrf("failed to load preferences: %v\n", err)
		prefs = userdata.DefaultPreferences()
	}
	g.prefs = prefs

	history, err := g.data.LoadHistory(ctx)
	if err != nil {
		logErrf("failed to load challenge history: %v\n", err)
		history = nil
	}
	g.history = history
	g.initialized = true
}

// TodaysChallenges returns the cached batch for the current calendar day,
// generating, caching, and logging a fresh one when none exists.
// Failures are logged and absorbed, never returned.
func (g *Generator) TodaysChallenges(ctx context.Context) []model.Challenge {
	if !g.initialized {
		g.Initialize(ctx)
	}
	day := model.DayKey(g.now())
	cached, err := g.data.LoadDaily(ctx, day)
	if err != nil {
		logErrf("failed to load cached challenges: %v\n", err)
	}
	if len(cached) > 0 {
		return cached
	}

	challenges := g.GenerateDaily(ctx)
	if err := g.data.SaveDaily(ctx, day, challenges); err != nil {
		logErrf("failed to cache daily challenges: %v\n", err)
	}
	if err := g.data.AppendHistory(ctx, challenges); err != nil {
		logErrf("failed to append challenge history: %v\n", err)
	} else {
		g.history = append(g.history, challenges...)
	}
	return challenges
}

// GenerateDaily builds a fresh uncached batch of challenges. It does not
// touch the per-day cache or the history log.
func (g *Generator) GenerateDaily(ctx context.Context) []model.Challenge {
	if !g.initialized {
		g.Initialize(ctx)
	}
	categories := g.pickCategories()
	challenges := make([]model.Challenge, 0, batchSize)
	for slot, category := range categories {
		challenges = append(challenges, g.synthesize(category, slot))
	}
	return challenges
}

// pickCategories draws batchSize categories from the configured set:
// without replacement while distinct categories remain, then padded by
// uniform draws with replacement. Draw order is slot order.
func (g *Generator) pickCategories() []string {
	configured := g.prefs.Categories
	if len(configured) == 0 {
		configured = userdata.DefaultPreferences().Categories
	}
	pool := make([]string, len(configured))
	copy(pool, configured)

	picked := make([]string, 0, batchSize)
	for len(picked) < batchSize && len(pool) > 0 {
		idx := g.rnd.Intn(len(pool))
		picked = append(picked, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	for len(picked) < batchSize {
		picked = append(picked, configured[g.rnd.Intn(len(configured))])
	}
	return picked
}

func (g *Generator) synthesize(category string, slot int) model.Challenge {
	groups := groupsFor(category)
	group := groups[g.rnd.Intn(len(groups))]
	text := group.texts[g.rnd.Intn(len(group.texts))]

	now := g.now()
	difficulty := g.prefs.Difficulty
	if !difficulty.Valid() {
		difficulty = model.DifficultyMedium
	}
	mods := difficulty.Modifiers()
	description := personalizeText(text, difficulty, now.Hour())

	return model.Challenge{
		ID:            fmt.Sprintf("%s_%d", uuid.NewString(), slot),
		Title:         deriveTitle(category, description),
		Description:   description,
		Category:      category,
		Type:          group.taskType,
		Difficulty:    difficulty,
		EstimatedTime: mods.Time,
		EffortLevel:   mods.Effort,
		Complexity:    mods.Complexity,
		CreatedAt:     now,
		AIGenerated:   true,
		Personalization: model.PersonalizationFactors{
			Hour:              now.Hour(),
			Weekday:           int(now.Weekday()),
			Difficulty:        difficulty,
			CategoryFrequency: stats.CategoryFrequency(g.history, factorWindow),
			SuccessRate:       stats.SuccessRate(g.history),
		},
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
