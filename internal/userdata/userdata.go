// Package userdata persists profile, preference, and challenge history state.
package userdata

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vidyajay1/Lumora/internal/kv"
	"github.com/vidyajay1/Lumora/internal/model"
)

// Logical storage keys.
const (
	keyProfile     = "userData"
	keyPreferences = "userPreferences"
	keyHistory     = "challengeHistory"
	dailyKeyPrefix = "dailyChallenges_"
)

// historyCap bounds the generated-challenge history log.
const historyCap = 100

// snapshotVersion tags exported snapshots.
const snapshotVersion = "1.0"

// Store provides typed access to the persisted app state.
type Store struct {
	kv  *kv.Store
	now func() time.Time
}

// New wraps a key-value store with the app's persistence layout.
func New(store *kv.Store) *Store {
	return &Store{kv: store, now: time.Now}
}

// DailyKey returns the storage key for a calendar day's challenge batch.
func DailyKey(day string) string {
	return dailyKeyPrefix + day
}

// DefaultPreferences returns the hard-coded first-run preferences.
func DefaultPreferences() model.Preferences {
	return model.Preferences{
		Difficulty:    model.DifficultyMedium,
		Categories:    []string{"personal", "health", "learning"},
		Notifications: true,
		ReminderTime:  "09:00",
	}
}

// LoadProfile returns the stored user profile, or nil when none exists.
func (s *Store) LoadProfile(ctx context.Context) (*model.UserProfile, error) {
	var profile model.UserProfile
	ok, err := s.load(ctx, keyProfile, &profile)
	if err != nil || !ok {
		return nil, err
	}
	return &profile, nil
}

// SaveProfile persists the user profile.
func (s *Store) SaveProfile(ctx context.Context, profile *model.UserProfile) error {
	return s.save(ctx, keyProfile, profile)
}

// LoadPreferences returns stored preferences, falling back to defaults.
func (s *Store) LoadPreferences(ctx context.Context) (model.Preferences, error) {
	var prefs model.Preferences
	ok, err := s.load(ctx, keyPreferences, &prefs)
	if err != nil {
		return DefaultPreferences(), err
	}
	if !ok {
		return DefaultPreferences(), nil
	}
	return prefs, nil
}

// SavePreferences persists the preferences.
func (s *Store) SavePreferences(ctx context.Context, prefs model.Preferences) error {
	return s.save(ctx, keyPreferences, prefs)
}

// LoadHistory returns the generated-challenge history log, oldest first.
func (s *Store) LoadHistory(ctx context.Context) ([]model.Challenge, error) {
	var history []model.Challenge
	if _, err := s.load(ctx, keyHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// SaveHistory persists the history log, evicting the oldest entries past the cap.
func (s *Store) SaveHistory(ctx context.Context, history []model.Challenge) error {
	if len(history) > historyCap {
		history = history[len(history)-historyCap:]
	}
	return s.save(ctx, keyHistory, history)
}

// AppendHistory merges new challenges into the stored history log.
func (s *Store) AppendHistory(ctx context.Context, challenges []model.Challenge) error {
	history, err := s.LoadHistory(ctx)
	if err != nil {
		return err
	}
	return s.SaveHistory(ctx, append(history, challenges...))
}

// LoadDaily returns the cached challenge batch for a calendar day, or nil.
func (s *Store) LoadDaily(ctx context.Context, day string) ([]model.Challenge, error) {
	var challenges []model.Challenge
	if _, err := s.load(ctx, DailyKey(day), &challenges); err != nil {
		return nil, err
	}
	return challenges, nil
}

// SaveDaily caches a challenge batch under its calendar day key.
func (s *Store) SaveDaily(ctx context.Context, day string, challenges []model.Challenge) error {
	return s.save(ctx, DailyKey(day), challenges)
}

// UpdateDailyChallenge flips the completed flag of one challenge in a day's
// cached batch. Unknown IDs and missing batches are not errors.
func (s *Store) UpdateDailyChallenge(ctx context.Context, day, id string, completed bool) error {
	challenges, err := s.LoadDaily(ctx, day)
	if err != nil {
		return err
	}
	changed := false
	for i := range challenges {
		if challenges[i].ID != id {
			continue
		}
		challenges[i].Completed = completed
		if completed {
			at := s.now()
			challenges[i].CompletedAt = &at
		} else {
			challenges[i].CompletedAt = nil
		}
		changed = true
	}
	if !changed {
		return nil
	}
	return s.SaveDaily(ctx, day, challenges)
}

// Export assembles profile, preferences, and history into one snapshot.
func (s *Store) Export(ctx context.Context) (model.Snapshot, error) {
	profile, err := s.LoadProfile(ctx)
	if err != nil {
		return model.Snapshot{}, err
	}
	prefs, err := s.LoadPreferences(ctx)
	if err != nil {
		return model.Snapshot{}, err
	}
	history, err := s.LoadHistory(ctx)
	if err != nil {
		return model.Snapshot{}, err
	}
	return model.Snapshot{
		Version:     snapshotVersion,
		ExportedAt:  s.now(),
		Profile:     profile,
		Preferences: &prefs,
		History:     history,
	}, nil
}

// ClearAll removes every known storage key, including all per-day batches.
func (s *Store) ClearAll(ctx context.Context) error {
	keys := []string{keyProfile, keyPreferences, keyHistory}
	dailyKeys, err := s.kv.Keys(ctx, dailyKeyPrefix)
	if err != nil {
		return err
	}
	return s.kv.MultiRemove(ctx, append(keys, dailyKeys...)...)
}

func (s *Store) load(ctx context.Context, key string, out any) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.kv.Set(ctx, key, string(raw))
}
