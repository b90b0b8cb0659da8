// Package model defines shared data structures.
package model

import "time"

// Difficulty is the user-selected challenge difficulty.
type Difficulty string

// Supported difficulty levels.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Modifiers annotate a challenge with difficulty-dependent effort fields.
type Modifiers struct {
	Time       int
	Effort     int
	Complexity int
}

// Modifiers returns the effort annotations for the difficulty.
// Unknown values fall back to medium.
func (d Difficulty) Modifiers() Modifiers {
	switch d {
	case DifficultyEasy:
		return Modifiers{Time: 5, Effort: 1, Complexity: 1}
	case DifficultyHard:
		return Modifiers{Time: 30, Effort: 3, Complexity: 3}
	default:
		return Modifiers{Time: 15, Effort: 2, Complexity: 2}
	}
}

// Valid reports whether the difficulty is one of the supported levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Preferences holds user-chosen generation settings.
type Preferences struct {
	Difficulty    Difficulty `json:"difficulty"`
	Categories    []string   `json:"categories"`
	Notifications bool       `json:"notifications"`
	ReminderTime  string     `json:"reminderTime"`
}

// CompletionRecord logs one completed challenge.
type CompletionRecord struct {
	ID          string    `json:"id"`
	CompletedAt time.Time `json:"completedAt"`
}

// UserProfile is the single local user's persistent state.
type UserProfile struct {
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	JoinDate            time.Time          `json:"joinDate"`
	CompletedChallenges []CompletionRecord `json:"completedChallenges"`
	CurrentStreak       int                `json:"currentStreak"`
	TotalChallenges     int                `json:"totalChallenges"`
	Preferences         Preferences        `json:"preferences"`
}

// PersonalizationFactors capture the signals used when a challenge was generated.
type PersonalizationFactors struct {
	Hour              int            `json:"hour"`
	Weekday           int            `json:"weekday"`
	Difficulty        Difficulty     `json:"difficulty"`
	CategoryFrequency map[string]int `json:"categoryFrequency"`
	SuccessRate       float64        `json:"successRate"`
}

// Challenge is one generated task instance for a specific day.
type Challenge struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Category        string                 `json:"category"`
	Type            string                 `json:"type"`
	Difficulty      Difficulty             `json:"difficulty"`
	EstimatedTime   int                    `json:"estimatedTime"`
	EffortLevel     int                    `json:"effortLevel"`
	Complexity      int                    `json:"complexity"`
	CreatedAt       time.Time              `json:"createdAt"`
	Completed       bool                   `json:"completed"`
	CompletedAt     *time.Time             `json:"completedAt,omitempty"`
	UserNotes       string                 `json:"userNotes"`
	AIGenerated     bool                   `json:"aiGenerated"`
	Personalization PersonalizationFactors `json:"personalizationFactors"`
}

// Snapshot is the bulk export shape: everything the app persists, in one object.
type Snapshot struct {
	Version     string       `json:"version"`
	ExportedAt  time.Time    `json:"exportedAt"`
	Profile     *UserProfile `json:"profile"`
	Preferences *Preferences `json:"preferences"`
	History     []Challenge  `json:"history"`
}

// DayKey formats a time as the calendar-day string used for per-day cache keys.
func DayKey(t time.Time) string {
	return t.Format("Mon Jan 02 2006")
}
