package challenge

import (
	"strings"

	"github.com/vidyajay1/Lumora/internal/model"
)

// Difficulty-dependent duration rewrites. Literal first-match text replacement:
// cosmetic, not a consistent rescale. Kept behind this one function so the
// mechanism can later move to templated placeholders without contract changes.
// Pairs are ordered longest-phrase-first so "15 minutes" never matches the
// "5 minutes" rule; only the first matching pair is applied.
var durationRewrites = map[model.Difficulty][][2]string{
	model.DifficultyEasy: {
		{"30 minutes", "10 minutes"},
		{"15 minutes", "5 minutes"},
		{"10 minutes", "5 minutes"},
	},
	model.DifficultyHard: {
		{"15 minutes", "30 minutes"},
		{"10 minutes", "30 minutes"},
		{"5 minutes", "15 minutes"},
	},
}

// personalizeText rewrites a template for the current hour and difficulty.
func personalizeText(text string, difficulty model.Difficulty, hour int) string {
	out := strings.ReplaceAll(text, "today", timeOfDayPhrase(hour))
	for _, pair := range durationRewrites[difficulty] {
		if strings.Contains(out, pair[0]) {
			out = strings.Replace(out, pair[0], pair[1], 1)
			break
		}
	}
	return out
}

func timeOfDayPhrase(hour int) string {
	switch {
	case hour < 12:
		return "this morning"
	case hour < 17:
		return "this afternoon"
	default:
		return "this evening"
	}
}

// deriveTitle builds a short title from the personalized description:
// category emoji, first four words, ellipsis.
func deriveTitle(category, description string) string {
	words := strings.Fields(description)
	if len(words) > 4 {
		words = words[:4]
	}
	return emojiFor(category) + " " + strings.Join(words, " ") + "..."
}
