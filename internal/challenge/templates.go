package challenge

// templateGroup is one themed set of task description stubs for a category.
type templateGroup struct {
	taskType string
	texts    []string
}

// templates is the static challenge corpus, keyed by category.
// Texts intentionally carry the literal words the personalizer rewrites
// ("today", "5 minutes", "15 minutes", "30 minutes").
var templates = map[string][]templateGroup{
	"personal": {
		{
			taskType: "habit",
			texts: []string{
				"Spend 15 minutes today organizing one small area of your home",
				"Write down three things you are grateful for today",
				"Do one thing today that you have been putting off all week",
			},
		},
		{
			taskType: "reflection",
			texts: []string{
				"Take 10 minutes today to journal about how this week is going",
				"Reflect today on one decision you are proud of and why",
				"Spend 5 minutes today planning tomorrow before it starts",
			},
		},
	},
	"health": {
		{
			taskType: "nutrition",
			texts: []string{
				"Drink a glass of water before every meal today",
				"Swap one snack today for a piece of fruit",
				"Eat one meal today without any screen in front of you",
			},
		},
		{
			taskType: "rest",
			texts: []string{
				"Go to bed 15 minutes earlier today than you did yesterday",
				"Take a 10 minutes screen-free break this afternoon today",
				"Step outside for 5 minutes of fresh air today",
			},
		},
	},
	"learning": {
		{
			taskType: "study",
			texts: []string{
				"Read 15 minutes today from a book you have already started",
				"Watch a short tutorial today about a skill you want to build",
				"Spend 10 minutes today reviewing notes from something you learned recently",
			},
		},
		{
			taskType: "practice",
			texts: []string{
				"Practice a new word or phrase in another language today",
				"Teach someone one thing today that you learned this month",
				"Spend 15 minutes today on a puzzle or brain teaser",
			},
		},
	},
	"fitness": {
		{
			taskType: "movement",
			texts: []string{
				"Take a 15 minutes walk today at a brisk pace",
				"Do 10 push-ups and 10 squats today before lunch",
				"Stretch for 5 minutes today right after waking up",
			},
		},
		{
			taskType: "endurance",
			texts: []string{
				"Climb stairs instead of taking the elevator today",
				"Hold a plank today for as long as you comfortably can",
				"Dance to one full song today with full energy",
			},
		},
	},
	"mindfulness": {
		{
			taskType: "meditation",
			texts: []string{
				"Sit quietly for 5 minutes today focusing only on your breath",
				"Do a 10 minutes body-scan meditation today before bed",
				"Pause three times today to notice how you feel",
			},
		},
		{
			taskType: "awareness",
			texts: []string{
				"Eat one meal today slowly, noticing every flavor",
				"Spend 5 minutes today observing your surroundings without judgment",
				"Write down one worry today and one step to address it",
			},
		},
	},
	"social": {
		{
			taskType: "connection",
			texts: []string{
				"Send a message today to a friend you have not talked to in a while",
				"Give a genuine compliment today to someone around you",
				"Call a family member today just to check in",
			},
		},
		{
			taskType: "kindness",
			texts: []string{
				"Do one small unexpected favor today for someone",
				"Thank someone today who helped you recently",
				"Spend 10 minutes today really listening without interrupting",
			},
		},
	},
	"creativity": {
		{
			taskType: "making",
			texts: []string{
				"Sketch, doodle, or collage for 15 minutes today",
				"Write a six-word story today about your morning",
				"Take five photos today of things you find beautiful",
			},
		},
		{
			taskType: "imagination",
			texts: []string{
				"Brainstorm 10 wild ideas today about a problem you care about",
				"Rearrange something in your space today to make it inspire you",
				"Spend 5 minutes today imagining your ideal day in detail",
			},
		},
	},
}

// genericTemplates backs categories the corpus does not know about.
var genericTemplates = []templateGroup{
	{
		taskType: "action",
		texts: []string{
			"Spend 15 minutes today making progress on something that matters to you",
			"Pick one small goal today and finish it before evening",
			"Take 5 minutes today to plan your next step in this area",
		},
	},
}

var categoryEmoji = map[string]string{
	"personal":    "🌟",
	"health":      "💚",
	"learning":    "📚",
	"fitness":     "🏃",
	"mindfulness": "🧘",
	"social":      "🤝",
	"creativity":  "🎨",
}

const defaultEmoji = "✨"

func groupsFor(category string) []templateGroup {
	if groups, ok := templates[category]; ok {
		return groups
	}
	return genericTemplates
}

func emojiFor(category string) string {
	if emoji, ok := categoryEmoji[category]; ok {
		return emoji
	}
	return defaultEmoji
}
