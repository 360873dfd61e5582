package services

import (
	"time"

	"solace/pkg/utils"
)

// FallbackProvider serves deterministic offline content when an AI call is
// unavailable or over quota. Selection rotates by day-of-year so a user sees
// a stable prompt across reloads within one day and a fresh one tomorrow.
type FallbackProviderInterface interface {
	FallbackPrompt(mood MoodLevel, previouslyShown []string) string
	FallbackAffirmation(mood MoodLevel) string
	FallbackQuote(mood MoodLevel) (quote string, attribution string)
}

type FallbackProvider struct {
	now func() time.Time
	loc *time.Location
}

func NewFallbackProvider() *FallbackProvider {
	return &FallbackProvider{now: time.Now, loc: time.Local}
}

var generalPrompts = []string{
	"What is one small moment from today you want to remember?",
	"What's been taking up most of your headspace lately?",
	"Write about something you're looking forward to.",
	"What would you tell a friend who was feeling the way you feel right now?",
	"Describe today in three words, then explain why you chose them.",
	"What's one thing you did today that you're glad you did?",
	"If today had a soundtrack, what would be on it?",
}

var moodPrompts = map[MoodLevel][]string{
	MoodStruggling: {
		"What's the heaviest thing you're carrying right now? You don't have to fix it — just name it.",
		"When did you last feel safe? Describe that place or moment.",
		"What's one tiny thing that felt manageable today?",
	},
	MoodLow: {
		"What drained you today, and what gave even a little energy back?",
		"Write a letter to this feeling. What does it want you to know?",
		"What's something kind you could do for yourself tonight?",
	},
	MoodNeutral: {
		"What's one thing you noticed today that you usually walk past?",
		"If nothing had to change, what would you keep exactly as it is?",
		"What are you curious about right now?",
	},
	MoodGood: {
		"What went right today? Trace it back — what made it possible?",
		"Who contributed to this good feeling? What would you tell them?",
		"What do you want more of in your life, based on today?",
	},
	MoodAmazing: {
		"Capture this feeling in detail — what does it feel like in your body?",
		"What did today prove to you about yourself?",
		"If you could bottle today, when would you open it again?",
	},
}

var fallbackAffirmations = map[MoodLevel]string{
	MoodStruggling: "You are still here, and that takes more strength than anyone sees. This feeling is not permanent.",
	MoodLow:        "It's okay to have slow days. Showing up for yourself by writing this down already counts.",
	MoodNeutral:    "Steady days build the ground everything else grows from. You're doing better than you think.",
	MoodGood:       "You noticed the good today — that's a skill, and you're getting better at it.",
	MoodAmazing:    "Take a moment to really own this. You helped make today what it was.",
}

const genericAffirmation = "Whatever today held, writing it down matters. You're building something real, one entry at a time."

type fallbackQuote struct {
	quote       string
	attribution string
}

var fallbackQuotes = map[MoodLevel][]fallbackQuote{
	MoodStruggling: {
		{"Even the darkest night will end and the sun will rise.", "Victor Hugo"},
		{"You have power over your mind — not outside events. Realize this, and you will find strength.", "Marcus Aurelius"},
	},
	MoodLow: {
		{"This too shall pass.", "Persian proverb"},
		{"Rest is not idleness.", "John Lubbock"},
	},
	MoodNeutral: {
		{"The quieter you become, the more you can hear.", "Ram Dass"},
		{"Ordinary life is pretty complex stuff.", "Harvey Pekar"},
	},
	MoodGood: {
		{"Happiness is only real when shared.", "Christopher McCandless"},
		{"Joy is the simplest form of gratitude.", "Karl Barth"},
	},
	MoodAmazing: {
		{"Throw your dreams into space like a kite, and you do not know what it will bring back.", "Anaïs Nin"},
		{"The world is full of magic things, patiently waiting for our senses to grow sharper.", "W.B. Yeats"},
	},
}

var genericQuote = fallbackQuote{"No feeling is final.", "Rainer Maria Rilke"}

func (f *FallbackProvider) dayIndex(poolLen int) int {
	if poolLen <= 0 {
		return 0
	}
	return utils.DayOfYear(f.now(), f.loc) % poolLen
}

// FallbackPrompt picks today's prompt from the mood pool merged with the
// general pool. Prompts already shown are filtered out before indexing; if
// that empties the pool the unfiltered pool is used — there is always a
// prompt.
func (f *FallbackProvider) FallbackPrompt(mood MoodLevel, previouslyShown []string) string {
	pool := append([]string{}, moodPrompts[mood]...)
	pool = append(pool, generalPrompts...)
	if len(pool) == 0 {
		pool = generalPrompts
	}

	shown := make(map[string]bool, len(previouslyShown))
	for _, p := range previouslyShown {
		shown[p] = true
	}
	fresh := make([]string, 0, len(pool))
	for _, p := range pool {
		if !shown[p] {
			fresh = append(fresh, p)
		}
	}
	if len(fresh) == 0 {
		fresh = pool
	}

	return fresh[f.dayIndex(len(fresh))]
}

func (f *FallbackProvider) FallbackAffirmation(mood MoodLevel) string {
	if text, ok := fallbackAffirmations[mood]; ok {
		return text
	}
	return genericAffirmation
}

func (f *FallbackProvider) FallbackQuote(mood MoodLevel) (string, string) {
	pool, ok := fallbackQuotes[mood]
	if !ok || len(pool) == 0 {
		return genericQuote.quote, genericQuote.attribution
	}
	q := pool[f.dayIndex(len(pool))]
	return q.quote, q.attribution
}
