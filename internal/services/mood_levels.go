package services

import "strings"

// MoodLevel is the 1-5 ordinal mood scale, struggling through amazing.
type MoodLevel int

const (
	MoodStruggling MoodLevel = 1
	MoodLow        MoodLevel = 2
	MoodNeutral    MoodLevel = 3
	MoodGood       MoodLevel = 4
	MoodAmazing    MoodLevel = 5
)

var moodLabels = map[MoodLevel]string{
	MoodStruggling: "struggling",
	MoodLow:        "low",
	MoodNeutral:    "neutral",
	MoodGood:       "good",
	MoodAmazing:    "amazing",
}

func (m MoodLevel) Label() string {
	if label, ok := moodLabels[m]; ok {
		return label
	}
	return moodLabels[MoodNeutral]
}

func (m MoodLevel) Valid() bool {
	return m >= MoodStruggling && m <= MoodAmazing
}

// ClampMoodLevel forces out-of-range values to neutral at the boundary.
func ClampMoodLevel(v int) MoodLevel {
	m := MoodLevel(v)
	if !m.Valid() {
		return MoodNeutral
	}
	return m
}

// ParseMoodLabel maps a canonical label back to its level; neutral for
// anything unknown.
func ParseMoodLabel(label string) MoodLevel {
	label = strings.ToLower(strings.TrimSpace(label))
	for level, l := range moodLabels {
		if l == label {
			return level
		}
	}
	return MoodNeutral
}

// moodSynonymOrder fixes the tie-break: lists are checked in severity order
// and the first match wins, so a text naming both a "struggling" and a "good"
// feeling resolves to struggling.
var moodSynonymOrder = []MoodLevel{MoodStruggling, MoodLow, MoodGood, MoodAmazing}

var moodSynonyms = map[MoodLevel][]string{
	MoodStruggling: {
		"anxious", "overwhelmed", "panic", "despair", "hopeless",
		"depressed", "devastated", "miserable", "terrible", "awful",
		"scared", "fearful", "grief",
	},
	MoodLow: {
		"sad", "down", "lonely", "tired", "drained", "frustrated",
		"upset", "stressed", "worried", "gloomy", "melancholy",
		"disappointed", "meh",
	},
	MoodGood: {
		"happy", "joy", "content", "hopeful", "grateful", "calm",
		"peaceful", "proud", "optimistic", "pleased", "relaxed",
		"cheerful", "satisfied",
	},
	MoodAmazing: {
		"euphoric", "ecstatic", "incredible", "thrilled", "elated",
		"fantastic", "wonderful", "overjoyed", "exhilarated", "radiant",
	},
}

const maxMoodKeywords = 8

// MoodKeywords extracts the feeling words an entry names, most severe first.
// They tag the entry's embedding row so related-entry matches carry a
// readable hint of what connected them.
func MoodKeywords(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, level := range moodSynonymOrder {
		for _, syn := range moodSynonyms[level] {
			if !strings.Contains(lower, syn) {
				continue
			}
			out = append(out, syn)
			if len(out) == maxMoodKeywords {
				return out
			}
		}
	}
	return out
}

// ResolveMoodLabel turns a free-text mood word from the AI into a level:
// exact canonical match, then substring match against the synonym lists in
// severity order, then neutral.
func ResolveMoodLabel(raw string) MoodLevel {
	label := strings.ToLower(strings.TrimSpace(raw))
	if label == "" {
		return MoodNeutral
	}

	for level, canonical := range moodLabels {
		if label == canonical {
			return level
		}
	}

	for _, level := range moodSynonymOrder {
		for _, syn := range moodSynonyms[level] {
			if strings.Contains(label, syn) {
				return level
			}
		}
	}

	return MoodNeutral
}
