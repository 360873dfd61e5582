package services

import (
	"testing"
	"time"
)

func fixedProvider(day time.Time) *FallbackProvider {
	return &FallbackProvider{now: func() time.Time { return day }, loc: time.UTC}
}

func TestFallbackPromptStableWithinDay(t *testing.T) {
	day := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	f := fixedProvider(day)

	first := f.FallbackPrompt(MoodLow, nil)
	second := f.FallbackPrompt(MoodLow, nil)
	if first == "" {
		t.Fatal("empty prompt")
	}
	if first != second {
		t.Errorf("same-day prompts differ: %q vs %q", first, second)
	}

	evening := fixedProvider(day.Add(10 * time.Hour))
	if got := evening.FallbackPrompt(MoodLow, nil); got != first {
		t.Errorf("prompt changed within the same day: %q vs %q", got, first)
	}
}

func TestFallbackPromptExcludesShown(t *testing.T) {
	f := fixedProvider(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	first := f.FallbackPrompt(MoodGood, nil)
	next := f.FallbackPrompt(MoodGood, []string{first})
	if next == first {
		t.Errorf("shown prompt served again: %q", next)
	}
	if next == "" {
		t.Error("empty prompt after exclusion")
	}
}

func TestFallbackPromptAllShownStillServes(t *testing.T) {
	f := fixedProvider(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	var all []string
	all = append(all, moodPrompts[MoodNeutral]...)
	all = append(all, generalPrompts...)

	got := f.FallbackPrompt(MoodNeutral, all)
	if got == "" {
		t.Fatal("exhausted exclusion list must still produce a prompt")
	}
	found := false
	for _, p := range all {
		if p == got {
			found = true
		}
	}
	if !found {
		t.Errorf("prompt %q not from the known pool", got)
	}
}

func TestFallbackAffirmationPerMood(t *testing.T) {
	f := fixedProvider(time.Now())

	for _, mood := range []MoodLevel{MoodStruggling, MoodLow, MoodNeutral, MoodGood, MoodAmazing} {
		if f.FallbackAffirmation(mood) == "" {
			t.Errorf("no affirmation for mood %v", mood)
		}
	}

	if got := f.FallbackAffirmation(MoodLevel(99)); got != genericAffirmation {
		t.Errorf("unknown mood should use the generic affirmation, got %q", got)
	}
}

func TestFallbackQuoteRotatesByDay(t *testing.T) {
	day1 := fixedProvider(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	day2 := fixedProvider(time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC))

	q1, a1 := day1.FallbackQuote(MoodLow)
	q2, _ := day2.FallbackQuote(MoodLow)
	if q1 == "" || a1 == "" {
		t.Fatal("empty quote or attribution")
	}
	// The low pool holds two quotes, so consecutive days alternate.
	if q1 == q2 {
		t.Errorf("quote did not rotate across days: %q", q1)
	}
}

func TestFallbackQuoteUnknownMoodIsGeneric(t *testing.T) {
	f := fixedProvider(time.Now())

	quote, attribution := f.FallbackQuote(MoodLevel(42))
	if quote != genericQuote.quote || attribution != genericQuote.attribution {
		t.Errorf("got %q / %q, want the generic quote", quote, attribution)
	}
}
