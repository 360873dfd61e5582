package services

import (
	"context"
	"errors"
	"testing"

	"solace/pkg/utils"
)

func TestResolveMoodLabelCanonical(t *testing.T) {
	cases := map[string]MoodLevel{
		"struggling": MoodStruggling,
		"low":        MoodLow,
		"neutral":    MoodNeutral,
		"good":       MoodGood,
		"amazing":    MoodAmazing,
		"  Good  ":   MoodGood,
	}
	for label, want := range cases {
		if got := ResolveMoodLabel(label); got != want {
			t.Errorf("ResolveMoodLabel(%q) = %v, want %v", label, got, want)
		}
	}
}

func TestResolveMoodLabelSeverityTieBreak(t *testing.T) {
	// A label naming feelings from several levels resolves to the most severe
	// one regardless of word order.
	cases := map[string]MoodLevel{
		"anxious but hopeful": MoodStruggling,
		"hopeful but anxious": MoodStruggling,
		"sad and happy":       MoodLow,
		"tired yet content":   MoodLow,
		"happy and thrilled":  MoodGood,
	}
	for label, want := range cases {
		if got := ResolveMoodLabel(label); got != want {
			t.Errorf("ResolveMoodLabel(%q) = %v, want %v", label, got, want)
		}
	}
}

func TestResolveMoodLabelUnknownIsNeutral(t *testing.T) {
	for _, label := range []string{"", "   ", "quixotic", "blue-green"} {
		if got := ResolveMoodLabel(label); got != MoodNeutral {
			t.Errorf("ResolveMoodLabel(%q) = %v, want neutral", label, got)
		}
	}
}

func TestMoodKeywords(t *testing.T) {
	got := MoodKeywords("I felt anxious all morning, then tired, but grateful by evening.")
	want := []string{"anxious", "tired", "grateful"}
	if len(got) != len(want) {
		t.Fatalf("MoodKeywords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keyword[%d] = %q, want %q (severity order)", i, got[i], want[i])
		}
	}

	if got := MoodKeywords("Went to the store and bought bread."); len(got) != 0 {
		t.Errorf("no feeling words expected, got %v", got)
	}
}

func TestClampMoodLevel(t *testing.T) {
	cases := map[int]MoodLevel{
		-1: MoodNeutral,
		0:  MoodNeutral,
		1:  MoodStruggling,
		3:  MoodNeutral,
		5:  MoodAmazing,
		6:  MoodNeutral,
		99: MoodNeutral,
	}
	for in, want := range cases {
		if got := ClampMoodLevel(in); got != want {
			t.Errorf("ClampMoodLevel(%d) = %v, want %v", in, got, want)
		}
	}
}

func TestClassifyEmptyContent(t *testing.T) {
	classifier := NewMoodClassifier(&fakeAIClient{moodLabel: "good"})

	_, err := classifier.Classify(context.Background(), "   ", "Ana")
	if !errors.Is(err, utils.ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}

func TestClassifySuccess(t *testing.T) {
	classifier := NewMoodClassifier(&fakeAIClient{moodLabel: "happy"})

	cls, err := classifier.Classify(context.Background(), "A lovely walk in the park.", "Ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cls.Degraded {
		t.Error("successful classification marked degraded")
	}
	if cls.Level != MoodGood {
		t.Errorf("Level = %v, want good", cls.Level)
	}
	if !cls.Level.Valid() {
		t.Errorf("Level %v outside the 1-5 scale", cls.Level)
	}
}

func TestClassifyDegradesToNeutralOnError(t *testing.T) {
	classifier := NewMoodClassifier(&fakeAIClient{moodErr: errors.New("upstream timeout")})

	cls, err := classifier.Classify(context.Background(), "Today was a long day.", "Ana")
	if err != nil {
		t.Fatalf("AI failure must not surface as an error, got %v", err)
	}
	if !cls.Degraded {
		t.Error("expected degraded classification")
	}
	if cls.Level != MoodNeutral {
		t.Errorf("Level = %v, want neutral", cls.Level)
	}
}

func TestClassifyAlwaysInRange(t *testing.T) {
	for _, label := range []string{"struggling", "melancholy", "neutral", "grateful", "ecstatic", "???"} {
		classifier := NewMoodClassifier(&fakeAIClient{moodLabel: label})
		cls, err := classifier.Classify(context.Background(), "some entry text", "")
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", label, err)
		}
		if !cls.Level.Valid() {
			t.Errorf("label %q resolved to out-of-range level %v", label, cls.Level)
		}
	}
}
