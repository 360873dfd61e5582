package services

import (
	"context"
	"log"
	"strings"

	"solace/pkg/utils"
)

// maxClassifyRunes caps the text sent to the mood-analysis service so a long
// entry never produces an oversized payload.
const maxClassifyRunes = 2000

type MoodClassification struct {
	Level    MoodLevel
	RawLabel string
	// Degraded marks that the AI call failed and the neutral default was
	// used. The classifier itself never returns an error for non-empty text.
	Degraded bool
}

type MoodClassifierInterface interface {
	Classify(ctx context.Context, text, userName string) (MoodClassification, error)
}

type MoodClassifier struct {
	ai utils.AIContentClientInterface
}

func NewMoodClassifier(ai utils.AIContentClientInterface) MoodClassifierInterface {
	return &MoodClassifier{ai: ai}
}

// Classify resolves the entry text to a MoodLevel. The only error it returns
// is for empty input; every AI failure folds into a degraded neutral result.
func (m *MoodClassifier) Classify(ctx context.Context, text, userName string) (MoodClassification, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return MoodClassification{}, utils.ErrEmptyContent
	}

	runes := []rune(trimmed)
	if len(runes) > maxClassifyRunes {
		trimmed = string(runes[:maxClassifyRunes])
	}

	result, err := m.ai.AnalyzeMood(ctx, trimmed, userName)
	if err != nil {
		log.Printf("Mood analysis degraded to neutral: %v", err)
		return MoodClassification{Level: MoodNeutral, Degraded: true}, nil
	}

	return MoodClassification{
		Level:    ResolveMoodLabel(result.MoodLabel),
		RawLabel: result.MoodLabel,
	}, nil
}
