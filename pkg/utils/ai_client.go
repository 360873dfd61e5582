package utils

import (
	"context"
	"fmt"
	"strings"
)

// MoodAnalysisResult is the mood-analysis service response. An error from the
// client or an empty label is treated as a degraded call by the caller; the
// classifier never surfaces it as a failure.
type MoodAnalysisResult struct {
	MoodLabel  string  `json:"mood_label"`
	Confidence float64 `json:"confidence,omitempty"`
}

type AffirmationResult struct {
	Text   string `json:"affirmation_text"`
	Source string `json:"source"` // "ai" or "fallback"
}

type QuoteResult struct {
	Quote       string `json:"quote"`
	Attribution string `json:"attribution,omitempty"`
	Source      string `json:"source"`
}

// AIContentClientInterface abstracts the generative provider behind the
// enrichment pipeline. Both OpenAI and Gemini implementations are provided.
type AIContentClientInterface interface {
	AnalyzeMood(ctx context.Context, text, userName string) (*MoodAnalysisResult, error)
	GenerateAffirmation(ctx context.Context, entryText, moodLabel, userName string) (*AffirmationResult, error)
	GenerateQuote(ctx context.Context, moodLabel, entryText, userName string, previouslyShown []string) (*QuoteResult, error)
}

// NewAIContentClient picks the provider implementation from config.
func NewAIContentClient(provider, apiKey, model string) (AIContentClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai", "":
		return NewOpenAIContentClient(apiKey, model), nil
	case "gemini":
		return NewGeminiContentClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", provider)
	}
}
