package services

import "solace/internal/models/response_models"

// PromptServiceInterface serves the daily journaling prompt. Prompts are
// free-tier content: no AI call and no quota, just the deterministic rotation
// from the fallback pools.
type PromptServiceInterface interface {
	DailyPrompt(mood MoodLevel, previouslyShown []string) response_models.PromptResponse
}

type PromptService struct {
	fallback FallbackProviderInterface
}

func NewPromptService(fallback FallbackProviderInterface) PromptServiceInterface {
	return &PromptService{fallback: fallback}
}

func (p *PromptService) DailyPrompt(mood MoodLevel, previouslyShown []string) response_models.PromptResponse {
	return response_models.PromptResponse{
		Prompt: p.fallback.FallbackPrompt(mood, previouslyShown),
	}
}
