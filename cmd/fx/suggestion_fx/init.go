package suggestion_fx

import (
	"go.uber.org/fx"
	"solace/internal/services"
)

var Module = fx.Provide(
	provideSuggestionService)

func provideSuggestionService(classifier services.MoodClassifierInterface) services.SuggestionServiceInterface {
	return services.NewSuggestionService(classifier)
}
