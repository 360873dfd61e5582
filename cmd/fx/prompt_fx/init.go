package prompt_fx

import (
	"go.uber.org/fx"
	"solace/internal/services"
)

var Module = fx.Provide(
	providePromptService)

func providePromptService(fallback services.FallbackProviderInterface) services.PromptServiceInterface {
	return services.NewPromptService(fallback)
}
