package enrichment_fx

import (
	"go.uber.org/fx"
	"solace/internal/repositories"
	"solace/internal/services"
	"solace/pkg/utils"
)

var Module = fx.Provide(
	provideMoodClassifier, provideFallbackProvider, provideEnrichmentService)

func provideMoodClassifier(ai utils.AIContentClientInterface) services.MoodClassifierInterface {
	return services.NewMoodClassifier(ai)
}

func provideFallbackProvider() services.FallbackProviderInterface {
	return services.NewFallbackProvider()
}

func provideEnrichmentService(
	entryRepo repositories.EntryRepository,
	profileRepo repositories.ProfileRepository,
	classifier services.MoodClassifierInterface,
	guard services.QuotaGuardInterface,
	fallback services.FallbackProviderInterface,
	ai utils.AIContentClientInterface,
	engagement services.EngagementServiceInterface,
	embeddings utils.EmbeddingClientInterface,
) services.EnrichmentServiceInterface {
	return services.NewEnrichmentService(entryRepo, profileRepo, classifier, guard, fallback, ai, engagement, embeddings)
}
