package engagement_fx

import (
	"go.uber.org/fx"
	"solace/internal/repositories"
	"solace/internal/services"
)

var Module = fx.Provide(
	provideEngagementService)

func provideEngagementService(profileRepo repositories.ProfileRepository) services.EngagementServiceInterface {
	return services.NewEngagementService(profileRepo)
}
