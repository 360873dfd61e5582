package entry_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"solace/internal/repositories"
	"solace/internal/services"
)

var Module = fx.Provide(
	provideEntryRepo, provideProfileRepo, provideEntryService)

func provideEntryRepo(db *gorm.DB) repositories.EntryRepository {
	return repositories.NewEntryRepository(db)
}

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideEntryService(entryRepo repositories.EntryRepository, engagement services.EngagementServiceInterface) services.EntryServiceInterface {
	return services.NewEntryService(entryRepo, engagement)
}
