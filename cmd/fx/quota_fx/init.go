package quota_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"solace/internal/repositories"
	"solace/internal/services"
)

var Module = fx.Provide(
	provideQuotaStore, provideQuotaGuard)

func provideQuotaStore(db *gorm.DB) services.QuotaStore {
	return repositories.NewQuotaRepository(db)
}

func provideQuotaGuard(store services.QuotaStore) services.QuotaGuardInterface {
	return services.NewQuotaGuard(store, services.DefaultDailyLimit)
}
