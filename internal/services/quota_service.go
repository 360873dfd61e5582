package services

import (
	"context"
	"log"
	"time"

	"solace/pkg/utils"
)

const (
	FeatureAffirmation = "affirmation-generator"
	FeatureMoodQuote   = "mood-quote-generator"

	DefaultDailyLimit = 2
)

// QuotaStore is the durable key-value capability behind the guard. The GORM
// repository implements it in production; pkg/memcache carries an in-memory
// one for tests.
type QuotaStore interface {
	GetCount(ctx context.Context, accountID, featureKey, localDate string) (int, error)
	SetCount(ctx context.Context, accountID, featureKey, localDate string, count int) error
}

type QuotaGuardInterface interface {
	CheckAndConsume(ctx context.Context, accountID, featureKey string, isPremium bool, loc *time.Location) bool
}

// QuotaGuard is a best-effort, single-client daily limiter. It shapes UX, it
// does not enforce billing: read-then-increment is not atomic across devices,
// and a storage fault degrades to allow rather than deny.
type QuotaGuard struct {
	store QuotaStore
	limit int
	now   func() time.Time
}

func NewQuotaGuard(store QuotaStore, dailyLimit int) *QuotaGuard {
	if dailyLimit <= 0 {
		dailyLimit = DefaultDailyLimit
	}
	return &QuotaGuard{store: store, limit: dailyLimit, now: time.Now}
}

func (g *QuotaGuard) CheckAndConsume(ctx context.Context, accountID, featureKey string, isPremium bool, loc *time.Location) bool {
	if isPremium {
		return true
	}

	today := utils.LocalDate(g.now(), loc)

	count, err := g.store.GetCount(ctx, accountID, featureKey, today)
	if err != nil {
		log.Printf("Quota read failed for %s/%s, allowing: %v", accountID, featureKey, err)
		return true
	}
	if count >= g.limit {
		return false
	}

	if err := g.store.SetCount(ctx, accountID, featureKey, today, count+1); err != nil {
		log.Printf("Quota write failed for %s/%s, allowing: %v", accountID, featureKey, err)
	}
	return true
}
