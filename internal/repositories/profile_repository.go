package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"solace/internal/models/db_models"
)

type ProfileRepository interface {
	GetProfileByAccount(ctx context.Context, accountID string) (*db_models.Profile, error)
	GetBadgeProgress(ctx context.Context, accountID string) ([]db_models.BadgeProgress, error)
	UpdateSubscription(ctx context.Context, accountID string, status db_models.SubscriptionStatus, tier string, expiresAt *int64) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetProfileByAccount(ctx context.Context, accountID string) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := r.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// GetBadgeProgress returns the account's standing against every badge in the
// catalog, preloaded with display metadata, in catalog order.
func (r *profileRepository) GetBadgeProgress(ctx context.Context, accountID string) ([]db_models.BadgeProgress, error) {
	var progress []db_models.BadgeProgress
	err := r.db.WithContext(ctx).
		Preload("Badge").
		Joins("JOIN badge_definitions ON badge_definitions.id = badge_progresses.badge_id").
		Where("badge_progresses.account_id = ?", accountID).
		Order("badge_definitions.sort_order, badge_definitions.code").
		Find(&progress).Error
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (r *profileRepository) UpdateSubscription(ctx context.Context, accountID string, status db_models.SubscriptionStatus, tier string, expiresAt *int64) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("account_id = ?", accountID).
		Updates(map[string]interface{}{
			"subscription_status":     status,
			"subscription_tier":       tier,
			"subscription_expires_at": expiresAt,
		}).Error
}
