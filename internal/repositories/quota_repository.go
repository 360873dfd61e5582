package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"solace/internal/models/db_models"
)

// QuotaRepository is the durable side of the quota guard. Callers treat
// failures as soft: the guard logs and allows rather than denying a feature
// over an infrastructure fault.
type QuotaRepository interface {
	GetCount(ctx context.Context, accountID, featureKey, localDate string) (int, error)
	SetCount(ctx context.Context, accountID, featureKey, localDate string, count int) error
}

type quotaRepository struct {
	db *gorm.DB
}

func NewQuotaRepository(db *gorm.DB) QuotaRepository {
	return &quotaRepository{db: db}
}

func (r *quotaRepository) GetCount(ctx context.Context, accountID, featureKey, localDate string) (int, error) {
	var record db_models.QuotaRecord
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND feature_key = ? AND local_date = ?", accountID, featureKey, localDate).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return record.Count, nil
}

func (r *quotaRepository) SetCount(ctx context.Context, accountID, featureKey, localDate string, count int) error {
	aid, err := uuid.Parse(accountID)
	if err != nil {
		return err
	}

	var record db_models.QuotaRecord
	err = r.db.WithContext(ctx).
		Where("account_id = ? AND feature_key = ? AND local_date = ?", accountID, featureKey, localDate).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = db_models.QuotaRecord{
			AccountID:  aid,
			FeatureKey: featureKey,
			LocalDate:  localDate,
		}
	} else if err != nil {
		return err
	}

	record.Count = count
	return r.db.WithContext(ctx).Save(&record).Error
}
