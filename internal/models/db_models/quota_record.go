package db_models

import "github.com/google/uuid"

// QuotaRecord counts one user's uses of one feature on one local calendar
// day. Rows are created lazily and never deleted; a dated key simply stops
// matching once the day rolls over.
type QuotaRecord struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"index:idx_quota_account_feature_date,unique"`
	FeatureKey string    `gorm:"size:64;index:idx_quota_account_feature_date,unique"`
	LocalDate  string    `gorm:"size:10;index:idx_quota_account_feature_date,unique"` // YYYY-MM-DD
	Count      int       `gorm:"default:0"`
}
