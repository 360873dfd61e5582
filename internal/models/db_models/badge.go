package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BadgeDefinition is the catalog of badges every user progresses against.
type BadgeDefinition struct {
	BaseModel
	Code        string `gorm:"uniqueIndex"` // e.g. "first-entry", "streak-7"
	Name        string
	Description string
	Icon        string
	Target      int            `gorm:"not null"`
	Criteria    datatypes.JSON `gorm:"type:jsonb;default:'{}'"` // e.g. {"kind":"entry_count"} or {"kind":"streak"}
	SortOrder   int            `gorm:"default:0"`
}

// BadgeProgress is one user's standing against one badge. Progress fields are
// recomputed by the entry repository after mutations.
type BadgeProgress struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index:idx_badge_progress_account_badge,unique"`
	BadgeID   uuid.UUID `gorm:"index:idx_badge_progress_account_badge,unique"`

	Earned          bool `gorm:"default:false"`
	EarnedAt        *int64
	ProgressCurrent int     `gorm:"default:0"`
	ProgressTarget  int     `gorm:"default:0"`
	ProgressPercent float64 `gorm:"default:0"`

	Badge BadgeDefinition `gorm:"foreignKey:BadgeID"`
}
