package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubStatusFree     SubscriptionStatus = "free"
	SubStatusTrialing SubscriptionStatus = "trialing"
	SubStatusPremium  SubscriptionStatus = "premium"
	SubStatusExpired  SubscriptionStatus = "expired"
)

// Profile carries derived engagement state. CurrentStreak, BestStreak and
// LastEntryDate are recomputed by the entry repository inside its mutation
// transactions; service code only reads them back.
type Profile struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"uniqueIndex"`
	DisplayName string
	Timezone    string `gorm:"default:UTC"`

	CurrentStreak int    `gorm:"default:0"`
	BestStreak    int    `gorm:"default:0"`
	LastEntryDate string `gorm:"size:10"` // YYYY-MM-DD in the user's timezone

	SubscriptionStatus    SubscriptionStatus `gorm:"default:free;index"`
	SubscriptionTier      string
	SubscriptionExpiresAt *int64

	Preferences datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account *Account `gorm:"foreignKey:AccountID"`
}

// IsPremium reports whether the profile grants unlimited quota at now.
// A premium status with an expiry in the past does not count.
func (p *Profile) IsPremium(now time.Time) bool {
	if p.SubscriptionStatus != SubStatusPremium && p.SubscriptionStatus != SubStatusTrialing {
		return false
	}
	if p.SubscriptionExpiresAt == nil {
		return true
	}
	return now.Unix() < *p.SubscriptionExpiresAt
}
