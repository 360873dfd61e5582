package db_models

import "github.com/google/uuid"

// JournalEntry stores the mood as its canonical label ("struggling" ...
// "amazing"), not the numeric level.
type JournalEntry struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	Content   string    `gorm:"type:text;not null"`
	Title     string
	MoodLabel string `gorm:"size:20;index"`
	PhotoRef  string

	Account Account `gorm:"foreignKey:AccountID"`
	Photo   *Photo  `gorm:"foreignKey:EntryID"`
}

type Photo struct {
	BaseModel
	EntryID     uuid.UUID `gorm:"index"`
	AccountID   uuid.UUID `gorm:"index"`
	StoragePath string
	URL         string
}
