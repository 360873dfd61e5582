package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// EntryEmbedding backs related-entry search. Written best effort after a
// submission; a missing row just means the entry never shows up as related.
type EntryEmbedding struct {
	EntryID   string `gorm:"primaryKey;column:entry_id"`
	AccountID string `gorm:"index"`
	MoodLabel string
	Themes    pq.StringArray  `gorm:"type:text[]"`
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}
