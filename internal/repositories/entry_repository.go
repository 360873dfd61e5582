package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"solace/internal/models/db_models"
	"solace/pkg/utils"
)

type EntryRepository interface {
	InsertEntry(ctx context.Context, entry *db_models.JournalEntry) error
	GetEntryByID(ctx context.Context, entryID string) (*db_models.JournalEntry, error)
	ListEntriesByAccount(ctx context.Context, accountID string, page, pageSize int) ([]db_models.JournalEntry, error)
	DeleteEntry(ctx context.Context, entryID string) error
	SaveEmbedding(ctx context.Context, embedding *db_models.EntryEmbedding) error
	FindRelatedEntries(ctx context.Context, accountID, entryID string, limit int) ([]RelatedEntry, error)
}

type RelatedEntry struct {
	Entry    db_models.JournalEntry
	Distance float64
}

type entryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

// InsertEntry persists the entry and, in the same transaction, recomputes the
// owner's streak and badge progress. Orchestration code treats that recompute
// as an opaque side effect and re-reads the profile afterwards.
func (r *entryRepository) InsertEntry(ctx context.Context, entry *db_models.JournalEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		if entry.PhotoRef != "" {
			photo := &db_models.Photo{
				EntryID:     entry.ID,
				AccountID:   entry.AccountID,
				StoragePath: entry.PhotoRef,
			}
			if err := tx.Create(photo).Error; err != nil {
				return err
			}
		}
		if err := r.bumpStreakOnInsert(tx, entry.AccountID); err != nil {
			return err
		}
		return r.recomputeBadges(tx, entry.AccountID)
	})
}

func (r *entryRepository) GetEntryByID(ctx context.Context, entryID string) (*db_models.JournalEntry, error) {
	var entry db_models.JournalEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", entryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) ListEntriesByAccount(ctx context.Context, accountID string, page, pageSize int) ([]db_models.JournalEntry, error) {
	var entries []db_models.JournalEntry
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteEntry removes the entry, its photo and its embedding, then recomputes
// the owner's streak from the remaining entries.
func (r *entryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry db_models.JournalEntry
		if err := tx.First(&entry, "id = ?", entryID).Error; err != nil {
			return err
		}
		if err := tx.Where("entry_id = ?", entry.ID).Delete(&db_models.Photo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("entry_id = ?", entry.ID.String()).Delete(&db_models.EntryEmbedding{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entry).Error; err != nil {
			return err
		}
		if err := r.rebuildStreakFromEntries(tx, entry.AccountID); err != nil {
			return err
		}
		return r.recomputeBadges(tx, entry.AccountID)
	})
}

func (r *entryRepository) SaveEmbedding(ctx context.Context, embedding *db_models.EntryEmbedding) error {
	return r.db.WithContext(ctx).Save(embedding).Error
}

func (r *entryRepository) FindRelatedEntries(ctx context.Context, accountID, entryID string, limit int) ([]RelatedEntry, error) {
	var source db_models.EntryEmbedding
	err := r.db.WithContext(ctx).First(&source, "entry_id = ?", entryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	type row struct {
		EntryID  string
		Distance float64
	}
	var rows []row
	err = r.db.WithContext(ctx).
		Model(&db_models.EntryEmbedding{}).
		Select("entry_id, embedding <=> ? AS distance", source.Embedding).
		Where("account_id = ? AND entry_id <> ?", accountID, entryID).
		Order("distance").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]RelatedEntry, 0, len(rows))
	for _, rr := range rows {
		var entry db_models.JournalEntry
		if err := r.db.WithContext(ctx).First(&entry, "id = ?", rr.EntryID).Error; err != nil {
			continue
		}
		out = append(out, RelatedEntry{Entry: entry, Distance: rr.Distance})
	}
	return out, nil
}

// bumpStreakOnInsert advances the streak by at most one per local day.
func (r *entryRepository) bumpStreakOnInsert(tx *gorm.DB, accountID uuid.UUID) error {
	var profile db_models.Profile
	if err := tx.First(&profile, "account_id = ?", accountID).Error; err != nil {
		return err
	}

	loc := utils.UserLocation(profile.Timezone)
	today := utils.TodayLocal(loc)
	yesterday := utils.LocalDate(time.Now().AddDate(0, 0, -1), loc)

	switch profile.LastEntryDate {
	case today:
		// second entry today, streak unchanged
	case yesterday:
		profile.CurrentStreak++
	default:
		profile.CurrentStreak = 1
	}
	if profile.CurrentStreak > profile.BestStreak {
		profile.BestStreak = profile.CurrentStreak
	}
	profile.LastEntryDate = today

	return tx.Model(&profile).
		Select("current_streak", "best_streak", "last_entry_date").
		Updates(&profile).Error
}

// rebuildStreakFromEntries recomputes the current streak from scratch after a
// deletion. BestStreak is historical and is never lowered.
func (r *entryRepository) rebuildStreakFromEntries(tx *gorm.DB, accountID uuid.UUID) error {
	var profile db_models.Profile
	if err := tx.First(&profile, "account_id = ?", accountID).Error; err != nil {
		return err
	}
	loc := utils.UserLocation(profile.Timezone)

	var stamps []int64
	if err := tx.Model(&db_models.JournalEntry{}).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Pluck("created_at", &stamps).Error; err != nil {
		return err
	}

	seen := make(map[string]bool)
	days := make([]string, 0, len(stamps))
	for _, s := range stamps {
		d := utils.LocalDate(time.Unix(s, 0), loc)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}

	streak := 0
	last := ""
	if len(days) > 0 {
		last = days[0]
		today := utils.TodayLocal(loc)
		yesterday := utils.LocalDate(time.Now().AddDate(0, 0, -1), loc)
		if last == today || last == yesterday {
			streak = 1
			cursor, _ := time.ParseInLocation("2006-01-02", last, loc)
			for _, d := range days[1:] {
				cursor = cursor.AddDate(0, 0, -1)
				if d != cursor.Format("2006-01-02") {
					break
				}
				streak++
			}
		}
	}

	profile.CurrentStreak = streak
	profile.LastEntryDate = last
	return tx.Model(&profile).
		Select("current_streak", "last_entry_date").
		Updates(&profile).Error
}

type badgeCriteria struct {
	Kind string `json:"kind"` // "entry_count" or "streak"
}

// recomputeBadges refreshes every badge's progress for the account. Earned is
// monotonic: once set it stays set even if the metric later drops.
func (r *entryRepository) recomputeBadges(tx *gorm.DB, accountID uuid.UUID) error {
	var defs []db_models.BadgeDefinition
	if err := tx.Order("sort_order, code").Find(&defs).Error; err != nil {
		return err
	}
	if len(defs) == 0 {
		return nil
	}

	var entryCount int64
	if err := tx.Model(&db_models.JournalEntry{}).
		Where("account_id = ?", accountID).
		Count(&entryCount).Error; err != nil {
		return err
	}

	var profile db_models.Profile
	if err := tx.First(&profile, "account_id = ?", accountID).Error; err != nil {
		return err
	}

	for _, def := range defs {
		var crit badgeCriteria
		if len(def.Criteria) > 0 {
			_ = json.Unmarshal(def.Criteria, &crit)
		}

		current := int(entryCount)
		if crit.Kind == "streak" {
			current = profile.CurrentStreak
		}

		var progress db_models.BadgeProgress
		err := tx.Where("account_id = ? AND badge_id = ?", accountID, def.ID).First(&progress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			progress = db_models.BadgeProgress{
				AccountID:      accountID,
				BadgeID:        def.ID,
				ProgressTarget: def.Target,
			}
		} else if err != nil {
			return err
		}

		progress.ProgressCurrent = current
		progress.ProgressTarget = def.Target
		if def.Target > 0 {
			pct := float64(current) / float64(def.Target) * 100
			if pct > 100 {
				pct = 100
			}
			progress.ProgressPercent = pct
		}
		if !progress.Earned && current >= def.Target && def.Target > 0 {
			progress.Earned = true
			now := time.Now().Unix()
			progress.EarnedAt = &now
		}

		if err := tx.Save(&progress).Error; err != nil {
			return err
		}
	}
	return nil
}
