package infra

import (
	"errors"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"solace/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := Migrate(connectionPool); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return connectionPool
}

func Migrate(db *gorm.DB) error {
	// pgvector must be enabled before the embeddings table migrates.
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.Profile{},
		&db_models.JournalEntry{},
		&db_models.Photo{},
		&db_models.EntryEmbedding{},
		&db_models.BadgeDefinition{},
		&db_models.BadgeProgress{},
		&db_models.QuotaRecord{},
	); err != nil {
		return err
	}

	return seedBadgeCatalog(db)
}

// seedBadgeCatalog inserts the built-in badge definitions. Codes are stable
// identifiers; re-running is a no-op for codes that already exist.
func seedBadgeCatalog(db *gorm.DB) error {
	catalog := []db_models.BadgeDefinition{
		{Code: "first-entry", Name: "First Steps", Description: "Write your first journal entry", Icon: "pencil", Target: 1, Criteria: []byte(`{"kind":"entry_count"}`), SortOrder: 1},
		{Code: "entries-10", Name: "Ten Pages", Description: "Write 10 journal entries", Icon: "book", Target: 10, Criteria: []byte(`{"kind":"entry_count"}`), SortOrder: 2},
		{Code: "entries-50", Name: "Storyteller", Description: "Write 50 journal entries", Icon: "library", Target: 50, Criteria: []byte(`{"kind":"entry_count"}`), SortOrder: 3},
		{Code: "streak-3", Name: "Warming Up", Description: "Journal 3 days in a row", Icon: "flame", Target: 3, Criteria: []byte(`{"kind":"streak"}`), SortOrder: 4},
		{Code: "streak-7", Name: "One Full Week", Description: "Journal 7 days in a row", Icon: "calendar", Target: 7, Criteria: []byte(`{"kind":"streak"}`), SortOrder: 5},
		{Code: "streak-30", Name: "Habit Formed", Description: "Journal 30 days in a row", Icon: "trophy", Target: 30, Criteria: []byte(`{"kind":"streak"}`), SortOrder: 6},
	}

	for _, def := range catalog {
		var existing db_models.BadgeDefinition
		err := db.Where("code = ?", def.Code).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&def).Error; err != nil {
			return err
		}
	}

	return nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
