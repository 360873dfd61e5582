package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"solace/internal/models/db_models"
	"solace/pkg/utils"
)

func seedEntry(repo *fakeEntryRepo, accountID uuid.UUID) *db_models.JournalEntry {
	entry := &db_models.JournalEntry{
		AccountID: accountID,
		Content:   "A quiet afternoon with a book.",
		MoodLabel: "good",
	}
	repo.InsertEntry(context.Background(), entry)
	return entry
}

func newEntryService(repo *fakeEntryRepo, owner uuid.UUID) EntryServiceInterface {
	prof := &fakeProfileRepo{profile: &db_models.Profile{DisplayName: "Ana"}}
	return NewEntryService(repo, NewEngagementService(prof))
}

func TestListEntriesRejectsBadPaging(t *testing.T) {
	svc := newEntryService(&fakeEntryRepo{}, uuid.New())
	ctx := context.Background()

	if _, err := svc.ListEntries(ctx, uuid.NewString(), 0, 20); !errors.Is(err, utils.ErrInvalidPage) {
		t.Errorf("page 0: got %v, want ErrInvalidPage", err)
	}
	if _, err := svc.ListEntries(ctx, uuid.NewString(), 1, 0); !errors.Is(err, utils.ErrInvalidPageSize) {
		t.Errorf("pageSize 0: got %v, want ErrInvalidPageSize", err)
	}
	if _, err := svc.ListEntries(ctx, uuid.NewString(), 1, 101); !errors.Is(err, utils.ErrInvalidPageSize) {
		t.Errorf("pageSize 101: got %v, want ErrInvalidPageSize", err)
	}
}

func TestGetEntryOwnership(t *testing.T) {
	repo := &fakeEntryRepo{}
	owner := uuid.New()
	entry := seedEntry(repo, owner)
	svc := newEntryService(repo, owner)
	ctx := context.Background()

	got, err := svc.GetEntry(ctx, owner.String(), entry.ID.String())
	if err != nil {
		t.Fatal(err)
	}
	if got.MoodLevel != int(MoodGood) {
		t.Errorf("MoodLevel = %d, want %d", got.MoodLevel, MoodGood)
	}

	if _, err := svc.GetEntry(ctx, uuid.NewString(), entry.ID.String()); !errors.Is(err, utils.ErrNotEntryOwner) {
		t.Errorf("foreign account: got %v, want ErrNotEntryOwner", err)
	}
	if _, err := svc.GetEntry(ctx, owner.String(), uuid.NewString()); !errors.Is(err, utils.ErrEntryNotFound) {
		t.Errorf("missing entry: got %v, want ErrEntryNotFound", err)
	}
}

func TestDeleteEntryOwnership(t *testing.T) {
	repo := &fakeEntryRepo{}
	owner := uuid.New()
	entry := seedEntry(repo, owner)
	svc := newEntryService(repo, owner)
	ctx := context.Background()

	if err := svc.DeleteEntry(ctx, uuid.NewString(), entry.ID.String()); !errors.Is(err, utils.ErrNotEntryOwner) {
		t.Errorf("foreign account: got %v, want ErrNotEntryOwner", err)
	}
	if err := svc.DeleteEntry(ctx, owner.String(), entry.ID.String()); err != nil {
		t.Errorf("owner delete failed: %v", err)
	}
}
