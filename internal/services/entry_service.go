package services

import (
	"context"

	"solace/internal/models/db_models"
	"solace/internal/models/response_models"
	"solace/internal/repositories"
	"solace/pkg/utils"
)

type EntryServiceInterface interface {
	ListEntries(ctx context.Context, accountID string, page, pageSize int) ([]response_models.EntryResponse, error)
	GetEntry(ctx context.Context, accountID, entryID string) (*response_models.EntryResponse, error)
	DeleteEntry(ctx context.Context, accountID, entryID string) error
	RelatedEntries(ctx context.Context, accountID, entryID string, limit int) ([]response_models.RelatedEntryResponse, error)
}

type EntryService struct {
	entryRepo  repositories.EntryRepository
	engagement EngagementServiceInterface
}

func NewEntryService(entryRepo repositories.EntryRepository, engagement EngagementServiceInterface) EntryServiceInterface {
	return &EntryService{
		entryRepo:  entryRepo,
		engagement: engagement,
	}
}

func toEntryResponse(e *db_models.JournalEntry) response_models.EntryResponse {
	return response_models.EntryResponse{
		ID:        e.ID.String(),
		Content:   e.Content,
		Title:     e.Title,
		MoodLabel: e.MoodLabel,
		MoodLevel: int(ParseMoodLabel(e.MoodLabel)),
		PhotoRef:  e.PhotoRef,
		CreatedAt: utils.FormatRFC3339(utils.FromUnixSeconds(e.CreatedAt)),
		UpdatedAt: utils.FormatRFC3339(utils.FromUnixSeconds(e.UpdatedAt)),
	}
}

func (s *EntryService) ListEntries(ctx context.Context, accountID string, page, pageSize int) ([]response_models.EntryResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	entries, err := s.entryRepo.ListEntriesByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.EntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toEntryResponse(&entries[i]))
	}
	return out, nil
}

func (s *EntryService) GetEntry(ctx context.Context, accountID, entryID string) (*response_models.EntryResponse, error) {
	entry, err := s.entryRepo.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if entry == nil {
		return nil, utils.ErrEntryNotFound
	}
	if entry.AccountID.String() != accountID {
		return nil, utils.ErrNotEntryOwner
	}

	resp := toEntryResponse(entry)
	return &resp, nil
}

// DeleteEntry removes an owned entry (the repository cascades the photo and
// embedding and recomputes the streak) and reconciles engagement state.
func (s *EntryService) DeleteEntry(ctx context.Context, accountID, entryID string) error {
	entry, err := s.entryRepo.GetEntryByID(ctx, entryID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if entry == nil {
		return utils.ErrEntryNotFound
	}
	if entry.AccountID.String() != accountID {
		return utils.ErrNotEntryOwner
	}

	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		return utils.ErrDatabaseError
	}

	if _, err := s.engagement.AfterMutation(ctx, accountID); err != nil {
		// Derived state refresh failed; the deletion itself stands.
		return nil
	}
	return nil
}

func (s *EntryService) RelatedEntries(ctx context.Context, accountID, entryID string, limit int) ([]response_models.RelatedEntryResponse, error) {
	if limit < 1 || limit > 20 {
		limit = 5
	}

	entry, err := s.entryRepo.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if entry == nil {
		return nil, utils.ErrEntryNotFound
	}
	if entry.AccountID.String() != accountID {
		return nil, utils.ErrNotEntryOwner
	}

	related, err := s.entryRepo.FindRelatedEntries(ctx, accountID, entryID, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.RelatedEntryResponse, 0, len(related))
	for _, r := range related {
		snippet := r.Entry.Content
		if runes := []rune(snippet); len(runes) > 140 {
			snippet = string(runes[:137]) + "..."
		}
		out = append(out, response_models.RelatedEntryResponse{
			ID:        r.Entry.ID.String(),
			Title:     r.Entry.Title,
			MoodLabel: r.Entry.MoodLabel,
			Snippet:   snippet,
			CreatedAt: utils.FormatRFC3339(utils.FromUnixSeconds(r.Entry.CreatedAt)),
			Distance:  r.Distance,
		})
	}
	return out, nil
}
