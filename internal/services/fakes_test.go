package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"solace/internal/models/db_models"
	"solace/internal/repositories"
	"solace/pkg/utils"
)

type fakeAIClient struct {
	mu sync.Mutex

	moodLabel string
	moodErr   error

	affirmation string
	affirmErr   error

	quote       string
	attribution string
	quoteErr    error

	analyzeCalls int
	affirmCalls  int
	quoteCalls   int
}

func (f *fakeAIClient) AnalyzeMood(ctx context.Context, text, userName string) (*utils.MoodAnalysisResult, error) {
	f.mu.Lock()
	f.analyzeCalls++
	f.mu.Unlock()
	if f.moodErr != nil {
		return nil, f.moodErr
	}
	return &utils.MoodAnalysisResult{MoodLabel: f.moodLabel, Confidence: 0.9}, nil
}

func (f *fakeAIClient) GenerateAffirmation(ctx context.Context, entryText, moodLabel, userName string) (*utils.AffirmationResult, error) {
	f.mu.Lock()
	f.affirmCalls++
	f.mu.Unlock()
	if f.affirmErr != nil {
		return nil, f.affirmErr
	}
	return &utils.AffirmationResult{Text: f.affirmation, Source: "ai"}, nil
}

func (f *fakeAIClient) GenerateQuote(ctx context.Context, moodLabel, entryText, userName string, previouslyShown []string) (*utils.QuoteResult, error) {
	f.mu.Lock()
	f.quoteCalls++
	f.mu.Unlock()
	if f.quoteErr != nil {
		return nil, f.quoteErr
	}
	return &utils.QuoteResult{Quote: f.quote, Attribution: f.attribution, Source: "ai"}, nil
}

func (f *fakeAIClient) calls() (analyze, affirm, quote int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.analyzeCalls, f.affirmCalls, f.quoteCalls
}

type fakeEntryRepo struct {
	insertErr  error
	inserted   []*db_models.JournalEntry
	embeddings []*db_models.EntryEmbedding
}

func (f *fakeEntryRepo) InsertEntry(ctx context.Context, entry *db_models.JournalEntry) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	f.inserted = append(f.inserted, entry)
	return nil
}

func (f *fakeEntryRepo) GetEntryByID(ctx context.Context, entryID string) (*db_models.JournalEntry, error) {
	for _, e := range f.inserted {
		if e.ID.String() == entryID {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEntryRepo) ListEntriesByAccount(ctx context.Context, accountID string, page, pageSize int) ([]db_models.JournalEntry, error) {
	return nil, nil
}

func (f *fakeEntryRepo) DeleteEntry(ctx context.Context, entryID string) error { return nil }

func (f *fakeEntryRepo) SaveEmbedding(ctx context.Context, embedding *db_models.EntryEmbedding) error {
	f.embeddings = append(f.embeddings, embedding)
	return nil
}

func (f *fakeEntryRepo) FindRelatedEntries(ctx context.Context, accountID, entryID string, limit int) ([]repositories.RelatedEntry, error) {
	return nil, nil
}

type subscriptionUpdate struct {
	accountID string
	status    db_models.SubscriptionStatus
	tier      string
	expiresAt *int64
}

type fakeProfileRepo struct {
	profile    *db_models.Profile
	profileErr error

	progress    []db_models.BadgeProgress
	progressErr error

	subUpdates []subscriptionUpdate
}

func (f *fakeProfileRepo) GetProfileByAccount(ctx context.Context, accountID string) (*db_models.Profile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

func (f *fakeProfileRepo) GetBadgeProgress(ctx context.Context, accountID string) ([]db_models.BadgeProgress, error) {
	if f.progressErr != nil {
		return nil, f.progressErr
	}
	return f.progress, nil
}

func (f *fakeProfileRepo) UpdateSubscription(ctx context.Context, accountID string, status db_models.SubscriptionStatus, tier string, expiresAt *int64) error {
	f.subUpdates = append(f.subUpdates, subscriptionUpdate{accountID: accountID, status: status, tier: tier, expiresAt: expiresAt})
	return nil
}

type fakeEmbeddingClient struct {
	err error
}

func (f *fakeEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	if f.err != nil {
		return pgvector.Vector{}, f.err
	}
	return pgvector.NewVector(make([]float32, 8)), nil
}

type failingQuotaStore struct{}

func (failingQuotaStore) GetCount(ctx context.Context, accountID, featureKey, localDate string) (int, error) {
	return 0, errors.New("store unavailable")
}

func (failingQuotaStore) SetCount(ctx context.Context, accountID, featureKey, localDate string, count int) error {
	return errors.New("store unavailable")
}
