package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"solace/internal/models/db_models"
	"solace/internal/models/request_models"
	"solace/internal/models/response_models"
	"solace/internal/repositories"
	"solace/pkg/utils"
)

// MoodPrecedence names the policy for resolving a successful AI mood reading
// against the user's manual selection. Classifier-wins is the product default:
// the AI reading of the written text is considered more reliable than a mood
// picked before writing.
type MoodPrecedence int

const (
	MoodPrecedenceClassifier MoodPrecedence = iota
	MoodPrecedenceUser
)

const (
	noteQuotaAffirmation = "You've used today's free affirmations — upgrade to premium for unlimited ones. Here's one from our collection."
	noteQuotaQuote       = "You've used today's free quotes — upgrade to premium for unlimited ones. Here's one from our collection."
	noteOutageFallback   = "We couldn't reach the AI service just now, so here's one from our collection."
)

type EnrichmentServiceInterface interface {
	SubmitEntry(ctx context.Context, accountID string, req request_models.SubmitEntryRequest) (*response_models.EnrichmentResult, error)
}

type EnrichmentService struct {
	entryRepo   repositories.EntryRepository
	profileRepo repositories.ProfileRepository
	classifier  MoodClassifierInterface
	guard       QuotaGuardInterface
	fallback    FallbackProviderInterface
	ai          utils.AIContentClientInterface
	engagement  EngagementServiceInterface
	embeddings  utils.EmbeddingClientInterface // optional, nil disables related-entry search
	precedence  MoodPrecedence
}

func NewEnrichmentService(
	entryRepo repositories.EntryRepository,
	profileRepo repositories.ProfileRepository,
	classifier MoodClassifierInterface,
	guard QuotaGuardInterface,
	fallback FallbackProviderInterface,
	ai utils.AIContentClientInterface,
	engagement EngagementServiceInterface,
	embeddings utils.EmbeddingClientInterface,
) EnrichmentServiceInterface {
	return &EnrichmentService{
		entryRepo:   entryRepo,
		profileRepo: profileRepo,
		classifier:  classifier,
		guard:       guard,
		fallback:    fallback,
		ai:          ai,
		engagement:  engagement,
		embeddings:  embeddings,
		precedence:  MoodPrecedenceClassifier,
	}
}

// SubmitEntry runs the submission pipeline: classify, persist, affirm, quote.
// Persistence is the only hard-fail point; every other stage degrades into
// fallback content and a note instead of failing the submission.
func (s *EnrichmentService) SubmitEntry(ctx context.Context, accountID string, req request_models.SubmitEntryRequest) (*response_models.EnrichmentResult, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, utils.ErrEmptyContent
	}
	if req.SelectedMood != 0 && !MoodLevel(req.SelectedMood).Valid() {
		return nil, utils.ErrInvalidMood
	}
	userMood := ClampMoodLevel(req.SelectedMood)

	profile, err := s.profileRepo.GetProfileByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}
	loc := utils.UserLocation(profile.Timezone)
	isPremium := profile.IsPremium(time.Now())
	firstEntryEver := profile.LastEntryDate == "" && profile.CurrentStreak == 0

	var degraded []string

	// Classifying. A degraded classification keeps the user's selection; a
	// successful one wins or loses per the precedence policy.
	finalMood := userMood
	cls, err := s.classifier.Classify(ctx, content, profile.DisplayName)
	switch {
	case err != nil:
		degraded = append(degraded, response_models.StageClassifying)
	case cls.Degraded:
		degraded = append(degraded, response_models.StageClassifying)
	case s.precedence == MoodPrecedenceClassifier:
		finalMood = cls.Level
	}

	// Persisting. Photo attachment is a hard premium permission, independent
	// of any quota.
	if req.PhotoRef != "" && !isPremium {
		return nil, utils.ErrPhotoRequiresPremium
	}

	aid, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	entry := &db_models.JournalEntry{
		AccountID: aid,
		Content:   content,
		Title:     strings.TrimSpace(req.Title),
		MoodLabel: finalMood.Label(),
		PhotoRef:  req.PhotoRef,
	}
	if err := s.entryRepo.InsertEntry(ctx, entry); err != nil {
		log.Printf("Entry persistence failed for %s: %v", accountID, err)
		return nil, utils.ErrEntrySaveFailed
	}

	s.storeEmbedding(ctx, entry)

	// Affirming.
	affirmation := s.runAffirmation(ctx, accountID, content, finalMood, profile.DisplayName, isPremium, loc)
	if affirmation.Degraded {
		degraded = append(degraded, response_models.StageAffirming)
	}

	// Quoting runs regardless of how the affirmation stage went.
	quote := s.runQuote(ctx, accountID, content, finalMood, profile.DisplayName, isPremium, loc, req.PreviouslyShownQuotes)
	if quote.Degraded {
		degraded = append(degraded, response_models.StageQuoting)
	}

	// Done: reconcile and word the success message from the recomputed
	// streak.
	streak := profile.CurrentStreak
	best := profile.BestStreak
	if fresh, err := s.engagement.AfterMutation(ctx, accountID); err != nil {
		log.Printf("Engagement reconciliation failed for %s: %v", accountID, err)
	} else {
		streak = fresh.CurrentStreak
		best = fresh.BestStreak
	}

	return &response_models.EnrichmentResult{
		EntryID:        entry.ID.String(),
		FinalMood:      int(finalMood),
		FinalMoodLabel: finalMood.Label(),
		Affirmation:    affirmation,
		Quote:          quote,
		DegradedStages: degraded,
		Streak:         streak,
		SuccessMessage: successMessage(firstEntryEver, streak, best, finalMood),
	}, nil
}

func (s *EnrichmentService) runAffirmation(ctx context.Context, accountID, content string, mood MoodLevel, userName string, isPremium bool, loc *time.Location) response_models.EnrichedContent {
	if !s.guard.CheckAndConsume(ctx, accountID, FeatureAffirmation, isPremium, loc) {
		return response_models.EnrichedContent{
			Text:     s.fallback.FallbackAffirmation(mood),
			Source:   "fallback",
			Degraded: true,
			Note:     noteQuotaAffirmation,
		}
	}

	result, err := s.ai.GenerateAffirmation(ctx, content, mood.Label(), userName)
	if err != nil || strings.TrimSpace(result.Text) == "" {
		if err != nil {
			log.Printf("Affirmation generation degraded for %s: %v", accountID, err)
		}
		return response_models.EnrichedContent{
			Text:     s.fallback.FallbackAffirmation(mood),
			Source:   "fallback",
			Degraded: true,
			Note:     noteOutageFallback,
		}
	}

	return response_models.EnrichedContent{Text: result.Text, Source: result.Source}
}

func (s *EnrichmentService) runQuote(ctx context.Context, accountID, content string, mood MoodLevel, userName string, isPremium bool, loc *time.Location, previouslyShown []string) response_models.EnrichedContent {
	if !s.guard.CheckAndConsume(ctx, accountID, FeatureMoodQuote, isPremium, loc) {
		text, attribution := s.fallback.FallbackQuote(mood)
		return response_models.EnrichedContent{
			Text:        text,
			Attribution: attribution,
			Source:      "fallback",
			Degraded:    true,
			Note:        noteQuotaQuote,
		}
	}

	result, err := s.ai.GenerateQuote(ctx, mood.Label(), content, userName, previouslyShown)
	if err != nil || strings.TrimSpace(result.Quote) == "" {
		if err != nil {
			log.Printf("Quote generation degraded for %s: %v", accountID, err)
		}
		text, attribution := s.fallback.FallbackQuote(mood)
		return response_models.EnrichedContent{
			Text:        text,
			Attribution: attribution,
			Source:      "fallback",
			Degraded:    true,
			Note:        noteOutageFallback,
		}
	}

	return response_models.EnrichedContent{
		Text:        result.Quote,
		Attribution: result.Attribution,
		Source:      result.Source,
	}
}

// storeEmbedding writes the entry vector best effort; a failure only means
// the entry won't appear in related-entry search.
func (s *EnrichmentService) storeEmbedding(ctx context.Context, entry *db_models.JournalEntry) {
	if s.embeddings == nil {
		return
	}
	vec, err := s.embeddings.GetEmbedding(ctx, entry.Content)
	if err != nil {
		log.Printf("Embedding generation skipped for entry %s: %v", entry.ID, err)
		return
	}
	emb := &db_models.EntryEmbedding{
		EntryID:   entry.ID.String(),
		AccountID: entry.AccountID.String(),
		MoodLabel: entry.MoodLabel,
		Themes:    pq.StringArray(MoodKeywords(entry.Content)),
		Embedding: vec,
	}
	if err := s.entryRepo.SaveEmbedding(ctx, emb); err != nil {
		log.Printf("Embedding save skipped for entry %s: %v", entry.ID, err)
	}
}

var moodEncouragement = map[MoodLevel]string{
	MoodStruggling: "Writing on the hard days is the bravest kind of showing up.",
	MoodLow:        "Gentle progress still counts.",
	MoodNeutral:    "Steady and consistent — that's how the habit holds.",
	MoodGood:       "Keep riding this momentum.",
	MoodAmazing:    "What a day to remember!",
}

func successMessage(firstEntryEver bool, streak, best int, mood MoodLevel) string {
	if firstEntryEver {
		return "Your journaling journey begins today. Welcome!"
	}
	if streak > 1 && streak == best {
		return fmt.Sprintf("New personal best — %d days in a row!", streak)
	}
	suffix := moodEncouragement[mood]
	if suffix == "" {
		suffix = moodEncouragement[MoodNeutral]
	}
	return fmt.Sprintf("Entry saved — day %d of your streak. %s", streak, suffix)
}
