package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"solace/internal/models/db_models"
	"solace/pkg/utils"
)

func earnedBadge(id uuid.UUID, code string) db_models.BadgeProgress {
	at := time.Now().Unix()
	return db_models.BadgeProgress{
		BadgeID:  id,
		Earned:   true,
		EarnedAt: &at,
		Badge:    db_models.BadgeDefinition{Code: code, Name: code},
	}
}

func unearnedBadge(id uuid.UUID, code string) db_models.BadgeProgress {
	return db_models.BadgeProgress{
		BadgeID: id,
		Badge:   db_models.BadgeDefinition{Code: code, Name: code},
	}
}

func TestAfterMutationSeedsSilently(t *testing.T) {
	repo := &fakeProfileRepo{
		profile:  &db_models.Profile{DisplayName: "Ana"},
		progress: []db_models.BadgeProgress{earnedBadge(uuid.New(), "first-entry")},
	}
	svc := NewEngagementService(repo)

	if _, err := svc.AfterMutation(context.Background(), "acct-1"); err != nil {
		t.Fatal(err)
	}
	if notes := svc.PullNotifications("acct-1"); len(notes) != 0 {
		t.Errorf("first reconciliation must not notify, got %d notifications", len(notes))
	}
}

func TestFirstMutationBadgeNotifiesAfterLoad(t *testing.T) {
	// A brand-new user loads their profile (nothing earned yet), then their
	// first entry earns a badge. The mount-time read seeded the baseline, so
	// that badge must notify.
	badgeID := uuid.New()
	repo := &fakeProfileRepo{
		profile:  &db_models.Profile{DisplayName: "Ana"},
		progress: []db_models.BadgeProgress{unearnedBadge(badgeID, "first-entry")},
	}
	svc := NewEngagementService(repo)
	ctx := context.Background()

	if _, err := svc.GetProfile(ctx, "acct-1"); err != nil {
		t.Fatal(err)
	}

	repo.progress = []db_models.BadgeProgress{earnedBadge(badgeID, "first-entry")}
	if _, err := svc.AfterMutation(ctx, "acct-1"); err != nil {
		t.Fatal(err)
	}

	notes := svc.PullNotifications("acct-1")
	if len(notes) != 1 {
		t.Fatalf("got %d notifications, want 1", len(notes))
	}
	if notes[0].Code != "first-entry" {
		t.Errorf("notification code = %q, want first-entry", notes[0].Code)
	}
}

func TestGetBadgesSeedsBaseline(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	repo := &fakeProfileRepo{
		profile:  &db_models.Profile{DisplayName: "Ana"},
		progress: []db_models.BadgeProgress{earnedBadge(a, "first-entry")},
	}
	svc := NewEngagementService(repo)
	ctx := context.Background()

	if _, err := svc.GetBadges(ctx, "acct-1"); err != nil {
		t.Fatal(err)
	}

	// The badge earned before load stays silent; the one earned after fires.
	repo.progress = []db_models.BadgeProgress{earnedBadge(a, "first-entry"), earnedBadge(b, "streak-3")}
	svc.AfterMutation(ctx, "acct-1")

	notes := svc.PullNotifications("acct-1")
	if len(notes) != 1 {
		t.Fatalf("got %d notifications, want 1", len(notes))
	}
	if notes[0].BadgeID != b.String() {
		t.Errorf("notified badge %s, want the newly earned %s", notes[0].BadgeID, b)
	}
}

func TestAfterMutationNotifiesFirstNewBadgeOnly(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	repo := &fakeProfileRepo{
		profile:  &db_models.Profile{DisplayName: "Ana"},
		progress: []db_models.BadgeProgress{earnedBadge(a, "first-entry")},
	}
	svc := NewEngagementService(repo)
	ctx := context.Background()

	if _, err := svc.AfterMutation(ctx, "acct-1"); err != nil {
		t.Fatal(err)
	}

	repo.progress = []db_models.BadgeProgress{
		earnedBadge(a, "first-entry"),
		earnedBadge(b, "streak-3"),
		earnedBadge(c, "entries-10"),
	}
	if _, err := svc.AfterMutation(ctx, "acct-1"); err != nil {
		t.Fatal(err)
	}

	notes := svc.PullNotifications("acct-1")
	if len(notes) != 1 {
		t.Fatalf("got %d notifications, want exactly 1", len(notes))
	}
	if notes[0].BadgeID == a.String() {
		t.Error("notification references a previously known badge")
	}
}

func TestAfterMutationIdempotent(t *testing.T) {
	a := uuid.New()
	repo := &fakeProfileRepo{
		profile:  &db_models.Profile{DisplayName: "Ana"},
		progress: []db_models.BadgeProgress{earnedBadge(a, "first-entry"), unearnedBadge(uuid.New(), "streak-7")},
	}
	svc := NewEngagementService(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.AfterMutation(ctx, "acct-1"); err != nil {
			t.Fatal(err)
		}
	}
	if notes := svc.PullNotifications("acct-1"); len(notes) != 0 {
		t.Errorf("unchanged state produced %d notifications", len(notes))
	}
}

func TestAfterMutationAbsorbsSkippedBadges(t *testing.T) {
	// A badge that was new but not chosen for notification is still marked
	// known; it never fires on a later reconciliation.
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	repo := &fakeProfileRepo{
		profile:  &db_models.Profile{DisplayName: "Ana"},
		progress: []db_models.BadgeProgress{earnedBadge(a, "first-entry")},
	}
	svc := NewEngagementService(repo)
	ctx := context.Background()

	svc.AfterMutation(ctx, "acct-1")
	repo.progress = []db_models.BadgeProgress{earnedBadge(a, "a"), earnedBadge(b, "b"), earnedBadge(c, "c")}
	svc.AfterMutation(ctx, "acct-1")
	svc.PullNotifications("acct-1")

	svc.AfterMutation(ctx, "acct-1")
	if notes := svc.PullNotifications("acct-1"); len(notes) != 0 {
		t.Errorf("absorbed badge re-notified: %v", notes)
	}
}

func TestAfterMutationMissingProfile(t *testing.T) {
	svc := NewEngagementService(&fakeProfileRepo{})

	_, err := svc.AfterMutation(context.Background(), "acct-1")
	if !errors.Is(err, utils.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestAfterMutationBadgeReadFailureKeepsProfile(t *testing.T) {
	repo := &fakeProfileRepo{
		profile:     &db_models.Profile{DisplayName: "Ana", CurrentStreak: 4},
		progressErr: errors.New("db down"),
	}
	svc := NewEngagementService(repo)

	profile, err := svc.AfterMutation(context.Background(), "acct-1")
	if err != nil {
		t.Fatalf("badge read failure must not fail reconciliation: %v", err)
	}
	if profile == nil || profile.CurrentStreak != 4 {
		t.Error("profile state lost on badge read failure")
	}
}

func TestCloseSessionReseeds(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	repo := &fakeProfileRepo{
		profile:  &db_models.Profile{DisplayName: "Ana"},
		progress: []db_models.BadgeProgress{earnedBadge(a, "first-entry")},
	}
	svc := NewEngagementService(repo)
	ctx := context.Background()

	svc.AfterMutation(ctx, "acct-1")
	svc.CloseSession("acct-1")

	// After the session is dropped, the next reconciliation seeds again; a
	// badge earned in between arrives silently.
	repo.progress = []db_models.BadgeProgress{earnedBadge(a, "first-entry"), earnedBadge(b, "streak-3")}
	svc.AfterMutation(ctx, "acct-1")
	if notes := svc.PullNotifications("acct-1"); len(notes) != 0 {
		t.Errorf("reseed after close must be silent, got %v", notes)
	}
}

func TestSetSubscription(t *testing.T) {
	repo := &fakeProfileRepo{profile: &db_models.Profile{DisplayName: "Ana"}}
	svc := NewEngagementService(repo)
	ctx := context.Background()

	expires := time.Now().AddDate(0, 1, 0).Unix()
	if err := svc.SetSubscription(ctx, "acct-1", db_models.SubStatusPremium, "monthly", &expires); err != nil {
		t.Fatal(err)
	}

	if len(repo.subUpdates) != 1 {
		t.Fatalf("recorded %d subscription updates, want 1", len(repo.subUpdates))
	}
	got := repo.subUpdates[0]
	if got.status != db_models.SubStatusPremium || got.tier != "monthly" || got.expiresAt == nil {
		t.Errorf("unexpected update written: %+v", got)
	}
}

func TestSetSubscriptionMissingProfile(t *testing.T) {
	svc := NewEngagementService(&fakeProfileRepo{})

	err := svc.SetSubscription(context.Background(), "acct-1", db_models.SubStatusFree, "", nil)
	if !errors.Is(err, utils.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestPullNotificationsDrains(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	repo := &fakeProfileRepo{
		profile:  &db_models.Profile{DisplayName: "Ana"},
		progress: []db_models.BadgeProgress{earnedBadge(a, "first-entry")},
	}
	svc := NewEngagementService(repo)
	ctx := context.Background()

	svc.AfterMutation(ctx, "acct-1")
	repo.progress = []db_models.BadgeProgress{earnedBadge(a, "first-entry"), earnedBadge(b, "streak-3")}
	svc.AfterMutation(ctx, "acct-1")

	if notes := svc.PullNotifications("acct-1"); len(notes) != 1 {
		t.Fatalf("got %d notifications, want 1", len(notes))
	}
	if notes := svc.PullNotifications("acct-1"); len(notes) != 0 {
		t.Errorf("second pull returned %d notifications, want 0", len(notes))
	}
}
