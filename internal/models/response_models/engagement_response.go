package response_models

type ProfileResponse struct {
	DisplayName           string `json:"display_name"`
	Timezone              string `json:"timezone"`
	CurrentStreak         int    `json:"current_streak"`
	BestStreak            int    `json:"best_streak"`
	LastEntryDate         string `json:"last_entry_date,omitempty"`
	SubscriptionStatus    string `json:"subscription_status"`
	SubscriptionTier      string `json:"subscription_tier,omitempty"`
	SubscriptionExpiresAt string `json:"subscription_expires_at,omitempty"`
	IsPremium             bool   `json:"is_premium"`
}

type BadgeResponse struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Icon            string  `json:"icon,omitempty"`
	Earned          bool    `json:"earned"`
	EarnedAt        string  `json:"earned_at,omitempty"`
	ProgressCurrent int     `json:"progress_current"`
	ProgressTarget  int     `json:"progress_target"`
	ProgressPercent float64 `json:"progress_percent"`
}

// BadgeNotification is one "you just earned X" event. At most one fires per
// reconciliation even when several badges unlock together.
type BadgeNotification struct {
	BadgeID  string `json:"badge_id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	EarnedAt string `json:"earned_at"`
}
