package request_models

type UpdateSubscriptionRequest struct {
	AccountID string `json:"account_id" binding:"required,uuid"`
	Status    string `json:"status" binding:"required,oneof=free trialing premium expired"`
	Tier      string `json:"tier"`
	ExpiresAt *int64 `json:"expires_at"` // unix seconds; null means no expiry
}
