package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"solace/internal/models/db_models"
	"solace/internal/models/request_models"
	"solace/internal/services"
	"solace/pkg/utils"
)

type EngagementController struct {
	engagement services.EngagementServiceInterface
}

func NewEngagementController(engagement services.EngagementServiceInterface) *EngagementController {
	return &EngagementController{engagement: engagement}
}

func (gc *EngagementController) GetProfileHandler(c *gin.Context) {
	accountID := c.GetString("user_id")

	profile, err := gc.engagement.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Fetched profile successfully")
}

func (gc *EngagementController) GetBadgesHandler(c *gin.Context) {
	accountID := c.GetString("user_id")

	badges, err := gc.engagement.GetBadges(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, badges, "Fetched badges successfully")
}

// GetNotificationsHandler drains queued badge notifications; the client polls
// this after a submission to show "badge earned" toasts.
func (gc *EngagementController) GetNotificationsHandler(c *gin.Context) {
	accountID := c.GetString("user_id")
	utils.RespondSuccess(c, gc.engagement.PullNotifications(accountID), "")
}

// UpdateSubscriptionHandler is the admin surface for subscription changes,
// e.g. applying a billing webhook outcome by hand.
func (gc *EngagementController) UpdateSubscriptionHandler(c *gin.Context) {
	var req request_models.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := gc.engagement.SetSubscription(
		c.Request.Context(),
		req.AccountID,
		db_models.SubscriptionStatus(req.Status),
		req.Tier,
		req.ExpiresAt,
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Subscription updated")
}
