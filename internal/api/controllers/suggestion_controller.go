package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"solace/internal/models/request_models"
	"solace/internal/services"
	"solace/pkg/utils"
)

// SuggestionController bridges the live editor to the mood suggestion
// debouncer. The session is the authenticated user; one draft per user at a
// time.
type SuggestionController struct {
	suggestions services.SuggestionServiceInterface
}

func NewSuggestionController(suggestions services.SuggestionServiceInterface) *SuggestionController {
	return &SuggestionController{suggestions: suggestions}
}

func (sc *SuggestionController) UpdateDraftHandler(c *gin.Context) {
	accountID := c.GetString("user_id")

	var req request_models.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	sc.suggestions.UpdateDraft(accountID, req.Text, req.SelectedMood)
	utils.RespondSuccess(c, nil, "Draft updated")
}

func (sc *SuggestionController) GetSuggestionHandler(c *gin.Context) {
	accountID := c.GetString("user_id")
	utils.RespondSuccess(c, sc.suggestions.Suggestion(accountID), "")
}

func (sc *SuggestionController) AcceptSuggestionHandler(c *gin.Context) {
	accountID := c.GetString("user_id")

	mood, ok := sc.suggestions.Accept(accountID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, "No pending suggestion")
		return
	}

	utils.RespondSuccess(c, gin.H{"mood": int(mood), "label": mood.Label()}, "Suggestion accepted")
}

func (sc *SuggestionController) DismissSuggestionHandler(c *gin.Context) {
	accountID := c.GetString("user_id")

	if !sc.suggestions.Dismiss(accountID) {
		utils.RespondError(c, http.StatusNotFound, "No pending suggestion")
		return
	}

	utils.RespondSuccess(c, nil, "Suggestion dismissed")
}

// CloseDraftHandler tears down the draft session when the editor unmounts so
// a late classification never lands on a stale view.
func (sc *SuggestionController) CloseDraftHandler(c *gin.Context) {
	accountID := c.GetString("user_id")
	sc.suggestions.CloseSession(accountID)
	utils.RespondSuccess(c, nil, "Draft closed")
}
