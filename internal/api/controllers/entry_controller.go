package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"solace/internal/models/request_models"
	"solace/internal/services"
	"solace/pkg/utils"
)

type EntryController struct {
	enrichment services.EnrichmentServiceInterface
	entries    services.EntryServiceInterface
}

func NewEntryController(enrichment services.EnrichmentServiceInterface, entries services.EntryServiceInterface) *EntryController {
	return &EntryController{
		enrichment: enrichment,
		entries:    entries,
	}
}

// SubmitEntryHandler runs the full enrichment pipeline for a new entry.
func (ec *EntryController) SubmitEntryHandler(c *gin.Context) {
	accountID := c.GetString("user_id")

	var req request_models.SubmitEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := ec.enrichment.SubmitEntry(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, result.SuccessMessage)
}

func (ec *EntryController) ListEntriesHandler(c *gin.Context) {
	accountID := c.GetString("user_id")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	entries, err := ec.entries.ListEntries(c.Request.Context(), accountID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Fetched entries successfully")
}

func (ec *EntryController) GetEntryHandler(c *gin.Context) {
	accountID := c.GetString("user_id")
	entryID := c.Param("id")

	entry, err := ec.entries.GetEntry(c.Request.Context(), accountID, entryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Fetched entry successfully")
}

func (ec *EntryController) DeleteEntryHandler(c *gin.Context) {
	accountID := c.GetString("user_id")
	entryID := c.Param("id")

	if err := ec.entries.DeleteEntry(c.Request.Context(), accountID, entryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Entry deleted")
}

func (ec *EntryController) RelatedEntriesHandler(c *gin.Context) {
	accountID := c.GetString("user_id")
	entryID := c.Param("id")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil {
		limit = 5
	}

	related, err := ec.entries.RelatedEntries(c.Request.Context(), accountID, entryID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, related, "Fetched related entries successfully")
}
