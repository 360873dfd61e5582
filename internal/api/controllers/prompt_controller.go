package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"solace/internal/services"
	"solace/pkg/utils"
)

type PromptController struct {
	prompts services.PromptServiceInterface
}

func NewPromptController(prompts services.PromptServiceInterface) *PromptController {
	return &PromptController{prompts: prompts}
}

// DailyPromptHandler serves today's journaling prompt. `mood` biases the pool
// and `shown` (comma separated) filters out prompts the client already
// displayed.
func (pc *PromptController) DailyPromptHandler(c *gin.Context) {
	mood := services.MoodNeutral
	if raw := c.Query("mood"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			mood = services.ClampMoodLevel(v)
		}
	}

	var shown []string
	if raw := c.Query("shown"); raw != "" {
		shown = strings.Split(raw, ",")
	}

	utils.RespondSuccess(c, pc.prompts.DailyPrompt(mood, shown), "")
}
