package controllers_fx

import (
	"go.uber.org/fx"
	"solace/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewEntryController),
	fx.Provide(controllers.NewSuggestionController),
	fx.Provide(controllers.NewEngagementController),
	fx.Provide(controllers.NewPromptController))
