package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"solace/cmd/fx/account_fx"
	"solace/cmd/fx/ai_fx"
	"solace/cmd/fx/controllers_fx"
	"solace/cmd/fx/db_fx"
	"solace/cmd/fx/engagement_fx"
	"solace/cmd/fx/enrichment_fx"
	"solace/cmd/fx/entry_fx"
	"solace/cmd/fx/mail_fx"
	"solace/cmd/fx/memcache_fx"
	"solace/cmd/fx/prompt_fx"
	"solace/cmd/fx/quota_fx"
	"solace/cmd/fx/suggestion_fx"
	"solace/internal/api/controllers"
	"solace/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		entry_fx.Module,
		quota_fx.Module,
		engagement_fx.Module,
		enrichment_fx.Module,
		suggestion_fx.Module,
		prompt_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	entryController *controllers.EntryController,
	suggestionController *controllers.SuggestionController,
	engagementController *controllers.EngagementController,
	promptController *controllers.PromptController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, entryController, suggestionController, engagementController, promptController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	entryController *controllers.EntryController,
	suggestionController *controllers.SuggestionController,
	engagementController *controllers.EngagementController,
	promptController *controllers.PromptController) {

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", accountController.SignUpHandler)
	authGroup.POST("/login", accountController.LoginHandler)
	authGroup.POST("/forgot-password", accountController.ForgotPasswordHandler)
	authGroup.POST("/reset-password", accountController.ResetPasswordHandler)

	entriesGroup := api.Group("/entries", middleware.JWTAuthMiddleware())
	entriesGroup.POST("", entryController.SubmitEntryHandler)
	entriesGroup.GET("", entryController.ListEntriesHandler)
	entriesGroup.GET("/:id", entryController.GetEntryHandler)
	entriesGroup.DELETE("/:id", entryController.DeleteEntryHandler)
	entriesGroup.GET("/:id/related", entryController.RelatedEntriesHandler)

	draftGroup := api.Group("/draft", middleware.JWTAuthMiddleware())
	draftGroup.PUT("", suggestionController.UpdateDraftHandler)
	draftGroup.DELETE("", suggestionController.CloseDraftHandler)
	draftGroup.GET("/suggestion", suggestionController.GetSuggestionHandler)
	draftGroup.POST("/suggestion/accept", suggestionController.AcceptSuggestionHandler)
	draftGroup.POST("/suggestion/dismiss", suggestionController.DismissSuggestionHandler)

	meGroup := api.Group("/me", middleware.JWTAuthMiddleware())
	meGroup.GET("/profile", engagementController.GetProfileHandler)
	meGroup.GET("/badges", engagementController.GetBadgesHandler)
	meGroup.GET("/notifications", engagementController.GetNotificationsHandler)

	adminGroup := api.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	adminGroup.PUT("/subscriptions", engagementController.UpdateSubscriptionHandler)

	api.GET("/prompts/daily", promptController.DailyPromptHandler)
}
