package routes

import (
	"time"

	"coach-planner-backend/internal/api/handlers"
	"coach-planner-backend/internal/api/middleware"
	"coach-planner-backend/internal/config"
	"coach-planner-backend/internal/repository"
	"coach-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// EventsHeartbeat is the interval of keep-alive pings on open event streams
var EventsHeartbeat = 30 * time.Second

// SetupRoutes configures all the routes for the application on top of the given state backend
func SetupRoutes(repo repository.StateRepositoryInterface, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()
	clock := clockwork.NewRealClock()

	// Initialize services
	notifier := service.NewNotifier()
	stateService := service.NewStateService(repo, cfg.StateKey, notifier, clock, validator)
	generationService := service.NewGenerationService(service.GenerationConfig{
		Endpoint:          cfg.GenerationEndpoint,
		APIKey:            cfg.GenerationAPIKey,
		Model:             cfg.GenerationModel,
		ResponsePath:      cfg.GenerationResponsePath,
		Timeout:           time.Duration(cfg.GenerationTimeoutSec) * time.Second,
		OAuthTokenURL:     cfg.GenerationOAuthTokenURL,
		OAuthClientID:     cfg.GenerationOAuthClientID,
		OAuthClientSecret: cfg.GenerationOAuthClientSecret,
	}, validator)
	assistantService := service.NewAssistantService(stateService, generationService, clock)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(stateService, cfg.StateBackend, cfg.HasGenerationProvider())
	stateHandler := handlers.NewStateHandler(stateService)
	teamHandler := handlers.NewTeamHandler(stateService)
	playerHandler := handlers.NewPlayerHandler(stateService)
	trainingHandler := handlers.NewTrainingHandler(stateService)
	matchHandler := handlers.NewMatchHandler(stateService)
	chatHandler := handlers.NewChatHandler(stateService, assistantService)
	trashHandler := handlers.NewTrashHandler(stateService)
	generationHandler := handlers.NewGenerationHandler(generationService, stateService)
	eventsHandler := handlers.NewEventsHandler(notifier, EventsHeartbeat)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// State routes
		v1.GET("/state", stateHandler.GetState)
		v1.PUT("/state/active-team", stateHandler.SetActiveTeam)

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:teamId", teamHandler.GetTeam)
			teams.PATCH("/:teamId", teamHandler.UpdateTeam)
			teams.DELETE("/:teamId", teamHandler.DeleteTeam)
			teams.GET("/:teamId/summary", teamHandler.GetSummary)
			teams.GET("/:teamId/progress", teamHandler.GetProgress)
			teams.PATCH("/:teamId/season-phases/:phaseId", teamHandler.UpdateSeasonPhase)

			teams.POST("/:teamId/players", playerHandler.CreatePlayer)
			teams.PATCH("/:teamId/players/:playerId", playerHandler.UpdatePlayer)
			teams.DELETE("/:teamId/players/:playerId", playerHandler.DeletePlayer)

			teams.POST("/:teamId/trainings", trainingHandler.CreateTraining)
			teams.PATCH("/:teamId/trainings/:trainingId", trainingHandler.UpdateTraining)
			teams.DELETE("/:teamId/trainings/:trainingId", trainingHandler.DeleteTraining)

			teams.POST("/:teamId/matches", matchHandler.CreateMatch)
			teams.PATCH("/:teamId/matches/:matchId", matchHandler.UpdateMatch)
			teams.DELETE("/:teamId/matches/:matchId", matchHandler.DeleteMatch)

			teams.GET("/:teamId/chats", chatHandler.ListChats)
			teams.POST("/:teamId/chats/messages", chatHandler.SendMessage)
			teams.PUT("/:teamId/chats/:chatId", chatHandler.SaveChat)
			teams.DELETE("/:teamId/chats/:chatId", chatHandler.DeleteChat)
		}

		// Trash routes
		trash := v1.Group("/trash")
		{
			trash.GET("", trashHandler.ListTrash)
			trash.POST("", trashHandler.TrashEntity)
			trash.DELETE("", trashHandler.ClearTrash)
			trash.POST("/:itemId/restore", trashHandler.RestoreItem)
			trash.DELETE("/:itemId", trashHandler.DeleteItem)
		}

		// Generation routes
		generation := v1.Group("/generation")
		{
			generation.POST("/training-session", generationHandler.TrainingSession)
			generation.POST("/season-objectives", generationHandler.SeasonObjectives)
			generation.POST("/chat", generationHandler.Chat)
		}

		v1.GET("/events", eventsHandler.Stream)
	}

	return router
}
