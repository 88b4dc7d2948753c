package service

import (
	"context"

	"coach-planner-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// StateServiceInterface defines the interface for the state service
type StateServiceInterface interface {
	Load(ctx context.Context) (*models.AppState, error)
	Mutate(ctx context.Context, fn func(*models.AppState) bool) error
	Ping(ctx context.Context) error

	// Teams
	CreateTeam(ctx context.Context, req *CreateTeamRequest) (*models.Team, error)
	UpdateTeam(ctx context.Context, teamID string, req *UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, teamID string) (*models.TrashItem, error)
	SetActiveTeamID(ctx context.Context, teamID *string) error
	GetTeam(ctx context.Context, teamID string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	GetActiveTeam(ctx context.Context) (*models.Team, error)
	GetTeamSummary(ctx context.Context, teamID string) (*TeamSummary, error)
	GetTeamProgress(ctx context.Context, teamID string) (*TeamProgress, error)

	// Season
	UpdateSeasonPhase(ctx context.Context, teamID, phaseID string, req *UpdateSeasonPhaseRequest) (*models.SeasonPhase, error)

	// Players
	CreatePlayer(ctx context.Context, teamID string, req *PlayerRequest) (*models.Player, error)
	UpdatePlayer(ctx context.Context, teamID, playerID string, req *UpdatePlayerRequest) (*models.Player, error)
	DeletePlayer(ctx context.Context, teamID, playerID string) (*models.TrashItem, error)

	// Trainings
	CreateTraining(ctx context.Context, teamID string, req *TrainingRequest) (*models.TrainingSession, error)
	UpdateTraining(ctx context.Context, teamID, trainingID string, req *UpdateTrainingRequest) (*models.TrainingSession, error)
	DeleteTraining(ctx context.Context, teamID, trainingID string) (*models.TrashItem, error)

	// Matches
	CreateMatch(ctx context.Context, teamID string, req *MatchRequest) (*models.Match, error)
	UpdateMatch(ctx context.Context, teamID, matchID string, req *UpdateMatchRequest) (*models.Match, error)
	DeleteMatch(ctx context.Context, teamID, matchID string) (*models.TrashItem, error)

	// Chats
	SaveChat(ctx context.Context, teamID string, chat *models.AIChat) (*models.AIChat, error)
	AppendChatTurns(ctx context.Context, teamID, chatID string, turns ...models.ChatMessage) (*models.AIChat, error)
	DeleteChat(ctx context.Context, teamID, chatID string) (bool, error)
	ListChats(ctx context.Context, teamID, query string) ([]models.AIChat, error)

	// Trash
	ListTrash(ctx context.Context) ([]models.TrashItem, error)
	GetTrashItem(ctx context.Context, itemID string) (*models.TrashItem, error)
	RestoreTrashItem(ctx context.Context, itemID string) (*RestoreResult, error)
	PermanentDelete(ctx context.Context, itemID string) (bool, error)
	ClearTrash(ctx context.Context) error
	TrashEntity(ctx context.Context, req *TrashEntityRequest) (*models.TrashItem, error)
}

// GenerationServiceInterface defines the interface for the generation gateway
type GenerationServiceInterface interface {
	GenerateTrainingSession(ctx context.Context, params *TrainingSessionParams) (*models.TrainingContent, error)
	GenerateSeasonObjectives(ctx context.Context, params *SeasonObjectivesParams) (string, error)
	ChatReply(ctx context.Context, message string, chatCtx *ChatContext) (string, error)
}

// AssistantServiceInterface defines the interface for the assistant chat flow
type AssistantServiceInterface interface {
	SendMessage(ctx context.Context, teamID string, req *SendMessageRequest) (*models.AIChat, error)
}
