package service

import (
	"context"
	"strings"

	"coach-planner-backend/internal/database/models"
	apperrors "coach-planner-backend/internal/errors"
	"coach-planner-backend/internal/logger"

	"github.com/jonboulle/clockwork"
)

// GenerationFailedMessage is the inline message shown when the assistant cannot answer
const GenerationFailedMessage = "Error de conexión. Inténtalo de nuevo."

// SendMessageRequest sends one user message to the assistant. An empty
// ChatID starts a new chat.
type SendMessageRequest struct {
	ChatID  string `json:"chatId,omitempty"`
	Message string `json:"message" validate:"required,max=4000"`
}

// AssistantService runs the chat flow: ask the generation provider, then
// persist the user turn and the reply together.
type AssistantService struct {
	state      StateServiceInterface
	generation GenerationServiceInterface
	clock      clockwork.Clock
}

// Ensure AssistantService implements AssistantServiceInterface
var _ AssistantServiceInterface = (*AssistantService)(nil)

// NewAssistantService creates a new assistant service
func NewAssistantService(state StateServiceInterface, generation GenerationServiceInterface, clock clockwork.Clock) *AssistantService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &AssistantService{state: state, generation: generation, clock: clock}
}

// SendMessage asks the assistant and saves both turns into the chat. When
// the provider fails nothing is persisted and the generation error is returned.
func (s *AssistantService) SendMessage(ctx context.Context, teamID string, req *SendMessageRequest) (*models.AIChat, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, apperrors.ErrEmptyChatMessage
	}

	team, err := s.state.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	var history []models.ChatMessage
	if req.ChatID != "" {
		idx := team.ChatIndex(req.ChatID)
		if idx < 0 {
			return nil, apperrors.ErrChatNotFound
		}
		history = team.Chats[idx].Clone().Messages
	}

	sentAt := s.clock.Now().UnixMilli()
	reply, err := s.generation.ChatReply(ctx, message, NewChatContext(team, history))
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("team_id", teamID).Warn("assistant reply failed")
		return nil, err
	}
	repliedAt := s.clock.Now().UnixMilli()

	// the turns are appended to the chat as stored now, not to the copy read above
	saved, err := s.state.AppendChatTurns(ctx, teamID, req.ChatID,
		models.ChatMessage{Role: models.ChatRoleUser, Text: message, Timestamp: sentAt},
		models.ChatMessage{Role: models.ChatRoleModel, Text: reply, Timestamp: repliedAt},
	)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		// the team was deleted while the provider was answering
		return nil, apperrors.ErrTeamNotFound
	}
	return saved, nil
}
