package service

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"coach-planner-backend/internal/database/models"
	apperrors "coach-planner-backend/internal/errors"
)

// SaveChat inserts the chat into the team, or replaces the chat with the
// same id. An empty id gets a fresh one, an empty title is derived from the
// first user message and a zero LastUpdate is stamped with the current time.
// A missing team is a no-op and returns nil.
func (s *StateService) SaveChat(ctx context.Context, teamID string, chat *models.AIChat) (*models.AIChat, error) {
	if chat == nil {
		return nil, apperrors.NewValidationError("chat", "is required")
	}

	saved := chat.Clone()
	if saved.ID == "" {
		saved.ID = s.newID()
	}
	if saved.Messages == nil {
		saved.Messages = []models.ChatMessage{}
	}
	for _, m := range saved.Messages {
		if !m.Role.IsValid() {
			return nil, apperrors.NewValidationError("role", "must be user or model")
		}
	}
	if saved.Title == "" {
		if first := firstUserMessage(saved.Messages); first != "" {
			saved.Title = models.ChatTitle(first)
		}
	}
	if saved.LastUpdate == 0 {
		saved.LastUpdate = s.now()
	}

	var result *models.AIChat
	err := s.mutate(ctx, "save_chat", func(state *models.AppState) bool {
		team := state.Team(teamID)
		if team == nil {
			return false
		}
		if idx := team.ChatIndex(saved.ID); idx >= 0 {
			team.Chats[idx] = saved
		} else {
			team.Chats = append(team.Chats, saved)
		}
		result = &saved
		return true
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AppendChatTurns appends turns to the chat as it is stored when the change
// is applied, so concurrent sends to the same chat all keep their turns. An
// empty chatID starts a new chat titled after the first user turn. A missing
// team is a no-op and returns nil; a chat deleted in the meantime is
// ErrChatNotFound.
func (s *StateService) AppendChatTurns(ctx context.Context, teamID, chatID string, turns ...models.ChatMessage) (*models.AIChat, error) {
	if len(turns) == 0 {
		return nil, apperrors.NewValidationError("turns", "at least one message is required")
	}
	for _, m := range turns {
		if !m.Role.IsValid() {
			return nil, apperrors.NewValidationError("role", "must be user or model")
		}
	}

	var (
		result  *models.AIChat
		missing bool
	)
	err := s.mutate(ctx, "append_chat_turns", func(state *models.AppState) bool {
		team := state.Team(teamID)
		if team == nil {
			return false
		}

		idx := -1
		if chatID != "" {
			if idx = team.ChatIndex(chatID); idx < 0 {
				missing = true
				return false
			}
		} else {
			team.Chats = append(team.Chats, models.AIChat{ID: s.newID(), Messages: []models.ChatMessage{}})
			idx = len(team.Chats) - 1
		}

		chat := &team.Chats[idx]
		if len(chat.Messages) == 0 && chat.Title == "" {
			if first := firstUserMessage(turns); first != "" {
				chat.Title = models.ChatTitle(first)
			}
		}
		chat.Messages = append(chat.Messages, turns...)
		chat.LastUpdate = turns[len(turns)-1].Timestamp
		saved := chat.Clone()
		result = &saved
		return true
	})
	if err != nil {
		return nil, err
	}
	if missing {
		return nil, apperrors.ErrChatNotFound
	}
	return result, nil
}

// DeleteChat removes the chat permanently; chats never go to the trash.
// It reports whether a chat was removed.
func (s *StateService) DeleteChat(ctx context.Context, teamID, chatID string) (bool, error) {
	var removed bool
	err := s.mutate(ctx, "delete_chat", func(state *models.AppState) bool {
		team := state.Team(teamID)
		if team == nil {
			return false
		}
		idx := team.ChatIndex(chatID)
		if idx < 0 {
			return false
		}
		team.Chats = slices.Delete(team.Chats, idx, idx+1)
		removed = true
		return true
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// ListChats returns the team's chats, most recently updated first, keeping
// those whose title contains query (case-insensitive) when query is set.
func (s *StateService) ListChats(ctx context.Context, teamID, query string) ([]models.AIChat, error) {
	team, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	chats := make([]models.AIChat, 0, len(team.Chats))
	for _, c := range team.Chats {
		if q == "" || strings.Contains(strings.ToLower(c.Title), q) {
			chats = append(chats, c)
		}
	}
	slices.SortStableFunc(chats, func(a, b models.AIChat) int {
		return cmp.Compare(b.LastUpdate, a.LastUpdate)
	})
	return chats, nil
}

func firstUserMessage(messages []models.ChatMessage) string {
	for _, m := range messages {
		if m.Role == models.ChatRoleUser {
			return m.Text
		}
	}
	return ""
}
