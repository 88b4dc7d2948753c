package service

import (
	"context"

	"coach-planner-backend/internal/database/models"
	apperrors "coach-planner-backend/internal/errors"
	"coach-planner-backend/internal/logger"
)

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Category models.Category `json:"category" validate:"required,category"`
	Age      string          `json:"age" validate:"max=50"`
	Level    models.Level    `json:"level" validate:"required,level"`
	Season   string          `json:"season" validate:"max=200"`
}

// UpdateTeamRequest represents a partial team update. Nil fields are left untouched.
type UpdateTeamRequest struct {
	Name     *string          `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Category *models.Category `json:"category,omitempty" validate:"omitempty,category"`
	Age      *string          `json:"age,omitempty" validate:"omitempty,max=50"`
	Level    *models.Level    `json:"level,omitempty" validate:"omitempty,level"`
	Season   *string          `json:"season,omitempty" validate:"omitempty,max=200"`
}

// Apply merges the non-nil fields into team
func (r *UpdateTeamRequest) Apply(team *models.Team) {
	if r.Name != nil {
		team.Name = *r.Name
	}
	if r.Category != nil {
		team.Category = *r.Category
	}
	if r.Age != nil {
		team.Age = *r.Age
	}
	if r.Level != nil {
		team.Level = *r.Level
	}
	if r.Season != nil {
		team.Season = *r.Season
	}
}

// SetActiveTeamRequest selects the active team; a null id clears the selection
type SetActiveTeamRequest struct {
	TeamID *string `json:"teamId"`
}

// CreateTeam appends a new team with the four default season phases. The
// team becomes active when no team is active yet.
func (s *StateService) CreateTeam(ctx context.Context, req *CreateTeamRequest) (*models.Team, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	team := models.Team{
		ID:           s.newID(),
		Name:         req.Name,
		Category:     req.Category,
		Age:          req.Age,
		Level:        req.Level,
		Season:       req.Season,
		SeasonPhases: models.DefaultSeasonPhases(),
		Players:      []models.Player{},
		Trainings:    []models.TrainingSession{},
		Matches:      []models.Match{},
		Chats:        []models.AIChat{},
	}

	err := s.mutate(ctx, "create_team", func(state *models.AppState) bool {
		state.Teams = append(state.Teams, team)
		if state.ActiveTeamID == nil {
			state.SetActiveTeam(team.ID)
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("team_id", team.ID).Info("team created")
	return &team, nil
}

// UpdateTeam merges the request into the team. A missing team is a no-op and returns nil.
func (s *StateService) UpdateTeam(ctx context.Context, teamID string, req *UpdateTeamRequest) (*models.Team, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var updated *models.Team
	err := s.mutate(ctx, "update_team", func(state *models.AppState) bool {
		team := state.Team(teamID)
		if team == nil {
			return false
		}
		req.Apply(team)
		c := team.Clone()
		updated = &c
		return true
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTeam moves the team, with its whole subtree, into the trash as one
// item. When the deleted team was active the first remaining team becomes
// active. A missing team is a no-op and returns nil.
func (s *StateService) DeleteTeam(ctx context.Context, teamID string) (*models.TrashItem, error) {
	var trashed *models.TrashItem
	err := s.mutate(ctx, "delete_team", func(state *models.AppState) bool {
		trashed = s.trashTeam(state, teamID)
		return trashed != nil
	})
	if err != nil {
		return nil, err
	}
	if trashed != nil {
		logger.WithContext(ctx).WithField("team_id", teamID).Info("team moved to trash")
	}
	return trashed, nil
}

func (s *StateService) trashTeam(state *models.AppState, teamID string) *models.TrashItem {
	idx := state.TeamIndex(teamID)
	if idx < 0 {
		return nil
	}
	item := models.NewTeamTrashItem(s.newID(), state.Teams[idx], s.now())
	state.Teams = append(state.Teams[:idx], state.Teams[idx+1:]...)
	state.Trash = append(state.Trash, item)
	if state.ActiveID() == teamID {
		state.ResetActiveTeam()
	}
	return &item
}

// SetActiveTeamID points the active selection at teamID, or clears it when
// teamID is nil. Unknown ids are rejected with ErrTeamNotFound.
func (s *StateService) SetActiveTeamID(ctx context.Context, teamID *string) error {
	var notFound bool
	err := s.mutate(ctx, "set_active_team", func(state *models.AppState) bool {
		if teamID == nil {
			state.ActiveTeamID = nil
			return true
		}
		if state.TeamIndex(*teamID) < 0 {
			notFound = true
			return false
		}
		state.SetActiveTeam(*teamID)
		return true
	})
	if err != nil {
		return err
	}
	if notFound {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

// GetTeam returns a copy of the team with the given id
func (s *StateService) GetTeam(ctx context.Context, teamID string) (*models.Team, error) {
	state := s.loadOrDefault(ctx)
	team := state.Team(teamID)
	if team == nil {
		return nil, apperrors.ErrTeamNotFound
	}
	c := team.Clone()
	return &c, nil
}

// ListTeams returns all teams in creation order
func (s *StateService) ListTeams(ctx context.Context) ([]models.Team, error) {
	return s.loadOrDefault(ctx).Teams, nil
}

// GetActiveTeam returns the active team, or nil when none is selected
func (s *StateService) GetActiveTeam(ctx context.Context) (*models.Team, error) {
	state := s.loadOrDefault(ctx)
	if state.ActiveTeamID == nil {
		return nil, nil
	}
	return state.Team(*state.ActiveTeamID), nil
}
