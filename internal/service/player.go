package service

import (
	"context"
	"slices"

	"coach-planner-backend/internal/database/models"
)

// PlayerRequest represents the request to add a player to a team
type PlayerRequest struct {
	Name          string              `json:"name" validate:"required,max=100"`
	Position      models.Position     `json:"position" validate:"required,position"`
	Control       models.PlayerRating `json:"control" validate:"required,rating"`
	Passing       models.PlayerRating `json:"passing" validate:"required,rating"`
	Participation models.PlayerRating `json:"participation" validate:"required,rating"`
	Attitude      models.PlayerRating `json:"attitude" validate:"required,rating"`
	Comments      string              `json:"comments"`
}

// UpdatePlayerRequest represents a partial player update
type UpdatePlayerRequest struct {
	Name          *string              `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Position      *models.Position     `json:"position,omitempty" validate:"omitempty,position"`
	Control       *models.PlayerRating `json:"control,omitempty" validate:"omitempty,rating"`
	Passing       *models.PlayerRating `json:"passing,omitempty" validate:"omitempty,rating"`
	Participation *models.PlayerRating `json:"participation,omitempty" validate:"omitempty,rating"`
	Attitude      *models.PlayerRating `json:"attitude,omitempty" validate:"omitempty,rating"`
	Comments      *string              `json:"comments,omitempty"`
}

// Apply merges the non-nil fields into p
func (r *UpdatePlayerRequest) Apply(p *models.Player) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Position != nil {
		p.Position = *r.Position
	}
	if r.Control != nil {
		p.Control = *r.Control
	}
	if r.Passing != nil {
		p.Passing = *r.Passing
	}
	if r.Participation != nil {
		p.Participation = *r.Participation
	}
	if r.Attitude != nil {
		p.Attitude = *r.Attitude
	}
	if r.Comments != nil {
		p.Comments = *r.Comments
	}
}

// CreatePlayer appends a player to the team. A missing team is a no-op and returns nil.
func (s *StateService) CreatePlayer(ctx context.Context, teamID string, req *PlayerRequest) (*models.Player, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	player := models.Player{
		ID:            s.newID(),
		Name:          req.Name,
		Position:      req.Position,
		Control:       req.Control,
		Passing:       req.Passing,
		Participation: req.Participation,
		Attitude:      req.Attitude,
		Comments:      req.Comments,
	}

	var created *models.Player
	err := s.mutate(ctx, "create_player", func(state *models.AppState) bool {
		team := state.Team(teamID)
		if team == nil {
			return false
		}
		team.Players = append(team.Players, player)
		created = &player
		return true
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdatePlayer merges the request into the player. A missing team or player is a no-op.
func (s *StateService) UpdatePlayer(ctx context.Context, teamID, playerID string, req *UpdatePlayerRequest) (*models.Player, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var updated *models.Player
	err := s.mutate(ctx, "update_player", func(state *models.AppState) bool {
		team := state.Team(teamID)
		if team == nil {
			return false
		}
		idx := team.PlayerIndex(playerID)
		if idx < 0 {
			return false
		}
		req.Apply(&team.Players[idx])
		p := team.Players[idx]
		updated = &p
		return true
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeletePlayer moves the player to the trash. A missing team or player is a no-op.
func (s *StateService) DeletePlayer(ctx context.Context, teamID, playerID string) (*models.TrashItem, error) {
	var trashed *models.TrashItem
	err := s.mutate(ctx, "delete_player", func(state *models.AppState) bool {
		trashed = s.trashPlayer(state, state.Team(teamID), playerID)
		return trashed != nil
	})
	if err != nil {
		return nil, err
	}
	return trashed, nil
}

func (s *StateService) trashPlayer(state *models.AppState, team *models.Team, playerID string) *models.TrashItem {
	if team == nil {
		return nil
	}
	idx := team.PlayerIndex(playerID)
	if idx < 0 {
		return nil
	}
	item := models.NewPlayerTrashItem(s.newID(), team.ID, team.Players[idx], s.now())
	team.Players = slices.Delete(team.Players, idx, idx+1)
	state.Trash = append(state.Trash, item)
	return &item
}
