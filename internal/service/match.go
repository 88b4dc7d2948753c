package service

import (
	"context"
	"slices"

	"coach-planner-backend/internal/database/models"
)

// MatchRequest represents the request to record a match
type MatchRequest struct {
	Date           string `json:"date" validate:"required"`
	Opponent       string `json:"opponent" validate:"required,max=100"`
	Objective      string `json:"objective"`
	Observations   string `json:"observations"`
	Successes      string `json:"successes"`
	ToCorrect      string `json:"toCorrect"`
	WeeklyProposal string `json:"weeklyProposal"`
}

// UpdateMatchRequest represents a partial match update
type UpdateMatchRequest struct {
	Date           *string `json:"date,omitempty" validate:"omitempty,min=1"`
	Opponent       *string `json:"opponent,omitempty" validate:"omitempty,min=1,max=100"`
	Objective      *string `json:"objective,omitempty"`
	Observations   *string `json:"observations,omitempty"`
	Successes      *string `json:"successes,omitempty"`
	ToCorrect      *string `json:"toCorrect,omitempty"`
	WeeklyProposal *string `json:"weeklyProposal,omitempty"`
}

// Apply merges the non-nil fields into m
func (r *UpdateMatchRequest) Apply(m *models.Match) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&m.Date, r.Date)
	set(&m.Opponent, r.Opponent)
	set(&m.Objective, r.Objective)
	set(&m.Observations, r.Observations)
	set(&m.Successes, r.Successes)
	set(&m.ToCorrect, r.ToCorrect)
	set(&m.WeeklyProposal, r.WeeklyProposal)
}

// CreateMatch appends a match to the team. A missing team is a no-op and returns nil.
func (s *StateService) CreateMatch(ctx context.Context, teamID string, req *MatchRequest) (*models.Match, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	match := models.Match{
		ID:             s.newID(),
		Date:           req.Date,
		Opponent:       req.Opponent,
		Objective:      req.Objective,
		Observations:   req.Observations,
		Successes:      req.Successes,
		ToCorrect:      req.ToCorrect,
		WeeklyProposal: req.WeeklyProposal,
	}

	var created *models.Match
	err := s.mutate(ctx, "create_match", func(state *models.AppState) bool {
		team := state.Team(teamID)
		if team == nil {
			return false
		}
		team.Matches = append(team.Matches, match)
		created = &match
		return true
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateMatch merges the request into the match. A missing team or match is a no-op.
func (s *StateService) UpdateMatch(ctx context.Context, teamID, matchID string, req *UpdateMatchRequest) (*models.Match, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var updated *models.Match
	err := s.mutate(ctx, "update_match", func(state *models.AppState) bool {
		team := state.Team(teamID)
		if team == nil {
			return false
		}
		idx := team.MatchIndex(matchID)
		if idx < 0 {
			return false
		}
		req.Apply(&team.Matches[idx])
		m := team.Matches[idx]
		updated = &m
		return true
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteMatch moves the match to the trash. A missing team or match is a no-op.
func (s *StateService) DeleteMatch(ctx context.Context, teamID, matchID string) (*models.TrashItem, error) {
	var trashed *models.TrashItem
	err := s.mutate(ctx, "delete_match", func(state *models.AppState) bool {
		trashed = s.trashMatch(state, state.Team(teamID), matchID)
		return trashed != nil
	})
	if err != nil {
		return nil, err
	}
	return trashed, nil
}

func (s *StateService) trashMatch(state *models.AppState, team *models.Team, matchID string) *models.TrashItem {
	if team == nil {
		return nil
	}
	idx := team.MatchIndex(matchID)
	if idx < 0 {
		return nil
	}
	item := models.NewMatchTrashItem(s.newID(), team.ID, team.Matches[idx], s.now())
	team.Matches = slices.Delete(team.Matches, idx, idx+1)
	state.Trash = append(state.Trash, item)
	return &item
}
