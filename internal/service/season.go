package service

import (
	"context"

	"coach-planner-backend/internal/database/models"
)

// UpdateSeasonPhaseRequest edits the text fields of one season phase.
// Phase ids and labels are fixed.
type UpdateSeasonPhaseRequest struct {
	TechObjectives      *string `json:"techObjectives,omitempty"`
	TactObjectives      *string `json:"tactObjectives,omitempty"`
	FormativeObjectives *string `json:"formativeObjectives,omitempty"`
	Observations        *string `json:"observations,omitempty"`
}

// Apply merges the non-nil fields into p
func (r *UpdateSeasonPhaseRequest) Apply(p *models.SeasonPhase) {
	if r.TechObjectives != nil {
		p.TechObjectives = *r.TechObjectives
	}
	if r.TactObjectives != nil {
		p.TactObjectives = *r.TactObjectives
	}
	if r.FormativeObjectives != nil {
		p.FormativeObjectives = *r.FormativeObjectives
	}
	if r.Observations != nil {
		p.Observations = *r.Observations
	}
}

// UpdateSeasonPhase edits a phase of the team. A missing team or phase is a no-op and returns nil.
func (s *StateService) UpdateSeasonPhase(ctx context.Context, teamID, phaseID string, req *UpdateSeasonPhaseRequest) (*models.SeasonPhase, error) {
	var updated *models.SeasonPhase
	err := s.mutate(ctx, "update_season_phase", func(state *models.AppState) bool {
		team := state.Team(teamID)
		if team == nil {
			return false
		}
		idx := team.PhaseIndex(phaseID)
		if idx < 0 {
			return false
		}
		req.Apply(&team.SeasonPhases[idx])
		p := team.SeasonPhases[idx]
		updated = &p
		return true
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
