package service

import (
	"context"
	"slices"

	"coach-planner-backend/internal/database/models"
)

// Defaults offered for a new session, matching the session form
const (
	DefaultTrainingDuration    = "90 min"
	DefaultTrainingMaterial    = "Balones, conos, petos, porterías pequeñas"
	DefaultTrainingPlayerCount = 12
)

// TrainingRequest represents the request to save a training session.
// Category, age and level are taken from the team, not from the request.
type TrainingRequest struct {
	Date        string                 `json:"date" validate:"required"`
	PlayerCount int                    `json:"playerCount" validate:"gte=0,lte=60"`
	Objective   string                 `json:"objective" validate:"required,max=500"`
	Duration    string                 `json:"duration" validate:"max=50"`
	Material    string                 `json:"material" validate:"max=500"`
	Content     models.TrainingContent `json:"content"`
}

// UpdateTrainingRequest represents a partial training update. Content replaces the whole bundle.
type UpdateTrainingRequest struct {
	Date        *string                 `json:"date,omitempty" validate:"omitempty,min=1"`
	PlayerCount *int                    `json:"playerCount,omitempty" validate:"omitempty,gte=0,lte=60"`
	Objective   *string                 `json:"objective,omitempty" validate:"omitempty,min=1,max=500"`
	Duration    *string                 `json:"duration,omitempty" validate:"omitempty,max=50"`
	Material    *string                 `json:"material,omitempty" validate:"omitempty,max=500"`
	Content     *models.TrainingContent `json:"content,omitempty"`
}

// Apply merges the non-nil fields into t
func (r *UpdateTrainingRequest) Apply(t *models.TrainingSession) {
	if r.Date != nil {
		t.Date = *r.Date
	}
	if r.PlayerCount != nil {
		t.PlayerCount = *r.PlayerCount
	}
	if r.Objective != nil {
		t.Objective = *r.Objective
	}
	if r.Duration != nil {
		t.Duration = *r.Duration
	}
	if r.Material != nil {
		t.Material = *r.Material
	}
	if r.Content != nil {
		t.Content = *r.Content
	}
}

// DefaultPlayerCount is the team's squad size, or DefaultTrainingPlayerCount for an empty squad
func DefaultPlayerCount(team *models.Team) int {
	if team == nil || len(team.Players) == 0 {
		return DefaultTrainingPlayerCount
	}
	return len(team.Players)
}

// CreateTraining appends a session to the team, snapshotting the team's
// category, age and level. A missing team is a no-op and returns nil.
func (s *StateService) CreateTraining(ctx context.Context, teamID string, req *TrainingRequest) (*models.TrainingSession, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var created *models.TrainingSession
	err := s.mutate(ctx, "create_training", func(state *models.AppState) bool {
		team := state.Team(teamID)
		if team == nil {
			return false
		}
		session := models.TrainingSession{
			ID:          s.newID(),
			Date:        req.Date,
			Category:    team.Category,
			Age:         team.Age,
			Level:       team.Level,
			PlayerCount: req.PlayerCount,
			Objective:   req.Objective,
			Duration:    req.Duration,
			Material:    req.Material,
			Content:     req.Content,
		}
		if session.PlayerCount == 0 {
			session.PlayerCount = DefaultPlayerCount(team)
		}
		if session.Duration == "" {
			session.Duration = DefaultTrainingDuration
		}
		if session.Material == "" {
			session.Material = DefaultTrainingMaterial
		}
		team.Trainings = append(team.Trainings, session)
		created = &session
		return true
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateTraining merges the request into the session. A missing team or session is a no-op.
func (s *StateService) UpdateTraining(ctx context.Context, teamID, trainingID string, req *UpdateTrainingRequest) (*models.TrainingSession, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var updated *models.TrainingSession
	err := s.mutate(ctx, "update_training", func(state *models.AppState) bool {
		team := state.Team(teamID)
		if team == nil {
			return false
		}
		idx := team.TrainingIndex(trainingID)
		if idx < 0 {
			return false
		}
		req.Apply(&team.Trainings[idx])
		t := team.Trainings[idx]
		updated = &t
		return true
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTraining moves the session to the trash. A missing team or session is a no-op.
func (s *StateService) DeleteTraining(ctx context.Context, teamID, trainingID string) (*models.TrashItem, error) {
	var trashed *models.TrashItem
	err := s.mutate(ctx, "delete_training", func(state *models.AppState) bool {
		trashed = s.trashTraining(state, state.Team(teamID), trainingID)
		return trashed != nil
	})
	if err != nil {
		return nil, err
	}
	return trashed, nil
}

func (s *StateService) trashTraining(state *models.AppState, team *models.Team, trainingID string) *models.TrashItem {
	if team == nil {
		return nil
	}
	idx := team.TrainingIndex(trainingID)
	if idx < 0 {
		return nil
	}
	item := models.NewTrainingTrashItem(s.newID(), team.ID, team.Trainings[idx], s.now())
	team.Trainings = slices.Delete(team.Trainings, idx, idx+1)
	state.Trash = append(state.Trash, item)
	return &item
}
