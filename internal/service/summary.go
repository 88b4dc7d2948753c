package service

import (
	"context"

	"coach-planner-backend/internal/database/models"
)

// TeamSummary is the dashboard view of a team
type TeamSummary struct {
	TeamID        string                  `json:"teamId"`
	Name          string                  `json:"name"`
	Category      models.Category         `json:"category"`
	Level         models.Level            `json:"level"`
	Season        string                  `json:"season"`
	PlayerCount   int                     `json:"playerCount"`
	TrainingCount int                     `json:"trainingCount"`
	MatchCount    int                     `json:"matchCount"`
	ChatCount     int                     `json:"chatCount"`
	LastTraining  *models.TrainingSession `json:"lastTraining,omitempty"`
	LastMatch     *models.Match           `json:"lastMatch,omitempty"`
}

// RatingDistribution counts players per rating for one skill
type RatingDistribution struct {
	Mejora   int `json:"mejora"`
	Igual    int `json:"igual"`
	Reforzar int `json:"reforzar"`
}

func (d *RatingDistribution) add(r models.PlayerRating) {
	switch r {
	case models.RatingMejora:
		d.Mejora++
	case models.RatingIgual:
		d.Igual++
	case models.RatingReforzar:
		d.Reforzar++
	}
}

// TeamProgress aggregates player assessments and team activity
type TeamProgress struct {
	TeamID        string             `json:"teamId"`
	PlayerCount   int                `json:"playerCount"`
	TrainingCount int                `json:"trainingCount"`
	MatchCount    int                `json:"matchCount"`
	Control       RatingDistribution `json:"control"`
	Passing       RatingDistribution `json:"passing"`
	Participation RatingDistribution `json:"participation"`
	Attitude      RatingDistribution `json:"attitude"`
}

// GetTeamSummary builds the dashboard summary of a team
func (s *StateService) GetTeamSummary(ctx context.Context, teamID string) (*TeamSummary, error) {
	team, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	summary := &TeamSummary{
		TeamID:        team.ID,
		Name:          team.Name,
		Category:      team.Category,
		Level:         team.Level,
		Season:        team.Season,
		PlayerCount:   len(team.Players),
		TrainingCount: len(team.Trainings),
		MatchCount:    len(team.Matches),
		ChatCount:     len(team.Chats),
	}
	if n := len(team.Trainings); n > 0 {
		last := team.Trainings[n-1]
		summary.LastTraining = &last
	}
	if n := len(team.Matches); n > 0 {
		last := team.Matches[n-1]
		summary.LastMatch = &last
	}
	return summary, nil
}

// GetTeamProgress counts every player's rating per skill
func (s *StateService) GetTeamProgress(ctx context.Context, teamID string) (*TeamProgress, error) {
	team, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	progress := &TeamProgress{
		TeamID:        team.ID,
		PlayerCount:   len(team.Players),
		TrainingCount: len(team.Trainings),
		MatchCount:    len(team.Matches),
	}
	for _, p := range team.Players {
		progress.Control.add(p.Control)
		progress.Passing.add(p.Passing)
		progress.Participation.add(p.Participation)
		progress.Attitude.add(p.Attitude)
	}
	return progress, nil
}
