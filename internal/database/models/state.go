package models

import "slices"

// AppState is the root aggregate persisted as a single document
type AppState struct {
	Teams        []Team      `json:"teams"`
	ActiveTeamID *string     `json:"activeTeamId"`
	Trash        []TrashItem `json:"trash"`
}

// NewAppState returns the default empty state
func NewAppState() *AppState {
	return &AppState{
		Teams: []Team{},
		Trash: []TrashItem{},
	}
}

// Normalize defaults absent collections and clears an active pointer that
// does not reference an existing team.
func (s *AppState) Normalize() {
	if s.Teams == nil {
		s.Teams = []Team{}
	}
	if s.Trash == nil {
		s.Trash = []TrashItem{}
	}
	for i := range s.Teams {
		s.Teams[i].Normalize()
	}
	if s.ActiveTeamID != nil && s.TeamIndex(*s.ActiveTeamID) < 0 {
		s.ResetActiveTeam()
	}
}

// ActiveID returns the active team id or "" when none is active
func (s *AppState) ActiveID() string {
	if s.ActiveTeamID == nil {
		return ""
	}
	return *s.ActiveTeamID
}

// SetActiveTeam points the active pointer at id; an empty id clears it
func (s *AppState) SetActiveTeam(id string) {
	if id == "" {
		s.ActiveTeamID = nil
		return
	}
	s.ActiveTeamID = &id
}

// ResetActiveTeam moves the active pointer to the first team, or nil when there is none
func (s *AppState) ResetActiveTeam() {
	if len(s.Teams) == 0 {
		s.ActiveTeamID = nil
		return
	}
	s.SetActiveTeam(s.Teams[0].ID)
}

// TeamIndex returns the index of the team with the given id, or -1
func (s *AppState) TeamIndex(id string) int {
	return slices.IndexFunc(s.Teams, func(t Team) bool { return t.ID == id })
}

// Team returns a pointer into Teams for the given id, or nil
func (s *AppState) Team(id string) *Team {
	idx := s.TeamIndex(id)
	if idx < 0 {
		return nil
	}
	return &s.Teams[idx]
}

// TrashIndex returns the index of the trash item with the given id, or -1
func (s *AppState) TrashIndex(id string) int {
	return slices.IndexFunc(s.Trash, func(i TrashItem) bool { return i.ID == id })
}

// FindOwner scans every team's child collection of the given type and
// returns the team holding entityID. Team counts are small, so a linear
// scan is enough.
func (s *AppState) FindOwner(kind TrashType, entityID string) *Team {
	for i := range s.Teams {
		team := &s.Teams[i]
		switch kind {
		case TrashTypePlayer:
			if team.PlayerIndex(entityID) >= 0 {
				return team
			}
		case TrashTypeTraining:
			if team.TrainingIndex(entityID) >= 0 {
				return team
			}
		case TrashTypeMatch:
			if team.MatchIndex(entityID) >= 0 {
				return team
			}
		}
	}
	return nil
}
