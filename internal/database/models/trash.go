package models

import (
	"encoding/json"
	"fmt"
)

// TrashItem is a frozen snapshot of a deleted entity. Exactly one of Team,
// Player, Training or Match is set, matching Type. OriginTeamID is empty
// for team items.
type TrashItem struct {
	ID           string
	Type         TrashType
	OriginTeamID string
	DeletedAt    int64

	Team     *Team
	Player   *Player
	Training *TrainingSession
	Match    *Match
}

// trashItemJSON is the persisted layout of a TrashItem
type trashItemJSON struct {
	ID           string          `json:"id"`
	Type         TrashType       `json:"type"`
	Data         json.RawMessage `json:"data"`
	OriginTeamID string          `json:"originTeamId,omitempty"`
	DeletedAt    int64           `json:"deletedAt"`
}

// NewTeamTrashItem snapshots a whole team, subtree included
func NewTeamTrashItem(id string, team Team, deletedAt int64) TrashItem {
	snapshot := team.Clone()
	return TrashItem{ID: id, Type: TrashTypeTeam, DeletedAt: deletedAt, Team: &snapshot}
}

// NewPlayerTrashItem snapshots a player removed from originTeamID
func NewPlayerTrashItem(id, originTeamID string, player Player, deletedAt int64) TrashItem {
	return TrashItem{ID: id, Type: TrashTypePlayer, OriginTeamID: originTeamID, DeletedAt: deletedAt, Player: &player}
}

// NewTrainingTrashItem snapshots a training session removed from originTeamID
func NewTrainingTrashItem(id, originTeamID string, training TrainingSession, deletedAt int64) TrashItem {
	return TrashItem{ID: id, Type: TrashTypeTraining, OriginTeamID: originTeamID, DeletedAt: deletedAt, Training: &training}
}

// NewMatchTrashItem snapshots a match removed from originTeamID
func NewMatchTrashItem(id, originTeamID string, match Match, deletedAt int64) TrashItem {
	return TrashItem{ID: id, Type: TrashTypeMatch, OriginTeamID: originTeamID, DeletedAt: deletedAt, Match: &match}
}

// EntityID returns the identifier of the enclosed entity
func (i TrashItem) EntityID() string {
	switch i.Type {
	case TrashTypeTeam:
		if i.Team != nil {
			return i.Team.ID
		}
	case TrashTypePlayer:
		if i.Player != nil {
			return i.Player.ID
		}
	case TrashTypeTraining:
		if i.Training != nil {
			return i.Training.ID
		}
	case TrashTypeMatch:
		if i.Match != nil {
			return i.Match.ID
		}
	}
	return ""
}

// Title is the headline shown for the item in a trash listing
func (i TrashItem) Title() string {
	switch {
	case i.Team != nil:
		return i.Team.Name
	case i.Player != nil:
		return i.Player.Name
	case i.Training != nil:
		return i.Training.Objective
	case i.Match != nil:
		return "vs " + i.Match.Opponent
	}
	return "Elemento"
}

// Subtitle is the secondary line shown for the item in a trash listing
func (i TrashItem) Subtitle() string {
	switch {
	case i.Team != nil:
		return string(i.Team.Category)
	case i.Player != nil:
		return string(i.Player.Position)
	case i.Training != nil:
		return string(i.Training.Category)
	case i.Match != nil:
		return i.Match.Date
	}
	return ""
}

// MarshalJSON writes the item as {id, type, data, originTeamId?, deletedAt}
func (i TrashItem) MarshalJSON() ([]byte, error) {
	var payload any
	switch i.Type {
	case TrashTypeTeam:
		payload = i.Team
	case TrashTypePlayer:
		payload = i.Player
	case TrashTypeTraining:
		payload = i.Training
	case TrashTypeMatch:
		payload = i.Match
	default:
		return nil, fmt.Errorf("trash item %s: unknown type %q", i.ID, i.Type)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("trash item %s: %w", i.ID, err)
	}

	return json.Marshal(trashItemJSON{
		ID:           i.ID,
		Type:         i.Type,
		Data:         data,
		OriginTeamID: i.OriginTeamID,
		DeletedAt:    i.DeletedAt,
	})
}

// UnmarshalJSON decodes data into the concrete entity named by type
func (i *TrashItem) UnmarshalJSON(b []byte) error {
	var raw trashItemJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw.Data) == 0 || string(raw.Data) == "null" {
		return fmt.Errorf("trash item %s: missing data", raw.ID)
	}

	item := TrashItem{
		ID:           raw.ID,
		Type:         raw.Type,
		OriginTeamID: raw.OriginTeamID,
		DeletedAt:    raw.DeletedAt,
	}

	var err error
	switch raw.Type {
	case TrashTypeTeam:
		item.Team = &Team{}
		err = json.Unmarshal(raw.Data, item.Team)
		if err == nil {
			item.Team.Normalize()
		}
	case TrashTypePlayer:
		item.Player = &Player{}
		err = json.Unmarshal(raw.Data, item.Player)
	case TrashTypeTraining:
		item.Training = &TrainingSession{}
		err = json.Unmarshal(raw.Data, item.Training)
	case TrashTypeMatch:
		item.Match = &Match{}
		err = json.Unmarshal(raw.Data, item.Match)
	default:
		return fmt.Errorf("trash item %s: unknown type %q", raw.ID, raw.Type)
	}
	if err != nil {
		return fmt.Errorf("trash item %s: %w", raw.ID, err)
	}

	*i = item
	return nil
}
