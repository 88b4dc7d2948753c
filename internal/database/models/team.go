package models

import "slices"

// Team is the coached group aggregate. It embeds every owned collection,
// so a team snapshot is a complete subtree.
type Team struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Category     Category          `json:"category"`
	Age          string            `json:"age"`
	Level        Level             `json:"level"`
	Season       string            `json:"season"`
	SeasonPhases []SeasonPhase     `json:"seasonPhases"`
	Players      []Player          `json:"players"`
	Trainings    []TrainingSession `json:"trainings"`
	Matches      []Match           `json:"matches"`
	Chats        []AIChat          `json:"chats"`
}

// Normalize replaces nil collections with empty ones and restores any
// missing default season phase.
func (t *Team) Normalize() {
	if t.Players == nil {
		t.Players = []Player{}
	}
	if t.Trainings == nil {
		t.Trainings = []TrainingSession{}
	}
	if t.Matches == nil {
		t.Matches = []Match{}
	}
	if t.Chats == nil {
		t.Chats = []AIChat{}
	}
	for i := range t.Chats {
		if t.Chats[i].Messages == nil {
			t.Chats[i].Messages = []ChatMessage{}
		}
	}
	for _, def := range DefaultSeasonPhases() {
		if t.PhaseIndex(def.ID) < 0 {
			t.SeasonPhases = append(t.SeasonPhases, def)
		}
	}
}

// Clone returns a deep copy of the team
func (t Team) Clone() Team {
	c := t
	c.SeasonPhases = slices.Clone(t.SeasonPhases)
	c.Players = slices.Clone(t.Players)
	c.Trainings = slices.Clone(t.Trainings)
	c.Matches = slices.Clone(t.Matches)
	c.Chats = make([]AIChat, len(t.Chats))
	for i, chat := range t.Chats {
		c.Chats[i] = chat.Clone()
	}
	return c
}

// PhaseIndex returns the index of the season phase with the given id, or -1
func (t *Team) PhaseIndex(id string) int {
	return slices.IndexFunc(t.SeasonPhases, func(p SeasonPhase) bool { return p.ID == id })
}

// PlayerIndex returns the index of the player with the given id, or -1
func (t *Team) PlayerIndex(id string) int {
	return slices.IndexFunc(t.Players, func(p Player) bool { return p.ID == id })
}

// TrainingIndex returns the index of the training session with the given id, or -1
func (t *Team) TrainingIndex(id string) int {
	return slices.IndexFunc(t.Trainings, func(tr TrainingSession) bool { return tr.ID == id })
}

// MatchIndex returns the index of the match with the given id, or -1
func (t *Team) MatchIndex(id string) int {
	return slices.IndexFunc(t.Matches, func(m Match) bool { return m.ID == id })
}

// ChatIndex returns the index of the chat with the given id, or -1
func (t *Team) ChatIndex(id string) int {
	return slices.IndexFunc(t.Chats, func(c AIChat) bool { return c.ID == id })
}

// LastOpponents returns up to n opponents from the most recent matches, oldest first
func (t *Team) LastOpponents(n int) []string {
	start := max(len(t.Matches)-n, 0)
	opponents := make([]string, 0, len(t.Matches)-start)
	for _, m := range t.Matches[start:] {
		opponents = append(opponents, m.Opponent)
	}
	return opponents
}
