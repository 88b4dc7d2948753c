package models

import "strings"

// TrainingContent is the fixed five-block session plan
type TrainingContent struct {
	Juego               string `json:"juego"`
	CircuitoTecnico     string `json:"circuitoTecnico"`
	Posesion            string `json:"posesion"`
	PartidoCondicionado string `json:"partidoCondicionado"`
	Oleada              string `json:"oleada"`
}

// MissingFields returns the JSON names of blocks that are empty
func (c TrainingContent) MissingFields() []string {
	fields := []struct{ name, value string }{
		{"juego", c.Juego},
		{"circuitoTecnico", c.CircuitoTecnico},
		{"posesion", c.Posesion},
		{"partidoCondicionado", c.PartidoCondicionado},
		{"oleada", c.Oleada},
	}
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// TrainingSession belongs to exactly one team. Category, Age and Level are
// copied from the team when the session is created and never re-synced.
type TrainingSession struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Category    Category        `json:"category"`
	Age         string          `json:"age"`
	Level       Level           `json:"level"`
	PlayerCount int             `json:"playerCount"`
	Objective   string          `json:"objective"`
	Duration    string          `json:"duration"`
	Material    string          `json:"material"`
	Content     TrainingContent `json:"content"`
}
