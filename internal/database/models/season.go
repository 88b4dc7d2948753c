package models

// SeasonPhase is one of the four fixed planning periods of a team
type SeasonPhase struct {
	ID                  string `json:"id"`
	Label               string `json:"label"`
	TechObjectives      string `json:"techObjectives"`
	TactObjectives      string `json:"tactObjectives"`
	FormativeObjectives string `json:"formativeObjectives"`
	Observations        string `json:"observations"`
}

// DefaultSeasonPhases returns the four empty phases every team starts with
func DefaultSeasonPhases() []SeasonPhase {
	return []SeasonPhase{
		{ID: "p1", Label: "Inicio / Pretemporada"},
		{ID: "p2", Label: "Desarrollo / Formación"},
		{ID: "p3", Label: "Competencia / Consolidación"},
		{ID: "p4", Label: "Final / Evaluación"},
	}
}
