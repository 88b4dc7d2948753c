package models

// Player belongs to exactly one team
type Player struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Position      Position     `json:"position"`
	Control       PlayerRating `json:"control"`
	Passing       PlayerRating `json:"passing"`
	Participation PlayerRating `json:"participation"`
	Attitude      PlayerRating `json:"attitude"`
	Comments      string       `json:"comments"`
}

// Match is a fixture played by one team, with the coach's notes
type Match struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	Opponent       string `json:"opponent"`
	Objective      string `json:"objective"`
	Observations   string `json:"observations"`
	Successes      string `json:"successes"`
	ToCorrect      string `json:"toCorrect"`
	WeeklyProposal string `json:"weeklyProposal"`
}
