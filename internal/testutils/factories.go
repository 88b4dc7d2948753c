package testutils

import (
	"encoding/json"
	"time"

	"coach-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values and empty collections
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		ID:           uuid.NewString(),
		Name:         "Alevín A",
		Category:     models.CategoryAlevin,
		Age:          "10-11",
		Level:        models.LevelMedio,
		Season:       "2025/26",
		SeasonPhases: models.DefaultSeasonPhases(),
		Players:      []models.Player{},
		Trainings:    []models.TrainingSession{},
		Matches:      []models.Match{},
		Chats:        []models.AIChat{},
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithRoster creates a team holding n players
func (f *TeamFactory) WithRoster(n int) *models.Team {
	team := f.Create()
	players := NewPlayerFactory()
	for i := 0; i < n; i++ {
		team.Players = append(team.Players, *players.Create())
	}
	return team
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test Player with neutral ratings
func (f *PlayerFactory) Create() *models.Player {
	return &models.Player{
		ID:            uuid.NewString(),
		Name:          "Juan",
		Position:      models.PositionMediocentro,
		Control:       models.RatingIgual,
		Passing:       models.RatingIgual,
		Participation: models.RatingIgual,
		Attitude:      models.RatingIgual,
	}
}

// WithName sets a custom name for the player
func (f *PlayerFactory) WithName(name string) *models.Player {
	player := f.Create()
	player.Name = name
	return player
}

// TrainingFactory provides methods to create test TrainingSession data
type TrainingFactory struct{}

// NewTrainingFactory creates a new TrainingFactory
func NewTrainingFactory() *TrainingFactory {
	return &TrainingFactory{}
}

// Create creates a test TrainingSession with every content block filled
func (f *TrainingFactory) Create() *models.TrainingSession {
	return &models.TrainingSession{
		ID:          uuid.NewString(),
		Date:        "2025-03-03",
		Category:    models.CategoryAlevin,
		Age:         "10-11",
		Level:       models.LevelMedio,
		PlayerCount: 12,
		Objective:   "Salida de balón",
		Duration:    "90 min",
		Material:    "Balones, conos, petos",
		Content: models.TrainingContent{
			Juego:               "Rondo 4x1",
			CircuitoTecnico:     "Conducción y pase",
			Posesion:            "Posesión 5x5+2",
			PartidoCondicionado: "Partido a dos toques",
			Oleada:              "Oleadas 2x1",
		},
	}
}

// MatchFactory provides methods to create test Match data
type MatchFactory struct{}

// NewMatchFactory creates a new MatchFactory
func NewMatchFactory() *MatchFactory {
	return &MatchFactory{}
}

// Create creates a test Match with default values
func (f *MatchFactory) Create() *models.Match {
	return &models.Match{
		ID:        uuid.NewString(),
		Date:      "2025-03-08",
		Opponent:  "CD Rival",
		Objective: "Presión tras pérdida",
	}
}

// WithOpponent sets a custom opponent for the match
func (f *MatchFactory) WithOpponent(opponent string) *models.Match {
	match := f.Create()
	match.Opponent = opponent
	return match
}

// ChatFactory provides methods to create test AIChat data
type ChatFactory struct{}

// NewChatFactory creates a new ChatFactory
func NewChatFactory() *ChatFactory {
	return &ChatFactory{}
}

// Create creates a test chat holding one exchange
func (f *ChatFactory) Create() *models.AIChat {
	now := time.Now().UnixMilli()
	return &models.AIChat{
		ID:    uuid.NewString(),
		Title: "¿Cómo trabajo la salida de bal...",
		Messages: []models.ChatMessage{
			{Role: models.ChatRoleUser, Text: "¿Cómo trabajo la salida de balón?", Timestamp: now},
			{Role: models.ChatRoleModel, Text: "Empieza con rondos.", Timestamp: now},
		},
		LastUpdate: now,
	}
}

// FactorySet groups every factory
type FactorySet struct {
	Team     *TeamFactory
	Player   *PlayerFactory
	Training *TrainingFactory
	Match    *MatchFactory
	Chat     *ChatFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:     NewTeamFactory(),
		Player:   NewPlayerFactory(),
		Training: NewTrainingFactory(),
		Match:    NewMatchFactory(),
		Chat:     NewChatFactory(),
	}
}

// CreateFullState creates a state with one fully populated active team and
// a trashed player from that team.
func (fs *FactorySet) CreateFullState() *models.AppState {
	team := fs.Team.WithRoster(3)
	team.Trainings = append(team.Trainings, *fs.Training.Create())
	team.Matches = append(team.Matches, *fs.Match.Create())
	team.Chats = append(team.Chats, *fs.Chat.Create())

	state := models.NewAppState()
	state.Teams = append(state.Teams, *team)
	state.SetActiveTeam(team.ID)
	state.Trash = append(state.Trash,
		models.NewPlayerTrashItem(uuid.NewString(), team.ID, *fs.Player.WithName("Pablo"), time.Now().UnixMilli()))
	return state
}

// MarshalState encodes a state document the way the state service persists it
func MarshalState(state *models.AppState) []byte {
	b, err := json.Marshal(state)
	if err != nil {
		panic(err)
	}
	return b
}
