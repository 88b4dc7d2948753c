package models

// Category is the age group a team competes in
type Category string

const (
	CategoryPrebenjamin Category = "Prebenjamín"
	CategoryBenjamin    Category = "Benjamín"
	CategoryAlevin      Category = "Alevín"
	CategoryInfantil    Category = "Infantil"
	CategoryCadete      Category = "Cadete"
	CategoryJuvenil     Category = "Juvenil"
)

// Level is the competitive tier of a team
type Level string

const (
	LevelBajo  Level = "Bajo"
	LevelMedio Level = "Medio"
	LevelAlto  Level = "Alto"
	LevelElite Level = "Élite"
)

// Position is a player's field position
type Position string

const (
	PositionPortero        Position = "Portero"
	PositionDefensaCentral Position = "Defensa Central"
	PositionLateral        Position = "Lateral"
	PositionMediocentro    Position = "Mediocentro"
	PositionExtremo        Position = "Extremo"
	PositionDelantero      Position = "Delantero"
)

// PlayerRating is the coach's assessment of one skill
type PlayerRating string

const (
	RatingMejora   PlayerRating = "mejora"   // needs improvement
	RatingIgual    PlayerRating = "igual"    // unchanged
	RatingReforzar PlayerRating = "reforzar" // needs reinforcement
)

// TrashType tags the entity enclosed in a trash item
type TrashType string

const (
	TrashTypeTeam     TrashType = "team"
	TrashTypePlayer   TrashType = "player"
	TrashTypeTraining TrashType = "training"
	TrashTypeMatch    TrashType = "match"
)

// ChatRole identifies the author of a chat message
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ObjectiveType selects which season-objective family to generate
type ObjectiveType string

const (
	ObjectiveTypeTecnicos   ObjectiveType = "técnicos"
	ObjectiveTypeTacticos   ObjectiveType = "tácticos"
	ObjectiveTypeFormativos ObjectiveType = "formativos"
)

// AllCategories lists categories in age order
var AllCategories = []Category{CategoryPrebenjamin, CategoryBenjamin, CategoryAlevin, CategoryInfantil, CategoryCadete, CategoryJuvenil}

// AllLevels lists levels from lowest to highest
var AllLevels = []Level{LevelBajo, LevelMedio, LevelAlto, LevelElite}

// AllRatings lists ratings in display order
var AllRatings = []PlayerRating{RatingMejora, RatingIgual, RatingReforzar}

// IsValid checks if the Category is valid
func (c Category) IsValid() bool {
	switch c {
	case CategoryPrebenjamin, CategoryBenjamin, CategoryAlevin, CategoryInfantil, CategoryCadete, CategoryJuvenil:
		return true
	}
	return false
}

// IsValid checks if the Level is valid
func (l Level) IsValid() bool {
	switch l {
	case LevelBajo, LevelMedio, LevelAlto, LevelElite:
		return true
	}
	return false
}

// IsValid checks if the Position is valid
func (p Position) IsValid() bool {
	switch p {
	case PositionPortero, PositionDefensaCentral, PositionLateral, PositionMediocentro, PositionExtremo, PositionDelantero:
		return true
	}
	return false
}

// IsValid checks if the PlayerRating is valid
func (r PlayerRating) IsValid() bool {
	switch r {
	case RatingMejora, RatingIgual, RatingReforzar:
		return true
	}
	return false
}

// IsValid checks if the TrashType is valid
func (t TrashType) IsValid() bool {
	switch t {
	case TrashTypeTeam, TrashTypePlayer, TrashTypeTraining, TrashTypeMatch:
		return true
	}
	return false
}

// IsValid checks if the ChatRole is valid
func (r ChatRole) IsValid() bool {
	return r == ChatRoleUser || r == ChatRoleModel
}

// IsValid checks if the ObjectiveType is valid
func (o ObjectiveType) IsValid() bool {
	switch o {
	case ObjectiveTypeTecnicos, ObjectiveTypeTacticos, ObjectiveTypeFormativos:
		return true
	}
	return false
}
