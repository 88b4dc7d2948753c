package testutils

import (
	"encoding/json"
	"testing"

	"coach-planner-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFullState_RoundTrips(t *testing.T) {
	state := NewFactorySet().CreateFullState()

	var decoded models.AppState
	require.NoError(t, json.Unmarshal(MarshalState(state), &decoded))

	require.Len(t, decoded.Teams, 1)
	team := decoded.Teams[0]
	assert.Equal(t, team.ID, decoded.ActiveID())
	assert.Len(t, team.Players, 3)
	assert.Len(t, team.Trainings, 1)
	assert.Len(t, team.Matches, 1)
	assert.Len(t, team.Chats, 1)

	require.Len(t, decoded.Trash, 1)
	assert.Equal(t, models.TrashTypePlayer, decoded.Trash[0].Type)
	assert.Equal(t, team.ID, decoded.Trash[0].OriginTeamID)
	assert.Equal(t, "Pablo", decoded.Trash[0].Player.Name)
}

func TestFactories_GenerateDistinctIDs(t *testing.T) {
	fs := NewFactorySet()
	assert.NotEqual(t, fs.Team.Create().ID, fs.Team.Create().ID)
	assert.NotEqual(t, fs.Player.Create().ID, fs.Player.Create().ID)
	assert.Empty(t, fs.Training.Create().Content.MissingFields())
}
