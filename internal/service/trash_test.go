package service_test

import (
	"time"

	"coach-planner-backend/internal/database/models"
	"coach-planner-backend/internal/service"
)

func (suite *StateServiceTestSuite) TestDeleteTeam_TrashesWholeSubtreeAsOneItem() {
	a := suite.createTeam("A")
	b := suite.createTeam("B")
	suite.createPlayer(a.ID, "Juan")
	_, err := suite.svc.CreateMatch(suite.ctx, a.ID, &service.MatchRequest{Date: "2025-03-08", Opponent: "Rival"})
	suite.Require().NoError(err)
	_, err = suite.svc.SaveChat(suite.ctx, a.ID, &models.AIChat{Messages: []models.ChatMessage{{Role: models.ChatRoleUser, Text: "hola"}}})
	suite.Require().NoError(err)

	before, err := suite.svc.GetTeam(suite.ctx, a.ID)
	suite.Require().NoError(err)

	item, err := suite.svc.DeleteTeam(suite.ctx, a.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(item)

	state := suite.load()
	suite.Require().Len(state.Trash, 1)
	trashed := state.Trash[0]
	suite.Equal(models.TrashTypeTeam, trashed.Type)
	suite.Empty(trashed.OriginTeamID)
	suite.Equal(testStart.UnixMilli(), trashed.DeletedAt)
	suite.Require().NotNil(trashed.Team)
	suite.Equal(*before, *trashed.Team)

	// nothing owned by A leaked into B
	suite.Require().Len(state.Teams, 1)
	suite.Equal(b.ID, state.Teams[0].ID)
	suite.Empty(state.Teams[0].Players)
	suite.Empty(state.Teams[0].Matches)
	suite.Empty(state.Teams[0].Chats)
}

func (suite *StateServiceTestSuite) TestDeleteChild_SnapshotsEntityWithOrigin() {
	team := suite.createTeam("A")
	player := suite.createPlayer(team.ID, "Juan")
	training, err := suite.svc.CreateTraining(suite.ctx, team.ID, &service.TrainingRequest{Date: "2025-03-03", Objective: "Salida de balón"})
	suite.Require().NoError(err)
	match, err := suite.svc.CreateMatch(suite.ctx, team.ID, &service.MatchRequest{Date: "2025-03-08", Opponent: "Rival"})
	suite.Require().NoError(err)

	suite.clock.Advance(time.Second)

	pItem, err := suite.svc.DeletePlayer(suite.ctx, team.ID, player.ID)
	suite.Require().NoError(err)
	tItem, err := suite.svc.DeleteTraining(suite.ctx, team.ID, training.ID)
	suite.Require().NoError(err)
	mItem, err := suite.svc.DeleteMatch(suite.ctx, team.ID, match.ID)
	suite.Require().NoError(err)

	suite.Equal(*player, *pItem.Player)
	suite.Equal(*training, *tItem.Training)
	suite.Equal(*match, *mItem.Match)
	for _, item := range []*models.TrashItem{pItem, tItem, mItem} {
		suite.Equal(team.ID, item.OriginTeamID)
	}

	state := suite.load()
	suite.Len(state.Trash, 3)
	suite.Equal([]models.TrashType{models.TrashTypePlayer, models.TrashTypeTraining, models.TrashTypeMatch},
		[]models.TrashType{state.Trash[0].Type, state.Trash[1].Type, state.Trash[2].Type},
		"trash keeps deletion order")
	got := state.Team(team.ID)
	suite.Empty(got.Players)
	suite.Empty(got.Trainings)
	suite.Empty(got.Matches)
}

func (suite *StateServiceTestSuite) TestDeleteMissingEntityIsNoOp() {
	team := suite.createTeam("A")
	suite.notified.Store(0)

	item, err := suite.svc.DeletePlayer(suite.ctx, team.ID, "missing")
	suite.NoError(err)
	suite.Nil(item)

	item, err = suite.svc.DeleteMatch(suite.ctx, "missing", "m1")
	suite.NoError(err)
	suite.Nil(item)

	item, err = suite.svc.DeleteTeam(suite.ctx, "missing")
	suite.NoError(err)
	suite.Nil(item)

	suite.Empty(suite.load().Trash)
	suite.Equal(int32(0), suite.notified.Load())
}

func (suite *StateServiceTestSuite) TestRestoreOrphanedItemOnlyDropsIt() {
	a := suite.createTeam("A")
	b := suite.createTeam("B")
	player := suite.createPlayer(a.ID, "Juan")

	pItem, err := suite.svc.DeletePlayer(suite.ctx, a.ID, player.ID)
	suite.Require().NoError(err)
	tItem, err := suite.svc.DeleteTeam(suite.ctx, a.ID)
	suite.Require().NoError(err)
	_, err = suite.svc.PermanentDelete(suite.ctx, tItem.ID)
	suite.Require().NoError(err)

	before := suite.load()

	result, err := suite.svc.RestoreTrashItem(suite.ctx, pItem.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.False(result.Restored)
	suite.Equal(pItem.ID, result.Item.ID)

	after := suite.load()
	suite.Empty(after.Trash)
	suite.Equal(before.Teams, after.Teams)
	suite.Equal(b.ID, after.ActiveID())
	for _, team := range after.Teams {
		suite.Empty(team.Players)
	}
}

func (suite *StateServiceTestSuite) TestTeamRoundTrip() {
	created := suite.createTeam("A")

	item, err := suite.svc.DeleteTeam(suite.ctx, created.ID)
	suite.Require().NoError(err)

	result, err := suite.svc.RestoreTrashItem(suite.ctx, item.ID)
	suite.Require().NoError(err)
	suite.True(result.Restored)

	restored, err := suite.svc.GetTeam(suite.ctx, created.ID)
	suite.Require().NoError(err)
	suite.Equal(*created, *restored)
	suite.Empty(suite.load().Trash)
}

func (suite *StateServiceTestSuite) TestRestoreAppendsToEnd() {
	team := suite.createTeam("A")
	first := suite.createPlayer(team.ID, "Uno")
	second := suite.createPlayer(team.ID, "Dos")

	item, err := suite.svc.DeletePlayer(suite.ctx, team.ID, first.ID)
	suite.Require().NoError(err)
	_, err = suite.svc.RestoreTrashItem(suite.ctx, item.ID)
	suite.Require().NoError(err)

	got, _ := suite.svc.GetTeam(suite.ctx, team.ID)
	suite.Require().Len(got.Players, 2)
	suite.Equal(second.ID, got.Players[0].ID)
	suite.Equal(first.ID, got.Players[1].ID)
}

func (suite *StateServiceTestSuite) TestRestoreUnknownItemIsNoOp() {
	result, err := suite.svc.RestoreTrashItem(suite.ctx, "missing")
	suite.NoError(err)
	suite.Nil(result)
}

func (suite *StateServiceTestSuite) TestClearTrashIsIdempotent() {
	team := suite.createTeam("A")
	suite.createPlayer(team.ID, "Juan")
	_, err := suite.svc.DeleteTeam(suite.ctx, team.ID)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.svc.ClearTrash(suite.ctx))
	once := suite.load()
	suite.Require().NoError(suite.svc.ClearTrash(suite.ctx))
	twice := suite.load()

	suite.Empty(once.Trash)
	suite.Equal(once, twice)
}

func (suite *StateServiceTestSuite) TestPermanentDelete() {
	team := suite.createTeam("A")
	player := suite.createPlayer(team.ID, "Juan")
	item, err := suite.svc.DeletePlayer(suite.ctx, team.ID, player.ID)
	suite.Require().NoError(err)

	removed, err := suite.svc.PermanentDelete(suite.ctx, item.ID)
	suite.NoError(err)
	suite.True(removed)

	removed, err = suite.svc.PermanentDelete(suite.ctx, item.ID)
	suite.NoError(err)
	suite.False(removed)
	suite.Empty(suite.load().Trash)

	_, err = suite.svc.GetTrashItem(suite.ctx, item.ID)
	suite.Error(err)
}

func (suite *StateServiceTestSuite) TestTrashEntityFindsOwnerByScan() {
	a := suite.createTeam("A")
	b := suite.createTeam("B")
	suite.createPlayer(a.ID, "Ana")
	target := suite.createPlayer(b.ID, "Juan")

	item, err := suite.svc.TrashEntity(suite.ctx, &service.TrashEntityRequest{Type: models.TrashTypePlayer, ID: target.ID})
	suite.Require().NoError(err)
	suite.Require().NotNil(item)
	suite.Equal(b.ID, item.OriginTeamID)
	suite.Equal("Juan", item.Player.Name)

	gotA, _ := suite.svc.GetTeam(suite.ctx, a.ID)
	gotB, _ := suite.svc.GetTeam(suite.ctx, b.ID)
	suite.Len(gotA.Players, 1)
	suite.Empty(gotB.Players)

	item, err = suite.svc.TrashEntity(suite.ctx, &service.TrashEntityRequest{Type: models.TrashTypeTeam, ID: a.ID})
	suite.Require().NoError(err)
	suite.Equal(models.TrashTypeTeam, item.Type)
	suite.Equal(b.ID, suite.load().ActiveID())

	item, err = suite.svc.TrashEntity(suite.ctx, &service.TrashEntityRequest{Type: models.TrashTypeMatch, ID: "missing"})
	suite.NoError(err)
	suite.Nil(item)
}

func (suite *StateServiceTestSuite) TestTrashEntityRejectsUnknownType() {
	_, err := suite.svc.TrashEntity(suite.ctx, &service.TrashEntityRequest{Type: "widget", ID: "x"})
	suite.Error(err)
}

// Create team A, add Juan, delete him and restore him.
func (suite *StateServiceTestSuite) TestJuanScenario() {
	team, err := suite.svc.CreateTeam(suite.ctx, &service.CreateTeamRequest{
		Name:     "A",
		Category: models.CategoryAlevin,
		Level:    models.LevelMedio,
	})
	suite.Require().NoError(err)

	suite.Len(team.SeasonPhases, 4)
	for _, phase := range team.SeasonPhases {
		suite.Empty(phase.TechObjectives)
		suite.Empty(phase.TactObjectives)
		suite.Empty(phase.FormativeObjectives)
		suite.Empty(phase.Observations)
	}
	suite.Equal(team.ID, suite.load().ActiveID())

	juan := suite.createPlayer(team.ID, "Juan")
	got, _ := suite.svc.GetTeam(suite.ctx, team.ID)
	suite.Len(got.Players, 1)

	_, err = suite.svc.DeletePlayer(suite.ctx, team.ID, juan.ID)
	suite.Require().NoError(err)
	state := suite.load()
	suite.Empty(state.Team(team.ID).Players)
	suite.Require().Len(state.Trash, 1)
	suite.Equal(models.TrashTypePlayer, state.Trash[0].Type)
	suite.Equal(team.ID, state.Trash[0].OriginTeamID)
	suite.Equal("Juan", state.Trash[0].Player.Name)

	_, err = suite.svc.RestoreTrashItem(suite.ctx, state.Trash[0].ID)
	suite.Require().NoError(err)
	got, _ = suite.svc.GetTeam(suite.ctx, team.ID)
	suite.Require().Len(got.Players, 1)
	suite.Equal(*juan, got.Players[0])
}
