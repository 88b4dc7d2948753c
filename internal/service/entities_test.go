package service_test

import (
	"time"

	"coach-planner-backend/internal/database/models"
	apperrors "coach-planner-backend/internal/errors"
	"coach-planner-backend/internal/service"
)

func (suite *StateServiceTestSuite) TestCreateTeam_OnlyFirstTeamBecomesActive() {
	a := suite.createTeam("A")
	suite.Equal(a.ID, suite.load().ActiveID())

	suite.createTeam("B")
	suite.Equal(a.ID, suite.load().ActiveID())

	suite.NotEmpty(a.ID)
	suite.Equal(models.DefaultSeasonPhases(), a.SeasonPhases)
}

func (suite *StateServiceTestSuite) TestCreateTeam_Validation() {
	testCases := []struct {
		name    string
		request *service.CreateTeamRequest
		field   string
	}{
		{
			name:    "missing name",
			request: &service.CreateTeamRequest{Category: models.CategoryAlevin, Level: models.LevelMedio},
			field:   "Name",
		},
		{
			name:    "unknown category",
			request: &service.CreateTeamRequest{Name: "A", Category: "Senior", Level: models.LevelMedio},
			field:   "Category",
		},
		{
			name:    "unknown level",
			request: &service.CreateTeamRequest{Name: "A", Category: models.CategoryAlevin, Level: "Pro"},
			field:   "Level",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			team, err := suite.svc.CreateTeam(suite.ctx, tc.request)
			suite.Nil(team)
			suite.True(apperrors.IsValidation(err))
			suite.Contains(err.Error(), tc.field)
		})
	}
	suite.Empty(suite.load().Teams)
}

func (suite *StateServiceTestSuite) TestUpdateTeam_MergesOnlyProvidedFields() {
	team := suite.createTeam("A")
	level := models.LevelAlto

	updated, err := suite.svc.UpdateTeam(suite.ctx, team.ID, &service.UpdateTeamRequest{
		Name:  strPtr("Alevín A"),
		Level: &level,
	})
	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal("Alevín A", updated.Name)
	suite.Equal(models.LevelAlto, updated.Level)
	suite.Equal(team.Category, updated.Category)
	suite.Equal(team.Season, updated.Season)
}

func (suite *StateServiceTestSuite) TestUpdateTeam_MissingIsNoOp() {
	suite.notified.Store(0)
	updated, err := suite.svc.UpdateTeam(suite.ctx, "missing", &service.UpdateTeamRequest{Name: strPtr("X")})
	suite.NoError(err)
	suite.Nil(updated)
	suite.Equal(int32(0), suite.notified.Load())
}

func (suite *StateServiceTestSuite) TestSetActiveTeamID() {
	a := suite.createTeam("A")
	b := suite.createTeam("B")

	suite.NoError(suite.svc.SetActiveTeamID(suite.ctx, &b.ID))
	suite.Equal(b.ID, suite.load().ActiveID())

	unknown := "missing"
	err := suite.svc.SetActiveTeamID(suite.ctx, &unknown)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
	suite.Equal(b.ID, suite.load().ActiveID())

	suite.NoError(suite.svc.SetActiveTeamID(suite.ctx, nil))
	suite.Nil(suite.load().ActiveTeamID)

	active, err := suite.svc.GetActiveTeam(suite.ctx)
	suite.NoError(err)
	suite.Nil(active)

	suite.NoError(suite.svc.SetActiveTeamID(suite.ctx, &a.ID))
	active, err = suite.svc.GetActiveTeam(suite.ctx)
	suite.NoError(err)
	suite.Equal(a.ID, active.ID)
}

func (suite *StateServiceTestSuite) TestGetTeam_NotFound() {
	_, err := suite.svc.GetTeam(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)

	teams, err := suite.svc.ListTeams(suite.ctx)
	suite.NoError(err)
	suite.Empty(teams)
}

func (suite *StateServiceTestSuite) TestUpdatePlayer() {
	team := suite.createTeam("A")
	player := suite.createPlayer(team.ID, "Juan")
	rating := models.RatingMejora

	updated, err := suite.svc.UpdatePlayer(suite.ctx, team.ID, player.ID, &service.UpdatePlayerRequest{
		Control:  &rating,
		Comments: strPtr("Buen primer toque"),
	})
	suite.Require().NoError(err)
	suite.Equal(player.ID, updated.ID)
	suite.Equal(models.RatingMejora, updated.Control)
	suite.Equal(models.RatingIgual, updated.Passing)
	suite.Equal("Buen primer toque", updated.Comments)

	missing, err := suite.svc.UpdatePlayer(suite.ctx, team.ID, "missing", &service.UpdatePlayerRequest{Comments: strPtr("x")})
	suite.NoError(err)
	suite.Nil(missing)

	bad := models.PlayerRating("excelente")
	_, err = suite.svc.UpdatePlayer(suite.ctx, team.ID, player.ID, &service.UpdatePlayerRequest{Attitude: &bad})
	suite.True(apperrors.IsValidation(err))
}

func (suite *StateServiceTestSuite) TestCreatePlayer_AcceptsPositionWithSpace() {
	team := suite.createTeam("A")
	player, err := suite.svc.CreatePlayer(suite.ctx, team.ID, &service.PlayerRequest{
		Name:          "Pablo",
		Position:      models.PositionDefensaCentral,
		Control:       models.RatingReforzar,
		Passing:       models.RatingIgual,
		Participation: models.RatingMejora,
		Attitude:      models.RatingIgual,
	})
	suite.Require().NoError(err)
	suite.Equal(models.PositionDefensaCentral, player.Position)
}

func (suite *StateServiceTestSuite) TestCreateTraining_SnapshotsTeamAndAppliesDefaults() {
	team := suite.createTeam("A")
	suite.createPlayer(team.ID, "Juan")
	suite.createPlayer(team.ID, "Ana")

	training, err := suite.svc.CreateTraining(suite.ctx, team.ID, &service.TrainingRequest{
		Date:      "2025-03-03",
		Objective: "Salida de balón",
		Content:   models.TrainingContent{Juego: "Rondo 4x1"},
	})
	suite.Require().NoError(err)
	suite.Equal(models.CategoryAlevin, training.Category)
	suite.Equal("10-11", training.Age)
	suite.Equal(models.LevelMedio, training.Level)
	suite.Equal(2, training.PlayerCount)
	suite.Equal(service.DefaultTrainingDuration, training.Duration)
	suite.Equal(service.DefaultTrainingMaterial, training.Material)
	suite.Equal("Rondo 4x1", training.Content.Juego)

	// later team edits do not touch the snapshot
	level := models.LevelElite
	_, err = suite.svc.UpdateTeam(suite.ctx, team.ID, &service.UpdateTeamRequest{Level: &level})
	suite.Require().NoError(err)
	got, _ := suite.svc.GetTeam(suite.ctx, team.ID)
	suite.Equal(models.LevelMedio, got.Trainings[0].Level)
}

func (suite *StateServiceTestSuite) TestUpdateTraining_ReplacesContent() {
	team := suite.createTeam("A")
	training, err := suite.svc.CreateTraining(suite.ctx, team.ID, &service.TrainingRequest{Date: "2025-03-03", Objective: "Pressing", PlayerCount: 14})
	suite.Require().NoError(err)
	suite.Equal(14, training.PlayerCount)

	content := models.TrainingContent{
		Juego:               "a",
		CircuitoTecnico:     "b",
		Posesion:            "c",
		PartidoCondicionado: "d",
		Oleada:              "e",
	}
	updated, err := suite.svc.UpdateTraining(suite.ctx, team.ID, training.ID, &service.UpdateTrainingRequest{Content: &content})
	suite.Require().NoError(err)
	suite.Equal(content, updated.Content)
	suite.Equal("Pressing", updated.Objective)
}

func (suite *StateServiceTestSuite) TestCreateAndUpdateMatch() {
	team := suite.createTeam("A")
	match, err := suite.svc.CreateMatch(suite.ctx, team.ID, &service.MatchRequest{Date: "2025-03-08", Opponent: "CD Rival"})
	suite.Require().NoError(err)

	updated, err := suite.svc.UpdateMatch(suite.ctx, team.ID, match.ID, &service.UpdateMatchRequest{
		Successes: strPtr("Presión tras pérdida"),
		ToCorrect: strPtr("Vigilancias"),
	})
	suite.Require().NoError(err)
	suite.Equal("CD Rival", updated.Opponent)
	suite.Equal("Presión tras pérdida", updated.Successes)
	suite.Equal("Vigilancias", updated.ToCorrect)

	_, err = suite.svc.CreateMatch(suite.ctx, team.ID, &service.MatchRequest{Date: "2025-03-15"})
	suite.True(apperrors.IsValidation(err))
}

func (suite *StateServiceTestSuite) TestUpdateSeasonPhase() {
	team := suite.createTeam("A")

	phase, err := suite.svc.UpdateSeasonPhase(suite.ctx, team.ID, "p2", &service.UpdateSeasonPhaseRequest{
		TechObjectives: strPtr("- Conducción\n- Pase"),
	})
	suite.Require().NoError(err)
	suite.Equal("p2", phase.ID)
	suite.Equal("Desarrollo / Formación", phase.Label)
	suite.Equal("- Conducción\n- Pase", phase.TechObjectives)

	missing, err := suite.svc.UpdateSeasonPhase(suite.ctx, team.ID, "p9", &service.UpdateSeasonPhaseRequest{Observations: strPtr("x")})
	suite.NoError(err)
	suite.Nil(missing)

	got, _ := suite.svc.GetTeam(suite.ctx, team.ID)
	suite.Len(got.SeasonPhases, 4)
}

func (suite *StateServiceTestSuite) TestSaveChat_UpsertsByID() {
	team := suite.createTeam("A")

	chat, err := suite.svc.SaveChat(suite.ctx, team.ID, &models.AIChat{
		Messages: []models.ChatMessage{{Role: models.ChatRoleUser, Text: "¿Cómo trabajo la salida de balón con alevines?"}},
	})
	suite.Require().NoError(err)
	suite.NotEmpty(chat.ID)
	suite.Equal("¿Cómo trabajo la salida de bal...", chat.Title)
	suite.Equal(testStart.UnixMilli(), chat.LastUpdate)

	chat.Messages = append(chat.Messages, models.ChatMessage{Role: models.ChatRoleModel, Text: "Con rondos."})
	_, err = suite.svc.SaveChat(suite.ctx, team.ID, chat)
	suite.Require().NoError(err)

	got, _ := suite.svc.GetTeam(suite.ctx, team.ID)
	suite.Require().Len(got.Chats, 1)
	suite.Len(got.Chats[0].Messages, 2)

	_, err = suite.svc.SaveChat(suite.ctx, team.ID, &models.AIChat{Messages: []models.ChatMessage{{Role: "assistant", Text: "x"}}})
	suite.True(apperrors.IsValidation(err))
}

func (suite *StateServiceTestSuite) TestDeleteChat_IsPermanent() {
	team := suite.createTeam("A")
	chat, err := suite.svc.SaveChat(suite.ctx, team.ID, &models.AIChat{Title: "Rondos"})
	suite.Require().NoError(err)

	removed, err := suite.svc.DeleteChat(suite.ctx, team.ID, chat.ID)
	suite.NoError(err)
	suite.True(removed)
	suite.Empty(suite.load().Trash)

	removed, err = suite.svc.DeleteChat(suite.ctx, team.ID, chat.ID)
	suite.NoError(err)
	suite.False(removed)
}

func (suite *StateServiceTestSuite) TestListChats_SearchesTitleNewestFirst() {
	team := suite.createTeam("A")
	_, err := suite.svc.SaveChat(suite.ctx, team.ID, &models.AIChat{Title: "Rondos de calentamiento"})
	suite.Require().NoError(err)
	suite.clock.Advance(time.Minute)
	_, err = suite.svc.SaveChat(suite.ctx, team.ID, &models.AIChat{Title: "Presión alta"})
	suite.Require().NoError(err)
	suite.clock.Advance(time.Minute)
	_, err = suite.svc.SaveChat(suite.ctx, team.ID, &models.AIChat{Title: "Más RONDOS"})
	suite.Require().NoError(err)

	all, err := suite.svc.ListChats(suite.ctx, team.ID, "")
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal("Más RONDOS", all[0].Title)

	found, err := suite.svc.ListChats(suite.ctx, team.ID, "rondos")
	suite.Require().NoError(err)
	suite.Require().Len(found, 2)
	suite.Equal("Más RONDOS", found[0].Title)
	suite.Equal("Rondos de calentamiento", found[1].Title)

	_, err = suite.svc.ListChats(suite.ctx, "missing", "")
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func (suite *StateServiceTestSuite) TestTeamSummaryAndProgress() {
	team := suite.createTeam("A")
	suite.createPlayer(team.ID, "Juan")
	_, err := suite.svc.CreatePlayer(suite.ctx, team.ID, &service.PlayerRequest{
		Name:          "Ana",
		Position:      models.PositionPortero,
		Control:       models.RatingMejora,
		Passing:       models.RatingReforzar,
		Participation: models.RatingIgual,
		Attitude:      models.RatingMejora,
	})
	suite.Require().NoError(err)
	_, err = suite.svc.CreateMatch(suite.ctx, team.ID, &service.MatchRequest{Date: "2025-03-01", Opponent: "Uno"})
	suite.Require().NoError(err)
	last, err := suite.svc.CreateMatch(suite.ctx, team.ID, &service.MatchRequest{Date: "2025-03-08", Opponent: "Dos"})
	suite.Require().NoError(err)

	summary, err := suite.svc.GetTeamSummary(suite.ctx, team.ID)
	suite.Require().NoError(err)
	suite.Equal(2, summary.PlayerCount)
	suite.Equal(2, summary.MatchCount)
	suite.Equal(0, summary.TrainingCount)
	suite.Nil(summary.LastTraining)
	suite.Equal(*last, *summary.LastMatch)

	progress, err := suite.svc.GetTeamProgress(suite.ctx, team.ID)
	suite.Require().NoError(err)
	suite.Equal(service.RatingDistribution{Mejora: 1, Igual: 1}, progress.Control)
	suite.Equal(service.RatingDistribution{Igual: 1, Reforzar: 1}, progress.Passing)
	suite.Equal(service.RatingDistribution{Igual: 2}, progress.Participation)
	suite.Equal(service.RatingDistribution{Mejora: 1, Igual: 1}, progress.Attitude)

	_, err = suite.svc.GetTeamProgress(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}
