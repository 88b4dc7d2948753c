package service_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"coach-planner-backend/internal/database/models"
	apperrors "coach-planner-backend/internal/errors"
	"coach-planner-backend/internal/service"

	"github.com/stretchr/testify/suite"
)

// providerRequest mirrors the body the generation service posts
type providerRequest struct {
	Message          string                   `json:"message"`
	System           string                   `json:"system"`
	Model            string                   `json:"model"`
	History          []map[string]interface{} `json:"history"`
	ResponseMimeType string                   `json:"responseMimeType"`
	ResponseSchema   map[string]interface{}   `json:"responseSchema"`
}

// GenerationServiceTestSuite runs the generation service against a fake provider
type GenerationServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	server   *httptest.Server
	status   int
	response string
	received providerRequest
	headers  http.Header
}

func (suite *GenerationServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.status = http.StatusOK
	suite.response = `{"text":"ok"}`
	suite.received = providerRequest{}
	suite.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.headers = r.Header.Clone()
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &suite.received)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(suite.status)
		_, _ = w.Write([]byte(suite.response))
	}))
}

func (suite *GenerationServiceTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *GenerationServiceTestSuite) newService(modify ...func(*service.GenerationConfig)) *service.GenerationService {
	cfg := service.GenerationConfig{
		Endpoint: suite.server.URL,
		APIKey:   "secret",
		Model:    "planner-model",
	}
	for _, m := range modify {
		m(&cfg)
	}
	return service.NewGenerationService(cfg, service.NewValidator())
}

func trainingParams() *service.TrainingSessionParams {
	return &service.TrainingSessionParams{
		Category:    models.CategoryAlevin,
		Age:         "10-11",
		Level:       models.LevelMedio,
		PlayerCount: 12,
		Objective:   "Salida de balón",
		Duration:    "90 min",
		Material:    "Balones",
	}
}

func (suite *GenerationServiceTestSuite) TestGenerateTrainingSession_Success() {
	suite.response = `{"text":"{\"juego\":\"a\",\"circuitoTecnico\":\"b\",\"posesion\":\"c\",\"partidoCondicionado\":\"d\",\"oleada\":\"e\"}"}`

	content, err := suite.newService().GenerateTrainingSession(suite.ctx, trainingParams())
	suite.Require().NoError(err)
	suite.Equal(models.TrainingContent{
		Juego:               "a",
		CircuitoTecnico:     "b",
		Posesion:            "c",
		PartidoCondicionado: "d",
		Oleada:              "e",
	}, *content)

	suite.Contains(suite.received.Message, "Objetivo Principal: Salida de balón")
	suite.Contains(suite.received.Message, "Categoría: Alevín (10-11)")
	suite.Equal("application/json", suite.received.ResponseMimeType)
	suite.NotEmpty(suite.received.ResponseSchema)
	suite.Equal("planner-model", suite.received.Model)
	suite.Equal("secret", suite.headers.Get("X-API-Key"))
	suite.Equal("application/json", suite.headers.Get("Content-Type"))
}

func (suite *GenerationServiceTestSuite) TestGenerateTrainingSession_AppliesDefaults() {
	suite.response = `{"text":"{\"juego\":\"a\",\"circuitoTecnico\":\"b\",\"posesion\":\"c\",\"partidoCondicionado\":\"d\",\"oleada\":\"e\"}"}`
	params := trainingParams()
	params.PlayerCount = 0
	params.Duration = ""
	params.Material = ""

	_, err := suite.newService().GenerateTrainingSession(suite.ctx, params)
	suite.Require().NoError(err)
	suite.Contains(suite.received.Message, "Nº Jugadores: 12")
	suite.Contains(suite.received.Message, "Duración: "+service.DefaultTrainingDuration)
	suite.Contains(suite.received.Message, "Material: "+service.DefaultTrainingMaterial)
}

func (suite *GenerationServiceTestSuite) TestGenerateTrainingSession_StripsCodeFence() {
	suite.response = "{\"text\":\"```json\\n{\\\"juego\\\":\\\"a\\\",\\\"circuitoTecnico\\\":\\\"b\\\",\\\"posesion\\\":\\\"c\\\",\\\"partidoCondicionado\\\":\\\"d\\\",\\\"oleada\\\":\\\"e\\\"}\\n```\"}"

	content, err := suite.newService().GenerateTrainingSession(suite.ctx, trainingParams())
	suite.Require().NoError(err)
	suite.Equal("e", content.Oleada)
}

func (suite *GenerationServiceTestSuite) TestGenerateTrainingSession_MissingBlockIsMalformed() {
	suite.response = `{"text":"{\"juego\":\"a\",\"circuitoTecnico\":\"b\",\"posesion\":\"c\",\"partidoCondicionado\":\"d\"}"}`

	content, err := suite.newService().GenerateTrainingSession(suite.ctx, trainingParams())
	suite.Nil(content)
	suite.True(apperrors.IsGenerationMalformed(err))
	suite.Contains(err.Error(), "oleada")
}

func (suite *GenerationServiceTestSuite) TestGenerateTrainingSession_NonJSONTextIsMalformed() {
	suite.response = `{"text":"Aquí tienes la sesión"}`

	_, err := suite.newService().GenerateTrainingSession(suite.ctx, trainingParams())
	suite.True(apperrors.IsGenerationMalformed(err))
}

func (suite *GenerationServiceTestSuite) TestGenerateTrainingSession_InvalidParams() {
	params := trainingParams()
	params.Objective = ""

	_, err := suite.newService().GenerateTrainingSession(suite.ctx, params)
	suite.True(apperrors.IsValidation(err))
	suite.Empty(suite.received.Message, "provider must not be called")
}

func (suite *GenerationServiceTestSuite) TestGenerateSeasonObjectives() {
	suite.response = `{"text":"  - Conducción\n- Pase corto\n"}`

	text, err := suite.newService().GenerateSeasonObjectives(suite.ctx, &service.SeasonObjectivesParams{
		Category: models.CategoryInfantil,
		Level:    models.LevelAlto,
		Phase:    "Inicio / Pretemporada",
		Type:     models.ObjectiveTypeTecnicos,
	})
	suite.Require().NoError(err)
	suite.Equal("- Conducción\n- Pase corto", text)
	suite.Contains(suite.received.Message, "Fase de Temporada: Inicio / Pretemporada")
	suite.Contains(suite.received.Message, "Ajusta la complejidad al nivel Alto")
}

func (suite *GenerationServiceTestSuite) TestChatReply_SendsSystemPromptAndHistory() {
	suite.response = `{"text":"Trabaja rondos 4x1."}`
	team := &models.Team{
		Name:     "Alevín A",
		Category: models.CategoryAlevin,
		Season:   "2025/26",
		Players:  []models.Player{{ID: "p1"}, {ID: "p2"}},
		Matches: []models.Match{
			{Opponent: "Uno"}, {Opponent: "Dos"}, {Opponent: "Tres"}, {Opponent: "Cuatro"},
		},
	}
	history := []models.ChatMessage{
		{Role: models.ChatRoleUser, Text: "hola"},
		{Role: models.ChatRoleModel, Text: "¿en qué te ayudo?"},
	}

	reply, err := suite.newService().ChatReply(suite.ctx, "¿Cómo mejoro la salida de balón?", service.NewChatContext(team, history))
	suite.Require().NoError(err)
	suite.Equal("Trabaja rondos 4x1.", reply)

	suite.Equal("¿Cómo mejoro la salida de balón?", suite.received.Message)
	suite.Contains(suite.received.System, "Nombre: Alevín A")
	suite.Contains(suite.received.System, "Jugadores: 2")
	suite.Contains(suite.received.System, "Últimos Partidos: Dos, Tres, Cuatro")
	suite.Contains(suite.received.System, service.ChatDisclaimer)
	suite.Require().Len(suite.received.History, 2)
	suite.Equal("user", suite.received.History[0]["role"])
	suite.Equal("¿en qué te ayudo?", suite.received.History[1]["text"])
}

func (suite *GenerationServiceTestSuite) TestChatReply_WithoutTeam() {
	_, err := suite.newService().ChatReply(suite.ctx, "hola", service.NewChatContext(nil, nil))
	suite.Require().NoError(err)
	suite.Contains(suite.received.System, "No hay equipo activo seleccionado.")
	suite.Empty(suite.received.History)
}

func (suite *GenerationServiceTestSuite) TestChatReply_EmptyMessage() {
	_, err := suite.newService().ChatReply(suite.ctx, "   ", nil)
	suite.ErrorIs(err, apperrors.ErrEmptyChatMessage)
}

func (suite *GenerationServiceTestSuite) TestCall_CustomResponsePath() {
	suite.response = `{"candidates":[{"content":{"parts":[{"text":"respuesta"}]}}]}`
	svc := suite.newService(func(cfg *service.GenerationConfig) {
		cfg.ResponsePath = "candidates.0.content.parts.0.text"
	})

	reply, err := svc.ChatReply(suite.ctx, "hola", nil)
	suite.Require().NoError(err)
	suite.Equal("respuesta", reply)
}

func (suite *GenerationServiceTestSuite) TestCall_Failures() {
	testCases := []struct {
		name      string
		status    int
		response  string
		malformed bool
	}{
		{name: "server error", status: http.StatusInternalServerError, response: `{"error":"boom"}`},
		{name: "rate limited", status: http.StatusTooManyRequests, response: `{}`},
		{name: "invalid json", status: http.StatusOK, response: `not json`, malformed: true},
		{name: "missing text", status: http.StatusOK, response: `{"other":"x"}`, malformed: true},
		{name: "empty text", status: http.StatusOK, response: `{"text":"  "}`, malformed: true},
		{name: "non string text", status: http.StatusOK, response: `{"text":42}`, malformed: true},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.status = tc.status
			suite.response = tc.response

			reply, err := suite.newService().ChatReply(suite.ctx, "hola", nil)
			suite.Empty(reply)
			suite.True(apperrors.IsGenerationUnavailable(err))
			suite.Equal(tc.malformed, apperrors.IsGenerationMalformed(err))
		})
	}
}

func (suite *GenerationServiceTestSuite) TestCall_NoEndpoint() {
	svc := suite.newService(func(cfg *service.GenerationConfig) { cfg.Endpoint = "" })

	_, err := svc.ChatReply(suite.ctx, "hola", nil)
	suite.True(apperrors.IsGenerationUnavailable(err))
	suite.ErrorIs(err, apperrors.ErrProviderNotSet)
}

func (suite *GenerationServiceTestSuite) TestCall_NoAPIKeyHeaderWhenUnset() {
	svc := suite.newService(func(cfg *service.GenerationConfig) { cfg.APIKey = "" })

	_, err := svc.ChatReply(suite.ctx, "hola", nil)
	suite.Require().NoError(err)
	suite.Empty(suite.headers.Get("X-API-Key"))
}

func TestGenerationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GenerationServiceTestSuite))
}
