package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"coach-planner-backend/internal/database/models"
	apperrors "coach-planner-backend/internal/errors"
	"coach-planner-backend/internal/logger"
	"coach-planner-backend/internal/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const maxProviderResponseBytes = 4 << 20

// GenerationConfig holds the injected provider settings
type GenerationConfig struct {
	Endpoint          string
	APIKey            string
	Model             string
	ResponsePath      string
	Timeout           time.Duration
	OAuthTokenURL     string
	OAuthClientID     string
	OAuthClientSecret string
}

// GenerationService turns coaching parameters into prompts and sends them
// to the configured text-generation provider. Every call is a single
// request: no retries, no caching.
type GenerationService struct {
	cfg        GenerationConfig
	httpClient *http.Client
	validator  *validator.Validate
}

// Ensure GenerationService implements GenerationServiceInterface
var _ GenerationServiceInterface = (*GenerationService)(nil)

// TrainingSessionParams are the inputs of a generated training session
type TrainingSessionParams struct {
	Category    models.Category `json:"category" validate:"required,category"`
	Age         string          `json:"age"`
	Level       models.Level    `json:"level" validate:"required,level"`
	PlayerCount int             `json:"playerCount" validate:"gte=0,lte=60"`
	Objective   string          `json:"objective" validate:"required,max=500"`
	Duration    string          `json:"duration" validate:"max=50"`
	Material    string          `json:"material" validate:"max=500"`
}

func (p *TrainingSessionParams) withDefaults() TrainingSessionParams {
	out := *p
	if out.PlayerCount == 0 {
		out.PlayerCount = DefaultTrainingPlayerCount
	}
	if strings.TrimSpace(out.Duration) == "" {
		out.Duration = DefaultTrainingDuration
	}
	if strings.TrimSpace(out.Material) == "" {
		out.Material = DefaultTrainingMaterial
	}
	return out
}

// SeasonObjectivesParams are the inputs of generated season objectives
type SeasonObjectivesParams struct {
	Category models.Category      `json:"category" validate:"required,category"`
	Level    models.Level         `json:"level" validate:"required,level"`
	Phase    string               `json:"phase" validate:"required,max=100"`
	Type     models.ObjectiveType `json:"type" validate:"required,objectivetype"`
}

// TeamContext is the team summary given to the chat assistant
type TeamContext struct {
	Name          string          `json:"name"`
	Category      models.Category `json:"category"`
	PlayerCount   int             `json:"playerCount"`
	LastOpponents []string        `json:"lastOpponents"`
	Season        string          `json:"season"`
}

// ChatContext carries the active team summary and the prior conversation turns
type ChatContext struct {
	Team    *TeamContext         `json:"team,omitempty"`
	History []models.ChatMessage `json:"history,omitempty"`
}

// NewChatContext summarizes team for the assistant. team may be nil.
func NewChatContext(team *models.Team, history []models.ChatMessage) *ChatContext {
	c := &ChatContext{History: history}
	if team != nil {
		c.Team = &TeamContext{
			Name:          team.Name,
			Category:      team.Category,
			PlayerCount:   len(team.Players),
			LastOpponents: team.LastOpponents(3),
			Season:        team.Season,
		}
	}
	return c
}

// generationTurn is one prior turn sent to the provider
type generationTurn struct {
	Role models.ChatRole `json:"role"`
	Text string          `json:"text"`
}

// generationRequest is the provider request body
type generationRequest struct {
	Message          string                 `json:"message"`
	System           string                 `json:"system,omitempty"`
	Model            string                 `json:"model,omitempty"`
	History          []generationTurn       `json:"history,omitempty"`
	ResponseMimeType string                 `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]interface{} `json:"responseSchema,omitempty"`
}

// NewGenerationService creates a new generation service. When client
// credentials are configured, requests carry an OAuth2 bearer token.
func NewGenerationService(cfg GenerationConfig, validator *validator.Validate) *GenerationService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.ResponsePath == "" {
		cfg.ResponsePath = "text"
	}
	if validator == nil {
		validator = NewValidator()
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.OAuthTokenURL != "" && cfg.OAuthClientID != "" {
		cc := &clientcredentials.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			TokenURL:     cfg.OAuthTokenURL,
		}
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: cfg.Timeout})
		httpClient = cc.Client(ctx)
		httpClient.Timeout = cfg.Timeout
	}

	return &GenerationService{
		cfg:        cfg,
		httpClient: httpClient,
		validator:  validator,
	}
}

// GenerateTrainingSession asks the provider for the five content blocks of a session.
// A response missing any block is reported as malformed.
func (s *GenerationService) GenerateTrainingSession(ctx context.Context, params *TrainingSessionParams) (*models.TrainingContent, error) {
	if err := validateRequest(s.validator, params); err != nil {
		return nil, err
	}

	prompt, err := render(trainingSessionPrompt, params.withDefaults())
	if err != nil {
		return nil, fmt.Errorf("failed to render training prompt: %w", err)
	}

	text, err := s.call(ctx, "training_session", &generationRequest{
		Message:          prompt,
		ResponseMimeType: "application/json",
		ResponseSchema:   trainingSessionSchema,
	})
	if err != nil {
		return nil, err
	}

	var content models.TrainingContent
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &content); err != nil {
		s.observe("training_session", "invalid_content")
		return nil, apperrors.NewGenerationMalformedError("training session is not a JSON object", err)
	}
	if missing := content.MissingFields(); len(missing) > 0 {
		s.observe("training_session", "invalid_content")
		return nil, apperrors.NewGenerationMalformedError("training session is missing "+strings.Join(missing, ", "), nil)
	}
	return &content, nil
}

// GenerateSeasonObjectives asks the provider for 3 to 5 objective bullet points
func (s *GenerationService) GenerateSeasonObjectives(ctx context.Context, params *SeasonObjectivesParams) (string, error) {
	if err := validateRequest(s.validator, params); err != nil {
		return "", err
	}

	prompt, err := render(seasonObjectivesPrompt, params)
	if err != nil {
		return "", fmt.Errorf("failed to render season prompt: %w", err)
	}

	text, err := s.call(ctx, "season_objectives", &generationRequest{Message: prompt})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// ChatReply sends message, with the team context and prior turns, to the assistant
func (s *GenerationService) ChatReply(ctx context.Context, message string, chatCtx *ChatContext) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", apperrors.ErrEmptyChatMessage
	}
	if chatCtx == nil {
		chatCtx = &ChatContext{}
	}

	system, err := render(chatSystemPrompt, struct {
		Team       *TeamContext
		Disclaimer string
	}{chatCtx.Team, ChatDisclaimer})
	if err != nil {
		return "", fmt.Errorf("failed to render chat prompt: %w", err)
	}

	history := make([]generationTurn, 0, len(chatCtx.History))
	for _, m := range chatCtx.History {
		history = append(history, generationTurn{Role: m.Role, Text: m.Text})
	}

	return s.call(ctx, "chat", &generationRequest{
		Message: message,
		System:  system,
		History: history,
	})
}

// call performs one provider round-trip and extracts the reply text at the configured path
func (s *GenerationService) call(ctx context.Context, kind string, body *generationRequest) (string, error) {
	log := logger.WithContext(ctx).WithField("kind", kind)

	if strings.TrimSpace(s.cfg.Endpoint) == "" {
		s.observe(kind, "unavailable")
		return "", apperrors.NewGenerationUnavailableError("provider is not configured", apperrors.ErrProviderNotSet)
	}
	if body.Model == "" {
		body.Model = s.cfg.Model
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if s.cfg.APIKey != "" {
		req.Header.Set("X-API-Key", s.cfg.APIKey)
	}

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	metrics.GenerationDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil {
		s.observe(kind, "unavailable")
		log.WithError(err).Warn("generation request failed")
		return "", apperrors.NewGenerationUnavailableError("request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxProviderResponseBytes))
	if err != nil {
		s.observe(kind, "unavailable")
		return "", apperrors.NewGenerationUnavailableError("failed to read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.observe(kind, "unavailable")
		log.WithField("status", resp.StatusCode).Warn("generation provider returned an error status")
		return "", apperrors.NewGenerationUnavailableError(fmt.Sprintf("provider returned status %d", resp.StatusCode), nil)
	}

	if !gjson.ValidBytes(raw) {
		s.observe(kind, "malformed")
		return "", apperrors.NewGenerationMalformedError("response is not valid JSON", nil)
	}
	result := gjson.GetBytes(raw, s.cfg.ResponsePath)
	if !result.Exists() || result.Type != gjson.String || strings.TrimSpace(result.String()) == "" {
		s.observe(kind, "malformed")
		return "", apperrors.NewGenerationMalformedError(fmt.Sprintf("response has no text at %q", s.cfg.ResponsePath), nil)
	}

	s.observe(kind, "ok")
	log.Debug("generation succeeded")
	return result.String(), nil
}

func (s *GenerationService) observe(kind, outcome string) {
	metrics.GenerationRequests.WithLabelValues(kind, outcome).Inc()
}

// stripCodeFence removes a surrounding ```json fence some models add around JSON output
func stripCodeFence(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if nl := strings.IndexByte(t, '\n'); nl >= 0 {
		t = t[nl+1:]
	}
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}
