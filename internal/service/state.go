package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"coach-planner-backend/internal/database/models"
	apperrors "coach-planner-backend/internal/errors"
	"coach-planner-backend/internal/logger"
	"coach-planner-backend/internal/metrics"
	"coach-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// StateService owns the single persisted application state. Every mutation
// loads the stored document, applies one change and writes the whole
// document back while holding mu, then notifies subscribers.
type StateService struct {
	mu        sync.Mutex
	repo      repository.StateRepositoryInterface
	key       string
	notifier  *Notifier
	clock     clockwork.Clock
	validator *validator.Validate
	newID     func() string
}

// Ensure StateService implements StateServiceInterface
var _ StateServiceInterface = (*StateService)(nil)

// NewStateService creates a new state service
func NewStateService(repo repository.StateRepositoryInterface, key string, notifier *Notifier, clock clockwork.Clock, validator *validator.Validate) *StateService {
	if notifier == nil {
		notifier = NewNotifier()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if validator == nil {
		validator = NewValidator()
	}
	return &StateService{
		repo:      repo,
		key:       key,
		notifier:  notifier,
		clock:     clock,
		validator: validator,
		newID:     uuid.NewString,
	}
}

// Notifier returns the notifier that receives a signal after every persisted write
func (s *StateService) Notifier() *Notifier {
	return s.notifier
}

// Ping checks that the state backend is reachable
func (s *StateService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// Load returns the current state. Absent or unreadable documents yield the
// default empty state; read failures are never returned to the caller.
func (s *StateService) Load(ctx context.Context) (*models.AppState, error) {
	return s.loadOrDefault(ctx), nil
}

func (s *StateService) loadOrDefault(ctx context.Context) *models.AppState {
	state, err := s.load(ctx)
	if err != nil {
		metrics.StateReadRecoveries.Inc()
		logger.WithContext(ctx).WithError(err).WithField("key", s.key).Warn("failed to read state, using defaults")
		return models.NewAppState()
	}
	return state
}

// Mutate applies fn to a freshly loaded state and persists the result when
// fn reports a change.
func (s *StateService) Mutate(ctx context.Context, fn func(*models.AppState) bool) error {
	return s.mutate(ctx, "custom", fn)
}

func (s *StateService) mutate(ctx context.Context, op string, fn func(*models.AppState) bool) error {
	log := logger.WithContext(ctx).WithField("operation", op)

	changed, err := s.apply(ctx, fn)
	switch {
	case err != nil:
		metrics.Mutations.WithLabelValues(op, "error").Inc()
		log.WithError(err).Error("failed to apply state change")
		return err
	case !changed:
		metrics.Mutations.WithLabelValues(op, "noop").Inc()
		log.Debug("mutation made no change")
		return nil
	}

	metrics.Mutations.WithLabelValues(op, "ok").Inc()
	log.Debug("state persisted")
	s.notifier.Publish()
	return nil
}

// apply runs one load/modify/write cycle under mu. A backend that cannot be
// read aborts the cycle, so the stored document is never replaced by a
// change applied to the default state.
func (s *StateService) apply(ctx context.Context, fn func(*models.AppState) bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx)
	if err != nil {
		return false, apperrors.NewStorageReadError(s.key, err)
	}
	if !fn(state) {
		return false, nil
	}
	if err := s.write(ctx, state); err != nil {
		return false, err
	}
	return true, nil
}

// persistedState mirrors AppState but decodes trash items one by one, so a
// single unreadable item does not discard the whole document.
type persistedState struct {
	Teams        []models.Team     `json:"teams"`
	ActiveTeamID *string           `json:"activeTeamId"`
	Trash        []json.RawMessage `json:"trash"`
}

// load reads the stored document. An absent or malformed document yields the
// default state; only backend read failures are returned.
func (s *StateService) load(ctx context.Context) (*models.AppState, error) {
	log := logger.WithContext(ctx).WithField("key", s.key)

	data, err := s.repo.Read(ctx, s.key)
	if err != nil {
		if errors.Is(err, apperrors.ErrStateNotFound) {
			log.Debug("no stored state, using defaults")
			return models.NewAppState(), nil
		}
		return nil, err
	}

	var raw persistedState
	if err := json.Unmarshal(data, &raw); err != nil {
		metrics.StateReadRecoveries.Inc()
		log.WithError(err).Warn("stored state is malformed, using defaults")
		return models.NewAppState(), nil
	}

	state := &models.AppState{
		Teams:        raw.Teams,
		ActiveTeamID: raw.ActiveTeamID,
		Trash:        make([]models.TrashItem, 0, len(raw.Trash)),
	}
	for i, msg := range raw.Trash {
		var item models.TrashItem
		if err := json.Unmarshal(msg, &item); err != nil {
			log.WithError(err).WithField("index", i).Warn("dropping unreadable trash item")
			continue
		}
		state.Trash = append(state.Trash, item)
	}
	state.Normalize()
	return state, nil
}

func (s *StateService) write(ctx context.Context, state *models.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		metrics.StateWriteFailures.Inc()
		return apperrors.NewStorageWriteError(s.key, err)
	}
	if err := s.repo.Write(ctx, s.key, data); err != nil {
		metrics.StateWriteFailures.Inc()
		return apperrors.NewStorageWriteError(s.key, err)
	}
	metrics.StateWrites.Inc()
	return nil
}

func (s *StateService) now() int64 {
	return s.clock.Now().UnixMilli()
}
