package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// StorageWriteError is returned when the state backend rejects a write.
// The in-memory change that triggered the write is discarded.
type StorageWriteError struct {
	Key   string
	Cause error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("failed to persist state under %q: %v", e.Key, e.Cause)
}

func (e *StorageWriteError) Unwrap() error {
	return e.Cause
}

// StorageReadError is returned when the state backend cannot be read while
// applying a change. The change is not applied and nothing is written.
type StorageReadError struct {
	Key   string
	Cause error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("failed to read state under %q: %v", e.Key, e.Cause)
}

func (e *StorageReadError) Unwrap() error {
	return e.Cause
}

// GenerationErrorKind distinguishes transport failures from unusable provider output
type GenerationErrorKind string

const (
	GenerationUnavailable GenerationErrorKind = "unavailable"
	GenerationMalformed   GenerationErrorKind = "malformed"
)

// GenerationError represents a failed call to the text-generation provider
type GenerationError struct {
	Kind    GenerationErrorKind
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("generation %s: %s", e.Kind, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Entity Not Found Errors
var (
	ErrTeamNotFound        = &NotFoundError{Entity: "team"}
	ErrPlayerNotFound      = &NotFoundError{Entity: "player"}
	ErrTrainingNotFound    = &NotFoundError{Entity: "training session"}
	ErrMatchNotFound       = &NotFoundError{Entity: "match"}
	ErrSeasonPhaseNotFound = &NotFoundError{Entity: "season phase"}
	ErrChatNotFound        = &NotFoundError{Entity: "chat"}
	ErrTrashItemNotFound   = &NotFoundError{Entity: "trash item"}
	ErrStateNotFound       = &NotFoundError{Entity: "state"}
)

// Business Logic Errors
var (
	ErrInvalidTrashType   = errors.New("invalid trash type")
	ErrEmptyChatMessage   = errors.New("chat message cannot be empty")
	ErrUnknownBackend     = errors.New("unknown state backend")
	ErrQuotaExceeded      = errors.New("storage quota exceeded")
	ErrProviderNotSet     = &ConfigurationError{Message: "GENERATION_ENDPOINT is not configured"}
	ErrStateKeyNotSet     = &ConfigurationError{Message: "STATE_KEY is not configured"}
	ErrRedisURLNotSet     = &ConfigurationError{Message: "REDIS_URL is required for the redis state backend"}
	ErrDatabaseNameNotSet = &ConfigurationError{Message: "database name is required for the postgres state backend"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsStorageWrite checks if an error is a StorageWriteError
func IsStorageWrite(err error) bool {
	var writeErr *StorageWriteError
	return errors.As(err, &writeErr)
}

// IsStorageRead checks if an error is a StorageReadError
func IsStorageRead(err error) bool {
	var readErr *StorageReadError
	return errors.As(err, &readErr)
}

// IsGenerationUnavailable reports whether err is any generation failure.
// Malformed provider output counts as unavailable for callers.
func IsGenerationUnavailable(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsGenerationMalformed reports whether err is a generation failure caused by unusable output
func IsGenerationMalformed(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr) && genErr.Kind == GenerationMalformed
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewStorageWriteError wraps a backend write failure for the given key
func NewStorageWriteError(key string, cause error) error {
	return &StorageWriteError{Key: key, Cause: cause}
}

// NewStorageReadError wraps a backend read failure for the given key
func NewStorageReadError(key string, cause error) error {
	return &StorageReadError{Key: key, Cause: cause}
}

// NewGenerationUnavailableError wraps a transport-level provider failure
func NewGenerationUnavailableError(message string, cause error) error {
	return &GenerationError{Kind: GenerationUnavailable, Message: message, Cause: cause}
}

// NewGenerationMalformedError reports provider output that does not match the expected shape
func NewGenerationMalformedError(message string, cause error) error {
	return &GenerationError{Kind: GenerationMalformed, Message: message, Cause: cause}
}
