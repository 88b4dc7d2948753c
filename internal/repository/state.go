package repository

import (
	"context"
	"errors"
	"fmt"

	"coach-planner-backend/internal/database/models"
	apperrors "coach-planner-backend/internal/errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateRepository stores state documents in the app_states table
type StateRepository struct {
	db *gorm.DB
}

// Ensure StateRepository implements StateRepositoryInterface
var _ StateRepositoryInterface = (*StateRepository)(nil)

// NewStateRepository creates a new postgres-backed state repository
func NewStateRepository(db *gorm.DB) *StateRepository {
	return &StateRepository{db: db}
}

// Read retrieves the document stored under key
func (r *StateRepository) Read(ctx context.Context, key string) ([]byte, error) {
	var blob models.StateBlob
	err := r.db.WithContext(ctx).First(&blob, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStateNotFound
		}
		return nil, err
	}
	return blob.Data, nil
}

// Write upserts the document stored under key
func (r *StateRepository) Write(ctx context.Context, key string, data []byte) error {
	blob := &models.StateBlob{
		Key:  key,
		Data: datatypes.JSON(data),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(blob).Error
}

// Ping checks the database connection
func (r *StateRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
