package service

import (
	"context"
	"slices"

	"coach-planner-backend/internal/database/models"
	apperrors "coach-planner-backend/internal/errors"
	"coach-planner-backend/internal/logger"
)

// TrashEntityRequest drops an entity into the trash by type and id alone
type TrashEntityRequest struct {
	Type models.TrashType `json:"type" validate:"required,trashtype"`
	ID   string           `json:"id" validate:"required"`
}

// RestoreResult describes the outcome of a restore. Restored is false when
// the origin team no longer exists and the item was only dropped.
type RestoreResult struct {
	Item     models.TrashItem `json:"item"`
	Restored bool             `json:"restored"`
}

// ListTrash returns trash items in deletion order
func (s *StateService) ListTrash(ctx context.Context) ([]models.TrashItem, error) {
	return s.loadOrDefault(ctx).Trash, nil
}

// RestoreTrashItem moves the snapshot back into its collection: a team goes
// to the end of the team list, other entities to the end of their origin
// team's collection. When the origin team is gone the item is removed and
// nothing is inserted. An unknown item id is a no-op and returns nil.
func (s *StateService) RestoreTrashItem(ctx context.Context, itemID string) (*RestoreResult, error) {
	var result *RestoreResult
	err := s.mutate(ctx, "restore_trash_item", func(state *models.AppState) bool {
		idx := state.TrashIndex(itemID)
		if idx < 0 {
			return false
		}
		item := state.Trash[idx]
		state.Trash = slices.Delete(state.Trash, idx, idx+1)
		result = &RestoreResult{Item: item, Restored: restoreInto(state, item)}
		return true
	})
	if err != nil {
		return nil, err
	}

	if result != nil && !result.Restored {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"trash_item_id":  itemID,
			"type":           result.Item.Type,
			"origin_team_id": result.Item.OriginTeamID,
		}).Warn("origin team no longer exists, trash item dropped without restoring")
	}
	return result, nil
}

func restoreInto(state *models.AppState, item models.TrashItem) bool {
	if item.Type == models.TrashTypeTeam {
		if item.Team == nil {
			return false
		}
		state.Teams = append(state.Teams, item.Team.Clone())
		return true
	}

	team := state.Team(item.OriginTeamID)
	if team == nil {
		return false
	}
	switch item.Type {
	case models.TrashTypePlayer:
		if item.Player == nil {
			return false
		}
		team.Players = append(team.Players, *item.Player)
	case models.TrashTypeTraining:
		if item.Training == nil {
			return false
		}
		team.Trainings = append(team.Trainings, *item.Training)
	case models.TrashTypeMatch:
		if item.Match == nil {
			return false
		}
		team.Matches = append(team.Matches, *item.Match)
	default:
		return false
	}
	return true
}

// PermanentDelete erases a trash item. It reports whether an item was removed.
func (s *StateService) PermanentDelete(ctx context.Context, itemID string) (bool, error) {
	var removed bool
	err := s.mutate(ctx, "permanent_delete", func(state *models.AppState) bool {
		idx := state.TrashIndex(itemID)
		if idx < 0 {
			return false
		}
		state.Trash = slices.Delete(state.Trash, idx, idx+1)
		removed = true
		return true
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// ClearTrash erases every trash item. Clearing an empty trash changes nothing.
func (s *StateService) ClearTrash(ctx context.Context) error {
	return s.mutate(ctx, "clear_trash", func(state *models.AppState) bool {
		if len(state.Trash) == 0 {
			return false
		}
		state.Trash = []models.TrashItem{}
		return true
	})
}

// TrashEntity moves the entity of the given type and id to the trash. For
// children the owning team is found by scanning every team. An entity that
// cannot be found is a no-op and returns nil.
func (s *StateService) TrashEntity(ctx context.Context, req *TrashEntityRequest) (*models.TrashItem, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var trashed *models.TrashItem
	err := s.mutate(ctx, "trash_"+string(req.Type), func(state *models.AppState) bool {
		switch req.Type {
		case models.TrashTypeTeam:
			trashed = s.trashTeam(state, req.ID)
		case models.TrashTypePlayer:
			trashed = s.trashPlayer(state, state.FindOwner(req.Type, req.ID), req.ID)
		case models.TrashTypeTraining:
			trashed = s.trashTraining(state, state.FindOwner(req.Type, req.ID), req.ID)
		case models.TrashTypeMatch:
			trashed = s.trashMatch(state, state.FindOwner(req.Type, req.ID), req.ID)
		}
		return trashed != nil
	})
	if err != nil {
		return nil, err
	}
	return trashed, nil
}

// GetTrashItem returns a single trash item
func (s *StateService) GetTrashItem(ctx context.Context, itemID string) (*models.TrashItem, error) {
	state := s.loadOrDefault(ctx)
	idx := state.TrashIndex(itemID)
	if idx < 0 {
		return nil, apperrors.ErrTrashItemNotFound
	}
	item := state.Trash[idx]
	return &item, nil
}
