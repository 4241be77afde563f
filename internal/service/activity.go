package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/farmsight/server/internal/models"
	"github.com/farmsight/server/internal/repository"
)

// CreateActivity records a farm activity and consumes the referenced
// inventory in one transaction. The farm must belong to the user; consumption
// lines that reference missing, foreign, or under-stocked items abort the
// whole operation.
func (s *DefaultService) CreateActivity(ctx context.Context, userID string, req models.CreateActivityRequest) (*models.Activity, error) {
	farm, err := s.repo.GetFarm(ctx, userID, req.Farm)
	if err != nil {
		return nil, fmt.Errorf("fetching farm: %w", err)
	}
	if farm == nil {
		return nil, ErrNotFound
	}

	activity := &models.Activity{
		FarmID:      req.Farm,
		UserID:      userID,
		Type:        req.Type,
		Description: req.Description,
		Date:        parseActivityDate(req.Date),
		Notes:       req.Notes,
	}
	for _, line := range req.InventoryItems {
		activity.InventoryItems = append(activity.InventoryItems, models.ActivityLine{
			ItemID:   line.Item,
			Quantity: line.Quantity,
			Unit:     line.Unit,
		})
	}

	if err := s.repo.CreateActivity(ctx, activity); err != nil {
		if errors.Is(err, repository.ErrItemUnavailable) {
			return nil, ErrItemUnavailable
		}
		return nil, fmt.Errorf("creating activity: %w", err)
	}

	s.logger.Info("activity created",
		zap.String("activity_id", activity.ID),
		zap.String("farm_id", activity.FarmID),
		zap.String("user_id", userID),
		zap.Int("lines", len(activity.InventoryItems)))

	// Re-read so the response carries resolved items and the farm.
	return s.GetActivity(ctx, userID, activity.ID)
}

func (s *DefaultService) GetActivity(ctx context.Context, userID, activityID string) (*models.Activity, error) {
	activity, err := s.repo.GetActivity(ctx, userID, activityID)
	if err != nil {
		return nil, fmt.Errorf("fetching activity: %w", err)
	}
	if activity == nil {
		return nil, ErrNotFound
	}

	return activity, nil
}

func (s *DefaultService) ListFarmActivities(ctx context.Context, userID, farmID string) ([]models.Activity, error) {
	farm, err := s.repo.GetFarm(ctx, userID, farmID)
	if err != nil {
		return nil, fmt.Errorf("fetching farm: %w", err)
	}
	if farm == nil {
		return nil, ErrNotFound
	}

	activities, err := s.repo.GetFarmActivities(ctx, userID, farmID)
	if err != nil {
		return nil, fmt.Errorf("listing farm activities: %w", err)
	}

	return activities, nil
}

func (s *DefaultService) ListActivities(ctx context.Context, userID string) ([]models.Activity, error) {
	activities, err := s.repo.GetUserActivities(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}

	return activities, nil
}

// UpdateActivityStatus changes the status label only. Inventory is not
// re-adjusted when an activity is cancelled.
func (s *DefaultService) UpdateActivityStatus(ctx context.Context, userID, activityID string, req models.UpdateActivityStatusRequest) (*models.Activity, error) {
	activity, err := s.repo.UpdateActivityStatus(ctx, userID, activityID, req.Status)
	if err != nil {
		return nil, fmt.Errorf("updating activity status: %w", err)
	}
	if activity == nil {
		return nil, ErrNotFound
	}

	return activity, nil
}

// parseActivityDate accepts RFC 3339 timestamps or plain dates, defaulting to
// the current time when absent or unparseable.
func parseActivityDate(raw string) time.Time {
	if raw == "" {
		return time.Now().UTC()
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC()
	}
	return time.Now().UTC()
}
