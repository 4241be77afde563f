package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/farmsight/server/internal/models"
)

func (s *DefaultService) CreateFarm(ctx context.Context, userID string, req models.CreateFarmRequest) (*models.Farm, error) {
	farm := &models.Farm{
		UserID:      userID,
		Name:        req.Name,
		Area:        req.Area,
		City:        req.City,
		CropType:    req.CropType,
		Pesticides:  req.Pesticides,
		WaterStatus: req.WaterStatus,
	}

	if err := s.repo.CreateFarm(ctx, farm); err != nil {
		return nil, fmt.Errorf("creating farm: %w", err)
	}

	s.logger.Info("farm created", zap.String("farm_id", farm.ID), zap.String("user_id", userID))

	return farm, nil
}

func (s *DefaultService) GetFarm(ctx context.Context, userID, farmID string) (*models.Farm, error) {
	farm, err := s.repo.GetFarm(ctx, userID, farmID)
	if err != nil {
		return nil, fmt.Errorf("fetching farm: %w", err)
	}
	if farm == nil {
		return nil, ErrNotFound
	}

	return farm, nil
}

func (s *DefaultService) ListFarms(ctx context.Context, userID string) ([]models.Farm, error) {
	farms, err := s.repo.GetUserFarms(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing farms: %w", err)
	}

	return farms, nil
}

// UpdateFarm applies the supplied fields over the stored farm, leaving the
// rest untouched.
func (s *DefaultService) UpdateFarm(ctx context.Context, userID, farmID string, req models.UpdateFarmRequest) (*models.Farm, error) {
	farm, err := s.repo.GetFarm(ctx, userID, farmID)
	if err != nil {
		return nil, fmt.Errorf("fetching farm: %w", err)
	}
	if farm == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		farm.Name = *req.Name
	}
	if req.Area != nil {
		farm.Area = *req.Area
	}
	if req.City != nil {
		farm.City = *req.City
	}
	if req.CropType != nil {
		farm.CropType = *req.CropType
	}
	if req.Pesticides != nil {
		farm.Pesticides = *req.Pesticides
	}
	if req.WaterStatus != nil {
		farm.WaterStatus = req.WaterStatus
	}

	if err := s.repo.UpdateFarm(ctx, farm); err != nil {
		return nil, fmt.Errorf("updating farm: %w", err)
	}

	return farm, nil
}

// DeleteFarm removes the farm along with its activities and item links.
func (s *DefaultService) DeleteFarm(ctx context.Context, userID, farmID string) error {
	farm, err := s.repo.GetFarm(ctx, userID, farmID)
	if err != nil {
		return fmt.Errorf("fetching farm: %w", err)
	}
	if farm == nil {
		return ErrNotFound
	}

	if err := s.repo.DeleteFarm(ctx, userID, farmID); err != nil {
		return fmt.Errorf("deleting farm: %w", err)
	}

	s.logger.Info("farm deleted", zap.String("farm_id", farmID), zap.String("user_id", userID))

	return nil
}
