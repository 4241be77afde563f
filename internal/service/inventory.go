package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/farmsight/server/internal/models"
	"github.com/farmsight/server/internal/repository"
)

// ownedFarms verifies every farm id belongs to the user before it is linked
// to an inventory item.
func (s *DefaultService) ownedFarms(ctx context.Context, userID string, farmIDs []string) error {
	for _, farmID := range farmIDs {
		farm, err := s.repo.GetFarm(ctx, userID, farmID)
		if err != nil {
			return fmt.Errorf("fetching farm: %w", err)
		}
		if farm == nil {
			return ErrUnknownFarm
		}
	}
	return nil
}

func (s *DefaultService) CreateInventoryItem(ctx context.Context, userID string, req models.CreateInventoryItemRequest) (*models.InventoryItem, error) {
	if err := s.ownedFarms(ctx, userID, req.Farms); err != nil {
		return nil, err
	}

	item := &models.InventoryItem{
		UserID:            userID,
		Name:              req.Name,
		Description:       req.Description,
		Category:          req.Category,
		Quantity:          *req.Quantity,
		Unit:              req.Unit,
		Price:             *req.Price,
		Supplier:          req.Supplier,
		StockLevel:        req.StockLevel,
		MinimumStockLevel: req.MinimumStockLevel,
	}

	if err := s.repo.CreateInventoryItem(ctx, item, req.Farms); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateItem
		}
		if errors.Is(err, repository.ErrFarmUnavailable) {
			return nil, ErrUnknownFarm
		}
		return nil, fmt.Errorf("creating inventory item: %w", err)
	}

	s.logger.Info("inventory item created",
		zap.String("item_id", item.ID), zap.String("user_id", userID))

	return item, nil
}

func (s *DefaultService) GetInventoryItem(ctx context.Context, userID, itemID string) (*models.InventoryItem, error) {
	item, err := s.repo.GetInventoryItem(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("fetching inventory item: %w", err)
	}
	if item == nil {
		return nil, ErrNotFound
	}

	return item, nil
}

func (s *DefaultService) ListInventory(ctx context.Context, userID string) ([]models.InventoryItem, error) {
	items, err := s.repo.GetUserInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing inventory: %w", err)
	}

	return items, nil
}

// ListFarmInventory returns in-stock items associated with the farm. The farm
// must belong to the user.
func (s *DefaultService) ListFarmInventory(ctx context.Context, userID, farmID string) ([]models.InventoryItem, error) {
	farm, err := s.repo.GetFarm(ctx, userID, farmID)
	if err != nil {
		return nil, fmt.Errorf("fetching farm: %w", err)
	}
	if farm == nil {
		return nil, ErrNotFound
	}

	items, err := s.repo.GetFarmInventory(ctx, userID, farmID)
	if err != nil {
		return nil, fmt.Errorf("listing farm inventory: %w", err)
	}

	return items, nil
}

func (s *DefaultService) UpdateInventoryItem(ctx context.Context, userID, itemID string, req models.UpdateInventoryItemRequest) (*models.InventoryItem, error) {
	item, err := s.repo.GetInventoryItem(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("fetching inventory item: %w", err)
	}
	if item == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Supplier != nil {
		item.Supplier = *req.Supplier
	}
	if req.StockLevel != nil {
		item.StockLevel = *req.StockLevel
	}
	if req.MinimumStockLevel != nil {
		item.MinimumStockLevel = *req.MinimumStockLevel
	}

	farmIDs := []string(item.Farms)
	if req.Farms != nil {
		farmIDs = *req.Farms
		if err := s.ownedFarms(ctx, userID, farmIDs); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateInventoryItem(ctx, item, farmIDs); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateItem
		}
		if errors.Is(err, repository.ErrFarmUnavailable) {
			return nil, ErrUnknownFarm
		}
		return nil, fmt.Errorf("updating inventory item: %w", err)
	}

	return item, nil
}

func (s *DefaultService) DeleteInventoryItem(ctx context.Context, userID, itemID string) error {
	item, err := s.repo.GetInventoryItem(ctx, userID, itemID)
	if err != nil {
		return fmt.Errorf("fetching inventory item: %w", err)
	}
	if item == nil {
		return ErrNotFound
	}

	if err := s.repo.DeleteInventoryItem(ctx, userID, itemID); err != nil {
		if errors.Is(err, repository.ErrReferenced) {
			return ErrItemInUse
		}
		return fmt.Errorf("deleting inventory item: %w", err)
	}

	s.logger.Info("inventory item deleted",
		zap.String("item_id", itemID), zap.String("user_id", userID))

	return nil
}
