package service

import (
	"context"
	"fmt"

	"github.com/farmsight/server/internal/models"
)

func (s *DefaultService) CreateSupplier(ctx context.Context, userID string, req models.CreateSupplierRequest) (*models.Supplier, error) {
	supplier := &models.Supplier{
		UserID:  userID,
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
		Address: req.Address,
	}

	if err := s.repo.CreateSupplier(ctx, supplier); err != nil {
		return nil, fmt.Errorf("creating supplier: %w", err)
	}

	return supplier, nil
}

func (s *DefaultService) GetSupplier(ctx context.Context, userID, supplierID string) (*models.Supplier, error) {
	supplier, err := s.repo.GetSupplier(ctx, userID, supplierID)
	if err != nil {
		return nil, fmt.Errorf("fetching supplier: %w", err)
	}
	if supplier == nil {
		return nil, ErrNotFound
	}

	return supplier, nil
}

func (s *DefaultService) ListSuppliers(ctx context.Context, userID string) ([]models.Supplier, error) {
	suppliers, err := s.repo.GetUserSuppliers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing suppliers: %w", err)
	}

	return suppliers, nil
}

func (s *DefaultService) UpdateSupplier(ctx context.Context, userID, supplierID string, req models.UpdateSupplierRequest) (*models.Supplier, error) {
	supplier, err := s.repo.GetSupplier(ctx, userID, supplierID)
	if err != nil {
		return nil, fmt.Errorf("fetching supplier: %w", err)
	}
	if supplier == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Contact != nil {
		supplier.Contact = *req.Contact
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}

	if err := s.repo.UpdateSupplier(ctx, supplier); err != nil {
		return nil, fmt.Errorf("updating supplier: %w", err)
	}

	return supplier, nil
}

func (s *DefaultService) DeleteSupplier(ctx context.Context, userID, supplierID string) error {
	supplier, err := s.repo.GetSupplier(ctx, userID, supplierID)
	if err != nil {
		return fmt.Errorf("fetching supplier: %w", err)
	}
	if supplier == nil {
		return ErrNotFound
	}

	if err := s.repo.DeleteSupplier(ctx, userID, supplierID); err != nil {
		return fmt.Errorf("deleting supplier: %w", err)
	}

	return nil
}
