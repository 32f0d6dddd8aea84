// Package metadata exposes read-only lookup-table listings.
package metadata

import (
	"context"
	"fmt"

	domain "caterly/internal/domain/metadata"
	"caterly/internal/shared/logger"
)

// Service wraps the lookup repository. All listings are global reference
// data sorted by name; no tenant scoping applies.
type Service struct {
	repo   domain.Repository
	logger logger.Interface
}

func NewService(repo domain.Repository, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ListCuisineTypes(ctx context.Context) ([]*domain.CuisineType, error) {
	rows, err := s.repo.ListCuisineTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cuisine types: %w", err)
	}
	return rows, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	rows, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return rows, nil
}

func (s *Service) ListSubCategories(ctx context.Context, categoryID *uint) ([]*domain.SubCategory, error) {
	rows, err := s.repo.ListSubCategories(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}
	return rows, nil
}

func (s *Service) ListFreeForms(ctx context.Context) ([]*domain.FreeForm, error) {
	rows, err := s.repo.ListFreeForms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list free forms: %w", err)
	}
	return rows, nil
}

func (s *Service) ListPackageTypes(ctx context.Context) ([]*domain.PackageType, error) {
	rows, err := s.repo.ListPackageTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list package types: %w", err)
	}
	return rows, nil
}
