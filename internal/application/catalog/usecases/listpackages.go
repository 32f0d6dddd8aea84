package usecases

import (
	"context"
	"fmt"

	"caterly/internal/domain/catalog"
	"caterly/internal/shared/logger"
)

type ListPackagesUseCase struct {
	packageRepo catalog.PackageRepository
	logger      logger.Interface
}

func NewListPackagesUseCase(packageRepo catalog.PackageRepository, logger logger.Interface) *ListPackagesUseCase {
	return &ListPackagesUseCase{
		packageRepo: packageRepo,
		logger:      logger,
	}
}

func (uc *ListPackagesUseCase) Execute(ctx context.Context, catererID uint, filter catalog.PackageFilter) ([]*catalog.Package, error) {
	packages, err := uc.packageRepo.ListOwned(ctx, catererID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	return packages, nil
}
