package usecases

import (
	"context"
	"fmt"

	"caterly/internal/domain/catalog"
	"caterly/internal/domain/metadata"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

type UpdatePackageUseCase struct {
	packageRepo catalog.PackageRepository
	metaRepo    metadata.Repository
	logger      logger.Interface
}

func NewUpdatePackageUseCase(
	packageRepo catalog.PackageRepository,
	metaRepo metadata.Repository,
	logger logger.Interface,
) *UpdatePackageUseCase {
	return &UpdatePackageUseCase{
		packageRepo: packageRepo,
		metaRepo:    metaRepo,
		logger:      logger,
	}
}

func (uc *UpdatePackageUseCase) Execute(ctx context.Context, id, catererID uint, update catalog.PackageUpdate) (*catalog.Package, error) {
	existing, err := uc.packageRepo.GetOwned(ctx, id, catererID)
	if err != nil {
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("package not found")
	}

	if update.PackageTypeID != nil {
		if err := validatePackageTypeRef(ctx, uc.metaRepo, *update.PackageTypeID); err != nil {
			return nil, err
		}
	}

	if err := uc.packageRepo.UpdateOwned(ctx, id, catererID, update); err != nil {
		return nil, fmt.Errorf("failed to update package: %w", err)
	}

	updated, err := uc.packageRepo.GetOwned(ctx, id, catererID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload package: %w", err)
	}
	if updated == nil {
		return nil, errors.NewNotFoundError("package not found")
	}

	return updated, nil
}
