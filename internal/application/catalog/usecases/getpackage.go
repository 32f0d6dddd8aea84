package usecases

import (
	"context"
	"fmt"

	"caterly/internal/domain/catalog"
	"caterly/internal/shared/errors"
	"caterly/internal/shared/logger"
)

type GetPackageUseCase struct {
	packageRepo catalog.PackageRepository
	logger      logger.Interface
}

func NewGetPackageUseCase(packageRepo catalog.PackageRepository, logger logger.Interface) *GetPackageUseCase {
	return &GetPackageUseCase{
		packageRepo: packageRepo,
		logger:      logger,
	}
}

// Execute returns an owned package with its items preloaded.
func (uc *GetPackageUseCase) Execute(ctx context.Context, id, catererID uint) (*catalog.Package, error) {
	pkg, err := uc.packageRepo.GetOwnedWithItems(ctx, id, catererID)
	if err != nil {
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	if pkg == nil {
		return nil, errors.NewNotFoundError("package not found")
	}

	return pkg, nil
}
