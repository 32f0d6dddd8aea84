package usecases

import (
	"context"
	"fmt"

	"caterly/internal/domain/catalog"
	"caterly/internal/domain/metadata"
	"caterly/internal/shared/constants"
	"caterly/internal/shared/logger"
)

type CreatePackageCommand struct {
	CatererID     uint
	PackageTypeID uint
	Name          string
	Description   string
	ImageURL      string
	PeopleCount   int
	TotalPrice    float64
	Currency      string
	IsActive      *bool
	IsAvailable   *bool
}

type CreatePackageUseCase struct {
	packageRepo catalog.PackageRepository
	metaRepo    metadata.Repository
	logger      logger.Interface
}

func NewCreatePackageUseCase(
	packageRepo catalog.PackageRepository,
	metaRepo metadata.Repository,
	logger logger.Interface,
) *CreatePackageUseCase {
	return &CreatePackageUseCase{
		packageRepo: packageRepo,
		metaRepo:    metaRepo,
		logger:      logger,
	}
}

func (uc *CreatePackageUseCase) Execute(ctx context.Context, cmd CreatePackageCommand) (*catalog.Package, error) {
	if err := validatePackageTypeRef(ctx, uc.metaRepo, cmd.PackageTypeID); err != nil {
		return nil, err
	}

	pkg := &catalog.Package{
		CatererID:     cmd.CatererID,
		PackageTypeID: cmd.PackageTypeID,
		Name:          cmd.Name,
		Description:   cmd.Description,
		ImageURL:      cmd.ImageURL,
		PeopleCount:   cmd.PeopleCount,
		TotalPrice:    cmd.TotalPrice,
		Currency:      cmd.Currency,
		IsActive:      true,
		IsAvailable:   true,
	}
	if pkg.Currency == "" {
		pkg.Currency = constants.DefaultCurrency
	}
	if cmd.IsActive != nil {
		pkg.IsActive = *cmd.IsActive
	}
	if cmd.IsAvailable != nil {
		pkg.IsAvailable = *cmd.IsAvailable
	}

	if err := uc.packageRepo.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("failed to create package: %w", err)
	}

	return pkg, nil
}
