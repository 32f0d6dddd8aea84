package usecases

import (
	"context"
	"fmt"

	"caterly/internal/domain/metadata"
	"caterly/internal/shared/errors"
)

// TransactionRunner runs a function inside a database transaction.
// Repository calls made with the given context join that transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// validateDishRefs checks that every lookup reference on a dish resolves,
// and that the subcategory belongs to the stated category.
func validateDishRefs(ctx context.Context, metaRepo metadata.Repository, cuisineTypeID, categoryID, subCategoryID uint) error {
	ok, err := metaRepo.CuisineTypeExists(ctx, cuisineTypeID)
	if err != nil {
		return fmt.Errorf("failed to check cuisine type: %w", err)
	}
	if !ok {
		return errors.NewInvalidReferenceError("cuisine type")
	}

	ok, err = metaRepo.CategoryExists(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to check category: %w", err)
	}
	if !ok {
		return errors.NewInvalidReferenceError("category")
	}

	subCategory, err := metaRepo.GetSubCategory(ctx, subCategoryID)
	if err != nil {
		return fmt.Errorf("failed to check subcategory: %w", err)
	}
	if subCategory == nil {
		return errors.NewInvalidReferenceError("subcategory")
	}
	if subCategory.CategoryID != categoryID {
		return errors.NewValidationError("subcategory does not belong to the given category")
	}

	return nil
}

// validatePackageTypeRef checks that the package type reference resolves.
func validatePackageTypeRef(ctx context.Context, metaRepo metadata.Repository, packageTypeID uint) error {
	ok, err := metaRepo.PackageTypeExists(ctx, packageTypeID)
	if err != nil {
		return fmt.Errorf("failed to check package type: %w", err)
	}
	if !ok {
		return errors.NewInvalidReferenceError("package type")
	}

	return nil
}
