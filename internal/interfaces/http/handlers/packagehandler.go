package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caterly/internal/application/catalog/usecases"
	"caterly/internal/domain/catalog"
	"caterly/internal/shared/logger"
	"caterly/internal/shared/utils"
)

type PackageHandler struct {
	createPackageUC    *usecases.CreatePackageUseCase
	listPackagesUC     *usecases.ListPackagesUseCase
	getPackageUC       *usecases.GetPackageUseCase
	updatePackageUC    *usecases.UpdatePackageUseCase
	linkPackageItemsUC *usecases.LinkPackageItemsUseCase
	logger             logger.Interface
}

func NewPackageHandler(
	createPackageUC *usecases.CreatePackageUseCase,
	listPackagesUC *usecases.ListPackagesUseCase,
	getPackageUC *usecases.GetPackageUseCase,
	updatePackageUC *usecases.UpdatePackageUseCase,
	linkPackageItemsUC *usecases.LinkPackageItemsUseCase,
	logger logger.Interface,
) *PackageHandler {
	return &PackageHandler{
		createPackageUC:    createPackageUC,
		listPackagesUC:     listPackagesUC,
		getPackageUC:       getPackageUC,
		updatePackageUC:    updatePackageUC,
		linkPackageItemsUC: linkPackageItemsUC,
		logger:             logger,
	}
}

type CreatePackageRequest struct {
	PackageTypeID uint    `json:"package_type_id" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"image_url"`
	PeopleCount   int     `json:"people_count" binding:"required,gt=0"`
	TotalPrice    float64 `json:"total_price" binding:"required,gt=0"`
	Currency      string  `json:"currency"`
	IsActive      *bool   `json:"is_active"`
	IsAvailable   *bool   `json:"is_available"`
}

type UpdatePackageRequest struct {
	PackageTypeID *uint    `json:"package_type_id"`
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	ImageURL      *string  `json:"image_url"`
	PeopleCount   *int     `json:"people_count" binding:"omitempty,gt=0"`
	TotalPrice    *float64 `json:"total_price" binding:"omitempty,gt=0"`
	Currency      *string  `json:"currency"`
	IsActive      *bool    `json:"is_active"`
	IsAvailable   *bool    `json:"is_available"`
	Rating        *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
}

type LinkPackageItemsRequest struct {
	ItemIDs []uint `json:"item_ids" binding:"required,min=1"`
}

func (h *PackageHandler) Create(c *gin.Context) {
	catererID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create package", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreatePackageCommand{
		CatererID:     catererID,
		PackageTypeID: req.PackageTypeID,
		Name:          req.Name,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		PeopleCount:   req.PeopleCount,
		TotalPrice:    req.TotalPrice,
		Currency:      req.Currency,
		IsActive:      req.IsActive,
		IsAvailable:   req.IsAvailable,
	}

	pkg, err := h.createPackageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, pkg, "Package created successfully")
}

func (h *PackageHandler) List(c *gin.Context) {
	catererID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filter, err := parsePackageFilter(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	packages, err := h.listPackagesUC.Execute(c.Request.Context(), catererID, filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", packages)
}

func (h *PackageHandler) Get(c *gin.Context) {
	catererID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "package")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pkg, err := h.getPackageUC.Execute(c.Request.Context(), id, catererID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", pkg)
}

func (h *PackageHandler) Update(c *gin.Context) {
	catererID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "package")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update package", "package_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	update := catalog.PackageUpdate{
		PackageTypeID: req.PackageTypeID,
		Name:          req.Name,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		PeopleCount:   req.PeopleCount,
		TotalPrice:    req.TotalPrice,
		Currency:      req.Currency,
		IsActive:      req.IsActive,
		IsAvailable:   req.IsAvailable,
		Rating:        req.Rating,
	}

	pkg, err := h.updatePackageUC.Execute(c.Request.Context(), id, catererID, update)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Package updated successfully", pkg)
}

// LinkItems attaches a batch of draft items to the package. The operation
// is all-or-nothing; a single unknown or foreign item ID fails the batch.
func (h *PackageHandler) LinkItems(c *gin.Context) {
	catererID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "package")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req LinkPackageItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for link package items", "package_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.LinkPackageItemsCommand{
		PackageID: id,
		ItemIDs:   req.ItemIDs,
		CatererID: catererID,
	}

	if err := h.linkPackageItemsUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Package items linked successfully", nil)
}

func parsePackageFilter(c *gin.Context) (catalog.PackageFilter, error) {
	var filter catalog.PackageFilter

	if v, ok, err := utils.ParseUintQuery(c, "package_type_id"); err != nil {
		return filter, err
	} else if ok {
		filter.PackageTypeID = &v
	}

	if v, ok, err := utils.ParseBoolQuery(c, "is_active"); err != nil {
		return filter, err
	} else if ok {
		filter.IsActive = &v
	}

	if v, ok, err := utils.ParseBoolQuery(c, "is_available"); err != nil {
		return filter, err
	} else if ok {
		filter.IsAvailable = &v
	}

	return filter, nil
}
