package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caterly/internal/application/catalog/usecases"
	"caterly/internal/domain/catalog"
	"caterly/internal/shared/logger"
	"caterly/internal/shared/utils"
)

type PackageItemHandler struct {
	createItemUC *usecases.CreatePackageItemUseCase
	listItemsUC  *usecases.ListPackageItemsUseCase
	getItemUC    *usecases.GetPackageItemUseCase
	updateItemUC *usecases.UpdatePackageItemUseCase
	deleteItemUC *usecases.DeletePackageItemUseCase
	logger       logger.Interface
}

func NewPackageItemHandler(
	createItemUC *usecases.CreatePackageItemUseCase,
	listItemsUC *usecases.ListPackageItemsUseCase,
	getItemUC *usecases.GetPackageItemUseCase,
	updateItemUC *usecases.UpdatePackageItemUseCase,
	deleteItemUC *usecases.DeletePackageItemUseCase,
	logger logger.Interface,
) *PackageItemHandler {
	return &PackageItemHandler{
		createItemUC: createItemUC,
		listItemsUC:  listItemsUC,
		getItemUC:    getItemUC,
		updateItemUC: updateItemUC,
		deleteItemUC: deleteItemUC,
		logger:       logger,
	}
}

type CreatePackageItemRequest struct {
	DishID    uint  `json:"dish_id" binding:"required"`
	PackageID *uint `json:"package_id"`
	Quantity  *int  `json:"quantity" binding:"omitempty,gt=0"`
}

type UpdatePackageItemRequest struct {
	DishID   *uint `json:"dish_id"`
	Quantity *int  `json:"quantity" binding:"omitempty,gt=0"`
}

func (h *PackageItemHandler) Create(c *gin.Context) {
	catererID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreatePackageItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create package item", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreatePackageItemCommand{
		CatererID: catererID,
		DishID:    req.DishID,
		PackageID: req.PackageID,
		Quantity:  req.Quantity,
	}

	item, err := h.createItemUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, item, "Package item created successfully")
}

func (h *PackageItemHandler) List(c *gin.Context) {
	catererID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var filter catalog.PackageItemFilter

	if v, ok, err := utils.ParseUintQuery(c, "package_id"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	} else if ok {
		filter.PackageID = &v
	}

	if v, ok, err := utils.ParseUintQuery(c, "dish_id"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	} else if ok {
		filter.DishID = &v
	}

	if v, ok, err := utils.ParseBoolQuery(c, "draft_only"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	} else if ok {
		filter.DraftOnly = v
	}

	items, err := h.listItemsUC.Execute(c.Request.Context(), catererID, filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func (h *PackageItemHandler) Get(c *gin.Context) {
	catererID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "package item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	item, err := h.getItemUC.Execute(c.Request.Context(), id, catererID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", item)
}

func (h *PackageItemHandler) Update(c *gin.Context) {
	catererID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "package item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePackageItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update package item", "item_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	update := catalog.PackageItemUpdate{
		DishID:   req.DishID,
		Quantity: req.Quantity,
	}

	item, err := h.updateItemUC.Execute(c.Request.Context(), id, catererID, update)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Package item updated successfully", item)
}

func (h *PackageItemHandler) Delete(c *gin.Context) {
	catererID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "package item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteItemUC.Execute(c.Request.Context(), id, catererID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Package item deleted successfully", nil)
}
