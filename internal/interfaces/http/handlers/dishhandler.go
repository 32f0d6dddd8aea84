package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"caterly/internal/application/catalog/usecases"
	"caterly/internal/domain/catalog"
	"caterly/internal/infrastructure/storage"
	"caterly/internal/shared/logger"
	"caterly/internal/shared/utils"
)

type DishHandler struct {
	createDishUC createDishUseCase
	listDishesUC listDishesUseCase
	getDishUC    getDishUseCase
	updateDishUC updateDishUseCase
	deleteDishUC deleteDishUseCase
	uploader     storage.ImageUploader
	logger       logger.Interface
}

func NewDishHandler(
	createDishUC createDishUseCase,
	listDishesUC listDishesUseCase,
	getDishUC getDishUseCase,
	updateDishUC updateDishUseCase,
	deleteDishUC deleteDishUseCase,
	uploader storage.ImageUploader,
	logger logger.Interface,
) *DishHandler {
	return &DishHandler{
		createDishUC: createDishUC,
		listDishesUC: listDishesUC,
		getDishUC:    getDishUC,
		updateDishUC: updateDishUC,
		deleteDishUC: deleteDishUC,
		uploader:     uploader,
		logger:       logger,
	}
}

type CreateDishRequest struct {
	CuisineTypeID uint    `json:"cuisine_type_id" form:"cuisine_type_id" binding:"required"`
	CategoryID    uint    `json:"category_id" form:"category_id" binding:"required"`
	SubCategoryID uint    `json:"sub_category_id" form:"sub_category_id" binding:"required"`
	Name          string  `json:"name" form:"name" binding:"required"`
	Description   string  `json:"description" form:"description"`
	ImageURL      string  `json:"image_url" form:"image_url"`
	Price         float64 `json:"price" form:"price" binding:"required,gt=0"`
	Currency      string  `json:"currency" form:"currency"`
	Quantity      *int    `json:"quantity" form:"quantity" binding:"omitempty,gte=0"`
	Pieces        *int    `json:"pieces" form:"pieces" binding:"omitempty,gt=0"`
	IsActive      *bool   `json:"is_active" form:"is_active"`
}

type UpdateDishRequest struct {
	CuisineTypeID *uint    `json:"cuisine_type_id"`
	CategoryID    *uint    `json:"category_id"`
	SubCategoryID *uint    `json:"sub_category_id"`
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	ImageURL      *string  `json:"image_url"`
	Price         *float64 `json:"price" binding:"omitempty,gt=0"`
	Currency      *string  `json:"currency"`
	Quantity      *int     `json:"quantity" binding:"omitempty,gte=0"`
	Pieces        *int     `json:"pieces" binding:"omitempty,gt=0"`
	IsActive      *bool    `json:"is_active"`
}

// Create accepts either a JSON body or a multipart form. The multipart
// form may carry an `image` file which is pushed through the upload gate
// before the dish is stored.
func (h *DishHandler) Create(c *gin.Context) {
	catererID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateDishRequest
	imageURL := ""

	if isMultipart(c) {
		if err := c.ShouldBind(&req); err != nil {
			h.logger.Warnw("invalid multipart form for create dish", "error", err)
			utils.ErrorResponseWithError(c, err)
			return
		}

		if fileHeader, err := c.FormFile("image"); err == nil {
			url, err := h.uploader.Upload(c.Request.Context(), fileHeader)
			if err != nil {
				h.logger.Warnw("dish image upload failed", "error", err)
				utils.ErrorResponseWithError(c, err)
				return
			}
			imageURL = url
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for create dish", "error", err)
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	if imageURL == "" {
		imageURL = req.ImageURL
	}

	cmd := usecases.CreateDishCommand{
		CatererID:     catererID,
		CuisineTypeID: req.CuisineTypeID,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
		Name:          req.Name,
		Description:   req.Description,
		ImageURL:      imageURL,
		Price:         req.Price,
		Currency:      req.Currency,
		Quantity:      req.Quantity,
		Pieces:        req.Pieces,
		IsActive:      req.IsActive,
	}

	dish, err := h.createDishUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dish, "Dish created successfully")
}

func (h *DishHandler) List(c *gin.Context) {
	catererID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filter, err := parseDishFilter(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dishes, err := h.listDishesUC.Execute(c.Request.Context(), catererID, filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dishes)
}

func (h *DishHandler) Get(c *gin.Context) {
	catererID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "dish")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dish, err := h.getDishUC.Execute(c.Request.Context(), id, catererID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dish)
}

func (h *DishHandler) Update(c *gin.Context) {
	catererID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "dish")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update dish", "dish_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	update := catalog.DishUpdate{
		CuisineTypeID: req.CuisineTypeID,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
		Name:          req.Name,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Price:         req.Price,
		Currency:      req.Currency,
		Quantity:      req.Quantity,
		Pieces:        req.Pieces,
		IsActive:      req.IsActive,
	}

	dish, err := h.updateDishUC.Execute(c.Request.Context(), id, catererID, update)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dish updated successfully", dish)
}

func (h *DishHandler) Delete(c *gin.Context) {
	catererID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "dish")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteDishUC.Execute(c.Request.Context(), id, catererID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dish deleted successfully", nil)
}

func parseDishFilter(c *gin.Context) (catalog.DishFilter, error) {
	var filter catalog.DishFilter

	if v, ok, err := utils.ParseUintQuery(c, "cuisine_type_id"); err != nil {
		return filter, err
	} else if ok {
		filter.CuisineTypeID = &v
	}

	if v, ok, err := utils.ParseUintQuery(c, "category_id"); err != nil {
		return filter, err
	} else if ok {
		filter.CategoryID = &v
	}

	if v, ok, err := utils.ParseUintQuery(c, "sub_category_id"); err != nil {
		return filter, err
	} else if ok {
		filter.SubCategoryID = &v
	}

	if v, ok, err := utils.ParseBoolQuery(c, "is_active"); err != nil {
		return filter, err
	} else if ok {
		filter.IsActive = &v
	}

	return filter, nil
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}
