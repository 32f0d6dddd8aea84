package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caterly/internal/application/metadata"
	"caterly/internal/shared/logger"
	"caterly/internal/shared/utils"
)

type MetadataHandler struct {
	service *metadata.Service
	logger  logger.Interface
}

func NewMetadataHandler(service *metadata.Service, logger logger.Interface) *MetadataHandler {
	return &MetadataHandler{
		service: service,
		logger:  logger,
	}
}

func (h *MetadataHandler) ListCuisineTypes(c *gin.Context) {
	rows, err := h.service.ListCuisineTypes(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", rows)
}

func (h *MetadataHandler) ListCategories(c *gin.Context) {
	rows, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", rows)
}

func (h *MetadataHandler) ListSubCategories(c *gin.Context) {
	var categoryID *uint
	if v, ok, err := utils.ParseUintQuery(c, "category_id"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	} else if ok {
		categoryID = &v
	}

	rows, err := h.service.ListSubCategories(c.Request.Context(), categoryID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", rows)
}

func (h *MetadataHandler) ListFreeForms(c *gin.Context) {
	rows, err := h.service.ListFreeForms(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", rows)
}

func (h *MetadataHandler) ListPackageTypes(c *gin.Context) {
	rows, err := h.service.ListPackageTypes(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", rows)
}
