package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caterly/internal/application/dashboard/usecases"
	"caterly/internal/shared/logger"
	"caterly/internal/shared/utils"
)

type DashboardHandler struct {
	getStatsUC *usecases.GetStatsUseCase
	logger     logger.Interface
}

func NewDashboardHandler(getStatsUC *usecases.GetStatsUseCase, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		getStatsUC: getStatsUC,
		logger:     logger,
	}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	catererID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	stats, err := h.getStatsUC.Execute(c.Request.Context(), catererID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}
