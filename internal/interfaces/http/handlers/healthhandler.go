package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"caterly/internal/shared/utils"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check reports liveness and database reachability.
func (h *HealthHandler) Check(c *gin.Context) {
	dbStatus := "up"

	sqlDB, err := h.db.DB()
	if err != nil {
		dbStatus = "down"
	} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		dbStatus = "down"
	}

	if dbStatus == "down" {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "database unreachable")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"status":   "ok",
		"database": dbStatus,
	})
}
