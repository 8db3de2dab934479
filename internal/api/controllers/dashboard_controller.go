package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servio/internal/services"
	"servio/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// BaseInfo godoc
// @Summary Get public marketplace summary counts
// @Description Review count, average rating, business profile count and offer count
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /base-info [get]
func (d *DashboardController) BaseInfo(c *gin.Context) {
	info, err := d.dashboardService.GetBaseInfo(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, info, "Base info fetched successfully")
}

// Health godoc
// @Summary Liveness probe
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (d *DashboardController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
