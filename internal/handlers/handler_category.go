package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

type categoryHandler struct {
	dashboardService portssvc.DashboardSvc
}

func registerCategoryRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := &categoryHandler{dashboardService: dashboardService}

	rg.GET("/categories/style", h.getCategoryStyle)
}

// getCategoryStyle godoc
// @Summary Resolve a category style
// @Description Returns the color, chip colors, chart colors and icon assigned to a category label. Labels differing only in case share a style.
// @Tags categories
// @Produce  json
// @Param   label query string false "Category label; blank resolves to Uncategorized"
// @Success 200 {object} domain.CategoryStyle
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /categories/style [get]
func (h *categoryHandler) getCategoryStyle(c *gin.Context) {
	var params dto.CategoryStyleParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.dashboardService.ResolveCategoryStyle(params.Label))
}
