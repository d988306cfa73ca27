package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/core/analytics"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the spending summaries behind the dashboard charts.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

func newDashboardHandler(ds portssvc.DashboardSvc) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := newDashboardHandler(dashboardService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.getSummary)
		dashboard.GET("/monthly", h.getMonthlyTotals)
		dashboard.GET("/categories", h.getCategoryTotals)
	}
}

// bindDashboardParams answers 400 itself when the query is invalid.
func bindDashboardParams(c *gin.Context) (dto.DashboardParams, bool) {
	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind dashboard query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return params, false
	}
	return params, true
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Returns spending KPIs, trailing monthly totals and the top categories with their colors and icons.
// @Tags dashboard
// @Produce  json
// @Param   months query int false "Trailing months including the current one" minimum(1) maximum(120)
// @Param   top query int false "Categories shown before collapsing the rest into Other" minimum(1) maximum(50)
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to build dashboard summary"
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	params, ok := bindDashboardParams(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.GetSummary(c.Request.Context(), userID, params.Months, params.Top)
	if err != nil {
		respondError(c, err, "build dashboard summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(summary, h.dashboardService.ResolveCategoryStyle))
}

// getMonthlyTotals godoc
// @Summary Monthly totals
// @Description Returns one bucket per calendar month ending with the current month, oldest first.
// @Tags dashboard
// @Produce  json
// @Param   months query int false "Trailing months including the current one" minimum(1) maximum(120)
// @Success 200 {object} dto.MonthlyTotalsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute monthly totals"
// @Security BearerAuth
// @Router /dashboard/monthly [get]
func (h *dashboardHandler) getMonthlyTotals(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	params, ok := bindDashboardParams(c)
	if !ok {
		return
	}

	months, err := h.dashboardService.GetMonthlyTotals(c.Request.Context(), userID, params.Months)
	if err != nil {
		respondError(c, err, "compute monthly totals")
		return
	}

	c.JSON(http.StatusOK, dto.MonthlyTotalsResponse{Months: months})
}

// getCategoryTotals godoc
// @Summary Category totals
// @Description Returns category totals in descending order, each with its color and icon.
// @Tags dashboard
// @Produce  json
// @Param   top query int false "Categories shown before collapsing the rest into Other" minimum(1) maximum(50)
// @Success 200 {object} dto.CategoryTotalsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute category totals"
// @Security BearerAuth
// @Router /dashboard/categories [get]
func (h *dashboardHandler) getCategoryTotals(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	params, ok := bindDashboardParams(c)
	if !ok {
		return
	}

	totals, err := h.dashboardService.GetCategoryTotals(c.Request.Context(), userID, params.Top)
	if err != nil {
		respondError(c, err, "compute category totals")
		return
	}

	c.JSON(http.StatusOK, dto.CategoryTotalsResponse{
		Categories:      dto.ToCategorySummaryResponses(totals, h.dashboardService.ResolveCategoryStyle),
		HasCategoryData: analytics.HasCategoryData(totals),
	})
}
