package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/turismo-backend-go/internal/models"
	"github.com/jengzang/turismo-backend-go/internal/service"
	"github.com/jengzang/turismo-backend-go/pkg/response"
)

// DashboardHandler handles HTTP requests for the dashboard view
type DashboardHandler struct {
	viewService *service.ViewService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(viewService *service.ViewService) *DashboardHandler {
	return &DashboardHandler{
		viewService: viewService,
	}
}

type dashboardQuery struct {
	Departamento string `form:"departamento"`
	Temporada    string `form:"temporada"`
	Format       string `form:"format"`
}

func (q dashboardQuery) selection() models.FilterSelection {
	return models.FilterSelection{Departamento: q.Departamento, Temporada: q.Temporada}
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var q dashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	view, err := h.viewService.Dashboard(c.Request.Context(), q.selection())
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, view)
}

// GetBoxplot handles GET /api/v1/dashboard/boxplot
func (h *DashboardHandler) GetBoxplot(c *gin.Context) {
	view, err := h.viewService.Boxplot(c.Request.Context(), c.Query("temporada"))
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, view)
}

// ExportDashboard handles GET /api/v1/dashboard/export
func (h *DashboardHandler) ExportDashboard(c *gin.Context) {
	var q dashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	table, err := h.viewService.DashboardExport(c.Request.Context(), q.selection())
	if err != nil {
		renderError(c, err)
		return
	}

	sendTable(c, "turismo_dashboard", table, q.Format)
}
