package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/turismo-backend-go/internal/models"
	"github.com/jengzang/turismo-backend-go/internal/service"
	"github.com/jengzang/turismo-backend-go/pkg/response"
)

// MapHandler handles HTTP requests for the map view
type MapHandler struct {
	viewService *service.ViewService
}

// NewMapHandler creates a new map handler
func NewMapHandler(viewService *service.ViewService) *MapHandler {
	return &MapHandler{
		viewService: viewService,
	}
}

type mapQuery struct {
	Destino       string   `form:"destino"`
	Temporada     string   `form:"temporada"`
	RadiusDivisor *float64 `form:"radius_divisor" binding:"omitempty,gt=0"`
	Opacity       *float64 `form:"opacity" binding:"omitempty,gte=0,lte=1"`
	Format        string   `form:"format"`
}

func (q mapQuery) selection() models.FilterSelection {
	return models.FilterSelection{Destino: q.Destino, Temporada: q.Temporada}
}

// GetMap handles GET /api/v1/map
func (h *MapHandler) GetMap(c *gin.Context) {
	var q mapQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	view, err := h.viewService.Map(c.Request.Context(), q.selection(), service.MapOverride{
		RadiusDivisor: q.RadiusDivisor,
		Opacity:       q.Opacity,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	response.Success(c, view)
}

// ExportMap handles GET /api/v1/map/export
func (h *MapHandler) ExportMap(c *gin.Context) {
	var q mapQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	table, err := h.viewService.MapExport(c.Request.Context(), q.selection())
	if err != nil {
		renderError(c, err)
		return
	}

	sendTable(c, "turismo_mapa", table, q.Format)
}
