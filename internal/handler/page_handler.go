package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/turismo-backend-go/internal/service"
	"github.com/jengzang/turismo-backend-go/pkg/response"
)

// PageHandler serves the landing page and its metrics
type PageHandler struct {
	viewService *service.ViewService
}

// NewPageHandler creates a new page handler
func NewPageHandler(viewService *service.ViewService) *PageHandler {
	return &PageHandler{
		viewService: viewService,
	}
}

// GetLanding handles GET /
func (h *PageHandler) GetLanding(c *gin.Context) {
	page, err := h.viewService.Landing(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to render landing page", err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// GetOverview handles GET /api/v1/overview
func (h *PageHandler) GetOverview(c *gin.Context) {
	response.Success(c, h.viewService.Overview(c.Request.Context()))
}
