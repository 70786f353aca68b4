package handlers

import (
	"net/http"

	"doctorsportal/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	CatalogSvc catalog.CatalogService
	Logger     *zap.Logger
}

func NewCatalogHandler(cs catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{CatalogSvc: cs, Logger: logger}
}

// GetServices handles GET /services.
func (h *CatalogHandler) GetServices(c *gin.Context) {
	services, err := h.CatalogSvc.Summaries(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, http.StatusInternalServerError, "failed to fetch services", err)
		return
	}
	c.JSON(http.StatusOK, services)
}
