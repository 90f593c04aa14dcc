package handler

import (
	"github.com/gin-gonic/gin"
	appcatalog "github.com/rezillion/backend/internal/application/catalog"
	"github.com/rezillion/backend/internal/interfaces/http/dto"
)

// MarketplaceHandler handles the public catalog endpoint
type MarketplaceHandler struct {
	BaseHandler
	marketplaceService *appcatalog.MarketplaceService
}

// NewMarketplaceHandler creates a new marketplace handler
func NewMarketplaceHandler(marketplaceService *appcatalog.MarketplaceService) *MarketplaceHandler {
	return &MarketplaceHandler{marketplaceService: marketplaceService}
}

// RegisterRoutes registers the public catalog route
func (h *MarketplaceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/marketplace", h.List)
}

// List handles GET /marketplace
func (h *MarketplaceHandler) List(c *gin.Context) {
	items, err := h.marketplaceService.ListProducts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err, "Failed to fetch market data")
		return
	}

	h.OK(c, dto.MarketplaceResponse{Success: true, Data: items})
}
