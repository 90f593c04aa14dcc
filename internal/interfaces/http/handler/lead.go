package handler

import (
	"github.com/gin-gonic/gin"
	applead "github.com/rezillion/backend/internal/application/lead"
)

// ContactSupplierRequest is a buyer inquiry about a catalog listing
type ContactSupplierRequest struct {
	UserEmail string         `json:"userEmail"`
	Product   map[string]any `json:"product"`
}

// LeadHandler handles buyer-to-supplier contact requests
type LeadHandler struct {
	BaseHandler
	leadService *applead.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *applead.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// RegisterRoutes registers the lead route
func (h *LeadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact-supplier", h.ContactSupplier)
}

// ContactSupplier handles POST /contact-supplier
func (h *LeadHandler) ContactSupplier(c *gin.Context) {
	var req ContactSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Missing product or supplier details")
		return
	}

	if err := h.leadService.ContactSupplier(c.Request.Context(), applead.ContactSupplierInput{
		UserEmail: req.UserEmail,
		Product:   req.Product,
	}); err != nil {
		h.HandleError(c, err, "Server Error")
		return
	}

	h.Success(c)
}
