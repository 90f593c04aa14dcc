package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	appcatalog "github.com/rezillion/backend/internal/application/catalog"
	"github.com/rezillion/backend/internal/interfaces/http/dto"
)

// DashboardHandler handles the supplier workspace endpoints
type DashboardHandler struct {
	BaseHandler
	dashboardService *appcatalog.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *appcatalog.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// RegisterRoutes registers all dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/supplierdashboard", h.Get)
	rg.POST("/supplierdashboard", h.Post)
}

// Get handles GET /supplierdashboard?supplierId=
func (h *DashboardHandler) Get(c *gin.Context) {
	raw := c.Query("supplierId")
	if raw == "" {
		h.BadRequest(c, "Supplier ID is required to fetch products.")
		return
	}
	supplierID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.BadRequest(c, "Supplier ID is required to fetch products.")
		return
	}

	data, err := h.dashboardService.GetDashboard(c.Request.Context(), supplierID)
	if err != nil {
		h.HandleError(c, err, "Failed to fetch data")
		return
	}

	h.OK(c, dto.DashboardResponse{
		Products:  data.Products,
		Rows:      data.Rows,
		Locations: data.Locations,
	})
}

// Post handles POST /supplierdashboard, dispatching on the action field
func (h *DashboardHandler) Post(c *gin.Context) {
	var req DashboardActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid Action")
		return
	}

	ctx := c.Request.Context()

	switch req.Action {
	case ActionCreateProduct:
		result, err := h.dashboardService.CreateProduct(ctx, req.Data)
		if err != nil {
			h.HandleError(c, err, "Action failed")
			return
		}
		h.OK(c, dto.CreateProductResponse{Success: true, NewID: result.NewID})

	case ActionUpdateProduct:
		if err := h.dashboardService.UpdateProduct(ctx, req.Data); err != nil {
			h.HandleError(c, err, "Action failed")
			return
		}
		h.Success(c)

	case ActionDeleteProduct:
		if err := h.dashboardService.DeleteProduct(ctx, req.Data); err != nil {
			h.HandleError(c, err, "Action failed")
			return
		}
		h.Success(c)

	case ActionUpdateSettings:
		key, _ := req.Data["key"].(string)
		if err := h.dashboardService.UpdateSetting(ctx, appcatalog.UpdateSettingInput{
			Key:   key,
			Value: req.Data["value"],
		}); err != nil {
			h.HandleError(c, err, "Action failed")
			return
		}
		h.Success(c)

	default:
		h.BadRequest(c, "Invalid Action")
	}
}
