package handler

// Dashboard action discriminators
const (
	ActionCreateProduct  = "create_product"
	ActionUpdateProduct  = "update_product"
	ActionDeleteProduct  = "delete_product"
	ActionUpdateSettings = "update_settings"
)

// DashboardActionRequest is the dispatch envelope for dashboard writes
type DashboardActionRequest struct {
	Action string         `json:"action" binding:"required"`
	Data   map[string]any `json:"data"`
}
