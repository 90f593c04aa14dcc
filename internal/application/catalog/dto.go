package catalog

// DashboardData is everything the supplier workspace needs in one fetch:
// the supplier's own listings plus the shared grid configuration.
type DashboardData struct {
	Products  []map[string]any
	Rows      any
	Locations any
}

// CreateProductResult carries the generated ID of a new listing
type CreateProductResult struct {
	NewID int64
}

// UpdateSettingInput contains one dashboard setting to upsert
type UpdateSettingInput struct {
	Key   string
	Value any
}

// MarketplaceItem is the public catalog wire shape: fixed fields plus the
// flattened attribute bag, with priceEx always present as a number.
type MarketplaceItem = map[string]any
