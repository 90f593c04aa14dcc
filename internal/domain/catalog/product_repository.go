package catalog

import "context"

// ProductRepository defines the interface for listing persistence
type ProductRepository interface {
	// Create inserts a new listing and populates its generated ID
	Create(ctx context.Context, product *Product) error

	// Replace overwrites the name and attribute bag of the listing with the
	// given ID (whole-document replacement)
	Replace(ctx context.Context, id int64, name string, attrs AttributeMap) error

	// Delete removes the listing by ID
	Delete(ctx context.Context, id int64) error

	// FindBySupplier returns all listings owned by a supplier, ordered by
	// ascending ID
	FindBySupplier(ctx context.Context, supplierID int64) ([]Product, error)
}

// MarketplaceRow is the denormalized public-catalog projection: a listing
// joined to its owning supplier. SupplierName is nil when the supplier
// reference is missing or dangling.
type MarketplaceRow struct {
	ID           int64
	Name         string
	SupplierID   *int64
	SupplierName *string
	Attributes   AttributeMap
}

// CatalogRepository defines the public read side over the listing store
type CatalogRepository interface {
	// ListAll returns every listing left-joined to its supplier, ordered by
	// descending ID (newest first)
	ListAll(ctx context.Context) ([]MarketplaceRow, error)
}
