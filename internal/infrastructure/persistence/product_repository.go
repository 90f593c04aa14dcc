package persistence

import (
	"context"

	"github.com/rezillion/backend/internal/domain/catalog"
	"github.com/rezillion/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository and CatalogRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Create inserts a new product and fills in its generated ID
func (r *GormProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Replace overwrites a product's name and its entire attribute document
func (r *GormProductRepository) Replace(ctx context.Context, id int64, name string, attrs catalog.AttributeMap) error {
	result := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":       name,
			"attributes": attrs,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a product by ID
func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindBySupplier returns all products belonging to a supplier, oldest first
func (r *GormProductRepository) FindBySupplier(ctx context.Context, supplierID int64) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListAll returns the full public catalog joined with supplier names, newest first.
// The join is deliberately a LEFT JOIN: products whose supplier row is missing
// still appear, with a NULL supplier name.
func (r *GormProductRepository) ListAll(ctx context.Context) ([]catalog.MarketplaceRow, error) {
	var rows []catalog.MarketplaceRow
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Select("products.id, products.name, products.supplier_id, suppliers.company_name AS supplier_name, products.attributes").
		Joins("LEFT JOIN suppliers ON suppliers.id = products.supplier_id").
		Order("products.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Ensure GormProductRepository implements both repository interfaces
var (
	_ catalog.ProductRepository = (*GormProductRepository)(nil)
	_ catalog.CatalogRepository = (*GormProductRepository)(nil)
)
