package persistence

import (
	"context"
	"errors"

	"github.com/rezillion/backend/internal/domain/identity"
	"github.com/rezillion/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSupplierRepository implements SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// Create inserts a new supplier
func (r *GormSupplierRepository) Create(ctx context.Context, supplier *identity.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

// FindByID finds a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id int64) (*identity.Supplier, error) {
	var supplier identity.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// FindByEmail finds a supplier by its exact email
func (r *GormSupplierRepository) FindByEmail(ctx context.Context, email string) (*identity.Supplier, error) {
	var supplier identity.Supplier
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// ExistsByEmail checks if a supplier with the given email exists
func (r *GormSupplierRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.Supplier{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormSupplierRepository implements SupplierRepository
var _ identity.SupplierRepository = (*GormSupplierRepository)(nil)
