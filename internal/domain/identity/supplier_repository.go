package identity

import "context"

// SupplierRepository defines the interface for supplier account persistence
type SupplierRepository interface {
	// Create inserts a new supplier account
	Create(ctx context.Context, supplier *Supplier) error

	// FindByID finds a supplier by ID
	FindByID(ctx context.Context, id int64) (*Supplier, error)

	// FindByEmail finds a supplier by email (exact match)
	FindByEmail(ctx context.Context, email string) (*Supplier, error)

	// ExistsByEmail checks if an account with the given email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
