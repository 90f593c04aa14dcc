package catalog

import (
	"time"

	"github.com/rezillion/backend/internal/domain/shared"
)

// Reserved payload fields that live in fixed columns. The write path strips
// them before persisting the attribute bag so they never appear twice.
const (
	FieldID         = "id"
	FieldName       = "name"
	FieldSupplierID = "supplierId"
)

// Recognized attribute keys. Anything else passes through unchanged.
const (
	AttrPriceEx      = "priceEx"
	AttrTechnology   = "technology"
	AttrPower        = "power"
	AttrMOQ          = "moq"
	AttrAvailability = "availability"
)

// SupplierNameUnknown is the sentinel supplier name for listings whose
// supplier reference is missing or dangling.
const SupplierNameUnknown = "Unknown Supplier"

// Product represents a marketplace listing: fixed columns plus an
// open-ended attribute bag. It is the aggregate root for listing operations.
type Product struct {
	shared.BaseEntity
	SupplierID *int64       `gorm:"index"`
	Name       string       `gorm:"type:varchar(200)"`
	Attributes AttributeMap `gorm:"type:jsonb;not null;default:'{}'"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a listing owned by the given supplier
func NewProduct(supplierID int64, name string, attrs AttributeMap) (*Product, error) {
	if supplierID == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Supplier ID required")
	}
	if attrs == nil {
		attrs = AttributeMap{}
	}
	return &Product{
		SupplierID: &supplierID,
		Name:       name,
		Attributes: attrs,
	}, nil
}

// Replace overwrites the name and the entire attribute bag. This is
// whole-document replacement: any attribute absent from attrs is gone.
func (p *Product) Replace(name string, attrs AttributeMap) {
	if attrs == nil {
		attrs = AttributeMap{}
	}
	p.Name = name
	p.Attributes = attrs
	p.UpdatedAt = time.Now()
}

// SplitPayload separates a caller-supplied listing payload into the fixed
// columns and the remaining attribute bag. The reserved fields (id, name,
// supplierId) are removed from the bag regardless of where they appeared.
func SplitPayload(data map[string]any) (name string, supplierID *int64, attrs AttributeMap) {
	attrs = make(AttributeMap, len(data))
	for k, v := range data {
		switch k {
		case FieldID:
			// server-generated, never taken from the bag
		case FieldName:
			if s, ok := v.(string); ok {
				name = s
			}
		case FieldSupplierID:
			if id, ok := AsInt64(v); ok {
				supplierID = &id
			}
		default:
			attrs[k] = v
		}
	}
	return name, supplierID, attrs
}

// Flatten projects the listing into its wire shape: the attribute bag is
// spread first and the fixed columns written last, so column values always
// win if a stored bag ever contains a reserved key.
func (p *Product) Flatten() map[string]any {
	out := make(map[string]any, len(p.Attributes)+3)
	for k, v := range p.Attributes {
		out[k] = v
	}
	out[FieldID] = p.ID
	out[FieldName] = p.Name
	if p.SupplierID != nil {
		out[FieldSupplierID] = *p.SupplierID
	} else {
		out[FieldSupplierID] = nil
	}
	return out
}
