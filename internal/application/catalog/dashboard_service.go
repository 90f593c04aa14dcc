package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rezillion/backend/internal/domain/catalog"
	"github.com/rezillion/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// DashboardService handles the supplier workspace: owner-scoped listing
// CRUD plus the shared grid configuration.
type DashboardService struct {
	productRepo catalog.ProductRepository
	settingRepo catalog.SettingRepository
	logger      *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	productRepo catalog.ProductRepository,
	settingRepo catalog.SettingRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		productRepo: productRepo,
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// GetDashboard returns the supplier's listings (oldest first, attributes
// flattened) together with the shared grid settings. Missing settings fall
// back to an empty row list and the default location list.
func (s *DashboardService) GetDashboard(ctx context.Context, supplierID int64) (*DashboardData, error) {
	products, err := s.productRepo.FindBySupplier(ctx, supplierID)
	if err != nil {
		s.logger.Error("Failed to fetch supplier listings",
			zap.Int64("supplier_id", supplierID), zap.Error(err))
		return nil, err
	}

	flattened := make([]map[string]any, len(products))
	for i := range products {
		flattened[i] = products[i].Flatten()
	}

	settings, err := s.settingRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch dashboard settings", zap.Error(err))
		return nil, err
	}

	data := &DashboardData{
		Products:  flattened,
		Rows:      []any{},
		Locations: catalog.DefaultLocations(),
	}

	for _, setting := range settings {
		var decoded any
		if err := json.Unmarshal(setting.Value, &decoded); err != nil {
			s.logger.Warn("Skipping undecodable dashboard setting",
				zap.String("key", setting.Key), zap.Error(err))
			continue
		}
		switch setting.Key {
		case catalog.SettingKeyRows:
			data.Rows = decoded
		case catalog.SettingKeyLocations:
			data.Locations = decoded
		}
	}

	return data, nil
}

// CreateProduct inserts a new listing from a raw payload. The reserved
// fields are split out into fixed columns; everything else becomes the
// attribute bag.
func (s *DashboardService) CreateProduct(ctx context.Context, data map[string]any) (*CreateProductResult, error) {
	name, supplierID, attrs := catalog.SplitPayload(data)
	if supplierID == nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Supplier ID required")
	}

	product, err := catalog.NewProduct(*supplierID, name, attrs)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create listing", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Listing created",
		zap.Int64("product_id", product.ID),
		zap.Int64("supplier_id", *supplierID))

	return &CreateProductResult{NewID: product.ID}, nil
}

// UpdateProduct replaces the listing's name and whole attribute document.
// Attributes absent from the payload are dropped, not merged.
func (s *DashboardService) UpdateProduct(ctx context.Context, data map[string]any) error {
	id, ok := catalog.AsInt64(data[catalog.FieldID])
	if !ok {
		return shared.NewDomainError("VALIDATION_ERROR", "Product ID required")
	}

	name, _, attrs := catalog.SplitPayload(data)

	if err := s.productRepo.Replace(ctx, id, name, attrs); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			// Matches replace-by-id semantics: updating a vanished row is
			// not an error the caller can act on.
			s.logger.Warn("Update for missing listing", zap.Int64("product_id", id))
			return nil
		}
		s.logger.Error("Failed to update listing",
			zap.Int64("product_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("Listing updated", zap.Int64("product_id", id))
	return nil
}

// DeleteProduct removes a listing by ID. Deleting an already-deleted
// listing succeeds.
func (s *DashboardService) DeleteProduct(ctx context.Context, data map[string]any) error {
	id, ok := catalog.AsInt64(data[catalog.FieldID])
	if !ok {
		return shared.NewDomainError("VALIDATION_ERROR", "Product ID required")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Delete for missing listing", zap.Int64("product_id", id))
			return nil
		}
		s.logger.Error("Failed to delete listing",
			zap.Int64("product_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("Listing deleted", zap.Int64("product_id", id))
	return nil
}

// UpdateSetting upserts one shared dashboard setting, JSON-encoding the
// value as-is.
func (s *DashboardService) UpdateSetting(ctx context.Context, input UpdateSettingInput) error {
	if input.Key == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Setting key required")
	}

	encoded, err := json.Marshal(input.Value)
	if err != nil {
		return shared.NewDomainError("VALIDATION_ERROR", "Setting value is not encodable")
	}

	setting := &catalog.DashboardSetting{
		Key:   input.Key,
		Value: encoded,
	}

	if err := s.settingRepo.Upsert(ctx, setting); err != nil {
		s.logger.Error("Failed to upsert dashboard setting",
			zap.String("key", input.Key), zap.Error(err))
		return err
	}

	s.logger.Info("Dashboard setting updated", zap.String("key", input.Key))
	return nil
}
