package catalog

import (
	"context"

	"github.com/rezillion/backend/internal/domain/catalog"
	"go.uber.org/zap"
)

// MarketplaceService serves the public catalog read path
type MarketplaceService struct {
	catalogRepo catalog.CatalogRepository
	logger      *zap.Logger
}

// NewMarketplaceService creates a new marketplace service
func NewMarketplaceService(catalogRepo catalog.CatalogRepository, logger *zap.Logger) *MarketplaceService {
	return &MarketplaceService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListProducts returns every listing, newest first, projected into the
// public wire shape. A listing with a dangling supplier reference gets the
// sentinel supplier name; priceEx is always a number, zero when missing or
// malformed.
func (s *MarketplaceService) ListProducts(ctx context.Context) ([]MarketplaceItem, error) {
	rows, err := s.catalogRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch marketplace listings", zap.Error(err))
		return nil, err
	}

	items := make([]MarketplaceItem, len(rows))
	for i, row := range rows {
		attrs := row.Attributes
		if attrs == nil {
			attrs = catalog.AttributeMap{}
		}

		item := make(map[string]any, len(attrs)+4)
		for k, v := range attrs {
			item[k] = v
		}

		item[catalog.FieldID] = row.ID
		item[catalog.FieldName] = row.Name

		supplierName := catalog.SupplierNameUnknown
		if row.SupplierName != nil && *row.SupplierName != "" {
			supplierName = *row.SupplierName
		}
		item["supplier"] = supplierName

		if row.SupplierID != nil {
			item[catalog.FieldSupplierID] = *row.SupplierID
		} else {
			item[catalog.FieldSupplierID] = nil
		}

		item[catalog.AttrPriceEx] = catalog.CoercePrice(attrs[catalog.AttrPriceEx])

		items[i] = item
	}

	s.logger.Info("Marketplace listings fetched", zap.Int("count", len(items)))
	return items, nil
}
