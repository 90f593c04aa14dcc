package persistence

import (
	"context"

	"github.com/rezillion/backend/internal/domain/catalog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingRepository implements SettingRepository using GORM
type GormSettingRepository struct {
	db *gorm.DB
}

// NewGormSettingRepository creates a new GormSettingRepository
func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// Upsert stores a dashboard setting, replacing any previous value for the key
func (r *GormSettingRepository) Upsert(ctx context.Context, setting *catalog.DashboardSetting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
		}).
		Create(setting).Error
}

// FindAll returns every stored dashboard setting
func (r *GormSettingRepository) FindAll(ctx context.Context) ([]catalog.DashboardSetting, error) {
	var settings []catalog.DashboardSetting
	if err := r.db.WithContext(ctx).Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// Ensure GormSettingRepository implements SettingRepository
var _ catalog.SettingRepository = (*GormSettingRepository)(nil)
