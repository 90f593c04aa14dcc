package catalog

import "context"

// SettingRepository defines the interface for dashboard setting persistence
type SettingRepository interface {
	// Upsert stores the value for a setting key, replacing any existing one
	Upsert(ctx context.Context, setting *DashboardSetting) error

	// FindAll returns every stored setting
	FindAll(ctx context.Context) ([]DashboardSetting, error)
}
