package catalog

import "time"

// Recognized dashboard setting keys. The namespace is global: all suppliers
// share one configuration.
const (
	SettingKeyRows      = "rows"
	SettingKeyLocations = "locations"
)

// DefaultLocations is returned when the locations setting is unset
func DefaultLocations() []any {
	return []any{"Kolkata"}
}

// DashboardSetting is one key/value pair of the shared dashboard
// configuration, upserted by key.
type DashboardSetting struct {
	Key       string    `gorm:"column:setting_key;primaryKey;type:varchar(100)"`
	Value     JSONValue `gorm:"column:setting_value;type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DashboardSetting) TableName() string {
	return "dashboard_settings"
}
