package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// AttributeMap is the open, schema-less portion of a product record.
// Values are arbitrary JSON scalars (technology, power, moq, availability,
// per-location price fields, document references); unrecognized keys pass
// through unchanged. Stored as a single jsonb column.
type AttributeMap map[string]any

// Value implements driver.Valuer for jsonb storage
func (m AttributeMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for jsonb storage
func (m *AttributeMap) Scan(value any) error {
	if value == nil {
		*m = AttributeMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported attribute column type %T", value)
	}
	if len(data) == 0 {
		*m = AttributeMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// JSONValue is a raw JSON payload persisted as jsonb. Dashboard setting
// values (column definitions, location lists) are stored as-is and decoded
// only at the read boundary.
type JSONValue []byte

// Value implements driver.Valuer
func (v JSONValue) Value() (driver.Value, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return []byte(v), nil
}

// Scan implements sql.Scanner
func (v *JSONValue) Scan(value any) error {
	if value == nil {
		*v = nil
		return nil
	}
	switch src := value.(type) {
	case []byte:
		*v = append((*v)[:0], src...)
	case string:
		*v = JSONValue(src)
	default:
		return fmt.Errorf("unsupported setting column type %T", value)
	}
	return nil
}

// MarshalJSON returns the raw payload unchanged
func (v JSONValue) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return v, nil
}

// UnmarshalJSON stores the raw payload unchanged
func (v *JSONValue) UnmarshalJSON(data []byte) error {
	*v = append((*v)[:0], data...)
	return nil
}

// AsInt64 coerces a decoded JSON scalar into an identifier.
// JSON numbers arrive as float64; clients occasionally send ids as strings.
func AsInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return 0, false
		}
		return d.IntPart(), true
	default:
		return 0, false
	}
}

// CoercePrice coerces an attribute value into a numeric price, falling back
// to zero when the value is absent or not a number. The marketplace read
// path relies on this so that one malformed listing never fails the whole
// catalog response.
func CoercePrice(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return 0
		}
		f, _ := d.Float64()
		return f
	default:
		return 0
	}
}
