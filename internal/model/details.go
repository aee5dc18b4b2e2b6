package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Details is the open key/value map stored in products.product_details.
// The engine stores and returns it as-is.
type Details map[string]string

func (d Details) Value() (driver.Value, error) {
	if d == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(map[string]string(d))
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (d *Details) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*d = Details{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("details: unsupported source type %T", src)
	}
	m := map[string]string{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("details: %w", err)
	}
	*d = m
	return nil
}
