package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringMap is a language-code keyed map stored as a JSONB column
// (e.g. translations or audio filenames per language).
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *StringMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	bytes, err := toBytes(value)
	if err != nil {
		return fmt.Errorf("StringMap scan: %w", err)
	}
	return json.Unmarshal(bytes, m)
}

// IDList is an ordered list of word IDs stored as a JSONB column. Order is
// significant for sentence questions.
type IDList []uint

func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *IDList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	bytes, err := toBytes(value)
	if err != nil {
		return fmt.Errorf("IDList scan: %w", err)
	}
	return json.Unmarshal(bytes, l)
}

func toBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("unsupported column type for JSON value")
	}
}
