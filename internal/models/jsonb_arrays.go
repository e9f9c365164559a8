package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// To satisfy postgres jsonb data type
type StringArray []string

func (sa *StringArray) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, sa)
	case string:
		return json.Unmarshal([]byte(v), sa)
	default:
		return fmt.Errorf("unsupported type %T for StringArray", value)
	}
}

func (sa StringArray) Value() (driver.Value, error) {
	if sa == nil {
		sa = StringArray{}
	}
	return json.Marshal(sa)
}

// To satisfy postgres jsonb data type
type IntArray []int

func (ia *IntArray) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, ia)
	case string:
		return json.Unmarshal([]byte(v), ia)
	default:
		return fmt.Errorf("unsupported type %T for IntArray", value)
	}
}

func (ia IntArray) Value() (driver.Value, error) {
	if ia == nil {
		ia = IntArray{}
	}
	return json.Marshal(ia)
}
