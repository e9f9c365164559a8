package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Point is one sampled stroke event of a freehand drawing.
type Point struct {
	OffsetDx  float64 `json:"offsetDx"`
	OffsetDy  float64 `json:"offsetDy"`
	PointType int     `json:"pointType"`
	Pressure  float64 `json:"pressure"`
}

// To satisfy postgres jsonb data type
type Points []Point

func (p *Points) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported type %T for Points", value)
	}
}

func (p Points) Value() (driver.Value, error) {
	return json.Marshal(p)
}
