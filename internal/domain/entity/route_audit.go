package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RouteAudit records the outcome of one route-planning request.
//
// Only aggregate planning facts are stored; patient records themselves are
// never persisted.
type RouteAudit struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PlannedFor       time.Time `gorm:"type:date;not null;index" json:"planned_for"`
	DoctorLat        float64   `gorm:"not null" json:"doctor_lat"`
	DoctorLon        float64   `gorm:"not null" json:"doctor_lon"`
	Capacity         int       `gorm:"not null" json:"capacity"`
	NearbyPatients   int       `gorm:"not null" json:"nearby_patients"`
	SelectedPatients int       `gorm:"not null" json:"selected_patients"`
	EmergencyCount   int       `gorm:"not null" json:"emergency_count"`
	TotalDistanceKm  float64   `gorm:"not null" json:"total_distance_km"`
	Metadata         JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (RouteAudit) TableName() string {
	return "route_audits"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}
