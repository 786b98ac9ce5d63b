package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Vendor is a marketplace service provider searchable by the directory.
type Vendor struct {
	ID                      uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	OwnerID                 *uuid.UUID     `gorm:"column:owner_id;type:uuid"`
	Name                    string         `gorm:"column:name;not null"`
	ServiceType             string         `gorm:"column:service_type;not null;index"`
	Description             string         `gorm:"column:description"`
	Location                string         `gorm:"column:location"`
	PricePerPerson          float64        `gorm:"column:price_per_person;not null;default:0"`
	BasePrice               float64        `gorm:"column:base_price;not null;default:0"`
	CulturalSpecializations pq.StringArray `gorm:"column:cultural_specializations;type:text[]"`
	Rating                  float64        `gorm:"column:rating;not null;default:0"`
	CreatedAt               time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt               time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
