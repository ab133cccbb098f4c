package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// VehicleModel is a caravan model the configurator starts from.
type VehicleModel struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name          string          `gorm:"column:name;not null" json:"name"`
	SleepPerson   int             `gorm:"column:sleep_person;not null;default:2" json:"sleep_person"`
	Description   *string         `gorm:"column:description" json:"description"`
	InnerImage    *string         `gorm:"column:inner_image" json:"inner_image"`
	OuterImage    *string         `gorm:"column:outer_image" json:"outer_image"`
	GalleryImages pq.StringArray  `gorm:"column:gallery_images;type:text[]" json:"gallery_images"`
	CategoryID    uuid.UUID       `gorm:"column:category_id;type:uuid;not null" json:"category_id"`
	Category      *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	BasePrice     decimal.Decimal `gorm:"column:base_price;type:numeric(12,2);not null" json:"base_price"`
	Price         decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
