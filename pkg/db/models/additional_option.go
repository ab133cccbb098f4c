package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vanari-rv/caravan-configurator/pkg/enums"
)

// OptionCategory groups additional options within one option catalog.
type OptionCategory struct {
	ID        uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string           `gorm:"column:name;not null" json:"name"`
	Type      enums.OptionType `gorm:"column:type;not null" json:"type"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// AdditionalOption is a priced manufacturer or Vanari add-on attachable to a
// model. CategoryName mirrors the owning category's name at write time; the
// configurator groups options by it without a join.
type AdditionalOption struct {
	ID               uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name             string           `gorm:"column:name;not null" json:"name"`
	Price            decimal.Decimal  `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	VehicleModelID   uuid.UUID        `gorm:"column:vehicle_model_id;type:uuid;not null" json:"vehicle_model_id"`
	VehicleModel     *VehicleModel    `gorm:"foreignKey:VehicleModelID" json:"vehicle_model,omitempty"`
	OptionCategoryID *uuid.UUID       `gorm:"column:option_category_id;type:uuid" json:"option_category_id"`
	CategoryName     string           `gorm:"column:category_name;not null;default:''" json:"category_name"`
	Type             enums.OptionType `gorm:"column:type;not null" json:"type"`
	CreatedAt        time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
