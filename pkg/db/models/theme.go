package models

import (
	"time"

	"github.com/google/uuid"
)

// Theme bundles the interior material choices. Flooring and seating carry an
// optional second variant; cabinetry and table top are single-choice slots.
type Theme struct {
	ID    uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name  string    `gorm:"column:name;not null" json:"name"`
	Image *string   `gorm:"column:image" json:"image"`

	FlooringName         string  `gorm:"column:flooring_name;not null" json:"flooring_name"`
	FlooringImage        *string `gorm:"column:flooring_image" json:"flooring_image"`
	FlooringVariantName  *string `gorm:"column:flooring_variant_name" json:"flooring_variant_name"`
	FlooringVariantImage *string `gorm:"column:flooring_variant_image" json:"flooring_variant_image"`

	CabinetryName  string  `gorm:"column:cabinetry_name;not null" json:"cabinetry_name"`
	CabinetryImage *string `gorm:"column:cabinetry_image" json:"cabinetry_image"`

	TableTopName  string  `gorm:"column:table_top_name;not null" json:"table_top_name"`
	TableTopImage *string `gorm:"column:table_top_image" json:"table_top_image"`

	SeatingName         string  `gorm:"column:seating_name;not null" json:"seating_name"`
	SeatingImage        *string `gorm:"column:seating_image" json:"seating_image"`
	SeatingVariantName  *string `gorm:"column:seating_variant_name" json:"seating_variant_name"`
	SeatingVariantImage *string `gorm:"column:seating_variant_image" json:"seating_variant_image"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
