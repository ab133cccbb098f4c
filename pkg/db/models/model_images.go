package models

import (
	"time"

	"github.com/google/uuid"
)

// ModelColorImage maps a (model, base color, decal color) pair to the
// exterior rendering shown in the configurator.
type ModelColorImage struct {
	ID             uuid.UUID     `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	VehicleModelID uuid.UUID     `gorm:"column:vehicle_model_id;type:uuid;not null;uniqueIndex:idx_model_color_pair" json:"vehicle_model_id"`
	VehicleModel   *VehicleModel `gorm:"foreignKey:VehicleModelID" json:"vehicle_model,omitempty"`
	BaseColorID    uuid.UUID     `gorm:"column:base_color_id;type:uuid;not null;uniqueIndex:idx_model_color_pair" json:"base_color_id"`
	BaseColor      *Color        `gorm:"foreignKey:BaseColorID" json:"base_color,omitempty"`
	DecalColorID   uuid.UUID     `gorm:"column:decal_color_id;type:uuid;not null;uniqueIndex:idx_model_color_pair" json:"decal_color_id"`
	DecalColor     *Color        `gorm:"foreignKey:DecalColorID" json:"decal_color,omitempty"`
	Image          string        `gorm:"column:image;not null" json:"image"`
	CreatedAt      time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// ModelThemeImage maps a (model, theme) pair to the interior rendering.
type ModelThemeImage struct {
	ID             uuid.UUID     `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	VehicleModelID uuid.UUID     `gorm:"column:vehicle_model_id;type:uuid;not null;uniqueIndex:idx_model_theme_pair" json:"vehicle_model_id"`
	VehicleModel   *VehicleModel `gorm:"foreignKey:VehicleModelID" json:"vehicle_model,omitempty"`
	ThemeID        uuid.UUID     `gorm:"column:theme_id;type:uuid;not null;uniqueIndex:idx_model_theme_pair" json:"theme_id"`
	Theme          *Theme        `gorm:"foreignKey:ThemeID" json:"theme,omitempty"`
	Image          string        `gorm:"column:image;not null" json:"image"`
	CreatedAt      time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
