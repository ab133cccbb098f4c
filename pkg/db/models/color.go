package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/vanari-rv/caravan-configurator/pkg/enums"
)

// ColorType is the grouping bucket colors are listed under
// (e.g. "External Base Colours", "External Decal Colours").
type ColorType struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// Color is a paint or decal swatch selectable in the configurator.
type Color struct {
	ID          uuid.UUID          `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string             `gorm:"column:name;not null" json:"name"`
	Code        string             `gorm:"column:code;not null" json:"code"`
	Image       *string            `gorm:"column:image" json:"image"`
	Status      enums.RecordStatus `gorm:"column:status;not null;default:active" json:"status"`
	ColorTypeID uuid.UUID          `gorm:"column:color_type_id;type:uuid;not null" json:"color_type_id"`
	ColorType   *ColorType         `gorm:"foreignKey:ColorTypeID" json:"color_type,omitempty"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
