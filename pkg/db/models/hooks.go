package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Identifiers are generated application-side so inserts behave the same
// on postgres and the sqlite driver used in tests.

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (c *Category) BeforeCreate(*gorm.DB) error         { ensureID(&c.ID); return nil }
func (c *ColorType) BeforeCreate(*gorm.DB) error        { ensureID(&c.ID); return nil }
func (c *Color) BeforeCreate(*gorm.DB) error            { ensureID(&c.ID); return nil }
func (t *Theme) BeforeCreate(*gorm.DB) error            { ensureID(&t.ID); return nil }
func (m *VehicleModel) BeforeCreate(*gorm.DB) error     { ensureID(&m.ID); return nil }
func (c *OptionCategory) BeforeCreate(*gorm.DB) error   { ensureID(&c.ID); return nil }
func (o *AdditionalOption) BeforeCreate(*gorm.DB) error { ensureID(&o.ID); return nil }
func (m *ModelColorImage) BeforeCreate(*gorm.DB) error  { ensureID(&m.ID); return nil }
func (m *ModelThemeImage) BeforeCreate(*gorm.DB) error  { ensureID(&m.ID); return nil }
func (c *CustomerInfo) BeforeCreate(*gorm.DB) error     { ensureID(&c.ID); return nil }
func (o *Order) BeforeCreate(*gorm.DB) error            { ensureID(&o.ID); return nil }
func (c *OrderColor) BeforeCreate(*gorm.DB) error       { ensureID(&c.ID); return nil }
func (o *OrderOption) BeforeCreate(*gorm.DB) error      { ensureID(&o.ID); return nil }
