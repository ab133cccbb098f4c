package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vanari-rv/caravan-configurator/pkg/enums"
)

// CustomerInfo is the contact block captured on the wizard's final step.
type CustomerInfo struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	FirstName string    `gorm:"column:first_name;not null" json:"first_name"`
	LastName  string    `gorm:"column:last_name;not null" json:"last_name"`
	Email     string    `gorm:"column:email;not null" json:"email"`
	Phone     string    `gorm:"column:phone;not null" json:"phone"`
	Postcode  *string   `gorm:"column:postcode" json:"postcode"`
	Message   *string   `gorm:"column:message" json:"message"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// Order is a submitted quote request built from a configurator session.
type Order struct {
	ID             uuid.UUID         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	VehicleModelID uuid.UUID         `gorm:"column:vehicle_model_id;type:uuid;not null" json:"vehicle_model_id"`
	VehicleModel   *VehicleModel     `gorm:"foreignKey:VehicleModelID" json:"vehicle_model,omitempty"`
	ThemeID        *uuid.UUID        `gorm:"column:theme_id;type:uuid" json:"theme_id"`
	Theme          *Theme            `gorm:"foreignKey:ThemeID" json:"theme,omitempty"`
	CustomerInfoID uuid.UUID         `gorm:"column:customer_info_id;type:uuid;not null" json:"customer_info_id"`
	CustomerInfo   *CustomerInfo     `gorm:"foreignKey:CustomerInfoID" json:"customer_info,omitempty"`
	BasePrice      decimal.Decimal   `gorm:"column:base_price;type:numeric(12,2);not null" json:"base_price"`
	TotalPrice     decimal.Decimal   `gorm:"column:total_price;type:numeric(12,2);not null" json:"total_price"`
	Status         enums.OrderStatus `gorm:"column:status;not null;default:pending" json:"status"`
	Colors         []OrderColor      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"colors,omitempty"`
	Options        []OrderOption     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"additional_options,omitempty"`
	CreatedAt      time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// OrderColor links an order to a selected exterior color and records whether
// it was the base or the decal pick.
type OrderColor struct {
	ID      uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	OrderID uuid.UUID `gorm:"column:order_id;type:uuid;not null" json:"order_id"`
	ColorID uuid.UUID `gorm:"column:color_id;type:uuid;not null" json:"color_id"`
	Color   *Color    `gorm:"foreignKey:ColorID" json:"color,omitempty"`
	Role    string    `gorm:"column:role;not null" json:"role"`
}

// OrderOption snapshots a selected add-on with its price at submission time,
// so later catalog edits do not rewrite history.
type OrderOption struct {
	ID                 uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	OrderID            uuid.UUID        `gorm:"column:order_id;type:uuid;not null" json:"order_id"`
	AdditionalOptionID uuid.UUID        `gorm:"column:additional_option_id;type:uuid;not null" json:"additional_option_id"`
	Name               string           `gorm:"column:name;not null" json:"name"`
	Price              decimal.Decimal  `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	Type               enums.OptionType `gorm:"column:type;not null" json:"type"`
}
