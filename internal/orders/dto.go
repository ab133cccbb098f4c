package orders

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vanari-rv/caravan-configurator/pkg/enums"
)

// CustomerInput is the contact block submitted with a quote request.
type CustomerInput struct {
	FirstName string  `json:"first_name" validate:"required,min=1,max=120"`
	LastName  string  `json:"last_name" validate:"required,min=1,max=120"`
	Email     string  `json:"email" validate:"required,email,max=254"`
	Phone     string  `json:"phone" validate:"required,min=6,max=32"`
	Postcode  *string `json:"postcode" validate:"omitempty,max=16"`
	Message   *string `json:"message" validate:"omitempty,max=5000"`
}

// ColorSelection records one chosen swatch and whether it was the base
// or decal pick.
type ColorSelection struct {
	ColorID uuid.UUID
	Role    string
}

// OptionSnapshot freezes a selected add-on's name and price at
// submission time.
type OptionSnapshot struct {
	OptionID uuid.UUID
	Name     string
	Price    decimal.Decimal
	Type     enums.OptionType
}

// CreateOrderInput is assembled by the configurator when a session is
// submitted. Prices are computed server-side before this point.
type CreateOrderInput struct {
	VehicleModelID uuid.UUID
	ThemeID        *uuid.UUID
	BasePrice      decimal.Decimal
	TotalPrice     decimal.Decimal
	Customer       CustomerInput
	Colors         []ColorSelection
	Options        []OptionSnapshot
}

// UpdateStatusInput moves an order along its lifecycle.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}
