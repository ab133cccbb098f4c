package colors

// CreateColorTypeInput is the payload for adding a color grouping.
type CreateColorTypeInput struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// UpdateColorTypeInput renames a color grouping.
type UpdateColorTypeInput struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// CreateColorInput is the payload for adding a swatch. Image arrives as
// a stored upload path, already processed by the uploads service.
type CreateColorInput struct {
	Name        string  `json:"name" validate:"required,min=1,max=120"`
	Code        string  `json:"code" validate:"required,min=1,max=32"`
	Image       *string `json:"image" validate:"omitempty,max=500"`
	Status      string  `json:"status" validate:"omitempty,oneof=active inactive"`
	ColorTypeID string  `json:"color_type_id" validate:"required,uuid"`
}

// UpdateColorInput mirrors the create payload; empty optional fields
// leave the stored value untouched.
type UpdateColorInput struct {
	Name        string  `json:"name" validate:"required,min=1,max=120"`
	Code        string  `json:"code" validate:"required,min=1,max=32"`
	Image       *string `json:"image" validate:"omitempty,max=500"`
	Status      string  `json:"status" validate:"omitempty,oneof=active inactive"`
	ColorTypeID string  `json:"color_type_id" validate:"required,uuid"`
}
