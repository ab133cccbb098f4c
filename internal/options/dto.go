package options

// CreateOptionCategoryInput is the payload for adding an option group.
type CreateOptionCategoryInput struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
	Type string `json:"type" validate:"required,oneof=manufacturer vanari"`
}

// UpdateOptionCategoryInput mirrors the create payload.
type UpdateOptionCategoryInput struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
	Type string `json:"type" validate:"required,oneof=manufacturer vanari"`
}

// OptionInput covers create and update of an add-on. Price travels as
// a string so JSON and form submissions decode identically.
type OptionInput struct {
	Name             string  `json:"name" validate:"required,min=1,max=200"`
	Price            string  `json:"price" validate:"required"`
	VehicleModelID   string  `json:"vehicle_model_id" validate:"required,uuid"`
	OptionCategoryID *string `json:"option_category_id" validate:"omitempty,uuid"`
	Type             string  `json:"type" validate:"required,oneof=manufacturer vanari"`
}
