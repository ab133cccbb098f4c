package themes

// ThemeInput covers create and update. Slot names are required; images
// and the flooring/seating variants are optional. Image fields carry
// stored upload paths produced by the uploads service.
type ThemeInput struct {
	Name  string  `json:"name" validate:"required,min=1,max=120"`
	Image *string `json:"image" validate:"omitempty,max=500"`

	FlooringName         string  `json:"flooring_name" validate:"required,min=1,max=120"`
	FlooringImage        *string `json:"flooring_image" validate:"omitempty,max=500"`
	FlooringVariantName  *string `json:"flooring_variant_name" validate:"omitempty,max=120"`
	FlooringVariantImage *string `json:"flooring_variant_image" validate:"omitempty,max=500"`

	CabinetryName  string  `json:"cabinetry_name" validate:"required,min=1,max=120"`
	CabinetryImage *string `json:"cabinetry_image" validate:"omitempty,max=500"`

	TableTopName  string  `json:"table_top_name" validate:"required,min=1,max=120"`
	TableTopImage *string `json:"table_top_image" validate:"omitempty,max=500"`

	SeatingName         string  `json:"seating_name" validate:"required,min=1,max=120"`
	SeatingImage        *string `json:"seating_image" validate:"omitempty,max=500"`
	SeatingVariantName  *string `json:"seating_variant_name" validate:"omitempty,max=120"`
	SeatingVariantImage *string `json:"seating_variant_image" validate:"omitempty,max=500"`
}
