package modelimages

// ColorImageInput binds an exterior rendering to a model and color pair.
type ColorImageInput struct {
	VehicleModelID string `json:"vehicle_model_id" validate:"required,uuid"`
	BaseColorID    string `json:"base_color_id" validate:"required,uuid"`
	DecalColorID   string `json:"decal_color_id" validate:"required,uuid"`
	Image          string `json:"image" validate:"required,max=500"`
}

// ThemeImageInput binds an interior rendering to a model and theme.
type ThemeImageInput struct {
	VehicleModelID string `json:"vehicle_model_id" validate:"required,uuid"`
	ThemeID        string `json:"theme_id" validate:"required,uuid"`
	Image          string `json:"image" validate:"required,max=500"`
}
