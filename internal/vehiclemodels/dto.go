package vehiclemodels

// ModelInput covers create and update. Prices travel as strings so both
// JSON and multipart form submissions decode the same way; the service
// parses them into decimals. Image fields are stored upload paths.
type ModelInput struct {
	Name          string   `json:"name" validate:"required,min=1,max=120"`
	SleepPerson   int      `json:"sleep_person" validate:"required,gt=0,lte=12"`
	Description   *string  `json:"description" validate:"omitempty,max=5000"`
	CategoryID    string   `json:"category_id" validate:"required,uuid"`
	BasePrice     string   `json:"base_price" validate:"required"`
	Price         string   `json:"price" validate:"required"`
	InnerImage    *string  `json:"inner_image" validate:"omitempty,max=500"`
	OuterImage    *string  `json:"outer_image" validate:"omitempty,max=500"`
	GalleryImages []string `json:"gallery_images" validate:"omitempty,dive,max=500"`
}
