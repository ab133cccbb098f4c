package categories

// CreateCategoryInput is the payload for adding a model category.
type CreateCategoryInput struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// UpdateCategoryInput is the payload for renaming a category.
type UpdateCategoryInput struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}
