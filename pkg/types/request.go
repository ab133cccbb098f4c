package types

// BulkDeleteInput is the shared body for every bulk-delete endpoint.
type BulkDeleteInput struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}
