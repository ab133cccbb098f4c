package types

// SuccessEnvelope is the canonical success response shape. Every endpoint
// answers with one shape so clients never parse per-screen variants.
type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

// BulkDeleteResult aggregates a bulk delete: deletions are independent and a
// failed id never rolls back the others.
type BulkDeleteResult struct {
	Deleted []string           `json:"deleted"`
	Failed  []BulkDeleteFailed `json:"failed"`
}

type BulkDeleteFailed struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}
