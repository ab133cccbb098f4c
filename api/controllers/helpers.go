package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/vanari-rv/caravan-configurator/api/validators"
	"github.com/vanari-rv/caravan-configurator/internal/uploads"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/types"
)

// parseBulkDeleteIDs reads the shared bulk-delete payload and parses
// each entry into a uuid.
func parseBulkDeleteIDs(r *http.Request) ([]uuid.UUID, error) {
	var payload types.BulkDeleteInput
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(payload.IDs))
	for _, raw := range payload.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid id in ids")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// storeUpload processes an optional multipart file field into a stored
// image path. Returns nil when the field is absent.
func storeUpload(r *http.Request, svc uploads.Service, field, folder string) (*string, error) {
	header, err := validators.FormFileOptional(r, field)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, nil
	}
	file, err := header.Open()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "opening uploaded file")
	}
	defer file.Close()

	stored, err := svc.SaveImage(r.Context(), file, header.Filename, folder)
	if err != nil {
		return nil, err
	}
	return &stored.Path, nil
}

// storeUploads processes every file attached to a multipart field.
func storeUploads(r *http.Request, svc uploads.Service, field, folder string) ([]string, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[field]
	paths := make([]string, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "opening uploaded file")
		}
		stored, err := svc.SaveImage(r.Context(), file, header.Filename, folder)
		file.Close()
		if err != nil {
			return nil, err
		}
		paths = append(paths, stored.Path)
	}
	return paths, nil
}

// optionalFormValue returns a pointer to a trimmed form value, or nil
// when the field was not submitted.
func optionalFormValue(r *http.Request, key string) *string {
	if r.Form == nil && r.MultipartForm == nil {
		return nil
	}
	values, ok := formValues(r, key)
	if !ok || len(values) == 0 {
		return nil
	}
	value := values[0]
	return &value
}

func formValues(r *http.Request, key string) ([]string, bool) {
	if r.MultipartForm != nil {
		if values, ok := r.MultipartForm.Value[key]; ok {
			return values, true
		}
	}
	if r.Form != nil {
		if values, ok := r.Form[key]; ok {
			return values, true
		}
	}
	return nil, false
}
