package validators

import (
	"mime/multipart"
	"net/http"
	"strings"

	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
)

// ParseMultipart parses a multipart form body, bounding the in-memory size.
func ParseMultipart(r *http.Request, maxUploadMB int) error {
	if maxUploadMB <= 0 {
		maxUploadMB = 20
	}
	if err := r.ParseMultipartForm(int64(maxUploadMB) << 20); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form")
	}
	return nil
}

// IsMultipart reports whether the request carries a multipart form body.
func IsMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// FormValue returns a trimmed multipart/urlencoded form value.
func FormValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

// FormFileOptional returns the uploaded file header for the field, or nil when
// the field is absent.
func FormFileOptional(r *http.Request, field string) (*multipart.FileHeader, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil, nil
	}
	return headers[0], nil
}
