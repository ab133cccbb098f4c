package middleware

import (
	"net/http"
	"strings"
)

const methodOverrideField = "_method"

// MethodOverride rewrites POST requests carrying a _method form field
// into the verb it names. Browsers cannot send multipart bodies with
// PUT or DELETE, so edit forms post with _method=PUT instead.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if spoofed := spoofedMethod(r); spoofed != "" {
				r.Method = spoofed
			}
		}
		next.ServeHTTP(w, r)
	})
}

func spoofedMethod(r *http.Request) string {
	var raw string

	ct := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(ct, "multipart/form-data"):
		// PostFormValue parses the multipart body into r.MultipartForm,
		// which handlers re-read instead of the consumed body stream.
		raw = r.PostFormValue(methodOverrideField)
	case strings.HasPrefix(ct, "application/x-www-form-urlencoded"):
		raw = r.PostFormValue(methodOverrideField)
	default:
		raw = r.URL.Query().Get(methodOverrideField)
	}

	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case http.MethodPut:
		return http.MethodPut
	case http.MethodPatch:
		return http.MethodPatch
	case http.MethodDelete:
		return http.MethodDelete
	}
	return ""
}
