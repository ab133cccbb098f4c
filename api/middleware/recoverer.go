package middleware

import (
	"fmt"
	"net/http"

	"github.com/vanari-rv/caravan-configurator/api/responses"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/logger"
)

// Recoverer converts handler panics into a generic 500 response so a
// single bad request cannot take the process down.
func Recoverer(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					err := pkgerrors.New(pkgerrors.CodeInternal, fmt.Sprintf("panic: %v", rec))
					responses.WriteError(r.Context(), log, w, err)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
