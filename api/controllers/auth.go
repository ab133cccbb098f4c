package controllers

import (
	"net/http"

	"github.com/vanari-rv/caravan-configurator/api/middleware"
	"github.com/vanari-rv/caravan-configurator/api/responses"
	"github.com/vanari-rv/caravan-configurator/api/validators"
	authsvc "github.com/vanari-rv/caravan-configurator/internal/auth"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/logger"
)

// Logout revokes the presented access token for the rest of its
// lifetime.
func Logout(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := middleware.BearerToken(r)
		if raw == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing bearer token"))
			return
		}
		if err := svc.Logout(r.Context(), raw); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}

type passwordEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SendPasswordEmail issues a password reset link. The response is the
// same whether or not the address exists; only the rate limit surfaces.
func SendPasswordEmail(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload passwordEmailRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.SendPasswordResetEmail(r.Context(), payload.Email); err != nil {
			if pkgerrors.As(err).Code() == pkgerrors.CodeRateLimit {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			// Swallow lookup failures so the endpoint cannot be used to
			// probe which addresses are registered.
			if logg != nil {
				logg.Error(r.Context(), "auth.password_email_failed", err)
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "sent"})
	}
}
