package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vanari-rv/caravan-configurator/pkg/config"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/logger"
	"github.com/vanari-rv/caravan-configurator/pkg/security"
)

// RoleAdmin is the role the admin panel's tokens carry.
const RoleAdmin = "admin"

// Claims is the access-token payload issued by the identity provider.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenStore is the Redis surface the auth service depends on. The
// concrete redis client satisfies it; tests use a map-backed fake.
type TokenStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
	DenylistKey(jti string) string
	ResetTokenKey(email string) string
}

// Service validates bearer tokens, revokes them on logout, and drives
// the password-reset email flow.
type Service interface {
	VerifyAccessToken(ctx context.Context, raw string) (*Claims, error)
	Logout(ctx context.Context, raw string) error
	SendPasswordResetEmail(ctx context.Context, email string) error
}

type service struct {
	jwtCfg   config.JWTConfig
	resetCfg config.ResetTokenConfig
	limitCfg config.RateLimitConfig
	baseURL  string
	store    TokenStore
	mailer   Mailer
	log      *logger.Logger
	now      func() time.Time
}

func NewService(
	jwtCfg config.JWTConfig,
	resetCfg config.ResetTokenConfig,
	limitCfg config.RateLimitConfig,
	baseURL string,
	store TokenStore,
	mailer Mailer,
	log *logger.Logger,
) Service {
	if store == nil {
		panic("auth: token store is required")
	}
	if mailer == nil {
		panic("auth: mailer is required")
	}
	return &service{
		jwtCfg:   jwtCfg,
		resetCfg: resetCfg,
		limitCfg: limitCfg,
		baseURL:  strings.TrimRight(baseURL, "/"),
		store:    store,
		mailer:   mailer,
		log:      log,
		now:      time.Now,
	}
}

func (s *service) VerifyAccessToken(ctx context.Context, raw string) (*Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing bearer token")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(s.jwtCfg.Secret), nil
	},
		jwt.WithIssuer(s.jwtCfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("token rejected")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token")
	}

	if claims.ID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "token has no id")
	}

	revoked, err := s.store.Exists(ctx, s.store.DenylistKey(claims.ID))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking token revocation")
	}
	if revoked {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "token has been revoked")
	}

	return claims, nil
}

// Logout revokes the token for the remainder of its lifetime. Verifying
// first means an already-expired token cannot be used to fill Redis.
func (s *service) Logout(ctx context.Context, raw string) error {
	claims, err := s.VerifyAccessToken(ctx, raw)
	if err != nil {
		return err
	}

	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if ttl <= 0 {
		ttl = time.Second
	}

	if err := s.store.Set(ctx, s.store.DenylistKey(claims.ID), "revoked", ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoking token")
	}

	if s.log != nil {
		s.log.Info(s.log.WithUserID(ctx, claims.Subject), "auth.logout")
	}
	return nil
}

func (s *service) SendPasswordResetEmail(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	allowed, _, err := s.store.FixedWindowAllow(
		ctx,
		"password_email:"+email,
		int64(s.limitCfg.PasswordEmailLimit),
		s.limitCfg.PasswordEmailWindow,
	)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting reset request")
	}
	if !allowed {
		return pkgerrors.New(pkgerrors.CodeRateLimit, "too many reset requests, try again later")
	}

	token, err := security.GenerateResetToken()
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generating reset token")
	}
	hashed, err := security.HashToken(token, s.resetCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing reset token")
	}

	// Only the hash is stored; the raw token exists in the email alone.
	if err := s.store.Set(ctx, s.store.ResetTokenKey(email), hashed, s.resetCfg.TTL); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storing reset token")
	}

	query := url.Values{}
	query.Set("email", email)
	query.Set("token", token)
	resetURL := fmt.Sprintf("%s/reset-password?%s", s.baseURL, query.Encode())
	if err := s.mailer.SendPasswordReset(ctx, email, resetURL); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sending reset email")
	}

	if s.log != nil {
		s.log.Info(s.log.WithField(ctx, "email", email), "auth.password_reset.sent")
	}
	return nil
}
