package configurator

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vanari-rv/caravan-configurator/pkg/enums"
)

// Session is the wizard state for one visitor, stored as JSON in Redis
// under a TTL. Selections accumulate as the visitor moves forward and
// survive moving back.
type Session struct {
	ID   string           `json:"id"`
	Step enums.WizardStep `json:"step"`

	VehicleModelID *uuid.UUID `json:"vehicle_model_id,omitempty"`
	ThemeID        *uuid.UUID `json:"theme_id,omitempty"`
	BaseColorID    *uuid.UUID `json:"base_color_id,omitempty"`
	DecalColorID   *uuid.UUID `json:"decal_color_id,omitempty"`

	ManufacturerOptionIDs []uuid.UUID `json:"manufacturer_option_ids,omitempty"`
	VanariOptionIDs       []uuid.UUID `json:"vanari_option_ids,omitempty"`

	// OrderID is set once the session has been submitted.
	OrderID *uuid.UUID `json:"order_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Submitted reports whether the session has produced an order.
func (s *Session) Submitted() bool {
	return s.OrderID != nil
}

// SessionStore is the Redis surface the configurator depends on. The
// concrete redis client satisfies it; tests use a map-backed fake.
type SessionStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	SessionKey(sessionID string) string
}
