// Package shareconfig implements the `config` query-parameter hand-off
// between the configurator and the order summary page: URL-encoded JSON of
// the full wizard selection state.
package shareconfig

import (
	"encoding/json"
	"fmt"
	"net/url"

	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
)

// ParamName is the query parameter the summary page reads.
const ParamName = "config"

// DefaultMaxBytes caps the decoded JSON size. The legacy hand-off had no cap
// and broke silently at browser URL limits; oversized payloads are rejected
// up front instead.
const DefaultMaxBytes = 8192

// Payload is the wizard selection state carried in the share link.
type Payload struct {
	Model               string          `json:"model"`
	ModelData           *ModelData      `json:"model_data,omitempty"`
	Color               *ThemeSelection `json:"color,omitempty"`
	ExternalOptions     *ExternalColors `json:"external_options,omitempty"`
	ManufacturerOptions map[string]bool `json:"manufacturer_options,omitempty"`
	VanariOptions       map[string]bool `json:"vanari_options,omitempty"`
	ContactInfo         *ContactInfo    `json:"contact_info,omitempty"`
	OrderID             string          `json:"order_id,omitempty"`
}

// ModelData snapshots the picked model's display fields.
type ModelData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SleepPerson int    `json:"sleep_person"`
	BasePrice   string `json:"base_price"`
}

// ThemeSelection records the interior theme pick.
type ThemeSelection struct {
	ThemeID   string `json:"theme_id"`
	ThemeName string `json:"theme_name"`
}

// ExternalColors records the exterior base/decal color picks.
type ExternalColors struct {
	BaseColorID  string `json:"base_color_id"`
	DecalColorID string `json:"decal_color_id"`
}

// ContactInfo mirrors the contact block from the final step.
type ContactInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Postcode  string `json:"postcode,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Normalize drops falsy entries from the selection maps. The maps hold only
// truthy entries by contract; absence means unselected.
func (p *Payload) Normalize() {
	for id, selected := range p.ManufacturerOptions {
		if !selected {
			delete(p.ManufacturerOptions, id)
		}
	}
	for id, selected := range p.VanariOptions {
		if !selected {
			delete(p.VanariOptions, id)
		}
	}
}

// Encode serializes the payload into the query-parameter value.
func Encode(payload Payload) (string, error) {
	payload.Normalize()
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal share config: %w", err)
	}
	return url.QueryEscape(string(raw)), nil
}

// Decode parses a query-parameter value back into a payload, enforcing the
// size cap before unmarshalling. The value must already be unescaped, as
// url.Values hands it out; unescaping here again would corrupt payloads
// whose JSON contains `+` or percent sequences.
func Decode(value string, maxBytes int) (*Payload, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	raw := value
	if len(raw) > maxBytes {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "config parameter exceeds size limit").
			WithDetails(map[string]any{"max_bytes": maxBytes, "got_bytes": len(raw)})
	}

	var payload Payload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "config parameter is not valid JSON")
	}
	payload.Normalize()
	return &payload, nil
}

// ShareURL builds the summary link carrying both the backend order id and the
// legacy config payload.
func ShareURL(baseURL string, orderID string, payload Payload) (string, error) {
	encoded, err := Encode(payload)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	u.Path = "/order-summary"
	q := u.Query()
	q.Set("order", orderID)
	u.RawQuery = q.Encode()
	// Encode already query-escaped the payload; append verbatim so the decode
	// side sees exactly one escaping layer.
	if u.RawQuery != "" {
		u.RawQuery += "&"
	}
	u.RawQuery += ParamName + "=" + encoded
	return u.String(), nil
}
