package configurator

import (
	"github.com/shopspring/decimal"

	"github.com/vanari-rv/caravan-configurator/internal/orders"
	"github.com/vanari-rv/caravan-configurator/pkg/db/models"
)

// AdvanceInput submits the current step's selections. Step names which
// wizard step the data belongs to; only the matching block is read.
type AdvanceInput struct {
	Step    int          `json:"step" validate:"required,min=1,max=5"`
	Model   *ModelStep   `json:"model,omitempty"`
	Theme   *ThemeStep   `json:"theme,omitempty"`
	Colors  *ColorStep   `json:"colors,omitempty"`
	Options *OptionsStep `json:"options,omitempty"`
}

// ModelStep picks the caravan model on step one.
type ModelStep struct {
	VehicleModelID string `json:"vehicle_model_id" validate:"required,uuid"`
}

// ThemeStep picks the interior theme on step two. The theme may be
// skipped entirely.
type ThemeStep struct {
	ThemeID *string `json:"theme_id" validate:"omitempty,uuid"`
}

// ColorStep picks exterior colors on step three. Either pick may be
// left open.
type ColorStep struct {
	BaseColorID  *string `json:"base_color_id" validate:"omitempty,uuid"`
	DecalColorID *string `json:"decal_color_id" validate:"omitempty,uuid"`
}

// OptionsStep toggles add-ons on steps four and five.
type OptionsStep struct {
	OptionIDs []string `json:"option_ids" validate:"omitempty,dive,uuid"`
}

// SubmitInput finishes the wizard with the visitor's contact details.
type SubmitInput struct {
	Customer orders.CustomerInput `json:"customer" validate:"required"`
}

// PriceLine is one selected add-on inside a price breakdown.
type PriceLine struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// PriceBreakdown is the running total for a session: the model's base
// price plus every currently selected add-on.
type PriceBreakdown struct {
	BasePrice decimal.Decimal `json:"base_price"`
	Options   []PriceLine     `json:"options"`
	Total     decimal.Decimal `json:"total"`
}

// StepCatalog carries the choices available at the session's current
// step, so the client renders each screen from one call.
type StepCatalog struct {
	Step         string                    `json:"step"`
	Models       []models.VehicleModel     `json:"models,omitempty"`
	Themes       []models.Theme            `json:"themes,omitempty"`
	ThemePreview *models.ModelThemeImage   `json:"theme_preview,omitempty"`
	BaseColors   []models.Color            `json:"base_colors,omitempty"`
	DecalColors  []models.Color            `json:"decal_colors,omitempty"`
	ColorPreview *models.ModelColorImage   `json:"color_preview,omitempty"`
	Options      []models.AdditionalOption `json:"options,omitempty"`
}

// SubmissionResult is returned when a session becomes an order.
type SubmissionResult struct {
	Order    *models.Order `json:"order"`
	ShareURL string        `json:"share_url"`
}
