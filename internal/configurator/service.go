package configurator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vanari-rv/caravan-configurator/internal/colors"
	"github.com/vanari-rv/caravan-configurator/internal/modelimages"
	"github.com/vanari-rv/caravan-configurator/internal/options"
	"github.com/vanari-rv/caravan-configurator/internal/orders"
	"github.com/vanari-rv/caravan-configurator/internal/themes"
	"github.com/vanari-rv/caravan-configurator/internal/vehiclemodels"
	"github.com/vanari-rv/caravan-configurator/pkg/config"
	"github.com/vanari-rv/caravan-configurator/pkg/db/models"
	"github.com/vanari-rv/caravan-configurator/pkg/enums"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/logger"
	pkgredis "github.com/vanari-rv/caravan-configurator/pkg/redis"
	"github.com/vanari-rv/caravan-configurator/pkg/shareconfig"
)

// Color type groupings the exterior step reads from.
const (
	BaseColorTypeName  = "External Base Colours"
	DecalColorTypeName = "External Decal Colours"
)

// Service drives the six-step build wizard: session state, step
// transitions, live pricing, and the final order hand-off.
type Service interface {
	StartSession(ctx context.Context) (*Session, error)
	GetSession(ctx context.Context, id string) (*Session, error)
	Advance(ctx context.Context, id string, in AdvanceInput) (*Session, error)
	Back(ctx context.Context, id string) (*Session, error)
	StepCatalog(ctx context.Context, id string) (*StepCatalog, error)
	Price(ctx context.Context, id string) (*PriceBreakdown, error)
	Submit(ctx context.Context, id string, in SubmitInput) (*SubmissionResult, error)
	DecodeShare(value string) (*shareconfig.Payload, error)
}

type service struct {
	cfg     config.ConfiguratorConfig
	baseURL string
	store   SessionStore

	models  vehiclemodels.Service
	themes  themes.Service
	colors  colors.Service
	options options.Service
	images  modelimages.Service
	orders  orders.Service

	log *logger.Logger
	now func() time.Time
}

func NewService(
	cfg config.ConfiguratorConfig,
	baseURL string,
	store SessionStore,
	modelSvc vehiclemodels.Service,
	themeSvc themes.Service,
	colorSvc colors.Service,
	optionSvc options.Service,
	imageSvc modelimages.Service,
	orderSvc orders.Service,
	log *logger.Logger,
) Service {
	if store == nil {
		panic("configurator: session store is required")
	}
	if modelSvc == nil || themeSvc == nil || colorSvc == nil || optionSvc == nil || imageSvc == nil || orderSvc == nil {
		panic("configurator: all catalog services are required")
	}
	return &service{
		cfg:     cfg,
		baseURL: baseURL,
		store:   store,
		models:  modelSvc,
		themes:  themeSvc,
		colors:  colorSvc,
		options: optionSvc,
		images:  imageSvc,
		orders:  orderSvc,
		log:     log,
		now:     time.Now,
	}
}

func (s *service) StartSession(ctx context.Context) (*Session, error) {
	now := s.now().UTC()
	session := &Session{
		ID:        uuid.NewString(),
		Step:      enums.WizardStepFirst,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	if s.log != nil {
		s.log.Info(s.log.WithSessionID(ctx, session.ID), "configurator.session_started")
	}
	return session, nil
}

func (s *service) GetSession(ctx context.Context, id string) (*Session, error) {
	return s.load(ctx, id)
}

func (s *service) Advance(ctx context.Context, id string, in AdvanceInput) (*Session, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Submitted() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "session has already been submitted")
	}

	step := enums.WizardStep(in.Step)
	if step != session.Step {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("session is on step %d, got step %d", session.Step, in.Step))
	}
	if step == enums.WizardStepLast {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "final step is completed via submit")
	}

	if err := s.applyStep(ctx, session, step, in); err != nil {
		return nil, err
	}

	session.Step = step + 1
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *service) Back(ctx context.Context, id string) (*Session, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Submitted() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "session has already been submitted")
	}
	if session.Step <= enums.WizardStepFirst {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "session is already on the first step")
	}

	// Selections are kept; moving back only changes the cursor.
	session.Step--
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *service) applyStep(ctx context.Context, session *Session, step enums.WizardStep, in AdvanceInput) error {
	switch step {
	case enums.WizardStepModel:
		if in.Model == nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "model selection is required")
		}
		modelID, err := uuid.Parse(in.Model.VehicleModelID)
		if err != nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "vehicle_model_id must be a valid uuid")
		}
		if _, err := s.models.Get(ctx, modelID); err != nil {
			return err
		}
		if session.VehicleModelID == nil || *session.VehicleModelID != modelID {
			// Switching models invalidates downstream selections.
			session.ThemeID = nil
			session.BaseColorID = nil
			session.DecalColorID = nil
			session.ManufacturerOptionIDs = nil
			session.VanariOptionIDs = nil
		}
		session.VehicleModelID = &modelID

	case enums.WizardStepTheme:
		if in.Theme == nil || in.Theme.ThemeID == nil {
			session.ThemeID = nil
			return nil
		}
		themeID, err := uuid.Parse(*in.Theme.ThemeID)
		if err != nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "theme_id must be a valid uuid")
		}
		if _, err := s.themes.Get(ctx, themeID); err != nil {
			return err
		}
		session.ThemeID = &themeID

	case enums.WizardStepExternalColors:
		if in.Colors == nil {
			session.BaseColorID = nil
			session.DecalColorID = nil
			return nil
		}
		baseID, err := s.resolveColor(ctx, in.Colors.BaseColorID, "base_color_id")
		if err != nil {
			return err
		}
		decalID, err := s.resolveColor(ctx, in.Colors.DecalColorID, "decal_color_id")
		if err != nil {
			return err
		}
		session.BaseColorID = baseID
		session.DecalColorID = decalID

	case enums.WizardStepManufacturerOptions:
		ids, err := parseOptionIDs(in.Options)
		if err != nil {
			return err
		}
		session.ManufacturerOptionIDs = ids

	case enums.WizardStepVanariOptions:
		ids, err := parseOptionIDs(in.Options)
		if err != nil {
			return err
		}
		session.VanariOptionIDs = ids

	default:
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown wizard step")
	}
	return nil
}

func (s *service) resolveColor(ctx context.Context, raw *string, field string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	colorID, err := uuid.Parse(*raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, field+" must be a valid uuid")
	}
	if _, err := s.colors.Get(ctx, colorID); err != nil {
		return nil, err
	}
	return &colorID, nil
}

// parseOptionIDs validates uuid shape only. Ids pointing at removed
// options stay in the session and simply price at zero.
func parseOptionIDs(step *OptionsStep) ([]uuid.UUID, error) {
	if step == nil || len(step.OptionIDs) == 0 {
		return nil, nil
	}
	seen := map[uuid.UUID]bool{}
	ids := make([]uuid.UUID, 0, len(step.OptionIDs))
	for _, raw := range step.OptionIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "option_ids must be valid uuids")
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *service) StepCatalog(ctx context.Context, id string) (*StepCatalog, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	catalog := &StepCatalog{Step: session.Step.String()}

	switch session.Step {
	case enums.WizardStepModel:
		rows, err := s.models.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		catalog.Models = rows

	case enums.WizardStepTheme:
		rows, err := s.themes.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		catalog.Themes = rows
		if session.VehicleModelID != nil && session.ThemeID != nil {
			preview, err := s.images.FindThemeImage(ctx, *session.VehicleModelID, *session.ThemeID)
			if err != nil {
				return nil, err
			}
			catalog.ThemePreview = preview
		}

	case enums.WizardStepExternalColors:
		base, err := s.colors.ListActiveByType(ctx, BaseColorTypeName)
		if err != nil {
			return nil, err
		}
		decal, err := s.colors.ListActiveByType(ctx, DecalColorTypeName)
		if err != nil {
			return nil, err
		}
		catalog.BaseColors = base
		catalog.DecalColors = decal
		if session.VehicleModelID != nil && session.BaseColorID != nil && session.DecalColorID != nil {
			preview, err := s.images.FindColorImage(ctx, *session.VehicleModelID, *session.BaseColorID, *session.DecalColorID)
			if err != nil {
				return nil, err
			}
			catalog.ColorPreview = preview
		}

	case enums.WizardStepManufacturerOptions:
		catalog.Options, err = s.optionsForStep(ctx, session, enums.OptionTypeManufacturer)
		if err != nil {
			return nil, err
		}

	case enums.WizardStepVanariOptions:
		catalog.Options, err = s.optionsForStep(ctx, session, enums.OptionTypeVanari)
		if err != nil {
			return nil, err
		}
	}

	return catalog, nil
}

func (s *service) optionsForStep(ctx context.Context, session *Session, optionType enums.OptionType) ([]models.AdditionalOption, error) {
	if session.VehicleModelID == nil {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "no model selected")
	}
	return s.options.ListForModel(ctx, *session.VehicleModelID, optionType)
}

// Price totals the model base price and every selected add-on that
// still exists. Removed options are skipped rather than failing the
// whole quote.
func (s *service) Price(ctx context.Context, id string) (*PriceBreakdown, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	breakdown, _, err := s.price(ctx, session)
	return breakdown, err
}

// price also returns the resolved option rows so Submit can snapshot them
// without a second lookup.
func (s *service) price(ctx context.Context, session *Session) (*PriceBreakdown, []models.AdditionalOption, error) {
	if session.VehicleModelID == nil {
		return nil, nil, pkgerrors.New(pkgerrors.CodeStateConflict, "no model selected")
	}

	model, err := s.models.Get(ctx, *session.VehicleModelID)
	if err != nil {
		return nil, nil, err
	}

	selected := append(append([]uuid.UUID{}, session.ManufacturerOptionIDs...), session.VanariOptionIDs...)
	rows, err := s.options.GetMany(ctx, selected)
	if err != nil {
		return nil, nil, err
	}

	breakdown := &PriceBreakdown{
		BasePrice: model.BasePrice,
		Options:   []PriceLine{},
		Total:     model.BasePrice,
	}
	for _, row := range rows {
		breakdown.Options = append(breakdown.Options, PriceLine{
			ID:    row.ID.String(),
			Name:  row.Name,
			Price: row.Price,
		})
		breakdown.Total = breakdown.Total.Add(row.Price)
	}
	return breakdown, rows, nil
}

func (s *service) Submit(ctx context.Context, id string, in SubmitInput) (*SubmissionResult, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Submitted() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "session has already been submitted")
	}
	if session.Step != enums.WizardStepLast {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("session is on step %d, submit requires step %d", session.Step, enums.WizardStepLast))
	}

	breakdown, optionRows, err := s.price(ctx, session)
	if err != nil {
		return nil, err
	}

	orderInput := orders.CreateOrderInput{
		VehicleModelID: *session.VehicleModelID,
		ThemeID:        session.ThemeID,
		BasePrice:      breakdown.BasePrice,
		TotalPrice:     breakdown.Total,
		Customer:       in.Customer,
	}
	if session.BaseColorID != nil {
		orderInput.Colors = append(orderInput.Colors, orders.ColorSelection{ColorID: *session.BaseColorID, Role: "base"})
	}
	if session.DecalColorID != nil {
		orderInput.Colors = append(orderInput.Colors, orders.ColorSelection{ColorID: *session.DecalColorID, Role: "decal"})
	}
	for _, row := range optionRows {
		orderInput.Options = append(orderInput.Options, orders.OptionSnapshot{
			OptionID: row.ID,
			Name:     row.Name,
			Price:    row.Price,
			Type:     row.Type,
		})
	}

	order, err := s.orders.Create(ctx, orderInput)
	if err != nil {
		return nil, err
	}

	session.OrderID = &order.ID
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	shareURL, err := s.buildShareURL(session, order)
	if err != nil {
		return nil, err
	}

	if s.log != nil {
		ctx = s.log.WithSessionID(ctx, session.ID)
		s.log.Info(s.log.WithField(ctx, "order_id", order.ID), "configurator.submitted")
	}
	return &SubmissionResult{Order: order, ShareURL: shareURL}, nil
}

func (s *service) buildShareURL(session *Session, order *models.Order) (string, error) {
	payload := shareconfig.Payload{
		Model:   session.VehicleModelID.String(),
		OrderID: order.ID.String(),
	}
	if order.VehicleModel != nil {
		payload.ModelData = &shareconfig.ModelData{
			ID:          order.VehicleModel.ID.String(),
			Name:        order.VehicleModel.Name,
			SleepPerson: order.VehicleModel.SleepPerson,
			BasePrice:   order.VehicleModel.BasePrice.String(),
		}
	}
	if session.ThemeID != nil {
		selection := &shareconfig.ThemeSelection{ThemeID: session.ThemeID.String()}
		if order.Theme != nil {
			selection.ThemeName = order.Theme.Name
		}
		payload.Color = selection
	}
	if session.BaseColorID != nil || session.DecalColorID != nil {
		external := &shareconfig.ExternalColors{}
		if session.BaseColorID != nil {
			external.BaseColorID = session.BaseColorID.String()
		}
		if session.DecalColorID != nil {
			external.DecalColorID = session.DecalColorID.String()
		}
		payload.ExternalOptions = external
	}
	if len(session.ManufacturerOptionIDs) > 0 {
		payload.ManufacturerOptions = map[string]bool{}
		for _, optionID := range session.ManufacturerOptionIDs {
			payload.ManufacturerOptions[optionID.String()] = true
		}
	}
	if len(session.VanariOptionIDs) > 0 {
		payload.VanariOptions = map[string]bool{}
		for _, optionID := range session.VanariOptionIDs {
			payload.VanariOptions[optionID.String()] = true
		}
	}
	if order.CustomerInfo != nil {
		contact := &shareconfig.ContactInfo{
			FirstName: order.CustomerInfo.FirstName,
			LastName:  order.CustomerInfo.LastName,
			Email:     order.CustomerInfo.Email,
			Phone:     order.CustomerInfo.Phone,
		}
		if order.CustomerInfo.Postcode != nil {
			contact.Postcode = *order.CustomerInfo.Postcode
		}
		if order.CustomerInfo.Message != nil {
			contact.Message = *order.CustomerInfo.Message
		}
		payload.ContactInfo = contact
	}

	return shareconfig.ShareURL(s.baseURL, order.ID.String(), payload)
}

func (s *service) DecodeShare(value string) (*shareconfig.Payload, error) {
	return shareconfig.Decode(value, s.cfg.ShareConfigLimit)
}

func (s *service) load(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	raw, err := s.store.Get(ctx, s.store.SessionKey(id))
	if errors.Is(err, pkgredis.Nil) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "session not found or expired")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading session")
	}

	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decoding session")
	}
	return &session, nil
}

func (s *service) save(ctx context.Context, session *Session) error {
	session.UpdatedAt = s.now().UTC()
	raw, err := json.Marshal(session)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding session")
	}
	if err := s.store.Set(ctx, s.store.SessionKey(session.ID), string(raw), s.cfg.SessionTTL); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving session")
	}
	return nil
}
