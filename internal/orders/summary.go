package orders

import (
	"github.com/vanari-rv/caravan-configurator/pkg/db/models"
	"github.com/vanari-rv/caravan-configurator/pkg/enums"
	"github.com/vanari-rv/caravan-configurator/pkg/shareconfig"
)

// SummaryPayload rebuilds the share-link selection state from a stored
// order. Unlike the live wizard hand-off it only sees what was actually
// persisted, so selections whose catalog rows vanished before submission
// are absent.
func SummaryPayload(order *models.Order) shareconfig.Payload {
	payload := shareconfig.Payload{
		Model:   order.VehicleModelID.String(),
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
	if order.ThemeID != nil {
		selection := &shareconfig.ThemeSelection{ThemeID: order.ThemeID.String()}
		if order.Theme != nil {
			selection.ThemeName = order.Theme.Name
		}
		payload.Color = selection
	}

	for _, orderColor := range order.Colors {
		if payload.ExternalOptions == nil {
			payload.ExternalOptions = &shareconfig.ExternalColors{}
		}
		switch orderColor.Role {
		case "base":
			payload.ExternalOptions.BaseColorID = orderColor.ColorID.String()
		case "decal":
			payload.ExternalOptions.DecalColorID = orderColor.ColorID.String()
		}
	}

	for _, orderOption := range order.Options {
		switch orderOption.Type {
		case enums.OptionTypeManufacturer:
			if payload.ManufacturerOptions == nil {
				payload.ManufacturerOptions = map[string]bool{}
			}
			payload.ManufacturerOptions[orderOption.AdditionalOptionID.String()] = true
		case enums.OptionTypeVanari:
			if payload.VanariOptions == nil {
				payload.VanariOptions = map[string]bool{}
			}
			payload.VanariOptions[orderOption.AdditionalOptionID.String()] = true
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
	return payload
}

// SummaryURL builds the public order-summary link for a stored order.
func SummaryURL(baseURL string, order *models.Order) (string, error) {
	return shareconfig.ShareURL(baseURL, order.ID.String(), SummaryPayload(order))
}
