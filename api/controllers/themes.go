package controllers

import (
	"net/http"

	"github.com/vanari-rv/caravan-configurator/api/responses"
	"github.com/vanari-rv/caravan-configurator/api/validators"
	themesvc "github.com/vanari-rv/caravan-configurator/internal/themes"
	"github.com/vanari-rv/caravan-configurator/internal/uploads"
	"github.com/vanari-rv/caravan-configurator/pkg/logger"
)

const themeUploadFolder = "themes"

// themeImageFields maps each multipart file field to the ThemeInput
// slot it fills.
var themeImageFields = []string{
	"image",
	"flooring_image",
	"flooring_variant_image",
	"cabinetry_image",
	"table_top_image",
	"seating_image",
	"seating_variant_image",
}

func ListThemes(svc themesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, search, err := validators.ParsePageParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		page, err := svc.List(r.Context(), params, search)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

func GetTheme(svc themesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		theme, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, theme)
	}
}

func CreateTheme(svc themesvc.Service, uploadSvc uploads.Service, maxUploadMB int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := decodeThemeInput(r, uploadSvc, maxUploadMB)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		theme, err := svc.Create(r.Context(), *payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, theme)
	}
}

func UpdateTheme(svc themesvc.Service, uploadSvc uploads.Service, maxUploadMB int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		payload, err := decodeThemeInput(r, uploadSvc, maxUploadMB)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		theme, err := svc.Update(r.Context(), id, *payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, theme)
	}
}

func decodeThemeInput(r *http.Request, uploadSvc uploads.Service, maxUploadMB int) (*themesvc.ThemeInput, error) {
	var payload themesvc.ThemeInput
	if !validators.IsMultipart(r) {
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return &payload, nil
	}

	if err := validators.ParseMultipart(r, maxUploadMB); err != nil {
		return nil, err
	}
	payload.Name = validators.FormValue(r, "name")
	payload.FlooringName = validators.FormValue(r, "flooring_name")
	payload.FlooringVariantName = optionalFormValue(r, "flooring_variant_name")
	payload.CabinetryName = validators.FormValue(r, "cabinetry_name")
	payload.TableTopName = validators.FormValue(r, "table_top_name")
	payload.SeatingName = validators.FormValue(r, "seating_name")
	payload.SeatingVariantName = optionalFormValue(r, "seating_variant_name")

	images := map[string]**string{
		"image":                  &payload.Image,
		"flooring_image":         &payload.FlooringImage,
		"flooring_variant_image": &payload.FlooringVariantImage,
		"cabinetry_image":        &payload.CabinetryImage,
		"table_top_image":        &payload.TableTopImage,
		"seating_image":          &payload.SeatingImage,
		"seating_variant_image":  &payload.SeatingVariantImage,
	}
	for _, field := range themeImageFields {
		stored, err := storeUpload(r, uploadSvc, field, themeUploadFolder)
		if err != nil {
			return nil, err
		}
		if stored != nil {
			*images[field] = stored
		}
	}

	if err := validators.ValidateStruct(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func DeleteTheme(svc themesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func BulkDeleteThemes(svc themesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids, err := parseBulkDeleteIDs(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		result, err := svc.BulkDelete(r.Context(), ids)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
