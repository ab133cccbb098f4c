package controllers

import (
	"net/http"

	"github.com/vanari-rv/caravan-configurator/api/responses"
	"github.com/vanari-rv/caravan-configurator/api/validators"
	imagesvc "github.com/vanari-rv/caravan-configurator/internal/modelimages"
	"github.com/vanari-rv/caravan-configurator/internal/uploads"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/logger"
)

const renderingUploadFolder = "renderings"

// Exterior renderings: one image per model + base/decal color pair.

func ListModelColorImages(svc imagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, _, err := validators.ParsePageParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		page, err := svc.ListColorImages(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

func GetModelColorImage(svc imagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		image, err := svc.GetColorImage(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, image)
	}
}

func CreateModelColorImage(svc imagesvc.Service, uploadSvc uploads.Service, maxUploadMB int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := decodeColorImageInput(r, uploadSvc, maxUploadMB)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		image, err := svc.CreateColorImage(r.Context(), *payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, image)
	}
}

func UpdateModelColorImage(svc imagesvc.Service, uploadSvc uploads.Service, maxUploadMB int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		payload, err := decodeColorImageInput(r, uploadSvc, maxUploadMB)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		image, err := svc.UpdateColorImage(r.Context(), id, *payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, image)
	}
}

func decodeColorImageInput(r *http.Request, uploadSvc uploads.Service, maxUploadMB int) (*imagesvc.ColorImageInput, error) {
	var payload imagesvc.ColorImageInput
	if !validators.IsMultipart(r) {
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return &payload, nil
	}

	if err := validators.ParseMultipart(r, maxUploadMB); err != nil {
		return nil, err
	}
	payload.VehicleModelID = validators.FormValue(r, "vehicle_model_id")
	payload.BaseColorID = validators.FormValue(r, "base_color_id")
	payload.DecalColorID = validators.FormValue(r, "decal_color_id")

	stored, err := storeUpload(r, uploadSvc, "image", renderingUploadFolder)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image file is required")
	}
	payload.Image = *stored

	if err := validators.ValidateStruct(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func DeleteModelColorImage(svc imagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteColorImage(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func BulkDeleteModelColorImages(svc imagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids, err := parseBulkDeleteIDs(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		result, err := svc.BulkDeleteColorImages(r.Context(), ids)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// Interior renderings: one image per model + theme pair.

func ListModelThemeImages(svc imagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, _, err := validators.ParsePageParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		page, err := svc.ListThemeImages(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

func GetModelThemeImage(svc imagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		image, err := svc.GetThemeImage(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, image)
	}
}

func CreateModelThemeImage(svc imagesvc.Service, uploadSvc uploads.Service, maxUploadMB int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := decodeThemeImageInput(r, uploadSvc, maxUploadMB)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		image, err := svc.CreateThemeImage(r.Context(), *payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, image)
	}
}

func UpdateModelThemeImage(svc imagesvc.Service, uploadSvc uploads.Service, maxUploadMB int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		payload, err := decodeThemeImageInput(r, uploadSvc, maxUploadMB)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		image, err := svc.UpdateThemeImage(r.Context(), id, *payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, image)
	}
}

func decodeThemeImageInput(r *http.Request, uploadSvc uploads.Service, maxUploadMB int) (*imagesvc.ThemeImageInput, error) {
	var payload imagesvc.ThemeImageInput
	if !validators.IsMultipart(r) {
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return &payload, nil
	}

	if err := validators.ParseMultipart(r, maxUploadMB); err != nil {
		return nil, err
	}
	payload.VehicleModelID = validators.FormValue(r, "vehicle_model_id")
	payload.ThemeID = validators.FormValue(r, "theme_id")

	stored, err := storeUpload(r, uploadSvc, "image", renderingUploadFolder)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image file is required")
	}
	payload.Image = *stored

	if err := validators.ValidateStruct(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func DeleteModelThemeImage(svc imagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteThemeImage(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func BulkDeleteModelThemeImages(svc imagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids, err := parseBulkDeleteIDs(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		result, err := svc.BulkDeleteThemeImages(r.Context(), ids)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
