package controllers

import (
	"net/http"
	"strconv"

	"github.com/vanari-rv/caravan-configurator/api/responses"
	"github.com/vanari-rv/caravan-configurator/api/validators"
	"github.com/vanari-rv/caravan-configurator/internal/uploads"
	modelsvc "github.com/vanari-rv/caravan-configurator/internal/vehiclemodels"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/logger"
)

const modelUploadFolder = "models"

func ListVehicleModels(svc modelsvc.Service, logg *logger.Logger) http.HandlerFunc {
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

// ListVehicleModelsByCategory serves the configurator's model step
// filtered to one category.
func ListVehicleModelsByCategory(svc modelsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := validators.ParseURLParamUUID(r, "categoryId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		rows, err := svc.ListByCategory(r.Context(), categoryID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

func GetVehicleModel(svc modelsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		model, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, model)
	}
}

func CreateVehicleModel(svc modelsvc.Service, uploadSvc uploads.Service, maxUploadMB int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := decodeModelInput(r, uploadSvc, maxUploadMB)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		model, err := svc.Create(r.Context(), *payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, model)
	}
}

func UpdateVehicleModel(svc modelsvc.Service, uploadSvc uploads.Service, maxUploadMB int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		payload, err := decodeModelInput(r, uploadSvc, maxUploadMB)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		model, err := svc.Update(r.Context(), id, *payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, model)
	}
}

func decodeModelInput(r *http.Request, uploadSvc uploads.Service, maxUploadMB int) (*modelsvc.ModelInput, error) {
	var payload modelsvc.ModelInput
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
	payload.Description = optionalFormValue(r, "description")
	payload.CategoryID = validators.FormValue(r, "category_id")
	payload.BasePrice = validators.FormValue(r, "base_price")
	payload.Price = validators.FormValue(r, "price")

	if raw := validators.FormValue(r, "sleep_person"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "sleep_person must be numeric")
		}
		payload.SleepPerson = value
	}

	inner, err := storeUpload(r, uploadSvc, "inner_image", modelUploadFolder)
	if err != nil {
		return nil, err
	}
	payload.InnerImage = inner

	outer, err := storeUpload(r, uploadSvc, "outer_image", modelUploadFolder)
	if err != nil {
		return nil, err
	}
	payload.OuterImage = outer

	gallery, err := storeUploads(r, uploadSvc, "gallery_images", modelUploadFolder)
	if err != nil {
		return nil, err
	}
	payload.GalleryImages = gallery

	if err := validators.ValidateStruct(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func DeleteVehicleModel(svc modelsvc.Service, logg *logger.Logger) http.HandlerFunc {
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

func BulkDeleteVehicleModels(svc modelsvc.Service, logg *logger.Logger) http.HandlerFunc {
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
