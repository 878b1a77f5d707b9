package update_amenity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AmenityService/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityService/internal/service/amenities"
	"github.com/m04kA/SMC-AmenityService/internal/service/amenities/models"
)

const (
	msgInvalidAmenityID   = "некорректный ID помещения"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAmenity     = "некорректные данные помещения"
	msgNotFound           = "помещение не найдено"
)

type Handler struct {
	service AmenityService
	logger  Logger
}

func NewHandler(service AmenityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/amenities/{amenityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	amenityID, err := strconv.ParseInt(vars["amenityId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /amenities/{id} - Invalid amenity ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAmenityID)
		return
	}

	var req models.UpdateAmenityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /amenities/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), amenityID, &req)
	if err != nil {
		switch {
		case errors.Is(err, amenities.ErrAmenityNotFound):
			h.logger.Warn("PUT /amenities/{id} - Amenity not found: amenity_id=%d", amenityID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, amenities.ErrInvalidInput):
			h.logger.Warn("PUT /amenities/{id} - Validation failed: amenity_id=%d, %v", amenityID, err)
			handlers.RespondBadRequest(w, msgInvalidAmenity)

		default:
			h.logger.Error("PUT /amenities/{id} - Failed to update amenity: amenity_id=%d, error=%v", amenityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /amenities/{id} - Amenity updated: amenity_id=%d", amenityID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
