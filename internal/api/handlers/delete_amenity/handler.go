package delete_amenity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AmenityService/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityService/internal/service/amenities"
)

const (
	msgInvalidAmenityID = "некорректный ID помещения"
	msgNotFound         = "помещение не найдено"
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

// Handle DELETE /api/v1/amenities/{amenityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	amenityID, err := strconv.ParseInt(vars["amenityId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /amenities/{id} - Invalid amenity ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAmenityID)
		return
	}

	if err := h.service.Delete(r.Context(), amenityID); err != nil {
		switch {
		case errors.Is(err, amenities.ErrAmenityNotFound):
			h.logger.Warn("DELETE /amenities/{id} - Amenity not found: amenity_id=%d", amenityID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /amenities/{id} - Failed to delete amenity: amenity_id=%d, error=%v", amenityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /amenities/{id} - Amenity deleted: amenity_id=%d", amenityID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
