package create_amenity

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AmenityService/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityService/internal/service/amenities"
	"github.com/m04kA/SMC-AmenityService/internal/service/amenities/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAmenity     = "некорректные данные помещения"
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

// Handle POST /api/v1/amenities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAmenityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /amenities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, amenities.ErrInvalidInput):
			h.logger.Warn("POST /amenities - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAmenity)

		default:
			h.logger.Error("POST /amenities - Failed to create amenity: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /amenities - Amenity created: amenity_id=%d, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
