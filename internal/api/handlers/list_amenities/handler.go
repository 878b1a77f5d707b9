package list_amenities

import (
	"net/http"

	"github.com/m04kA/SMC-AmenityService/internal/api/handlers"
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

// Handle GET /api/v1/amenities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /amenities - Failed to list amenities: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /amenities - Retrieved %d amenities", len(result.Amenities))
	handlers.RespondJSON(w, http.StatusOK, result)
}
