package list_announcements

import (
	"net/http"

	"github.com/m04kA/SMC-AmenityService/internal/api/handlers"
)

type Handler struct {
	service AnnouncementService
	logger  Logger
}

func NewHandler(service AnnouncementService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/announcements
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /announcements - Failed to list announcements: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /announcements - Retrieved %d announcements", len(result.Announcements))
	handlers.RespondJSON(w, http.StatusOK, result)
}
