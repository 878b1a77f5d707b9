package create_announcement

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AmenityService/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityService/internal/api/middleware"
	"github.com/m04kA/SMC-AmenityService/internal/service/announcements"
	"github.com/m04kA/SMC-AmenityService/internal/service/announcements/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidAnnouncement = "некорректные данные объявления"
	msgMissingUserID       = "отсутствует ID пользователя"
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

// Handle POST /api/v1/announcements
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAnnouncementRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /announcements - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /announcements - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, announcements.ErrInvalidInput):
			h.logger.Warn("POST /announcements - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAnnouncement)

		default:
			h.logger.Error("POST /announcements - Failed to create announcement: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /announcements - Announcement published: announcement_id=%d, author_id=%d",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
