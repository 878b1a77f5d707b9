package get_resident_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AmenityService/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityService/internal/api/middleware"
	"github.com/m04kA/SMC-AmenityService/internal/service/bookings"
	"github.com/m04kA/SMC-AmenityService/internal/service/bookings/models"
)

const (
	msgInvalidResidentID = "некорректный ID жителя"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/residents/{residentId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	residentID, err := strconv.ParseInt(vars["residentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /residents/{id}/bookings - Invalid resident ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResidentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /residents/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())
	actor := models.Actor{UserID: userID, Role: role}

	result, err := h.service.GetResidentBookings(r.Context(), residentID, actor)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /residents/{id}/bookings - Access denied: resident_id=%d, user_id=%d",
				residentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /residents/{id}/bookings - Failed to get bookings: resident_id=%d, error=%v",
				residentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /residents/{id}/bookings - Retrieved %d bookings: resident_id=%d",
		len(result.Bookings), residentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
