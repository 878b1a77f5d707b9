package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AmenityService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AmenityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AmenityService/pkg/types"
)

const (
	msgInvalidAmenityID = "некорректный ID помещения"
	msgMissingDate      = "отсутствует обязательный параметр date"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgAmenityNotFound  = "помещение не найдено"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/amenities/{amenityId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	amenityID, err := strconv.ParseInt(vars["amenityId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /amenities/{id}/available-slots - Invalid amenity ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAmenityID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /amenities/{id}/available-slots - Missing date parameter: amenity_id=%d", amenityID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := types.NewDateStringFromString(dateStr)
	if err != nil {
		h.logger.Warn("GET /amenities/{id}/available-slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		AmenityID: amenityID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrAmenityNotFound):
			h.logger.Warn("GET /amenities/{id}/available-slots - Amenity not found: amenity_id=%d", amenityID)
			handlers.RespondNotFound(w, msgAmenityNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /amenities/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /amenities/{id}/available-slots - Failed to get slots: amenity_id=%d, error=%v",
				amenityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /amenities/{id}/available-slots - Slots retrieved: amenity_id=%d, date=%s", amenityID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
