package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AmenityService/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityService/internal/api/middleware"
	"github.com/m04kA/SMC-AmenityService/internal/domain"
	createBooking "github.com/m04kA/SMC-AmenityService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbiddenResident  = "резидент может бронировать только для себя"
	msgAmenityNotFound    = "помещение не найдено"
	msgResidentNotFound   = "житель не найден"
	msgInvalidSlot        = "некорректный временной слот"
	msgDateTooEarly       = "дата раньше минимально доступной для бронирования"
	msgSlotNotAvailable   = "выбранный временной слот уже занят"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	// Резидент бронирует только для себя; администратор может указать
	// residentId и завести бронь от имени любого жителя
	residentID := userID
	if req.ResidentID != nil {
		if role != domain.RoleAdmin && *req.ResidentID != userID {
			h.logger.Warn("POST /bookings - Resident %d attempted to book for resident %d", userID, *req.ResidentID)
			handlers.RespondForbidden(w, msgForbiddenResident)
			return
		}
		residentID = *req.ResidentID
	}

	useCaseReq, err := req.ToUseCaseRequest(residentID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: amenity_id=%d, date=%s, slot=%s",
				req.AmenityID, req.Date, req.Slot)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrAmenityNotFound):
			h.logger.Warn("POST /bookings - Amenity not found: amenity_id=%d", req.AmenityID)
			handlers.RespondNotFound(w, msgAmenityNotFound)

		case errors.Is(err, createBooking.ErrResidentNotFound):
			h.logger.Warn("POST /bookings - Resident not found: resident_id=%d", residentID)
			handlers.RespondNotFound(w, msgResidentNotFound)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid slot: amenity_id=%d, slot=%q", req.AmenityID, req.Slot)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createBooking.ErrDateTooEarly):
			h.logger.Warn("POST /bookings - Date too early: amenity_id=%d, date=%s", req.AmenityID, req.Date)
			handlers.RespondBadRequest(w, msgDateTooEarly)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: amenity_id=%d, resident_id=%d, error=%v",
				req.AmenityID, residentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, amenity_id=%d, resident_id=%d",
		result.ID, result.AmenityID, result.ResidentID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
