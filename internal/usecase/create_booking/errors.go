package create_booking

import "errors"

var (
	// ErrAmenityNotFound возвращается, когда amenity не найден
	ErrAmenityNotFound = errors.New("create_booking: amenity not found")

	// ErrResidentNotFound возвращается, когда резидент не найден
	ErrResidentNotFound = errors.New("create_booking: resident not found")

	// ErrInvalidSlot возвращается, когда метка слота не входит в каталог
	ErrInvalidSlot = errors.New("create_booking: invalid time slot")

	// ErrDateTooEarly возвращается, когда дата раньше минимально допустимой
	// по настройке lead time
	ErrDateTooEarly = errors.New("create_booking: date is earlier than the minimum bookable date")

	// ErrSlotNotAvailable возвращается, когда на слот уже есть подтверждённая бронь
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
