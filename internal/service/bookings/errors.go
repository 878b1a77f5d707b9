package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронь не найдена
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда резидент обращается к чужой брони
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancelPast возвращается, когда резидент пытается отменить
	// бронь на уже прошедшую дату; администратору такая отмена доступна
	ErrCannotCancelPast = errors.New("cannot cancel a booking in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
