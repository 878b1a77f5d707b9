package amenities

import "errors"

var (
	// ErrAmenityNotFound возвращается, когда помещение не найдено
	ErrAmenityNotFound = errors.New("amenity not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
