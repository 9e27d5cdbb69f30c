package create_individual_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("create_individual_booking: slot not found")

	// ErrInvalidSlotType возвращается при попытке индивидуального бронирования группового слота
	ErrInvalidSlotType = errors.New("create_individual_booking: slot is not an individual slot")

	// ErrDuplicateBooking возвращается, когда пользователь уже бронировал этот слот
	ErrDuplicateBooking = errors.New("create_individual_booking: user already booked this slot")

	// ErrSlotFull возвращается, когда все места в слоте заняты
	ErrSlotFull = errors.New("create_individual_booking: slot is full")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_individual_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_individual_booking: internal error")
)
