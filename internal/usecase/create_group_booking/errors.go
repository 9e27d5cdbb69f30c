package create_group_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("create_group_booking: slot not found")

	// ErrSlotUnavailable возвращается, когда слот не групповой или уже занят
	ErrSlotUnavailable = errors.New("create_group_booking: slot is not available or already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_group_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_group_booking: internal error")
)
