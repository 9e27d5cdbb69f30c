package create_individual_booking

import (
	"context"

	createIndividualBooking "github.com/m04kA/SMC-SlotService/internal/usecase/create_individual_booking"
)

type CreateIndividualBookingUseCase interface {
	Execute(ctx context.Context, req *createIndividualBooking.Request) (*createIndividualBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
