package create_individual_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/api/middleware"
	createIndividualBooking "github.com/m04kA/SMC-SlotService/internal/usecase/create_individual_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный идентификатор слота"
	msgUnauthorized       = "требуется авторизация"
	msgSlotNotFound       = "слот не найден"
	msgInvalidSlotType    = "слот недоступен для индивидуального бронирования"
	msgDuplicateBooking   = "вы уже забронировали этот слот"
	msgSlotFull           = "все места в слоте заняты"
)

type Handler struct {
	useCase CreateIndividualBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateIndividualBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/individual
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/individual - Missing user in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/individual - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createIndividualBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/individual - Invalid input: user_id=%d, slot_id=%d, error=%v",
				userID, req.SlotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createIndividualBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings/individual - Slot not found: user_id=%d, slot_id=%d",
				userID, req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createIndividualBooking.ErrInvalidSlotType):
			h.logger.Warn("POST /bookings/individual - Wrong slot type: user_id=%d, slot_id=%d",
				userID, req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidSlotType)

		case errors.Is(err, createIndividualBooking.ErrDuplicateBooking):
			h.logger.Warn("POST /bookings/individual - Duplicate booking: user_id=%d, slot_id=%d",
				userID, req.SlotID)
			handlers.RespondConflict(w, msgDuplicateBooking)

		case errors.Is(err, createIndividualBooking.ErrSlotFull):
			h.logger.Warn("POST /bookings/individual - Slot is full: user_id=%d, slot_id=%d",
				userID, req.SlotID)
			handlers.RespondConflict(w, msgSlotFull)

		default:
			h.logger.Error("POST /bookings/individual - Failed to create booking: user_id=%d, slot_id=%d, error=%v",
				userID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/individual - Booking created: booking_id=%d, user_id=%d, slot_id=%d",
		result.BookingID, userID, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
