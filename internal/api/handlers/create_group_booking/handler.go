package create_group_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/api/middleware"
	createGroupBooking "github.com/m04kA/SMC-SlotService/internal/usecase/create_group_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный идентификатор слота"
	msgUnauthorized       = "требуется авторизация"
	msgSlotNotFound       = "слот не найден"
	msgSlotUnavailable    = "слот недоступен для группового бронирования"
)

type Handler struct {
	useCase CreateGroupBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateGroupBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/group
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/group - Missing user in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/group - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createGroupBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/group - Invalid input: user_id=%d, slot_id=%d, error=%v",
				userID, req.SlotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createGroupBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings/group - Slot not found: user_id=%d, slot_id=%d",
				userID, req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createGroupBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings/group - Slot unavailable: user_id=%d, slot_id=%d",
				userID, req.SlotID)
			handlers.RespondConflict(w, msgSlotUnavailable)

		default:
			h.logger.Error("POST /bookings/group - Failed to create booking: user_id=%d, slot_id=%d, error=%v",
				userID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/group - Booking created: booking_id=%d, user_id=%d, slot_id=%d, amount=%d",
		result.BookingID, userID, req.SlotID, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
