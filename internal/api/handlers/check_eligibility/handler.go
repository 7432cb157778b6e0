package check_eligibility

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SportsBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBooking/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-SportsBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные бронирования"
	msgNotFound           = "объект, корт или слот не найден"
	msgInvalidBookingDate = "дата вне допустимого диапазона"
)

type Handler struct {
	checker EligibilityChecker
	logger  Logger
}

func NewHandler(checker EligibilityChecker, logger Logger) *Handler {
	return &Handler{
		checker: checker,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/eligibility
// Отказ правил возвращается с кодом 200 и allowed=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/eligibility - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req EligibilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/eligibility - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.checker.CheckEligibility(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrFacilityNotFound),
			errors.Is(err, createBooking.ErrCourtNotFound),
			errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings/eligibility - Not found: facility_id=%s, court=%d, slot_id=%s",
				req.FacilityID, req.Court, req.SlotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate), errors.Is(err, createBooking.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		default:
			h.logger.Error("POST /bookings/eligibility - Failed to check: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/eligibility - user_id=%d, slot_id=%s, allowed=%t, code=%s",
		userID, req.SlotID, result.Decision.Allowed, result.Decision.Code)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
