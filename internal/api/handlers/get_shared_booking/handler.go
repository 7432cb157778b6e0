package get_shared_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SportsBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBooking/internal/service/bookings"
)

const (
	msgInvalidToken = "некорректная ссылка-приглашение"
	msgNotFound     = "бронирование не найдено"
)

type Handler struct {
	service SharedBookingService
	logger  Logger
}

func NewHandler(service SharedBookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/share/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	booking, err := h.service.GetByShareToken(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/share/{token} - Invalid token: %q", token)
			handlers.RespondBadRequest(w, msgInvalidToken)

		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/share/{token} - Failed: token=%s, error=%v", token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/share/{token} - booking_id=%s, status=%s", booking.ID, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
