package list_facilities

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SportsBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBooking/internal/service/catalog"
	"github.com/m04kA/SMC-SportsBooking/internal/service/catalog/models"
)

const (
	msgInvalidType = "некорректный тип объекта, ожидается indoor или outdoor"
)

type Handler struct {
	service FacilityService
	logger  Logger
}

func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities
// Query params: type (optional, indoor|outdoor), sport (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListFacilitiesRequest{
		Type:  r.URL.Query().Get("type"),
		Sport: r.URL.Query().Get("sport"),
	}

	result, err := h.service.ListFacilities(r.Context(), req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("GET /facilities - Invalid filter: type=%q", req.Type)
			handlers.RespondBadRequest(w, msgInvalidType)
			return
		}
		h.logger.Error("GET /facilities - Failed to list facilities: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities - Facilities retrieved successfully: count=%d", len(result.Facilities))
	handlers.RespondJSON(w, http.StatusOK, result.Facilities)
}
