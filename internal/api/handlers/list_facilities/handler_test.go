package list_facilities

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	catalogRepo "github.com/m04kA/SMC-SportsBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SportsBooking/internal/service/catalog"
	"github.com/m04kA/SMC-SportsBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-SportsBooking/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Handle(t *testing.T) {
	h := NewHandler(catalog.NewService(catalogRepo.NewRepository(), logger.Nop{}), logger.Nop{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/facilities?type=outdoor&sport=Tennis", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []models.FacilityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "outdoor-5", body[0].ID)
	assert.Equal(t, 2, body[0].Courts)
}

func TestHandler_Handle_InvalidType(t *testing.T) {
	h := NewHandler(catalog.NewService(catalogRepo.NewRepository(), logger.Nop{}), logger.Nop{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/facilities?type=space", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
