package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SportsBooking/internal/service/catalog/models"
)

// Service сервис справочника спортивных объектов
type Service struct {
	catalog CatalogRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(catalog CatalogRepository, logger Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// ListFacilities возвращает объекты с правилами вида спорта
// Фильтры по типу и виду спорта сравниваются без учета регистра
func (s *Service) ListFacilities(ctx context.Context, req *models.ListFacilitiesRequest) (*models.FacilityListResponse, error) {
	s.logger.Info("ListFacilities: type=%q, sport=%q", req.Type, req.Sport)

	if req.Type != "" && !strings.EqualFold(req.Type, "indoor") && !strings.EqualFold(req.Type, "outdoor") {
		return nil, fmt.Errorf("%w: type must be indoor or outdoor", ErrInvalidInput)
	}

	facilities, err := s.catalog.ListFacilities(ctx)
	if err != nil {
		s.logger.Error("ListFacilities: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListFacilities - repository error: %v", ErrInternal, err)
	}

	resp := &models.FacilityListResponse{Facilities: make([]models.FacilityResponse, 0, len(facilities))}
	for _, f := range facilities {
		if req.Type != "" && !strings.EqualFold(f.Type, req.Type) {
			continue
		}
		if req.Sport != "" && !strings.EqualFold(f.Sport, req.Sport) {
			continue
		}
		resp.Facilities = append(resp.Facilities, models.FromDomainFacility(f, s.catalog.SportRules(f.Sport)))
	}

	return resp, nil
}
