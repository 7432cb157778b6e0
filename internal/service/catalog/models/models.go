package models

import (
	"github.com/m04kA/SMC-SportsBooking/internal/domain"
)

// ListFacilitiesRequest фильтр списка объектов, пустые поля не фильтруют
type ListFacilitiesRequest struct {
	Type  string `json:"type,omitempty"` // indoor | outdoor
	Sport string `json:"sport,omitempty"`
}

// FacilityResponse объект вместе с правилами вида спорта
type FacilityResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Sport              string `json:"sport"`
	Location           string `json:"location"`
	Type               string `json:"type"`
	Courts             int    `json:"courts"`
	Capacity           int    `json:"capacity"`
	SlotCapacity       int    `json:"slotCapacity"`
	MinParticipants    int    `json:"minParticipants"`
	MaxParticipants    int    `json:"maxParticipants"`
	FacilitySize       int    `json:"facilitySize"`
	ParticipantsExempt bool   `json:"participantsExempt"`
}

// FacilityListResponse ответ со списком объектов
type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
}

// FromDomainFacility конвертирует объект и правила в DTO
func FromDomainFacility(f domain.Facility, rules domain.SportRules) FacilityResponse {
	return FacilityResponse{
		ID:                 f.ID,
		Name:               f.Name,
		Sport:              f.Sport,
		Location:           f.Location,
		Type:               f.Type,
		Courts:             f.Courts,
		Capacity:           f.Capacity,
		SlotCapacity:       rules.Capacity,
		MinParticipants:    rules.MinParticipants,
		MaxParticipants:    rules.MaxParticipants,
		FacilitySize:       rules.FacilitySize,
		ParticipantsExempt: rules.ParticipantsExempt,
	}
}
