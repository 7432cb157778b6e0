package catalog

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
	"github.com/m04kA/SMC-SportsBooking/pkg/types"
)

// ScheduleRule правило выбора шаблона слотов
// Пустые LocationContains и LocationEquals означают любую локацию
type ScheduleRule struct {
	FacilityName     string
	LocationContains string
	LocationEquals   string
	Templates        []domain.SlotTemplate
}

// Matches проверяет, подходит ли правило для объекта
func (r ScheduleRule) Matches(facilityName, location string) bool {
	if r.FacilityName != facilityName {
		return false
	}
	if r.LocationEquals != "" && r.LocationEquals != location {
		return false
	}
	if r.LocationContains != "" && !strings.Contains(location, r.LocationContains) {
		return false
	}
	return true
}

// Generic шаблон: 21 слот по 45 минут, 6:45 - 22:30
var fallbackTemplates = series("06:45", 45, 21)

// defaultScheduleRules проверяются по порядку, побеждает первое совпадение
var defaultScheduleRules = []ScheduleRule{
	{
		FacilityName:     "Badminton Court",
		LocationContains: "German",
		Templates:        concat(series("06:00", 45, 4), series("17:00", 75, 4)),
	},
	{
		FacilityName:     "Badminton Court",
		LocationContains: "C1",
		Templates:        concat(series("06:30", 60, 3), series("16:30", 60, 5)),
	},
	{
		FacilityName:   "Badminton Court",
		LocationEquals: "Sports Complex",
		Templates:      concat(series("06:30", 45, 4), series("17:30", 45, 6)),
	},
	{
		FacilityName: "Swimming Pool",
		Templates:    concat(series("06:00", 60, 3), series("16:00", 60, 4)),
	},
	{
		FacilityName: "Gym",
		Templates:    concat(series("06:00", 75, 3), series("17:00", 75, 3)),
	},
	{
		FacilityName: "Football Ground",
		Templates:    concat(series("06:00", 75, 2), series("16:00", 75, 4)),
	},
	{
		FacilityName: "Cricket Ground",
		Templates:    concat(series("06:30", 60, 3), series("15:30", 60, 5)),
	},
	{
		FacilityName: "Tennis Court",
		Templates:    concat(series("06:00", 60, 4), series("16:00", 60, 5)),
	},
}

// series строит count подряд идущих слотов длительностью minutes начиная со start
// Используется только для статических таблиц, поэтому ошибки приводят к panic
func series(start string, minutes, count int) []domain.SlotTemplate {
	templates := make([]domain.SlotTemplate, 0, count)
	cur := types.MustTimeString(start)

	for i := 0; i < count; i++ {
		end, err := cur.AddMinutes(minutes)
		if err != nil {
			panic(fmt.Sprintf("catalog: series(%s, %d, %d): %v", start, minutes, count, err))
		}
		templates = append(templates, domain.SlotTemplate{Start: cur, End: end})
		cur = end
	}

	return templates
}

func concat(parts ...[]domain.SlotTemplate) []domain.SlotTemplate {
	var out []domain.SlotTemplate
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// parseTemplates разбирает шаблоны из файла справочника ("06:00 - 06:45")
func parseTemplates(ranges []string) ([]domain.SlotTemplate, error) {
	templates := make([]domain.SlotTemplate, 0, len(ranges))
	for _, raw := range ranges {
		r, err := types.ParseTimeRange(raw)
		if err != nil {
			return nil, err
		}
		templates = append(templates, domain.SlotTemplate{Start: r.Start, End: r.End})
	}
	return templates, nil
}
