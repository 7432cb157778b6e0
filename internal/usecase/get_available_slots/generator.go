package get_available_slots

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
)

// Границы розыгрыша заполненности
const (
	fullThreshold      = 0.3
	partialThreshold   = 0.6
	bookedThreshold    = 0.8
	blockedThreshold   = 0.9
	partialSeedOffset  = 1000
	courtSeedStride    = 2000
	dateSeedMultiplier = 100000
)

// Generator вычисляет слоты на дату и корт
// Не хранит состояния: один и тот же вход всегда дает одинаковый результат
type Generator struct {
	templates TemplateSource
	occupancy OccupancySource
}

// NewGenerator создает генератор. occupancy == nil - детерминированный розыгрыш по seed
func NewGenerator(templates TemplateSource, occupancy OccupancySource) *Generator {
	if occupancy == nil {
		occupancy = SeededOccupancy{}
	}
	return &Generator{
		templates: templates,
		occupancy: occupancy,
	}
}

// Generate возвращает слоты объекта на указанные корт и дату
// Слот истек, если его начало в выбранный день раньше now. Истечение важнее розыгрыша
// Календарный день date берется в часовом поясе now
func (g *Generator) Generate(facility domain.Facility, courtIndex int, date time.Time, capacity int, now time.Time) []domain.TimeSlot {
	templates := g.templates.TemplatesFor(facility.Name, facility.Location, courtIndex)
	seed := DateSeed(date, courtIndex)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())

	slots := make([]domain.TimeSlot, 0, len(templates))
	for n, tpl := range templates {
		i := n + 1
		slotStart := tpl.Start.On(day)

		slot := domain.TimeSlot{
			ID:         SlotID(facility.ID, courtIndex, day, i),
			FacilityID: facility.ID,
			CourtIndex: courtIndex,
			Date:       day,
			Index:      i,
			Range:      tpl.Range(),
			TimeRange:  tpl.Range().Format12(),
			Capacity:   capacity,
		}

		if slotStart.Before(now) {
			slot.IsExpired = true
			slot.Available = 0
			slot.UnavailableReason = domain.ReasonExpired
		} else {
			slot.Available, slot.UnavailableReason = g.occupancy.Occupancy(seed, i, capacity)
		}

		slots = append(slots, slot)
	}

	return slots
}

// FindSlot ищет слот по ID среди слотов корта на дату
func (g *Generator) FindSlot(facility domain.Facility, courtIndex int, date time.Time, capacity int, now time.Time, slotID string) (*domain.TimeSlot, bool) {
	for _, slot := range g.Generate(facility, courtIndex, date, capacity, now) {
		if slot.ID == slotID {
			s := slot
			return &s, true
		}
	}
	return nil, false
}

// SlotID стабильный идентификатор слота: объект, корт, дата и номер в шаблоне
func SlotID(facilityID string, courtIndex int, date time.Time, index int) string {
	return fmt.Sprintf("%s-c%d-%s-%d", facilityID, courtIndex, date.Format("20060102"), index)
}

// DateSeed seed для даты и корта
// Месяц считается с нуля. Разные корты одной даты разнесены на courtSeedStride
func DateSeed(date time.Time, courtIndex int) int64 {
	dateKey := int64(date.Year())*10000 + int64(date.Month()-1)*100 + int64(date.Day())
	return dateKey*dateSeedMultiplier + int64(courtIndex)*courtSeedStride
}

// SeededRandom дробная часть sin(seed) * 10000, значение в [0, 1)
func SeededRandom(seed int64) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}

// SeededOccupancy детерминированная заполненность по seed
type SeededOccupancy struct{}

// Occupancy разыгрывает состояние слота с номером slotIndex
func (SeededOccupancy) Occupancy(seed int64, slotIndex int, capacity int) (int, domain.UnavailableReason) {
	return occupancyForDraw(SeededRandom(seed+int64(slotIndex)), seed, slotIndex, capacity)
}

func occupancyForDraw(r float64, seed int64, slotIndex int, capacity int) (int, domain.UnavailableReason) {
	switch {
	case r < fullThreshold:
		return capacity, domain.ReasonNone
	case r < partialThreshold:
		// При вместимости 1 частичной занятости не бывает: слот занят
		if capacity <= 1 {
			return 0, domain.ReasonBooked
		}
		partial := SeededRandom(seed + int64(slotIndex) + partialSeedOffset)
		return int(math.Floor(partial*float64(capacity-1))) + 1, domain.ReasonNone
	case r < bookedThreshold:
		return 0, domain.ReasonBooked
	case r < blockedThreshold:
		return 0, domain.ReasonBlocked
	default:
		return 0, domain.ReasonMaintenance
	}
}
