package domain

// Facility спортивный объект из справочника
type Facility struct {
	ID       string
	Name     string
	Sport    string
	Location string
	Courts   int // количество кортов/площадок, нумерация с 1
	Capacity int // максимальное количество участников в слоте
	Type     string
}

// HasCourt проверяет, что корт с таким номером существует
func (f *Facility) HasCourt(courtIndex int) bool {
	return courtIndex >= 1 && courtIndex <= f.Courts
}

// SportRules правила вида спорта: вместимость, границы количества участников, площадь
type SportRules struct {
	Sport           string
	Capacity        int
	MinParticipants int
	MaxParticipants int
	FacilitySize    int
	// ParticipantsExempt - для вида спорта не собираются данные участников, бронь всегда на одного
	ParticipantsExempt bool
}

// DefaultSportRules правила для вида спорта, которого нет в каталоге
func DefaultSportRules(sport string) SportRules {
	return SportRules{
		Sport:           sport,
		Capacity:        DefaultCapacity,
		MinParticipants: DefaultMinParticipants,
		MaxParticipants: DefaultMaxParticipants,
		FacilitySize:    DefaultFacilitySize,
	}
}

// NormalizeParticipants приводит количество участников к правилам вида спорта
// Для видов спорта без сбора участников всегда возвращается 1
func (r SportRules) NormalizeParticipants(count int) int {
	if r.ParticipantsExempt {
		return 1
	}
	return count
}

// AllowsParticipants проверяет, что количество участников в допустимых границах
func (r SportRules) AllowsParticipants(count int) bool {
	return count >= r.MinParticipants && count <= r.MaxParticipants
}
