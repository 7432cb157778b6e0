package catalog

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/m04kA/SMC-SportsBooking/internal/domain"
)

// Repository справочник объектов, правил видов спорта и расписаний
// Данные статические и не меняются после создания
type Repository struct {
	facilities []domain.Facility
	byID       map[string]int
	sports     map[string]domain.SportRules
	rules      []ScheduleRule
}

// NewRepository создает справочник на встроенных таблицах
func NewRepository() *Repository {
	r := &Repository{
		facilities: append([]domain.Facility(nil), defaultFacilities...),
		sports:     make(map[string]domain.SportRules, len(defaultSports)),
		rules:      append([]ScheduleRule(nil), defaultScheduleRules...),
	}
	for _, s := range defaultSports {
		r.sports[s.Sport] = s
	}
	r.reindex()
	return r
}

// NewRepositoryFromFile создает справочник и применяет переопределения из TOML файла
// Пустой путь - только встроенные таблицы
func NewRepositoryFromFile(path string) (*Repository, error) {
	r := NewRepository()
	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}

	var file catalogFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}

	if err := r.apply(file); err != nil {
		return nil, err
	}
	return r, nil
}

// ListFacilities возвращает все объекты в порядке объявления
func (r *Repository) ListFacilities(ctx context.Context) ([]domain.Facility, error) {
	return append([]domain.Facility(nil), r.facilities...), nil
}

// GetFacility возвращает объект по ID
func (r *Repository) GetFacility(ctx context.Context, id string) (*domain.Facility, error) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, ErrFacilityNotFound
	}
	f := r.facilities[idx]
	return &f, nil
}

// SportRules возвращает правила вида спорта
// Для неизвестного вида спорта возвращаются значения по умолчанию
func (r *Repository) SportRules(sport string) domain.SportRules {
	if rules, ok := r.sports[sport]; ok {
		return rules
	}
	return domain.DefaultSportRules(sport)
}

// TemplatesFor возвращает шаблоны слотов для объекта
// Номер корта на выбор шаблона не влияет: все корты объекта работают по одному расписанию
func (r *Repository) TemplatesFor(facilityName, location string, courtIndex int) []domain.SlotTemplate {
	for _, rule := range r.rules {
		if rule.Matches(facilityName, location) {
			return append([]domain.SlotTemplate(nil), rule.Templates...)
		}
	}
	return FallbackTemplates()
}

// FallbackTemplates шаблон для объектов без собственного расписания
func FallbackTemplates() []domain.SlotTemplate {
	return append([]domain.SlotTemplate(nil), fallbackTemplates...)
}

func (r *Repository) reindex() {
	r.byID = make(map[string]int, len(r.facilities))
	for i, f := range r.facilities {
		r.byID[f.ID] = i
	}
}

// apply применяет записи файла поверх встроенных таблиц
// Объекты и виды спорта с совпадающим ключом заменяются, расписания из файла проверяются раньше встроенных
func (r *Repository) apply(file catalogFile) error {
	for _, s := range file.Sports {
		rules, err := s.toDomain()
		if err != nil {
			return err
		}
		r.sports[rules.Sport] = rules
	}

	for _, f := range file.Facilities {
		facility, err := f.toDomain()
		if err != nil {
			return err
		}
		if idx, ok := r.byID[facility.ID]; ok {
			r.facilities[idx] = facility
		} else {
			r.facilities = append(r.facilities, facility)
		}
		r.reindex()
	}

	custom := make([]ScheduleRule, 0, len(file.Schedules))
	for _, s := range file.Schedules {
		rule, err := s.toDomain()
		if err != nil {
			return err
		}
		custom = append(custom, rule)
	}
	r.rules = append(custom, r.rules...)

	return nil
}

type catalogFile struct {
	Facilities []facilityEntry `toml:"facilities"`
	Sports     []sportEntry    `toml:"sports"`
	Schedules  []scheduleEntry `toml:"schedules"`
}

type facilityEntry struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	Sport    string `toml:"sport"`
	Location string `toml:"location"`
	Courts   int    `toml:"courts"`
	Capacity int    `toml:"capacity"`
	Type     string `toml:"type"`
}

func (e facilityEntry) toDomain() (domain.Facility, error) {
	if strings.TrimSpace(e.ID) == "" || strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.Sport) == "" {
		return domain.Facility{}, fmt.Errorf("%w: facility requires id, name and sport", ErrInvalidEntry)
	}
	courts := e.Courts
	if courts <= 0 {
		courts = 1
	}
	capacity := e.Capacity
	if capacity <= 0 {
		capacity = domain.DefaultCapacity
	}
	return domain.Facility{
		ID:       e.ID,
		Name:     e.Name,
		Sport:    e.Sport,
		Location: e.Location,
		Courts:   courts,
		Capacity: capacity,
		Type:     e.Type,
	}, nil
}

type sportEntry struct {
	Name               string `toml:"name"`
	Capacity           int    `toml:"capacity"`
	MinParticipants    int    `toml:"min_participants"`
	MaxParticipants    int    `toml:"max_participants"`
	FacilitySize       int    `toml:"facility_size"`
	ParticipantsExempt bool   `toml:"participants_exempt"`
}

func (e sportEntry) toDomain() (domain.SportRules, error) {
	if strings.TrimSpace(e.Name) == "" {
		return domain.SportRules{}, fmt.Errorf("%w: sport requires name", ErrInvalidEntry)
	}

	rules := domain.DefaultSportRules(e.Name)
	rules.ParticipantsExempt = e.ParticipantsExempt
	if e.Capacity > 0 {
		rules.Capacity = e.Capacity
		rules.MaxParticipants = e.Capacity
	}
	if e.MinParticipants > 0 {
		rules.MinParticipants = e.MinParticipants
	}
	if e.MaxParticipants > 0 {
		rules.MaxParticipants = e.MaxParticipants
	}
	if e.FacilitySize > 0 {
		rules.FacilitySize = e.FacilitySize
	}

	if rules.MinParticipants > rules.MaxParticipants {
		return domain.SportRules{}, fmt.Errorf("%w: sport %s: min_participants %d > max_participants %d",
			ErrInvalidEntry, e.Name, rules.MinParticipants, rules.MaxParticipants)
	}
	return rules, nil
}

type scheduleEntry struct {
	FacilityName     string   `toml:"facility_name"`
	LocationContains string   `toml:"location_contains"`
	LocationEquals   string   `toml:"location_equals"`
	Slots            []string `toml:"slots"`
}

func (e scheduleEntry) toDomain() (ScheduleRule, error) {
	if strings.TrimSpace(e.FacilityName) == "" || len(e.Slots) == 0 {
		return ScheduleRule{}, fmt.Errorf("%w: schedule requires facility_name and slots", ErrInvalidEntry)
	}
	templates, err := parseTemplates(e.Slots)
	if err != nil {
		return ScheduleRule{}, fmt.Errorf("%w: schedule %s: %v", ErrInvalidEntry, e.FacilityName, err)
	}
	return ScheduleRule{
		FacilityName:     e.FacilityName,
		LocationContains: e.LocationContains,
		LocationEquals:   e.LocationEquals,
		Templates:        templates,
	}, nil
}
