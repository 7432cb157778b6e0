package catalog

import "github.com/m04kA/SMC-SportsBooking/internal/domain"

// Типы объектов
const (
	TypeIndoor  = "indoor"
	TypeOutdoor = "outdoor"
)

// defaultFacilities статический справочник объектов кампуса
var defaultFacilities = []domain.Facility{
	{ID: "indoor-1", Name: "Badminton Court", Sport: "Badminton", Location: "K block", Courts: 3, Capacity: 12, Type: TypeIndoor},
	{ID: "indoor-2", Name: "Squash Court", Sport: "Squash", Location: "K block", Courts: 3, Capacity: 6, Type: TypeIndoor},
	{ID: "indoor-3", Name: "Basketball Court", Sport: "Basketball", Location: "Near K block", Courts: 2, Capacity: 20, Type: TypeIndoor},
	{ID: "indoor-4", Name: "Gym", Sport: "Gym", Location: "DG", Courts: 1, Capacity: 40, Type: TypeIndoor},
	{ID: "indoor-5", Name: "Gym", Sport: "Gym", Location: "K block", Courts: 1, Capacity: 40, Type: TypeIndoor},
	{ID: "indoor-6", Name: "Badminton Court", Sport: "Badminton", Location: "German House", Courts: 10, Capacity: 10, Type: TypeIndoor},
	{ID: "indoor-7", Name: "Padel Court", Sport: "Padel", Location: "C11-C12 Block", Courts: 2, Capacity: 8, Type: TypeIndoor},
	{ID: "indoor-8", Name: "Chess Room", Sport: "Chess", Location: "C12 Block", Courts: 1, Capacity: 10, Type: TypeIndoor},
	{ID: "indoor-9", Name: "Table Tennis", Sport: "Table Tennis", Location: "Hostel Blocks", Courts: 6, Capacity: 48, Type: TypeIndoor},
	{ID: "outdoor-1", Name: "Football Ground", Sport: "Football", Location: "Near K block", Courts: 1, Capacity: 22, Type: TypeOutdoor},
	{ID: "outdoor-2", Name: "Cricket Ground", Sport: "Cricket", Location: "Old Ground", Courts: 1, Capacity: 22, Type: TypeOutdoor},
	{ID: "outdoor-3", Name: "Basketball Court", Sport: "Basketball", Location: "Near K block", Courts: 2, Capacity: 20, Type: TypeOutdoor},
	{ID: "outdoor-4", Name: "Volleyball Court", Sport: "Volleyball", Location: "Near Gate No. 3", Courts: 2, Capacity: 24, Type: TypeOutdoor},
	{ID: "outdoor-5", Name: "Tennis Court", Sport: "Tennis", Location: "Near K block", Courts: 2, Capacity: 8, Type: TypeOutdoor},
	{ID: "outdoor-6", Name: "Swimming Pool", Sport: "Swimming", Location: "K block", Courts: 1, Capacity: 35, Type: TypeOutdoor},
	{ID: "outdoor-7", Name: "Pickleball Courts", Sport: "Pickleball", Location: "Near H block", Courts: 10, Capacity: 40, Type: TypeOutdoor},
	{ID: "outdoor-8", Name: "Badminton Court", Sport: "Badminton", Location: "C10-C11 block", Courts: 3, Capacity: 12, Type: TypeOutdoor},
	{ID: "outdoor-9", Name: "Badminton Court", Sport: "Badminton", Location: "C & D block", Courts: 3, Capacity: 8, Type: TypeOutdoor},
}

// defaultSports правила видов спорта
// Capacity совпадает с максимальным количеством участников
var defaultSports = []domain.SportRules{
	{Sport: "Football", Capacity: 22, MinParticipants: 2, MaxParticipants: 22, FacilitySize: 8968},
	{Sport: "Cricket", Capacity: 22, MinParticipants: 2, MaxParticipants: 22, FacilitySize: 7400},
	{Sport: "Basketball", Capacity: 20, MinParticipants: 2, MaxParticipants: 20, FacilitySize: 536},
	{Sport: "Volleyball", Capacity: 24, MinParticipants: 2, MaxParticipants: 24, FacilitySize: 960},
	{Sport: "Tennis", Capacity: 8, MinParticipants: 1, MaxParticipants: 8, FacilitySize: 1338},
	{Sport: "Badminton", Capacity: 12, MinParticipants: 1, MaxParticipants: 12, FacilitySize: 480},
	{Sport: "Squash", Capacity: 6, MinParticipants: 1, MaxParticipants: 6, FacilitySize: 187},
	{Sport: "Swimming", Capacity: 35, MinParticipants: 1, MaxParticipants: 35, FacilitySize: 1474, ParticipantsExempt: true},
	{Sport: "Pickleball", Capacity: 40, MinParticipants: 1, MaxParticipants: 40, FacilitySize: 736},
	{Sport: "Gym", Capacity: 40, MinParticipants: 1, MaxParticipants: 40, FacilitySize: 382, ParticipantsExempt: true},
	{Sport: "Field Court", Capacity: 8, MinParticipants: 1, MaxParticipants: 8, FacilitySize: domain.DefaultFacilitySize},
	{Sport: "Hockey", Capacity: 10, MinParticipants: 2, MaxParticipants: 10, FacilitySize: domain.DefaultFacilitySize},
	{Sport: "Table Tennis", Capacity: 48, MinParticipants: 1, MaxParticipants: 48, FacilitySize: 1200},
	{Sport: "Chess", Capacity: 10, MinParticipants: 1, MaxParticipants: 10, FacilitySize: 1048},
	{Sport: "Padel", Capacity: 8, MinParticipants: 1, MaxParticipants: 8, FacilitySize: 832},
}
