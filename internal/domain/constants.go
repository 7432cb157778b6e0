package domain

// Лимиты бронирования по умолчанию
const (
	DefaultMaxActiveBookings         = 4
	DefaultMaxDailyBookings          = 2
	DefaultCancellationNoticeMinutes = 60
	DefaultCredentialLeadMinutes     = 60
	DefaultCredentialGraceMinutes    = 20
	DefaultAdvanceBookingDays        = 59 // 0 = без ограничения
)

// Значения для видов спорта, отсутствующих в каталоге
const (
	DefaultCapacity        = 10
	DefaultMinParticipants = 1
	DefaultMaxParticipants = 10
	DefaultFacilitySize    = 500 // кв. метры
)

// Форматы дат
const (
	DateFormat        = "2006-01-02"   // YYYY-MM-DD, формат API
	DisplayDateFormat = "Jan 02, 2006" // формат даты в карточке бронирования
)

// Метки дней, которые хранятся в бронировании вместо даты
const (
	DayToday    = "Today"
	DayTomorrow = "Tomorrow"
)

// BookingIDPrefix префикс идентификатора бронирования (он же share-токен)
const BookingIDPrefix = "BK-"
