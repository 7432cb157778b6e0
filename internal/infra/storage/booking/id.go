package booking

import (
	"strings"

	"github.com/google/uuid"
	"github.com/m04kA/SMC-SportsBooking/internal/domain"
)

// Количество попыток подобрать свободный идентификатор
const maxIDAttempts = 5

const idSuffixLength = 8

// NewID генерирует идентификатор вида BK-1A2B3C4D
func NewID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return domain.BookingIDPrefix + strings.ToUpper(raw[:idSuffixLength])
}
