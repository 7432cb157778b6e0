package booking

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
)

// MemoryRepository хранилище бронирований в памяти процесса
// Новые бронирования добавляются в начало списка
type MemoryRepository struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
	newID    func() string
}

// NewMemoryRepository создает пустое хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{newID: NewID}
}

// Create сохраняет бронирование, присваивая уникальный ID и статус Upcoming
func (r *MemoryRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.uniqueIDLocked()
	if err != nil {
		return nil, err
	}

	stored := *booking
	stored.ID = id
	stored.Status = domain.StatusUpcoming
	stored.CancelledAt = nil
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	r.bookings = append([]*domain.Booking{&stored}, r.bookings...)

	result := stored
	return &result, nil
}

// GetByID получает бронирование по ID
func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b := r.findLocked(id)
	if b == nil {
		return nil, ErrBookingNotFound
	}
	result := *b
	return &result, nil
}

// GetByUserID получает бронирования пользователя, новые первыми
func (r *MemoryRepository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.UserID == userID {
			c := *b
			result = append(result, &c)
		}
	}
	return result, nil
}

// Cancel переводит бронирование в статус Cancelled
func (r *MemoryRepository) Cancel(ctx context.Context, id string, cancelledAt time.Time) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.findLocked(id)
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if b.IsCancelled() {
		return nil, ErrCannotCancel
	}

	at := cancelledAt
	b.Status = domain.StatusCancelled
	b.CancelledAt = &at

	result := *b
	return &result, nil
}

// Delete удаляет бронирование
func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return ErrBookingNotFound
}

func (r *MemoryRepository) findLocked(id string) *domain.Booking {
	for _, b := range r.bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (r *MemoryRepository) uniqueIDLocked() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := r.newID()
		if r.findLocked(id) == nil {
			return id, nil
		}
	}
	return "", ErrDuplicateID
}
