package locker

import (
	"context"
	"errors"
	"sync"
)

// ErrLockTimeout возвращается, когда блокировку не удалось получить до отмены контекста
var ErrLockTimeout = errors.New("locker: lock acquisition timed out")

// KeyedMutex блокировка по ключу в пределах процесса
// Используется, когда Redis не настроен
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	ch   chan struct{} // буфер 1: занято, когда в канале есть значение
	refs int
}

// NewKeyedMutex создает пустой набор блокировок
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*entry)}
}

// WithLock выполняет fn, удерживая блокировку по ключу
func (k *KeyedMutex) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	e := k.acquireEntry(key)
	defer k.releaseEntry(key, e)

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		return ErrLockTimeout
	}
	defer func() { <-e.ch }()

	return fn(ctx)
}

func (k *KeyedMutex) acquireEntry(key string) *entry {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		k.locks[key] = e
	}
	e.refs++
	return e
}

// releaseEntry удаляет запись, когда ключ больше никем не используется
func (k *KeyedMutex) releaseEntry(key string, e *entry) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
}

// Size количество ключей, для которых сейчас есть ожидающие или удерживающие
func (k *KeyedMutex) Size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
