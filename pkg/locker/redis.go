package locker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultLockTTL       = 10 * time.Second
	defaultRetryInterval = 50 * time.Millisecond
)

// unlockScript удаляет ключ, только если он принадлежит текущему владельцу
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLock распределенная блокировка на SET NX с TTL
type RedisLock struct {
	client        *redis.Client
	ttl           time.Duration
	retryInterval time.Duration
}

// NewRedisLock подключается к Redis и проверяет соединение
func NewRedisLock(addr, password string, db int, ttl time.Duration) (*RedisLock, error) {
	const op = "locker.NewRedisLock"

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if ttl <= 0 {
		ttl = defaultLockTTL
	}

	return &RedisLock{
		client:        client,
		ttl:           ttl,
		retryInterval: defaultRetryInterval,
	}, nil
}

// WithLock ждет освобождения ключа (до отмены ctx), выполняет fn и снимает блокировку
func (r *RedisLock) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	const op = "locker.RedisLock.WithLock"

	lockKey := lockKey(key)
	token := uuid.NewString()

	for {
		ok, err := r.client.SetNX(ctx, lockKey, token, r.ttl).Result()
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return ErrLockTimeout
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return ErrLockTimeout
		case <-time.After(r.retryInterval):
		}
	}

	defer func() {
		// Снимаем блокировку даже при отмененном контексте запроса
		unlockCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = unlockScript.Run(unlockCtx, r.client, []string{lockKey}, token).Err()
	}()

	return fn(ctx)
}

// Close закрывает соединение с Redis
func (r *RedisLock) Close() error {
	return r.client.Close()
}

func lockKey(key string) string {
	return fmt.Sprintf("lock:%s", key)
}
