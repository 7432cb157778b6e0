package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/m04kA/SMC-SportsBooking/internal/domain"
)

// Драйверы хранилища бронирований
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig возвращается, когда значения конфигурации некорректны
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Storage StorageConfig `toml:"storage"`
	Redis   RedisConfig   `toml:"redis"`
	Booking BookingConfig `toml:"booking"`
	Catalog CatalogConfig `toml:"catalog"`
	Mailer  MailerConfig  `toml:"mailer"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пустой - только stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig хранилище бронирований: memory или postgres
type StorageConfig struct {
	Driver          string `toml:"driver"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (s StorageConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		s.Host, s.Port, s.User, s.Password, s.DBName, s.SSLMode)
}

// RedisConfig распределенная блокировка бронирований пользователя
// Выключено - блокировка внутри процесса
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	LockTTL  int    `toml:"lock_ttl"`  // секунды
	LockWait int    `toml:"lock_wait"` // секунды ожидания блокировки
}

// BookingConfig лимиты и окна бронирования
type BookingConfig struct {
	MaxActiveBookings         int    `toml:"max_active_bookings"`
	MaxDailyBookings          int    `toml:"max_daily_bookings"`
	CountExpiredAsActive      bool   `toml:"count_expired_as_active"`
	AdvanceBookingDays        int    `toml:"advance_booking_days"` // 0 = без ограничения
	CancellationNoticeMinutes int    `toml:"cancellation_notice_minutes"`
	CredentialLeadMinutes     int    `toml:"credential_lead_minutes"`
	CredentialGraceMinutes    int    `toml:"credential_grace_minutes"`
	ShareBaseURL              string `toml:"share_base_url"`
}

type CatalogConfig struct {
	File string `toml:"file"` // пустой - только встроенные таблицы
}

type MailerConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "sports-booking",
		},
		Storage: StorageConfig{
			Driver:          StorageMemory,
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			LockTTL:  10,
			LockWait: 5,
		},
		Booking: BookingConfig{
			MaxActiveBookings:         domain.DefaultMaxActiveBookings,
			MaxDailyBookings:          domain.DefaultMaxDailyBookings,
			CountExpiredAsActive:      true,
			AdvanceBookingDays:        domain.DefaultAdvanceBookingDays,
			CancellationNoticeMinutes: domain.DefaultCancellationNoticeMinutes,
			CredentialLeadMinutes:     domain.DefaultCredentialLeadMinutes,
			CredentialGraceMinutes:    domain.DefaultCredentialGraceMinutes,
			ShareBaseURL:              "http://localhost:8080",
		},
		Mailer: MailerConfig{
			Timeout: 5,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
// Если файла нет, используются значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Storage.Host == "" || c.Storage.DBName == "" {
			problems = append(problems, "storage.host and storage.dbname are required for postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("storage.driver must be %q or %q", StorageMemory, StoragePostgres))
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		problems = append(problems, "redis.addr is required when redis is enabled")
	}

	b := c.Booking
	if b.MaxActiveBookings <= 0 || b.MaxDailyBookings <= 0 {
		problems = append(problems, "booking limits must be positive")
	}
	if b.AdvanceBookingDays < 0 {
		problems = append(problems, "booking.advance_booking_days must not be negative")
	}
	if b.CancellationNoticeMinutes < 0 || b.CredentialLeadMinutes < 0 || b.CredentialGraceMinutes < 0 {
		problems = append(problems, "booking windows must not be negative")
	}

	if c.Mailer.Enabled && c.Mailer.URL == "" {
		problems = append(problems, "mailer.url is required when mailer is enabled")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Duration переводит секунды из конфига в time.Duration
func Duration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}
