package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-SportsBooking/internal/api/handlers/cancel_booking"
	checkEligibilityHandler "github.com/m04kA/SMC-SportsBooking/internal/api/handlers/check_eligibility"
	createBookingHandler "github.com/m04kA/SMC-SportsBooking/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-SportsBooking/internal/api/handlers/delete_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SportsBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SportsBooking/internal/api/handlers/get_booking"
	getCredentialHandler "github.com/m04kA/SMC-SportsBooking/internal/api/handlers/get_credential"
	getSharedBookingHandler "github.com/m04kA/SMC-SportsBooking/internal/api/handlers/get_shared_booking"
	getUserBookingsHandler "github.com/m04kA/SMC-SportsBooking/internal/api/handlers/get_user_bookings"
	listFacilitiesHandler "github.com/m04kA/SMC-SportsBooking/internal/api/handlers/list_facilities"
	"github.com/m04kA/SMC-SportsBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SportsBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-SportsBooking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-SportsBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SportsBooking/internal/integrations/mailer"
	bookingsService "github.com/m04kA/SMC-SportsBooking/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-SportsBooking/internal/service/catalog"
	"github.com/m04kA/SMC-SportsBooking/internal/service/lifecycle"
	createBookingUC "github.com/m04kA/SMC-SportsBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SportsBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SportsBooking/pkg/locker"
	"github.com/m04kA/SMC-SportsBooking/pkg/logger"
	"github.com/m04kA/SMC-SportsBooking/pkg/metrics"
)

// bookingStore общий контракт хранилищ бронирований
type bookingStore interface {
	createBookingUC.BookingRepository
	bookingsService.BookingRepository
}

// appMetrics метрики, которые нужны use cases и сервисам
type appMetrics interface {
	createBookingUC.Metrics
	getAvailableSlotsUC.Metrics
	bookingsService.Metrics
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SportsBooking...")

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		appMetricsSink   appMetrics = metrics.Nop{}
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		appMetricsSink = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Справочник объектов
	catalog, err := catalogRepo.NewRepositoryFromFile(cfg.Catalog.File)
	if err != nil {
		log.Fatal("Failed to load catalog: %v", err)
	}
	log.Info("Catalog loaded (file=%q)", cfg.Catalog.File)

	// Хранилище бронирований
	var store bookingStore
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Storage.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Storage.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Storage.MaxIdleConns)
		db.SetConnMaxLifetime(config.Duration(cfg.Storage.ConnMaxLifetime))

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Storage.Host, cfg.Storage.Port, cfg.Storage.DBName)

		store = bookingRepo.NewRepository(db)
	default:
		store = bookingRepo.NewMemoryRepository()
		log.Warn("Using in-memory booking storage, bookings are lost on restart")
	}

	// Блокировка пользователя при создании бронирования
	var userLocker createBookingUC.Locker
	if cfg.Redis.Enabled {
		redisLock, err := locker.NewRedisLock(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, config.Duration(cfg.Redis.LockTTL))
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisLock.Close()
		userLocker = redisLock
		log.Info("Using redis booking lock (addr=%s)", cfg.Redis.Addr)
	} else {
		userLocker = locker.NewKeyedMutex()
	}

	// Почтовый клиент (опционально)
	var mailClient createBookingUC.Mailer
	if cfg.Mailer.Enabled {
		mailClient = mailer.NewClient(cfg.Mailer.URL, config.Duration(cfg.Mailer.Timeout), log)
		log.Info("Mailer client initialized (url=%s, timeout=%ds)", cfg.Mailer.URL, cfg.Mailer.Timeout)
	}

	// Время жизни бронирования
	evaluator := lifecycle.NewEvaluator(lifecycle.Config{
		CancellationNotice: time.Duration(cfg.Booking.CancellationNoticeMinutes) * time.Minute,
		CredentialLead:     time.Duration(cfg.Booking.CredentialLeadMinutes) * time.Minute,
		CredentialGrace:    time.Duration(cfg.Booking.CredentialGraceMinutes) * time.Minute,
	}, log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(store, evaluator, appMetricsSink, cfg.Booking.ShareBaseURL, log)
	catalogSvc := catalogService.NewService(catalog, log)

	// Инициализируем use cases
	generator := getAvailableSlotsUC.NewGenerator(catalog, nil)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalog,
		generator,
		appMetricsSink,
		cfg.Booking.AdvanceBookingDays,
		log,
	)

	policy := createBookingUC.NewPolicy(createBookingUC.PolicyConfig{
		MaxActiveBookings:    cfg.Booking.MaxActiveBookings,
		MaxDailyBookings:     cfg.Booking.MaxDailyBookings,
		CountExpiredAsActive: cfg.Booking.CountExpiredAsActive,
	}, evaluator, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		store,
		catalog,
		generator,
		policy,
		userLocker,
		mailClient,
		appMetricsSink,
		createBookingUC.Config{
			AdvanceBookingDays: cfg.Booking.AdvanceBookingDays,
			ShareBaseURL:       cfg.Booking.ShareBaseURL,
			LockTimeout:        config.Duration(cfg.Redis.LockWait),
		},
		log,
	)

	// Инициализируем handlers
	listFacilities := listFacilitiesHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkEligibility := checkEligibilityHandler.NewHandler(createBookingUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getCredential := getCredentialHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getSharedBooking := getSharedBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	// Metrics middleware и endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Справочник объектов
	api.HandleFunc("/facilities", listFacilities.Handle).Methods(http.MethodGet)

	// Слоты объекта на дату
	api.HandleFunc("/facilities/{facilityId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Бронирование по ссылке-приглашению
	api.HandleFunc("/bookings/share/{token}", getSharedBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Проверка правил без создания
	protected.HandleFunc("/bookings/eligibility", checkEligibility.Handle).Methods(http.MethodPost)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Удаление отмененного или завершенного бронирования из истории
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Пропуск и ссылка-приглашение
	protected.HandleFunc("/bookings/{bookingId}/credential", getCredential.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Бронирования пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  config.Duration(cfg.Server.ReadTimeout),
		WriteTimeout: config.Duration(cfg.Server.WriteTimeout),
		IdleTimeout:  config.Duration(cfg.Server.IdleTimeout),
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Duration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
