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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_booking"
	createScheduleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_schedule"
	createSlotHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_slot"
	deleteScheduleOverrideHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_schedule_override"
	getScheduleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_schedule"
	getWorkerBookingsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_worker_bookings"
	getWorkerSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_worker_slots"
	regenerateSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/regenerate_slots"
	rescheduleBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/reschedule_booking"
	updateBookingStatusHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_booking_status"
	updateScheduleOverrideHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_schedule_override"
	updateScheduleRuleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_schedule_rule"
	updateSlotHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_slot"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
	slotRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/slot"
	catalogServiceClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/catalogservice"
	bookingsService "github.com/m04kA/SMC-AvailabilityService/internal/service/bookings"
	schedulesService "github.com/m04kA/SMC-AvailabilityService/internal/service/schedules"
	slotsService "github.com/m04kA/SMC-AvailabilityService/internal/service/slots"
	cancelBookingUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
	regenerateSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/regenerate_slots"
	rescheduleBookingUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/reschedule_booking"
	updateBookingStatusUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/update_booking_status"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
)

func main() {
	// Переменные окружения из .env (пароль БД и прочие секреты)
	_ = godotenv.Load()

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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CatalogService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		slotRepository     *slotRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotsSvc := slotsService.NewService(slotRepository, txMgr, log)
	schedulesSvc := schedulesService.NewService(scheduleRepository, txMgr, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	regenerateSlotsUseCase := regenerateSlotsUC.NewUseCase(
		scheduleRepository,
		slotRepository,
		txMgr,
		cfg.Regeneration.MaxRangeDays,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		catalogClient,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		txMgr,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		txMgr,
		log,
	)
	updateBookingStatusUseCase := updateBookingStatusUC.NewUseCase(
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	regenerateSlots := regenerateSlotsHandler.NewHandler(regenerateSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(updateBookingStatusUseCase, log)
	getWorkerBookings := getWorkerBookingsHandler.NewHandler(bookingsSvc, log)
	getWorkerSlots := getWorkerSlotsHandler.NewHandler(slotsSvc, log)
	createSlot := createSlotHandler.NewHandler(slotsSvc, log)
	updateSlot := updateSlotHandler.NewHandler(slotsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(schedulesSvc, log)
	createSchedule := createScheduleHandler.NewHandler(schedulesSvc, log)
	updateScheduleRule := updateScheduleRuleHandler.NewHandler(schedulesSvc, log)
	updateScheduleOverride := updateScheduleOverrideHandler.NewHandler(schedulesSvc, log)
	deleteScheduleOverride := deleteScheduleOverrideHandler.NewHandler(schedulesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
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

	// Слоты работника за период
	api.HandleFunc("/workers/{workerId}/slots", getWorkerSlots.Handle).Methods(http.MethodGet)

	// Расписание работника
	api.HandleFunc("/workers/{workerId}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/workers/{workerId}/bookings", getWorkerBookings.Handle).Methods(http.MethodGet)

	// --- Слоты (для операторов) ---
	protected.HandleFunc("/workers/{workerId}/slots", createSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/workers/{workerId}/slots/regenerate", regenerateSlots.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{slotId}", updateSlot.Handle).Methods(http.MethodPatch)

	// --- Расписания (для операторов) ---
	protected.HandleFunc("/workers/{workerId}/schedule", createSchedule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/workers/{workerId}/schedule/rules/{weekday}", updateScheduleRule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/workers/{workerId}/schedule/overrides/{date}", updateScheduleOverride.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/workers/{workerId}/schedule/overrides/{date}", deleteScheduleOverride.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
