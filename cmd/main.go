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
	"github.com/redis/go-redis/v9"

	cancelSessionHandler "github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers/cancel_session"
	getAvailableSlotsHandler "github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers/get_calendar"
	getInstructorSessionsHandler "github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers/get_instructor_sessions"
	getSessionHandler "github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers/get_session"
	previewCalendarHandler "github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers/preview_calendar"
	reserveSlotHandler "github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers/reserve_slot"
	saveCalendarHandler "github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers/save_calendar"
	syncCalendarHandler "github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers/sync_calendar"
	validateCalendarHandler "github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers/validate_calendar"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/api/middleware"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/config"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/infra/cache/busyblock"
	calendarRepo "github.com/Bam123-spec/drivofy-v2-sub000/internal/infra/storage/calendar"
	commitmentRepo "github.com/Bam123-spec/drivofy-v2-sub000/internal/infra/storage/commitment"
	sessionRepo "github.com/Bam123-spec/drivofy-v2-sub000/internal/infra/storage/session"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/integrations/calendarsync"
	calendarService "github.com/Bam123-spec/drivofy-v2-sub000/internal/service/calendar"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/service/ledger"
	sessionsService "github.com/Bam123-spec/drivofy-v2-sub000/internal/service/sessions"
	getAvailableSlotsUC "github.com/Bam123-spec/drivofy-v2-sub000/internal/usecase/get_available_slots"
	reserveSlotUC "github.com/Bam123-spec/drivofy-v2-sub000/internal/usecase/reserve_slot"
	syncCalendarUC "github.com/Bam123-spec/drivofy-v2-sub000/internal/usecase/sync_external_calendar"
	"github.com/Bam123-spec/drivofy-v2-sub000/migrations"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/cache"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/dbmetrics"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/logger"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/metrics"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting drivofy scheduling service...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	if cfg.Database.AutoMigrate {
		applied, err := migrations.Up(db)
		if err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Migrations applied: %v", applied)
	}

	// С nil метриками обёртка не собирает статистику
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кеш занятости из внешних календарей (опционально)
	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient, err = cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Connected to redis at %s", cfg.Redis.Addr)
	} else {
		log.Warn("Redis is not configured, external calendar busy blocks are disabled")
	}
	busyBlocks := busyblock.NewStore(redisClient, time.Duration(cfg.Redis.BusyBlockTTL)*time.Hour)
	log.Info("Busy block cache: enabled=%t, ttl=%dh", busyBlocks.Enabled(), cfg.Redis.BusyBlockTTL)

	// Инициализируем интеграционных клиентов
	bridgeClient := calendarsync.NewClient(
		cfg.CalendarSync.URL,
		time.Duration(cfg.CalendarSync.Timeout)*time.Second,
		log,
	)
	log.Info("Calendar bridge client initialized (url=%s timeout=%ds)", cfg.CalendarSync.URL, cfg.CalendarSync.Timeout)

	// Репозитории
	sessionRepository := sessionRepo.NewRepository(wrappedDB)
	calendarRepository := calendarRepo.NewRepository(wrappedDB)
	commitmentRepository := commitmentRepo.NewRepository(wrappedDB)

	// Сервисы
	occupancy := ledger.NewService(sessionRepository, commitmentRepository, busyBlocks)
	sessionsSvc := sessionsService.NewService(sessionRepository, txMgr, log)
	calendarSvc := calendarService.NewService(calendarRepository, log)

	// Use cases
	recorder := metrics.NewAvailabilityRecorder(metricsCollector)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(calendarRepository, occupancy, recorder, log)
	reserveSlotUseCase := reserveSlotUC.NewUseCase(sessionRepository, calendarRepository, occupancy, txMgr, recorder, log)
	syncCalendarUseCase := syncCalendarUC.NewUseCase(bridgeClient, busyBlocks, calendarRepository, recorder, log)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(calendarSvc, log)
	validateCalendar := validateCalendarHandler.NewHandler(calendarSvc, log)
	previewCalendar := previewCalendarHandler.NewHandler(calendarSvc, log)
	saveCalendar := saveCalendarHandler.NewHandler(calendarSvc, log)
	reserveSlot := reserveSlotHandler.NewHandler(reserveSlotUseCase, log)
	getSession := getSessionHandler.NewHandler(sessionsSvc, log)
	cancelSession := cancelSessionHandler.NewHandler(sessionsSvc, log)
	getInstructorSessions := getInstructorSessionsHandler.NewHandler(sessionsSvc, log)
	syncCalendar := syncCalendarHandler.NewHandler(syncCalendarUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/instructors/{instructorId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.HandleMulti).Methods(http.MethodGet)
	api.HandleFunc("/instructors/{instructorId}/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendars/validate", validateCalendar.Handle).Methods(http.MethodPost)
	api.HandleFunc("/calendars/preview", previewCalendar.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Календари ---
	protected.HandleFunc("/instructors/{instructorId}/calendar", saveCalendar.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/instructors/{instructorId}/calendar-sync", syncCalendar.Handle).Methods(http.MethodPost)

	// --- Занятия ---
	protected.HandleFunc("/sessions", reserveSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/sessions/{sessionId}/cancel", cancelSession.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/instructors/{instructorId}/sessions", getInstructorSessions.Handle).Methods(http.MethodGet)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
