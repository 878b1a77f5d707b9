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

	bulkCreateResidentsHandler "github.com/m04kA/SMC-AmenityService/internal/api/handlers/bulk_create_residents"
	cancelBookingHandler "github.com/m04kA/SMC-AmenityService/internal/api/handlers/cancel_booking"
	createAmenityHandler "github.com/m04kA/SMC-AmenityService/internal/api/handlers/create_amenity"
	createAnnouncementHandler "github.com/m04kA/SMC-AmenityService/internal/api/handlers/create_announcement"
	createBookingHandler "github.com/m04kA/SMC-AmenityService/internal/api/handlers/create_booking"
	deleteAmenityHandler "github.com/m04kA/SMC-AmenityService/internal/api/handlers/delete_amenity"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AmenityService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-AmenityService/internal/api/handlers/get_booking"
	getDateBookingsHandler "github.com/m04kA/SMC-AmenityService/internal/api/handlers/get_date_bookings"
	getResidentBookingsHandler "github.com/m04kA/SMC-AmenityService/internal/api/handlers/get_resident_bookings"
	getSettingsHandler "github.com/m04kA/SMC-AmenityService/internal/api/handlers/get_settings"
	listAmenitiesHandler "github.com/m04kA/SMC-AmenityService/internal/api/handlers/list_amenities"
	listAnnouncementsHandler "github.com/m04kA/SMC-AmenityService/internal/api/handlers/list_announcements"
	updateAmenityHandler "github.com/m04kA/SMC-AmenityService/internal/api/handlers/update_amenity"
	updateSettingsHandler "github.com/m04kA/SMC-AmenityService/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-AmenityService/internal/api/middleware"
	"github.com/m04kA/SMC-AmenityService/internal/config"
	amenityRepo "github.com/m04kA/SMC-AmenityService/internal/infra/storage/amenity"
	announcementRepo "github.com/m04kA/SMC-AmenityService/internal/infra/storage/announcement"
	bookingRepo "github.com/m04kA/SMC-AmenityService/internal/infra/storage/booking"
	residentRepo "github.com/m04kA/SMC-AmenityService/internal/infra/storage/resident"
	settingsRepo "github.com/m04kA/SMC-AmenityService/internal/infra/storage/settings"
	amenitiesService "github.com/m04kA/SMC-AmenityService/internal/service/amenities"
	announcementsService "github.com/m04kA/SMC-AmenityService/internal/service/announcements"
	bookingsService "github.com/m04kA/SMC-AmenityService/internal/service/bookings"
	residentsService "github.com/m04kA/SMC-AmenityService/internal/service/residents"
	settingsService "github.com/m04kA/SMC-AmenityService/internal/service/settings"
	createBookingUC "github.com/m04kA/SMC-AmenityService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-AmenityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AmenityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AmenityService/pkg/logger"
	"github.com/m04kA/SMC-AmenityService/pkg/metrics"
	"github.com/m04kA/SMC-AmenityService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AmenityService/pkg/txmanager"
)

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

	log.Info("Starting SMC-AmenityService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		amenityRepository      *amenityRepo.Repository
		residentRepository     *residentRepo.Repository
		announcementRepository *announcementRepo.Repository
		settingsRepository     *settingsRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		amenityRepository = amenityRepo.NewRepository(wrappedDB)
		residentRepository = residentRepo.NewRepository(wrappedDB)
		announcementRepository = announcementRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		amenityRepository = amenityRepo.NewRepository(db)
		residentRepository = residentRepo.NewRepository(db)
		announcementRepository = announcementRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	amenitySvc := amenitiesService.NewService(amenityRepository, log)
	residentSvc := residentsService.NewService(residentRepository, log)
	announcementSvc := announcementsService.NewService(announcementRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		amenityRepository,
		residentRepository,
		settingsRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		amenityRepository,
		settingsRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getResidentBookings := getResidentBookingsHandler.NewHandler(bookingSvc, log)
	getDateBookings := getDateBookingsHandler.NewHandler(bookingSvc, log)
	listAmenities := listAmenitiesHandler.NewHandler(amenitySvc, log)
	createAmenity := createAmenityHandler.NewHandler(amenitySvc, log)
	updateAmenity := updateAmenityHandler.NewHandler(amenitySvc, log)
	deleteAmenity := deleteAmenityHandler.NewHandler(amenitySvc, log)
	bulkCreateResidents := bulkCreateResidentsHandler.NewHandler(residentSvc, log)
	listAnnouncements := listAnnouncementsHandler.NewHandler(announcementSvc, log)
	createAnnouncement := createAnnouncementHandler.NewHandler(announcementSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Прокидываем request ID на всех роутах
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог помещений
	api.HandleFunc("/amenities", listAmenities.Handle).Methods(http.MethodGet)

	// Статус слотов помещения на дату
	api.HandleFunc("/amenities/{amenityId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Лента объявлений
	api.HandleFunc("/announcements", listAnnouncements.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Брони ---
	// Создание брони
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Все брони на дату (только для администратора)
	protected.HandleFunc("/bookings", getDateBookings.Handle).
		Methods(http.MethodGet).Queries("date", "{date}")

	// Получение брони по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена брони
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История броней жителя
	protected.HandleFunc("/residents/{residentId}/bookings", getResidentBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: ADMIN)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	// --- Каталог помещений ---
	admin.HandleFunc("/amenities", createAmenity.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/amenities/{amenityId}", updateAmenity.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/amenities/{amenityId}", deleteAmenity.Handle).Methods(http.MethodDelete)

	// --- Реестр жителей ---
	admin.HandleFunc("/residents/bulk", bulkCreateResidents.Handle).Methods(http.MethodPost)

	// --- Объявления ---
	admin.HandleFunc("/announcements", createAnnouncement.Handle).Methods(http.MethodPost)

	// --- Настройки ---
	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

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
