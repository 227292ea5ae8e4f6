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

	createBookingHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/delete_booking"
	getBookingsByDateHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/get_bookings_by_date"
	getUpcomingBookingsHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/get_upcoming_bookings"
	getUserBookingsHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/get_user_bookings"
	listRoomsHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/list_rooms"
	updateBookingHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/update_booking"
	welcomeHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/welcome"
	"github.com/m04kA/CWS-BookingService/internal/api/middleware"
	"github.com/m04kA/CWS-BookingService/internal/config"
	bookingRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/room"
	bookingsService "github.com/m04kA/CWS-BookingService/internal/service/bookings"
	roomsService "github.com/m04kA/CWS-BookingService/internal/service/rooms"
	"github.com/m04kA/CWS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CWS-BookingService/pkg/logger"
	"github.com/m04kA/CWS-BookingService/pkg/metrics"
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

	log.Info("Starting CWS-BookingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Логируем версию PostgreSQL
	var pgVersion string
	if err := db.QueryRowContext(context.Background(), "SELECT version()").Scan(&pgVersion); err != nil {
		log.Warn("Failed to query PostgreSQL version: %v", err)
	} else {
		log.Info("PostgreSQL version: %s", pgVersion)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		roomRepository    *roomRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	roomSvc := roomsService.NewService(roomRepository, log)

	// Инициализируем handlers
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	createBooking := createBookingHandler.NewHandler(bookingSvc, log)
	getUpcomingBookings := getUpcomingBookingsHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	getBookingsByDate := getBookingsByDateHandler.NewHandler(bookingSvc, log)
	welcome := welcomeHandler.NewHandler()

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Комнаты (только чтение)
	r.HandleFunc("/roomtypes", listRooms.Handle).Methods(http.MethodGet)

	// Бронирования
	r.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	r.HandleFunc("/bookings/upcoming", getUpcomingBookings.Handle).Methods(http.MethodPost)
	r.HandleFunc("/bookings/{user_email}", getUserBookings.Handle).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{id:[0-9]+}", deleteBooking.Handle).Methods(http.MethodDelete)
	r.HandleFunc("/bookings/{id:[0-9]+}", updateBooking.Handle).Methods(http.MethodPut)
	r.HandleFunc("/bookings/{date}/{email}", getBookingsByDate.Handle).Methods(http.MethodGet)

	// Корневой маршрут
	r.HandleFunc("/", welcome.Handle).Methods(http.MethodGet)

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
