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

	createReservationHandler "github.com/gourmethaven/reservation-service/internal/api/handlers/create_reservation"
	decideReservationHandler "github.com/gourmethaven/reservation-service/internal/api/handlers/decide_reservation"
	deleteReservationHandler "github.com/gourmethaven/reservation-service/internal/api/handlers/delete_reservation"
	getDashboardStatsHandler "github.com/gourmethaven/reservation-service/internal/api/handlers/get_dashboard_stats"
	getTimeSlotsHandler "github.com/gourmethaven/reservation-service/internal/api/handlers/get_time_slots"
	listProductsHandler "github.com/gourmethaven/reservation-service/internal/api/handlers/list_products"
	listReservationsHandler "github.com/gourmethaven/reservation-service/internal/api/handlers/list_reservations"
	loginHandler "github.com/gourmethaven/reservation-service/internal/api/handlers/login"
	updateStockHandler "github.com/gourmethaven/reservation-service/internal/api/handlers/update_stock"
	validateCustomerHandler "github.com/gourmethaven/reservation-service/internal/api/handlers/validate_customer"
	"github.com/gourmethaven/reservation-service/internal/api/middleware"
	"github.com/gourmethaven/reservation-service/internal/auth"
	"github.com/gourmethaven/reservation-service/internal/config"
	"github.com/gourmethaven/reservation-service/internal/infra/kvstore/filestore"
	"github.com/gourmethaven/reservation-service/internal/infra/kvstore/pgstore"
	"github.com/gourmethaven/reservation-service/internal/infra/kvstore/sqlitestore"
	productRepo "github.com/gourmethaven/reservation-service/internal/infra/storage/products"
	reservationRepo "github.com/gourmethaven/reservation-service/internal/infra/storage/reservations"
	"github.com/gourmethaven/reservation-service/internal/notifier"
	"github.com/gourmethaven/reservation-service/internal/notifier/amqpsender"
	"github.com/gourmethaven/reservation-service/internal/notifier/logsender"
	reservationsService "github.com/gourmethaven/reservation-service/internal/service/reservations"
	stockService "github.com/gourmethaven/reservation-service/internal/service/stock"
	createReservationUC "github.com/gourmethaven/reservation-service/internal/usecase/create_reservation"
	decideReservationUC "github.com/gourmethaven/reservation-service/internal/usecase/decide_reservation"
	getDashboardStatsUC "github.com/gourmethaven/reservation-service/internal/usecase/get_dashboard_stats"
	getTimeSlotsUC "github.com/gourmethaven/reservation-service/internal/usecase/get_time_slots"
	"github.com/gourmethaven/reservation-service/pkg/logger"
	"github.com/gourmethaven/reservation-service/pkg/metrics"
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

	log.Info("Starting reservation-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Интерфейс blob-хранилища (реализация выбирается конфигом)
	type kvStore interface {
		Load(ctx context.Context, namespace string) ([]byte, error)
		Save(ctx context.Context, namespace string, data []byte) error
		Close() error
	}
	var store kvStore

	switch cfg.Storage.Driver {
	case "file":
		fileStore, err := filestore.New(cfg.Storage.Dir)
		if err != nil {
			log.Fatal("Failed to initialize file storage: %v", err)
		}
		store = fileStore
		log.Info("Storage driver: file (dir=%s)", cfg.Storage.Dir)

	case "sqlite":
		sqliteStore, err := sqlitestore.New(cfg.Storage.Path)
		if err != nil {
			log.Fatal("Failed to initialize sqlite storage: %v", err)
		}
		store = sqliteStore
		log.Info("Storage driver: sqlite (path=%s)", cfg.Storage.Path)

	case "postgres":
		db, err := sql.Open("postgres", cfg.Storage.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}

		pgStore, err := pgstore.New(context.Background(), db)
		if err != nil {
			log.Fatal("Failed to initialize postgres storage: %v", err)
		}
		store = pgStore
		log.Info("Storage driver: postgres (host=%s, port=%d, db=%s)",
			cfg.Storage.Host, cfg.Storage.Port, cfg.Storage.DBName)

	default:
		log.Fatal("Unknown storage driver %q", cfg.Storage.Driver)
	}
	defer store.Close()

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(store, log)
	productRepository := productRepo.NewRepository(store, log)

	// Инициализируем уведомления
	messageBuilder := notifier.NewMessageBuilder(notifier.Info{
		Name:          cfg.Restaurant.Name,
		Address:       cfg.Restaurant.Address,
		Phone:         cfg.Restaurant.Phone,
		Email:         cfg.Restaurant.Email,
		GoogleMapsURL: cfg.Restaurant.GoogleMapsURL,
	})

	var sender decideReservationUC.NotificationSender
	switch cfg.Notifications.Sender {
	case "amqp":
		sender = amqpsender.New(cfg.Notifications.AMQPURL, cfg.Notifications.Queue, log)
		log.Info("Notifications sender: amqp (queue=%s)", cfg.Notifications.Queue)
	default:
		sender = logsender.New(log)
		log.Info("Notifications sender: log (simulated delivery)")
	}

	// Инициализируем аутентификатор админки
	authenticator := auth.NewStaticAuthenticator(
		cfg.Auth.Username,
		cfg.Auth.Password,
		cfg.Auth.JWTSecret,
		cfg.Auth.TokenTTLMinutes,
	)

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	stockSvc := stockService.NewService(productRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		productRepository,
		log,
	)
	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(log)
	decideReservationUseCase := decideReservationUC.NewUseCase(
		reservationRepository,
		messageBuilder,
		sender,
		log,
	)
	getDashboardStatsUseCase := getDashboardStatsUC.NewUseCase(reservationRepository, log)

	// Инициализируем handlers
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	validateCustomer := validateCustomerHandler.NewHandler(createReservationUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	login := loginHandler.NewHandler(authenticator, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	decideReservation := decideReservationHandler.NewHandler(decideReservationUseCase, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(getDashboardStatsUseCase, log)
	listProducts := listProductsHandler.NewHandler(stockSvc, log)
	updateStock := updateStockHandler.NewHandler(stockSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Сетка временных слотов для формы бронирования
	api.HandleFunc("/time-slots", getTimeSlots.Handle).Methods(http.MethodGet)

	// Проверка первого шага мастера бронирования
	api.HandleFunc("/reservations/customer-info", validateCustomer.Handle).Methods(http.MethodPost)

	// Финальная отправка мастера бронирования
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Вход в админку
	api.HandleFunc("/admin/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	// --- Бронирования ---
	// Список бронирований (опционально по статусу)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Решение оператора по бронированию
	protected.HandleFunc("/reservations/{id}/decision", decideReservation.Handle).Methods(http.MethodPatch)

	// Удаление бронирования
	protected.HandleFunc("/reservations/{id}", deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Дашборд ---
	// Показатели и месячные выборки
	protected.HandleFunc("/dashboard", getDashboardStats.Handle).Methods(http.MethodGet)

	// --- Склад ---
	// Каталог продуктов
	protected.HandleFunc("/products", listProducts.Handle).Methods(http.MethodGet)

	// Изменение остатка продукта
	protected.HandleFunc("/products/{id}/stock", updateStock.Handle).Methods(http.MethodPatch)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
