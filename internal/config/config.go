package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Storage       StorageConfig       `toml:"storage"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Auth          AuthConfig          `toml:"auth"`
	Restaurant    RestaurantConfig    `toml:"restaurant"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// StorageConfig настройки хранилища.
// Driver выбирает реализацию blob-хранилища: "file", "sqlite" или "postgres".
type StorageConfig struct {
	Driver string `toml:"driver"`

	// file driver
	Dir string `toml:"dir"`

	// sqlite driver
	Path string `toml:"path"`

	// postgres driver
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	DBName   string `toml:"dbname"`
	SSLMode  string `toml:"sslmode"`
}

// DSN возвращает строку подключения к Postgres
func (s StorageConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		s.Host, s.Port, s.User, s.Password, s.DBName, s.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AuthConfig учетные данные администратора и параметры сессионных токенов
type AuthConfig struct {
	Username        string `toml:"username"`
	Password        string `toml:"password"`
	JWTSecret       string `toml:"jwt_secret"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
}

// RestaurantConfig контактный блок ресторана, попадает в письма клиентам
type RestaurantConfig struct {
	Name          string `toml:"name"`
	Address       string `toml:"address"`
	Phone         string `toml:"phone"`
	Email         string `toml:"email"`
	GoogleMapsURL string `toml:"google_maps_url"`
}

// NotificationsConfig настройки доставки уведомлений.
// Sender выбирает реализацию: "log" (симуляция) или "amqp".
type NotificationsConfig struct {
	Sender  string `toml:"sender"`
	AMQPURL string `toml:"amqp_url"`
	Queue   string `toml:"queue"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Storage: StorageConfig{
			Driver:  "sqlite",
			Dir:     "data",
			Path:    "data/reservations.db",
			SSLMode: "disable",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "reservation-service",
			Path:        "/metrics",
		},
		Auth: AuthConfig{
			TokenTTLMinutes: 60,
		},
		Restaurant: RestaurantConfig{
			Name:          "Gourmet Haven",
			Address:       "123 Culinary Street, Porto, Portugal",
			Phone:         "+351 123 456 789",
			Email:         "contact@gourmethaven.com",
			GoogleMapsURL: "https://goo.gl/maps/your-restaurant-location",
		},
		Notifications: NotificationsConfig{
			Sender: "log",
			Queue:  "reservation.decision",
		},
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "file", "sqlite", "postgres":
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}

	switch c.Notifications.Sender {
	case "log", "amqp":
	default:
		return fmt.Errorf("config: unknown notifications sender %q", c.Notifications.Sender)
	}

	if c.Notifications.Sender == "amqp" && c.Notifications.AMQPURL == "" {
		return fmt.Errorf("config: notifications.amqp_url is required for the amqp sender")
	}

	if c.Auth.Username == "" || c.Auth.Password == "" {
		return fmt.Errorf("config: auth.username and auth.password are required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config: auth.jwt_secret is required")
	}

	return nil
}
