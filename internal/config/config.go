package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/medidesk/service-booking/internal/database"
)

// ServiceConfig holds all configuration for the booking service.
type ServiceConfig struct {
	Port         string
	AppEnv       string
	LogLevel     string
	DBConfig     database.Config
	KafkaBrokers []string
}

// Load reads configuration from BOOKING_-prefixed environment variables with
// sensible development defaults.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("BOOKING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("service.port", ":8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "booking")
	v.SetDefault("db.password", "booking")
	v.SetDefault("db.name", "booking")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("kafka.brokers", "localhost:9092")

	_ = v.BindEnv("service.port", "BOOKING_SERVICE_PORT", "PORT")
	_ = v.BindEnv("app.env", "BOOKING_APP_ENV", "APP_ENV")
	_ = v.BindEnv("log.level", "BOOKING_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("db.host", "BOOKING_DB_HOST")
	_ = v.BindEnv("db.port", "BOOKING_DB_PORT")
	_ = v.BindEnv("db.user", "BOOKING_DB_USER")
	_ = v.BindEnv("db.password", "BOOKING_DB_PASSWORD")
	_ = v.BindEnv("db.name", "BOOKING_DB_NAME")
	_ = v.BindEnv("db.sslmode", "BOOKING_DB_SSLMODE")
	_ = v.BindEnv("kafka.brokers", "BOOKING_KAFKA_BROKERS", "KAFKA_BROKERS")

	port := v.GetString("service.port")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	return &ServiceConfig{
		Port:     port,
		AppEnv:   v.GetString("app.env"),
		LogLevel: v.GetString("log.level"),
		DBConfig: database.Config{
			Host:     v.GetString("db.host"),
			Port:     v.GetString("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
			SSLMode:  v.GetString("db.sslmode"),
		},
		KafkaBrokers: strings.Split(v.GetString("kafka.brokers"), ","),
	}, nil
}
