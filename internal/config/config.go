package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	MQTT      MQTTConfig
	Kafka     KafkaConfig
	Ingestion IngestionConfig
	Display   DisplayConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port        string
	Host        string
	Environment string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	Secret string
}

type MQTTConfig struct {
	Broker        string
	ClientID      string
	Username      string
	Password      string
	ReportTopic   string
	LocationTopic string
	QoS           int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type IngestionConfig struct {
	BatchSize      int
	WorkerCount    int
	BufferSize     int
	BatchTimeoutMS int
}

// DisplayConfig carries the fallback display preferences used when an
// organization has no unit-of-measure records of its own.
type DisplayConfig struct {
	DateFormat      string
	TimeFormat      string
	TemperatureUnit string
	DistanceUnit    string
	Timezone        string
}

type RateLimitConfig struct {
	GeneralRPS   float64 // Requests per second for general endpoints
	GeneralBurst int     // Burst size for general endpoints
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AddConfigPath(".")
	if homeDir, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(homeDir)
	}
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		log.Printf("Warning: config file not found: %v. Falling back to environment variables only.", err)
	}

	viper.SetDefault("INGEST_BATCH_SIZE", 100)
	viper.SetDefault("INGEST_WORKER_COUNT", 4)
	viper.SetDefault("INGEST_BUFFER_SIZE", 1000)
	viper.SetDefault("INGEST_BATCH_TIMEOUT_MS", 5000)
	viper.SetDefault("MQTT_QOS", 1)
	viper.SetDefault("DISPLAY_DATE_FORMAT", "MM/DD/YYYY")
	viper.SetDefault("DISPLAY_TIME_FORMAT", "12")
	viper.SetDefault("DISPLAY_TEMPERATURE_UNIT", "Fahrenheit")
	viper.SetDefault("DISPLAY_DISTANCE_UNIT", "Miles")
	viper.SetDefault("DISPLAY_TIMEZONE", "UTC")

	config := &Config{
		Server: ServerConfig{
			Port:        viper.GetString("SERVER_PORT"),
			Host:        viper.GetString("SERVER_HOST"),
			Environment: viper.GetString("ENVIRONMENT"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			DBName:   viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		MQTT: MQTTConfig{
			Broker:        viper.GetString("MQTT_BROKER"),
			ClientID:      viper.GetString("MQTT_CLIENT_ID"),
			Username:      viper.GetString("MQTT_USERNAME"),
			Password:      viper.GetString("MQTT_PASSWORD"),
			ReportTopic:   viper.GetString("MQTT_REPORT_TOPIC"),
			LocationTopic: viper.GetString("MQTT_LOCATION_TOPIC"),
			QoS:           viper.GetInt("MQTT_QOS"),
		},
		Kafka: KafkaConfig{
			Brokers: viper.GetStringSlice("KAFKA_BROKERS"),
			Topic:   viper.GetString("KAFKA_ALERT_TOPIC"),
		},
		Ingestion: IngestionConfig{
			BatchSize:      viper.GetInt("INGEST_BATCH_SIZE"),
			WorkerCount:    viper.GetInt("INGEST_WORKER_COUNT"),
			BufferSize:     viper.GetInt("INGEST_BUFFER_SIZE"),
			BatchTimeoutMS: viper.GetInt("INGEST_BATCH_TIMEOUT_MS"),
		},
		Display: DisplayConfig{
			DateFormat:      viper.GetString("DISPLAY_DATE_FORMAT"),
			TimeFormat:      viper.GetString("DISPLAY_TIME_FORMAT"),
			TemperatureUnit: viper.GetString("DISPLAY_TEMPERATURE_UNIT"),
			DistanceUnit:    viper.GetString("DISPLAY_DISTANCE_UNIT"),
			Timezone:        viper.GetString("DISPLAY_TIMEZONE"),
		},
		RateLimit: RateLimitConfig{
			GeneralRPS:   viper.GetFloat64("RATE_LIMIT_GENERAL_RPS"),
			GeneralBurst: viper.GetInt("RATE_LIMIT_GENERAL_BURST"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods:   viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders:   viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
			ExposedHeaders:   viper.GetStringSlice("CORS_EXPOSED_HEADERS"),
			AllowCredentials: viper.GetBool("CORS_ALLOW_CREDENTIALS"),
			MaxAge:           viper.GetInt("CORS_MAX_AGE"),
		},
	}

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func (c *IngestionConfig) BatchTimeout() time.Duration {
	return time.Duration(c.BatchTimeoutMS) * time.Millisecond
}
