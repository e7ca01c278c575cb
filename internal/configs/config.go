package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Драйверы хранилища
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
)

// AppConfig - вся конфигурация сервиса
type AppConfig struct {
	AppName string

	Rest     RestConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Mongo    MongoConfig
	RabbitMQ RabbitMQConfig

	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig

	Paging PagingConfig
}

type RestConfig struct {
	Port               string
	CORSAllowedOrigins []string
}

type StorageConfig struct {
	Driver string
}

type DatabaseConfig struct {
	URL string
}

type MongoConfig struct {
	URI      string
	Database string
}

type RabbitMQConfig struct {
	Enabled bool
	URL     string
}

type FluentBitConfig struct {
	Enabled bool
	Host    string
	Port    int
	Level   string
}

type StdoutLogConfig struct {
	Level string
}

type PagingConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

// LoadConfig читает .env (если есть) и переменные окружения.
// Отсутствие .env не ошибка: в контейнере конфигурация приходит из окружения.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath...)
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		AppName: getEnvAsString("APP_NAME", "catalog-service"),
		Rest: RestConfig{
			Port:               getEnvAsString("PORT", "8082"),
			CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Storage:  StorageConfig{Driver: strings.ToLower(getEnvAsString("STORAGE_DRIVER", StorageMemory))},
		Database: DatabaseConfig{URL: os.Getenv("DATABASE_URL")},
		Mongo: MongoConfig{
			URI:      os.Getenv("MONGO_URI"),
			Database: getEnvAsString("MONGO_DATABASE", "catalog"),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled: getEnvAsBool("RABBITMQ_ENABLED", false),
			URL:     os.Getenv("RABBITMQ_URL"),
		},
		StdoutLogger: StdoutLogConfig{Level: getEnvAsString("STDOUT_LOG_LEVEL", "debug")},
		Paging: PagingConfig{
			DefaultPageSize: getEnvAsInt("DEFAULT_PAGE_SIZE", 20),
			MaxPageSize:     getEnvAsInt("MAX_PAGE_SIZE", 100),
		},
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет несовместимые комбинации настроек
func (c *AppConfig) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for storage driver %q", c.Storage.Driver)
		}
	case StorageMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			return fmt.Errorf("MONGO_URI and MONGO_DATABASE are required for storage driver %q", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.RabbitMQ.Enabled && c.RabbitMQ.URL == "" {
		return fmt.Errorf("RABBITMQ_URL environment variable is required when RABBITMQ_ENABLED is true")
	}
	if c.Paging.DefaultPageSize < 1 || c.Paging.MaxPageSize < c.Paging.DefaultPageSize {
		return fmt.Errorf("invalid paging: default %d, max %d", c.Paging.DefaultPageSize, c.Paging.MaxPageSize)
	}
	return nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

// getEnvAsList - список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valStr) == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
