package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr          string
	RedisChannelPrefix string

	PushAPIURL           string
	PushAccessToken      string
	PushReceiptsSchedule string

	NotifyChannelTimeout time.Duration
	NotifyLanes          int
	NotifyLaneBuffer     int

	AuthJWTSecret string
	LogLevel      slog.Level
}

// DSN renders the postgres connection string gorm's driver expects.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

var loadDotEnv sync.Once

// LoadConfig reads the environment, after merging a .env file from the working
// directory when one exists. Variables already set win over the file.
func LoadConfig() (Config, error) {
	loadDotEnv.Do(func() {
		_ = godotenv.Load(".env")
	})

	timeout, err := getDuration("NOTIFY_CHANNEL_TIMEOUT", 3*time.Second)
	if err != nil {
		return Config{}, err
	}
	lanes, err := getInt("NOTIFY_LANES", 8)
	if err != nil {
		return Config{}, err
	}
	buffer, err := getInt("NOTIFY_LANE_BUFFER", 256)
	if err != nil {
		return Config{}, err
	}
	var level slog.Level
	if err = level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "INFO"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return Config{
		HTTPPort:   getEnv("HTTP_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "shipflow"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisChannelPrefix: getEnv("REDIS_CHANNEL_PREFIX", "shipments"),

		PushAPIURL:           getEnv("PUSH_API_URL", ""),
		PushAccessToken:      getEnv("PUSH_ACCESS_TOKEN", ""),
		PushReceiptsSchedule: getEnv("PUSH_RECEIPTS_SCHEDULE", "@every 30s"),

		NotifyChannelTimeout: timeout,
		NotifyLanes:          lanes,
		NotifyLaneBuffer:     buffer,

		AuthJWTSecret: getEnv("AUTH_JWT_SECRET", ""),
		LogLevel:      level,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return value, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, raw)
	}
	return value, nil
}
