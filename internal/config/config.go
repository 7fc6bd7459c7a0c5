package config

import (
	"os"
	"strconv"
	"strings"
)

// Config содержит конфигурацию бота
type Config struct {
	Env string // local | staging | prod

	// Telegram
	TelegramBotToken   string
	PollTimeoutSeconds int
	Workers            int

	// Weather (OpenWeatherMap)
	OWMAPIKey              string
	WeatherCacheTTLMinutes int

	// Collaborator HTTP calls
	HTTPTimeoutSeconds int

	// Rate Limiting (per user; 0 = disabled)
	RateLimitRPS   int
	RateLimitBurst int
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	// APP_ENV (fallback to ENV for backward compat, default: local)
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = os.Getenv("ENV")
	}
	if env == "" {
		env = "local"
	}

	// POLL_TIMEOUT_SECONDS (default: 30)
	pollTimeout := envInt("POLL_TIMEOUT_SECONDS", 30)
	if pollTimeout <= 0 {
		pollTimeout = 30
	}

	// WORKERS (default: 8)
	workers := envInt("WORKERS", 8)
	if workers <= 0 {
		workers = 8
	}

	// WEATHER_CACHE_TTL_MINUTES (default: 30)
	weatherTTL := envInt("WEATHER_CACHE_TTL_MINUTES", 30)
	if weatherTTL <= 0 {
		weatherTTL = 30
	}

	// HTTP_TIMEOUT_SECONDS (default: 10)
	httpTimeout := envInt("HTTP_TIMEOUT_SECONDS", 10)
	if httpTimeout <= 0 {
		httpTimeout = 10
	}

	return &Config{
		Env: env,

		TelegramBotToken:   strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
		PollTimeoutSeconds: pollTimeout,
		Workers:            workers,

		OWMAPIKey:              strings.TrimSpace(os.Getenv("OWM_API_KEY")),
		WeatherCacheTTLMinutes: weatherTTL,

		HTTPTimeoutSeconds: httpTimeout,

		RateLimitRPS:   envInt("RATE_LIMIT_RPS", 0),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 0),
	}
}

// envInt reads an int env var with a default value.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
