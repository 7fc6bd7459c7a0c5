package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/fdg312/hydrolog/internal/bot"
	"github.com/fdg312/hydrolog/internal/config"
	"github.com/fdg312/hydrolog/internal/conversation"
	"github.com/fdg312/hydrolog/internal/food"
	"github.com/fdg312/hydrolog/internal/store"
	"github.com/fdg312/hydrolog/internal/telegram"
	"github.com/fdg312/hydrolog/internal/tracker"
	"github.com/fdg312/hydrolog/internal/weather"
)

func main() {
	cfg := config.Load()

	printStartupBanner(cfg)

	if cfg.TelegramBotToken == "" {
		log.Fatal("FATAL config: TELEGRAM_BOT_TOKEN is not set")
	}

	httpTimeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	weatherService := weather.NewService(
		&weather.Client{
			APIKey:     cfg.OWMAPIKey,
			HTTPClient: &http.Client{Timeout: httpTimeout},
		},
		time.Duration(cfg.WeatherCacheTTLMinutes)*time.Minute,
	)
	foodClient := &food.Client{
		HTTPClient: &http.Client{Timeout: httpTimeout},
	}

	dispatcher := bot.NewDispatcher(
		store.New(),
		tracker.NewService(weatherService),
		conversation.NewEngine(foodClient),
		cfg,
	)

	poller, err := telegram.NewPoller(cfg.TelegramBotToken, dispatcher, cfg)
	if err != nil {
		log.Fatalf("FATAL telegram: %v", err)
	}

	log.Fatal(poller.Run(context.Background()))
}

// printStartupBanner logs a one-time summary of the resolved configuration.
// No secrets are ever printed — only masked indicators ("set" / "not set").
func printStartupBanner(cfg *config.Config) {
	log.Println("========== Hydrolog Bot ==========")
	log.Printf("  env              = %s", cfg.Env)
	log.Printf("  bot_token        = %s", setOrNot(cfg.TelegramBotToken))
	log.Printf("  poll_timeout     = %ds", cfg.PollTimeoutSeconds)
	log.Printf("  workers          = %d", cfg.Workers)
	log.Printf("  owm_api_key      = %s", weatherKeyStatus(cfg.OWMAPIKey))
	log.Printf("  weather_ttl      = %dm", cfg.WeatherCacheTTLMinutes)
	log.Printf("  http_timeout     = %ds", cfg.HTTPTimeoutSeconds)
	if cfg.RateLimitRPS > 0 {
		log.Printf("  rate_limit       = %d rps (burst %d)", cfg.RateLimitRPS, cfg.RateLimitBurst)
	} else {
		log.Printf("  rate_limit       = disabled")
	}
	log.Println("==================================")
}

func setOrNot(v string) string {
	if v == "" {
		return "not set"
	}
	return "set"
}

func weatherKeyStatus(v string) string {
	if v == "" {
		return "not set (temperature bonus disabled)"
	}
	return "set"
}
