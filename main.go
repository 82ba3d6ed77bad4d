package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/hajni77/f1-analytics/config"
	"github.com/hajni77/f1-analytics/pkg/bot"
	"github.com/hajni77/f1-analytics/pkg/cache"
	"github.com/hajni77/f1-analytics/pkg/dashboard"
	"github.com/hajni77/f1-analytics/pkg/f1api"
	"github.com/hajni77/f1-analytics/pkg/notification"
	"github.com/hajni77/f1-analytics/pkg/service"
	"github.com/hajni77/f1-analytics/pkg/settings"
)

const reminderCheckInterval = time.Minute

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	configPath := os.Getenv("F1_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.New(configPath)
	if err != nil {
		log.Fatalf("loading configuration: %s", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)

	client := f1api.New(cfg.BaseURL, cfg.APIKey)
	memo := cache.New(cfg.CacheTTL)
	svc := service.New(f1api.NewCached(client, memo))

	store, err := settings.NewManager(cfg.DBPath)
	if err != nil {
		log.Fatalf("opening settings store: %s", err)
	}
	defer store.Close()

	live := dashboard.NewLive(ctx, svc)
	liveTicker := time.NewTicker(cfg.LiveRefresh)
	liveDone := make(chan bool)
	live.Sync(liveTicker, liveDone)

	web := dashboard.NewManager(svc, store, live)
	go func() {
		if err := web.Serve(ctx, cfg.Addr); err != nil {
			log.Errorf("dashboard stopped: %s", err)
			cancel()
		}
	}()

	var reminderTicker *time.Ticker
	reminderDone := make(chan bool)
	if cfg.TelegramToken != "" {
		tg, err := bot.New(cfg.TelegramToken, svc, store)
		if err != nil {
			log.Fatalf("connecting to telegram: %s", err)
		}
		go tg.Start(ctx)

		reminders := notification.NewManager(ctx, tg.API(), svc, store, cfg.ReminderLead)
		reminderTicker = time.NewTicker(reminderCheckInterval)
		reminders.Start(reminderTicker, reminderDone)
	} else {
		log.Info("TELEGRAM_TOKEN not set, running dashboard only")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	<-sigs

	liveTicker.Stop()
	liveDone <- true
	if reminderTicker != nil {
		reminderTicker.Stop()
		reminderDone <- true
	}
	cancel()

	// give the http server a moment to drain
	time.Sleep(time.Second)
}
