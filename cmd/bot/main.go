package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No notification here: the chat may be unreachable without credentials.
		logrus.WithError(err).Fatal("Could not load application configuration")
	}

	log, logCloser, err := logger.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Could not initialize logger")
	}
	defer logCloser.Close()

	log.WithFields(logrus.Fields{
		"environment":  cfg.Environment,
		"retry_period": cfg.RetryPeriod,
		"chat_id":      cfg.TelegramChatID,
	}).Info("Configuration loaded")

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	journal, closeJournal := openJournal(cfg.DatabaseURL, log)
	defer closeJournal()

	bot, err := telegram.NewBot(cfg.TelegramToken, httpClient)
	if err != nil {
		log.WithError(err).Fatal("Could not create Telegram bot")
	}

	notifier := app.NewNotifier(
		telegram.NewTelebotAdapter(bot),
		cfg.TelegramChatID,
		rate.NewLimiter(rate.Limit(cfg.NotifyRate), 1),
		journal,
		log,
	)
	apiClient := practicum.NewClient(cfg.PracticumEndpoint, cfg.PracticumToken, httpClient, log)
	pollScheduler := scheduler.NewPollScheduler(cfg.RetryPeriod, log)

	startCursor := time.Now().Add(-cfg.Lookback).Unix()
	pollingService := app.NewPollingService(apiClient, notifier, pollScheduler, log, startCursor)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := pollingService.Run(ctx); err != nil {
		log.WithError(err).Error("Polling stopped with error")
	}
	log.Info("Homework status bot shut down gracefully.")
}
