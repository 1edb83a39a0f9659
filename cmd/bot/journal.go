package main

import (
	"context"
	"database/sql"
	"time"

	"homework_status_bot/internal/domain/notification"
	idb "homework_status_bot/internal/infra/database"

	"github.com/sirupsen/logrus"
)

const journalSetupTimeout = 30 * time.Second

// openJournal connects the notification journal. The journal is optional: any
// failure is logged and polling continues with a no-op journal.
// The returned close func is always safe to call.
func openJournal(databaseURL string, log *logrus.Logger) (notification.Journal, func()) {
	noop := func() {}
	if databaseURL == "" {
		log.Info("DATABASE_URL not set, notification journal disabled")
		return notification.NopJournal{}, noop
	}

	db, err := idb.NewPostgresConnection(databaseURL)
	if err != nil {
		log.WithError(err).Error("Could not connect to database, notification journal disabled")
		return notification.NopJournal{}, noop
	}

	journalRepo := idb.NewPostgresJournalRepository(db)
	ctx, cancel := context.WithTimeout(context.Background(), journalSetupTimeout)
	defer cancel()
	if err := journalRepo.EnsureSchema(ctx); err != nil {
		log.WithError(err).Error("Could not prepare notification journal, journal disabled")
		closeDB(db, log)
		return notification.NopJournal{}, noop
	}

	log.Info("Notification journal enabled")
	return journalRepo, func() { closeDB(db, log) }
}

func closeDB(db *sql.DB, log *logrus.Logger) {
	if err := db.Close(); err != nil {
		log.WithError(err).Warn("Failed to close database connection")
	}
}
