package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/GeeScot/donation-analytics-core/infrastructure/database/postgres"
	"github.com/GeeScot/donation-analytics-core/infrastructure/integrator/tiltify"
	"github.com/GeeScot/donation-analytics-core/infrastructure/integrator/tiltify/tiltifyclient"
	"github.com/GeeScot/donation-analytics-core/infrastructure/repository"
	"github.com/GeeScot/donation-analytics-core/internal/api"
	"github.com/GeeScot/donation-analytics-core/internal/config"
	"github.com/GeeScot/donation-analytics-core/internal/scheduler"
	"github.com/GeeScot/donation-analytics-core/internal/usecases/analyzing"
	"github.com/GeeScot/donation-analytics-core/internal/usecases/campaigning"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := repository.EnsureSchema(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("failed to ensure database schema")
	}

	donationRepo := repository.NewDonationRepository(pgConn)
	analyticsRepo := repository.NewAnalyticsRepository(pgConn)

	tiltifyClient := tiltifyclient.NewClient(cfg)
	tiltifyIntegrator := tiltify.New(cfg, tiltifyClient)

	analyzer := analyzing.NewService()
	campaignService := campaigning.NewService(tiltifyIntegrator, donationRepo, analyticsRepo, analyzer)

	campaignSyncService := scheduler.NewCampaignSyncService(campaignService, cfg)
	if err := campaignSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start campaign sync scheduler")
	}

	server, err := api.New(cfg, campaignService, campaignSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
