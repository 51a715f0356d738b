package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"github.com/cogip/cogip-api/internal/core/ports"
	"github.com/cogip/cogip-api/internal/infrastructure/db/mongo"
	"github.com/cogip/cogip-api/internal/infrastructure/db/postgres"
	"github.com/cogip/cogip-api/internal/pkg/config"
)

// store bundles the repositories of one backend with its lifecycle hooks.
type store struct {
	users     ports.UserRepository
	companies ports.CompanyRepository
	contacts  ports.ContactRepository
	invoices  ports.InvoiceRepository

	ping  func(ctx context.Context) error
	close func()
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres, config.DriverSQLite:
		gormLevel := gormlogger.Warn
		if cfg.LogLevel == "debug" || cfg.LogLevel == "trace" {
			gormLevel = gormlogger.Info
		}
		db, err := postgres.Open(ctx, postgres.Config{
			Driver:          cfg.StoreDriver,
			DSN:             cfg.Database.URL,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			LogLevel:        gormLevel,
		})
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = postgres.Close(db)
			return nil, err
		}
		log.Info().Str("driver", cfg.StoreDriver).Msg("relational store ready")
		return &store{
			users:     postgres.NewUserRepository(db),
			companies: postgres.NewCompanyRepository(db),
			contacts:  postgres.NewContactRepository(db),
			invoices:  postgres.NewInvoiceRepository(db),
			ping:      func(ctx context.Context) error { return postgres.Ping(ctx, db) },
			close: func() {
				if err := postgres.Close(db); err != nil {
					log.Error().Err(err).Msg("close database")
				}
			},
		}, nil

	case config.DriverMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("document store ready")
		return &store{
			users:     mongo.NewUserRepository(db),
			companies: mongo.NewCompanyRepository(db),
			contacts:  mongo.NewContactRepository(db),
			invoices:  mongo.NewInvoiceRepository(db),
			ping:      func(ctx context.Context) error { return mongo.Ping(ctx, db) },
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					log.Error().Err(err).Msg("disconnect mongo")
				}
			},
		}, nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}
