// Command api runs the COGIP HTTP API.
//
// @title                       COGIP API
// @version                     1.0
// @description                 Company, contact, invoice and user records behind bearer-token authentication.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the access token.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/cogip/cogip-api/internal/api"
	"github.com/cogip/cogip-api/internal/api/handler"
	"github.com/cogip/cogip-api/internal/core/ports"
	"github.com/cogip/cogip-api/internal/core/service"
	"github.com/cogip/cogip-api/internal/infrastructure/db/redis"
	"github.com/cogip/cogip-api/internal/pkg/config"
	"github.com/cogip/cogip-api/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{Pretty: true})
		boot.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "cogip-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	initCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	st, err := openStore(initCtx, cfg, log)
	cancel()
	if err != nil {
		return err
	}
	defer st.close()

	checks := []handler.DependencyCheck{{Name: cfg.StoreDriver, Check: st.ping}}

	var throttle ports.LoginThrottle
	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
			Timeout:  cfg.Redis.Timeout,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		throttle = redis.NewLoginThrottle(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)
		checks = append(checks, handler.DependencyCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redis.Ping(ctx, rdb) },
		})
		log.Info().Str("addr", cfg.Redis.Addr).Int("max_attempts", cfg.Login.MaxAttempts).Msg("login throttle enabled")
	}

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	creds := service.NewCredentialService(st.users, log)

	if cfg.Admin.Enabled() {
		seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		_, err := creds.EnsureAdmin(seedCtx, cfg.Admin.Username, cfg.Admin.Password)
		cancel()
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	e := api.NewRouter(api.Deps{
		Auth:      service.NewAuthService(creds, tokens, throttle, log),
		Users:     creds,
		Companies: service.NewCompanyService(st.companies, log),
		Contacts:  service.NewContactService(st.contacts, log),
		Invoices:  service.NewInvoiceService(st.invoices, log),
		Tokens:    tokens,
		Roles:     creds,
		Checks:    checks,
		Registry:  reg,
		Logger:    log,
	})
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	return nil
}
