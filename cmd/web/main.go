package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"finitefield.org/staking-web/internal/app"
	"finitefield.org/staking-web/internal/config"
	"finitefield.org/staking-web/internal/content"
	"finitefield.org/staking-web/internal/handlers"
	"finitefield.org/staking-web/internal/observability"
	"finitefield.org/staking-web/internal/styles"
	"finitefield.org/staking-web/internal/templates/staking"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var (
		addr    string
		envFile string
	)
	flag.StringVar(&addr, "addr", "", "HTTP listen address (overrides SITE_ADDR)")
	flag.StringVar(&envFile, "env-file", ".env", "dotenv file with local overrides")
	flag.Parse()

	cfg, err := config.Load(config.WithEnvFile(envFile))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if strings.TrimSpace(addr) != "" {
		cfg.Server.Addr = addr
	}

	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	ctx := observability.WithLogger(context.Background(), logger)

	site, err := app.New(ctx, cfg)
	if err != nil {
		logger.Fatal("assemble site", zap.Error(err))
	}

	css, err := styles.Build(cfg.Site.ThemeVariant)
	if err != nil {
		logger.Fatal("build stylesheet", zap.Error(err))
	}

	store := site.Store
	router := handlers.NewRouter(
		handlers.WithLogger(logger),
		handlers.WithHealthHandlers(handlers.NewHealthHandlers(
			handlers.WithHealthVersion(buildVersion()),
			handlers.WithReadinessCheck(func(ctx context.Context) error {
				_, err := store.Routes(ctx, "")
				return err
			}),
		)),
		handlers.WithAssetRoutes(handlers.NewAssetHandlers([]byte(css), store.FS()).Routes),
		handlers.WithPageRoutes(handlers.NewPageHandlers(store, site.Template, site.Bundle).Routes),
	)

	// warm the content cache so broken content fails at startup
	routes, err := store.Routes(ctx, "")
	if err != nil {
		logger.Fatal("load content", zap.Error(err))
	}
	logger.Info("content indexed", zap.Int("pages", len(routes)), zap.Int("staking_pages", countTemplate(routes)))

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("staking web listening", zap.Bool("dev", cfg.Dev))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func countTemplate(routes []content.PageContext) int {
	n := 0
	for _, r := range routes {
		if r.Template == staking.Name {
			n++
		}
	}
	return n
}

func buildVersion() string {
	if v := strings.TrimSpace(os.Getenv("SITE_BUILD_VERSION")); v != "" {
		return v
	}
	return "dev"
}
