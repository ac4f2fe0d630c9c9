package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"finitefield.org/staking-web/internal/app"
	"finitefield.org/staking-web/internal/config"
	"finitefield.org/staking-web/internal/observability"
	"finitefield.org/staking-web/internal/site"
)

func main() {
	var (
		outDir  string
		envFile string
		workers int
	)
	flag.StringVar(&outDir, "out", "", "output directory (overrides SITE_OUT_DIR)")
	flag.StringVar(&envFile, "env-file", ".env", "dotenv file with local overrides")
	flag.IntVar(&workers, "workers", 0, "pages rendered in parallel (overrides SITE_BUILD_WORKERS)")
	flag.Parse()

	cfg, err := config.Load(config.WithEnvFile(envFile))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if strings.TrimSpace(outDir) != "" {
		cfg.Build.OutDir = outDir
	}
	if workers > 0 {
		cfg.Build.Workers = workers
	}

	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = observability.WithLogger(ctx, logger)

	a, err := app.New(ctx, cfg)
	if err != nil {
		logger.Fatal("assemble site", zap.Error(err))
	}

	builder := site.NewBuilder(a.Store, a.Template, a.Bundle, cfg.Build.OutDir,
		site.WithWorkers(cfg.Build.Workers),
		site.WithThemeVariant(cfg.Site.ThemeVariant),
	)
	manifest, err := builder.Build(ctx)
	if err != nil {
		logger.Fatal("build failed", zap.Error(err))
	}
	logger.Info("build complete",
		zap.String("build_id", manifest.ID),
		zap.Int("pages", len(manifest.Pages)),
		zap.String("duration", manifest.Duration),
	)
}
