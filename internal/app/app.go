// Package app assembles the content, translation and template graph shared
// by the server and the static build.
package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"finitefield.org/staking-web/internal/config"
	"finitefield.org/staking-web/internal/content"
	"finitefield.org/staking-web/internal/i18n"
	"finitefield.org/staking-web/internal/observability"
	"finitefield.org/staking-web/internal/templates/staking"
	"finitefield.org/staking-web/locales"
)

const catalogDir = "data"

// App holds the long-lived dependencies built from configuration.
type App struct {
	Config   config.Config
	Bundle   *i18n.Bundle
	Catalog  *content.Catalog
	Template *staking.Template
	Store    *content.Store
}

// New loads translations and catalogs and builds the content store. The
// content tree itself is read lazily on first query.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	logger := observability.FromContext(ctx)

	bundle, err := i18n.Load(locales.FS, cfg.Site.DefaultLanguage, cfg.Site.Languages)
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	contentFS := os.DirFS(cfg.Site.ContentDir)
	catalog, err := content.LoadCatalog(contentFS, catalogDir)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	tmpl := staking.New(catalog)
	opts := []content.Option{content.WithLanguages(bundle.Supported())}
	if cfg.Dev {
		opts = append(opts, content.WithTTL(cfg.Site.CacheTTL))
	}
	store := content.NewStore(contentFS, content.SiteMetadata{
		Title:           cfg.Site.Title,
		URL:             cfg.Site.URL,
		DefaultLanguage: cfg.Site.DefaultLanguage,
	}, tmpl.Markdown(), opts...)

	logger.Info("content source ready",
		zap.String("content_dir", cfg.Site.ContentDir),
		zap.Strings("languages", bundle.Supported()),
		zap.Int("staking_products", len(catalog.StakingProducts)),
		zap.Bool("dev", cfg.Dev),
	)
	return &App{
		Config:   cfg,
		Bundle:   bundle,
		Catalog:  catalog,
		Template: tmpl,
		Store:    store,
	}, nil
}
