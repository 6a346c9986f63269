//go:build wireinject

package di

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/wire"

	"github.com/haakonunderbakke/haakon-dev/internal/adapter/logging"
	"github.com/haakonunderbakke/haakon-dev/internal/adapter/sqlite"
	"github.com/haakonunderbakke/haakon-dev/internal/adapter/wordpress"
	"github.com/haakonunderbakke/haakon-dev/internal/app"
	"github.com/haakonunderbakke/haakon-dev/internal/articles"
	"github.com/haakonunderbakke/haakon-dev/internal/config"
	"github.com/haakonunderbakke/haakon-dev/internal/content"
	"github.com/haakonunderbakke/haakon-dev/internal/domain/ports"
	"github.com/haakonunderbakke/haakon-dev/internal/web"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, func(), error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideWordPress,
		wire.Bind(new(ports.ArticleSource), new(*wordpress.Client)),
		wire.Bind(new(ports.MediaResolver), new(*wordpress.Client)),
		provideSnapshotStore,
		provideCatalog,
		provideFeaturedImages,
		provideMatcher,
		content.Landing,
		provideWebOptions,
		web.New,
		provideAddr,
		provideSchedule,
		app.New,
	)
	return nil, nil, nil
}

func provideSlogLogger() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

func provideWordPress(cfg *config.Config, logger ports.Logger) *wordpress.Client {
	return wordpress.New(cfg.ContentAPIURL, cfg.RequestTimeout, cfg.MediaRPS, logger)
}

func provideSnapshotStore(cfg *config.Config, logger ports.Logger) (ports.SnapshotStore, func(), error) {
	if !cfg.SnapshotEnabled() {
		return nil, func() {}, nil
	}
	store, err := sqlite.Open(cfg.SnapshotDB)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Error(context.Background(), "closing snapshot store failed", "error", err)
		}
	}
	return store, cleanup, nil
}

func provideCatalog(cfg *config.Config, source ports.ArticleSource, store ports.SnapshotStore, logger ports.Logger) *articles.Catalog {
	return articles.NewCatalog(source, store, logger, cfg.AllowedCategories)
}

func provideFeaturedImages(cfg *config.Config, resolver ports.MediaResolver, logger ports.Logger) *articles.FeaturedImages {
	return articles.NewFeaturedImages(resolver, logger, cfg.ImageCacheSize, cfg.ImageCacheTTL)
}

func provideMatcher() articles.Matcher {
	return articles.TextMatcher{}
}

func provideWebOptions(cfg *config.Config) web.Options {
	return web.Options{
		PageSize:       cfg.PageSize,
		SearchDebounce: cfg.SearchDebounce,
		AdminToken:     cfg.AdminToken,
	}
}

func provideAddr(cfg *config.Config) string {
	return ":" + cfg.Port
}

func provideSchedule(cfg *config.Config) app.Schedule {
	if !cfg.RefreshEnabled() {
		return ""
	}
	return app.Schedule(cfg.RefreshCron)
}
