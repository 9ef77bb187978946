package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"boutique-backend/internal/catalog"
	"boutique-backend/internal/llm"
	"boutique-backend/internal/llm/gemini"
	"boutique-backend/internal/llm/openai"
	"boutique-backend/internal/outfits"
	"boutique-backend/internal/services/health"
	"boutique-backend/internal/shared/config"
	"boutique-backend/internal/shared/server"
	"boutique-backend/internal/shared/storage/db"
	"boutique-backend/internal/shared/storage/object"
	localstore "boutique-backend/internal/shared/storage/object/local"
	s3store "boutique-backend/internal/shared/storage/object/s3"
	"boutique-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Store          object.Store
	CatalogRepo    catalog.Repo
	CatalogService *catalog.Service
	LLM            llm.OutfitClient
	OutfitService  *outfits.Service
	Health         *health.Service
}

// Build prepares dependencies and the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	app, err := BuildServices(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.Health = health.NewService(pingerOrNil(app.DB), cfg.CatalogSource, cfg.LLMProvider)
	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		Health:         app.Health,
		CatalogHandler: catalog.NewHandler(app.CatalogService),
		OutfitHandler:  outfits.NewHandler(app.OutfitService, app.CatalogService),
	})
	return app, nil
}

// BuildServices prepares storage, catalog, and generation dependencies without HTTP wiring.
func BuildServices(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{Config: cfg}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.Store = store

	if cfg.CatalogSource == "postgres" {
		sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			return nil, fmt.Errorf("catalog database: %w", err)
		}
		app.DB = sqlDB
	}

	repo, err := buildCatalogRepo(ctx, cfg, app.DB, store)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.CatalogRepo = repo
	app.CatalogService = catalog.NewService(repo)

	client, err := buildLLM(ctx, cfg)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.LLM = client
	app.OutfitService = outfits.NewService(client, app.CatalogService)

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":          cfg.Env,
		"catalog":      cfg.CatalogSource,
		"object_store": cfg.ObjectStoreType,
		"llm_provider": cfg.LLMProvider,
		"llm_model":    cfg.LLMModel,
	})
	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() {
	if a != nil && a.DB != nil {
		_ = a.DB.Close()
	}
}

func buildStore(ctx context.Context, cfg config.Config) (object.Store, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.S3KMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildCatalogRepo(ctx context.Context, cfg config.Config, sqlDB *sql.DB, store object.Store) (catalog.Repo, error) {
	switch cfg.CatalogSource {
	case "postgres":
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		return &catalog.PGRepo{DB: sqlDB}, nil
	case "object":
		repo, err := catalog.LoadSnapshot(ctx, store, cfg.CatalogObjectKey)
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return catalog.NewSeedRepo()
	}
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.OutfitClient, error) {
	timeout := time.Duration(cfg.LLMTimeout) * time.Second
	switch cfg.LLMProvider {
	case "openai":
		return openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, timeout)
	case "gemini":
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel, timeout)
	default:
		if !isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.placeholder_llm", map[string]any{"env": cfg.Env})
		}
		return llm.PlaceholderClient{}, nil
	}
}

func pingerOrNil(sqlDB *sql.DB) health.Pinger {
	if sqlDB == nil {
		return nil
	}
	return sqlDB
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "test":
		return true
	default:
		return false
	}
}
