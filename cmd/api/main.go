package main

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"coopart/docs"
	"coopart/internal/config"
	"coopart/internal/database"
	"coopart/internal/database/migration"
	handlers "coopart/internal/http/handler"
	"coopart/internal/http/middleware"
	"coopart/internal/idempotency"
	"coopart/internal/ledger"
	"coopart/internal/logging"
	"coopart/internal/metrics"
	"coopart/internal/model"
	"coopart/internal/otel"
	"coopart/internal/pipeline"
	"coopart/internal/render"
	"coopart/internal/service"
	"coopart/internal/session"
	"coopart/internal/storage"
	"coopart/internal/workspace"
)

// @title CoopArt API
// @version 1.0
// @description Collaborative canvas: upload, arrange and mint tiles.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer shutdownTracing(context.Background())

	// Ledger backend. db stays nil for the in-memory ledger.
	var db *sql.DB
	var gateway ledger.Gateway
	switch cfg.Ledger.Driver {
	case "memory":
		gateway = ledger.NewMemoryGateway()
	default:
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		if err := migration.EnsureMigrated(ctx, db, logger); err != nil {
			logger.Fatal("failed to migrate database", zap.Error(err))
		}
		gateway = ledger.NewPostgresGateway(db, cfg.Canvas.ID)
	}

	// Object storage behind the content-addressed store
	var objects storage.Storage
	switch cfg.Storage.Driver {
	case "memory":
		objects = storage.NewMemory()
	case "s3":
		objects, err = storage.NewS3(ctx, cfg.Storage.S3)
	default:
		objects, err = storage.NewMinIO(cfg.Storage.MinIO)
	}
	if err != nil {
		logger.Fatal("failed to initialize object storage", zap.Error(err), zap.String("driver", cfg.Storage.Driver))
	}
	content := storage.NewContentStore(objects)

	m := metrics.New(prometheus.DefaultRegisterer)
	client := ledger.NewClient(gateway, cfg.Ledger.ContractID, m.ObserveLedgerCall)

	var idem idempotency.Store = idempotency.NewMemoryStore()
	if cfg.Redis.Host != "" {
		rs, err := idempotency.NewRedisStore(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		idem = rs
	}
	defer idem.Close()

	workspaces := workspace.NewRegistry(cfg.Canvas.NotificationDwell, nil)
	metrics.TrackWorkspaces(prometheus.DefaultRegisterer, workspaces.Len)
	renderer := render.New(cfg.Canvas, content, logger)

	upload := pipeline.NewUpload(content, cfg.Canvas.ID, m, logger)
	upload.MaxPixels = cfg.Canvas.MaxPixels
	mint := pipeline.NewMint(content, client, idem, cfg.Redis.TTL, m, logger)
	mint.OnFailure = func(_ context.Context, tile model.Tile, err error) {
		logger.Warn("mint_failed", zap.Int("tile_id", tile.TileID), zap.Error(err))
	}

	tileSvc := service.NewTileService(workspaces, upload, mint, renderer, cfg.Ledger.ContractID, cfg.Ledger.ExplorerURL)
	canvasSvc := service.NewCanvasService(client, content, renderer, workspaces, cfg.Ledger.ExplorerURL, cfg.Storage.LinkTTL, logger)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    handlers.MaxUploadBytes + 1<<20,
	})

	issuer, err := session.NewIssuer([]byte(cfg.Auth.JWTSecret))
	if err != nil {
		logger.Fatal("JWT_SECRET must be set", zap.Error(err))
	}

	promMW, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal("failed to register http metrics", zap.Error(err))
	}

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(logger))
	app.Use(promMW.Handler())
	app.Use(middleware.Session(issuer, logger))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// A nil *sql.DB must not reach the handler as a non-nil Pinger
	var pinger handlers.Pinger
	if db != nil {
		pinger = db
	}
	handlers.RegisterRoutes(app, pinger, tileSvc, canvasSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	logger.Info("server_starting", zap.String("addr", addr), zap.String("ledger", cfg.Ledger.Driver), zap.String("storage", cfg.Storage.Driver))
	if err := app.Listen(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
