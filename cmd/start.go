package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"catalog-sync/core/loader"
	"catalog-sync/core/logger"
	"catalog-sync/core/metrics"
	"catalog-sync/core/middleware/auth"
	"catalog-sync/core/middleware/rayid"
	"catalog-sync/feature/catalog"
	"catalog-sync/feature/catalogsync"
	"catalog-sync/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "catalog-sync/docs/swagger"
)

// @title Catalog Sync API
// @version 1.0
// @description Catalog browsing, bookmarks and sync control for marketplace computer listings.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// syncWorkerName identifies the scheduler in logs.
const syncWorkerName = "woot-sync"

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog server and sync worker",
	Long:  `Starts the HTTP server, initializes all features and runs the periodic sync worker.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration and Logger
		cfg, logg, err := loadRuntime()
		if err != nil {
			log.Fatal(err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 2. Connect to Database (Required)
		store, err := openCatalog(cfg)
		if err != nil {
			logg.Fatal("Failed to open catalog", zap.Error(err))
		}
		logg.Info("Connected to catalog database", zap.String("driver", cfg.Database.Driver))

		// 3. Initialize Storage (Optional)
		objects, err := openArchive(ctx, cfg)
		if err != nil {
			logg.Fatal("Failed to initialize snapshot storage", zap.Error(err))
		}

		syncSvc := newSyncService(cfg, store, objects, logg)

		// 4. Initialize Fiber App and Feature Loader
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(catalog.NewFeature(store, logg))
		mgr.Register(catalogsync.NewFeature(syncSvc))
		mgr.Register(integrity.NewFeature(store, objects, cfg.Storage.Bucket, cfg.Sync.ArchivePrefix, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 1.5 Recover (A panicking handler answers 500 instead of killing the process)
		app.Use(recover.New(recover.Config{EnableStackTrace: true}))

		// 2. Logging Middleware
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{
			ApiKey:         cfg.Server.ApiKey,
			PublicPrefixes: []string{"/swagger", "/metrics", "/health"},
		}))
		if !cfg.Server.AuthEnabled() {
			logg.Warn("API key not configured, requests are not authenticated")
		}

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Sync Worker
		var wg sync.WaitGroup
		if cfg.Sync.Enabled {
			scheduler := catalogsync.NewScheduler(syncWorkerName, syncSvc, cfg.Sync.Interval(), cfg.Sync.RunOnStart, logg)
			wg.Add(1)
			go func() {
				defer wg.Done()
				scheduler.Run(ctx)
			}()
		} else {
			logg.Info("Sync worker disabled")
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.ListenAddr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		<-ctx.Done()
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout()); err != nil {
			logg.Warn("Server shutdown incomplete", zap.Error(err))
		}
		wg.Wait()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
