package main

import (
	"os"
	"os/signal"
	"syscall"

	"progas-backend/internal/catalog"
	"progas-backend/internal/evidence"
	"progas-backend/internal/handler"
	"progas-backend/internal/middleware"
	"progas-backend/internal/model"
	"progas-backend/internal/notify"
	"progas-backend/internal/repository"
	"progas-backend/internal/service"
	"progas-backend/internal/ws"
	"progas-backend/pkg/config"
	"progas-backend/pkg/database"
	"progas-backend/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env (.env is optional, real environment wins)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New("progas-backend", cfg.App.LogLevel, os.Stdout)

	// 2. Setup Database
	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := db.AutoMigrate(&model.InventoryItem{}, &model.AssetDebt{}, &model.Transaction{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate schema")
	}

	// 3. Load catalog and seed the three stores at first use
	cat := catalog.Default()

	inventoryRepo := repository.NewInventoryRepo(db)
	debtRepo := repository.NewDebtRepo(db)
	txRepo := repository.NewTransactionRepo(db)

	if err := inventoryRepo.SeedDefaults(cat.DefaultInventory()); err != nil {
		log.Warn().Err(err).Msg("failed to seed inventory")
	}
	if err := debtRepo.SeedDefaults(cat.DefaultDebts()); err != nil {
		log.Warn().Err(err).Msg("failed to seed debts")
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub(log)
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	ledgerService := service.NewLedgerService(cat, inventoryRepo, debtRepo, txRepo, wsHub)
	reportService := service.NewReportService(cat, inventoryRepo, debtRepo)
	photos := evidence.NewPhotoProcessor(cfg.Evidence)
	notifier := notify.New(cfg.Line, cat, log)

	authHandler := handler.NewAuthHandler(cfg.Admin)
	catalogHandler := handler.NewCatalogHandler(cat)
	ledgerHandler := handler.NewLedgerHandler(ledgerService, photos, notifier, cfg.GPS, log)
	dashHandler := handler.NewDashboardHandler(reportService)
	txHandler := handler.NewTransactionHandler(txRepo, cat)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:   "Pro Gas Backend v1.0",
		BodyLimit: 16 * 1024 * 1024, // embedded photo payloads
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	api.Post("/auth/pin", authHandler.EnterPIN)
	api.Get("/catalog/products", catalogHandler.GetProducts)
	api.Get("/catalog/customers", catalogHandler.GetCustomers)

	// Wizard submissions come from the field device, gated by the app
	// itself rather than the PIN.
	api.Post("/deliveries", ledgerHandler.CreateDelivery)
	api.Post("/returns", ledgerHandler.CreateReturn)

	// ============ ADMIN ROUTES ============
	admin := api.Group("", middleware.RequireAdmin(cfg.Admin.JWTSecret))
	admin.Get("/dashboard/asset-matrix", dashHandler.GetAssetMatrix)
	admin.Get("/dashboard/stock-summary", dashHandler.GetStockSummary)
	admin.Get("/transactions", txHandler.GetTransactions)
	admin.Get("/transactions/:id", txHandler.GetTransaction)
	admin.Get("/transactions/:id/receipt", txHandler.GetReceipt)
	admin.Post("/admin/reset", ledgerHandler.Reset)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.App.Port); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
}
