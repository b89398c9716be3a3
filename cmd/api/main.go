package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go-stock-finance/internal/handler"
	"go-stock-finance/internal/state"
	"go-stock-finance/internal/store"
	"go-stock-finance/internal/view"
	"go-stock-finance/internal/ws"
	"go-stock-finance/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found")
	}
	logger.New(os.Getenv("LOG_FORMAT"))

	// 2. Open the blob store
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "stock-finance.db"
	}
	st, err := store.OpenSQLite(dbPath)
	if err != nil {
		slog.Error("failed to open store", "path", dbPath, "error", err)
		os.Exit(1)
	}

	// 3. WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Wiring
	container := state.NewContainer(st, wsHub)
	router := view.NewRouter()

	invHandler := handler.NewInventoryHandler(container)
	salesHandler := handler.NewSalesHandler(container)
	expenseHandler := handler.NewExpenseHandler(container)
	dashHandler := handler.NewDashboardHandler(container)
	viewHandler := handler.NewViewHandler(router)

	// 5. Fiber
	app := fiber.New(fiber.Config{
		AppName: "Stock & Finance Lite v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 6. Routes
	api := app.Group("/api/v1")

	api.Get("/dashboard/summary", dashHandler.GetSummary)
	api.Get("/dashboard/monthly", dashHandler.GetMonthly)

	api.Get("/products", invHandler.GetProducts)
	api.Post("/products", invHandler.CreateProduct)
	api.Post("/products/:id/stock", invHandler.AddStock)
	api.Delete("/products/:id", invHandler.DeleteProduct)

	api.Get("/sales", salesHandler.GetSales)
	api.Post("/sales", salesHandler.RecordSale)

	api.Get("/expenses", expenseHandler.GetExpenses)
	api.Post("/expenses", expenseHandler.CreateExpense)
	api.Delete("/expenses/:id", expenseHandler.DeleteExpense)

	api.Get("/view", viewHandler.GetView)
	api.Put("/view", viewHandler.Navigate)

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

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		slog.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited")
}
