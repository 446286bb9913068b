package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-dairy-books/internal/config"
	"go-dairy-books/internal/handler"
	"go-dairy-books/internal/middleware"
	"go-dairy-books/internal/model"
	"go-dairy-books/internal/repository"
	"go-dairy-books/internal/service"
	"go-dairy-books/internal/ws"
	"go-dairy-books/pkg/database"
	"go-dairy-books/pkg/token"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	// 2. Setup Database
	db := database.Connect(cfg)
	// Tables are created from the entity definitions at startup; there is
	// no separate migration mechanism.
	db.AutoMigrate(&model.User{}, &model.Customer{}, &model.Milk{}, &model.Sale{}, &model.Purchase{}, &model.Expense{})

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	userRepo := repository.NewUserRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	milkRepo := repository.NewMilkRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)

	authService := service.NewAuthService(userRepo, tokens)

	authHandler := handler.NewAuthHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerRepo, wsHub)
	milkHandler := handler.NewMilkHandler(milkRepo, wsHub)
	saleHandler := handler.NewSaleHandler(saleRepo, wsHub)
	purchaseHandler := handler.NewPurchaseHandler(purchaseRepo, wsHub)
	expenseHandler := handler.NewExpenseHandler(expenseRepo, wsHub)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Dairy Books v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// 6. Routes
	api := app.Group("/api")

	// ============ PUBLIC ROUTES ============
	api.Get("", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Dairy books backend connected"})
	})
	api.Post("/users", authHandler.Register)
	api.Post("/token", authHandler.Token)

	// ============ PROTECTED ROUTES ============
	// All routes below require a bearer token
	protected := api.Group("", middleware.RequireAuth(tokens, userRepo))

	protected.Get("/users/me", authHandler.Me)

	protected.Get("/customers", customerHandler.List)
	protected.Post("/customers", customerHandler.Create)
	protected.Get("/customers/:id", customerHandler.Get)
	protected.Put("/customers/:id", customerHandler.Update)
	protected.Delete("/customers/:id", customerHandler.Delete)

	protected.Get("/milks", milkHandler.List)
	protected.Post("/milks", milkHandler.Create)
	protected.Get("/milks/:id", milkHandler.Get)
	protected.Put("/milks/:id", milkHandler.Update)
	protected.Delete("/milks/:id", milkHandler.Delete)

	protected.Get("/sales", saleHandler.List)
	protected.Post("/sales", saleHandler.Create)
	protected.Get("/sales/:id", saleHandler.Get)
	protected.Put("/sales/:id", saleHandler.Update)
	protected.Delete("/sales/:id", saleHandler.Delete)

	protected.Get("/purchases", purchaseHandler.List)
	protected.Post("/purchases", purchaseHandler.Create)
	protected.Get("/purchases/:id", purchaseHandler.Get)
	protected.Put("/purchases/:id", purchaseHandler.Update)
	protected.Delete("/purchases/:id", purchaseHandler.Delete)

	protected.Get("/expenses", expenseHandler.List)
	protected.Post("/expenses", expenseHandler.Create)
	protected.Get("/expenses/:id", expenseHandler.Get)
	protected.Put("/expenses/:id", expenseHandler.Update)
	protected.Delete("/expenses/:id", expenseHandler.Delete)

	// WebSocket Route (live record-change feed)
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
		if err := app.Listen(":" + cfg.HTTPPort); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
