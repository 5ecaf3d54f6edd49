package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/cache"
	"go-warehouse-api/internal/config"
	"go-warehouse-api/internal/handler"
	applogger "go-warehouse-api/internal/logger"
	"go-warehouse-api/internal/middleware"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"
	"go-warehouse-api/pkg/database"
	"go-warehouse-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()
	jwt.SetSecret(cfg.JWT.Secret)

	zlog, err := applogger.New(cfg.Server.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	// 2. Setup Database
	db, err := database.Connect(cfg.Database, zlog)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	if err := db.AutoMigrate(
		&model.Manufacturer{}, &model.Article{}, &model.Location{},
		&model.Placement{}, &model.Client{}, &model.Employee{},
		&model.User{}, &model.Buy{},
	); err != nil {
		zlog.Fatal("auto-migrate failed", zap.Error(err))
	}

	// 3. Setup Cache (degrades to in-memory when redis is unreachable)
	cacheClient, err := cache.New(cache.Config{
		Driver:   cfg.Redis.Driver,
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		zlog.Warn("cache backend unreachable, using in-memory cache", zap.Error(err))
		cacheClient = cache.NewMemory()
	}
	defer cacheClient.Close()

	// 4. Dependency Injection (Wiring Layers)
	manufacturerRepo := repository.NewManufacturerRepo(db)
	articleRepo := repository.NewCachedArticleRepo(repository.NewArticleRepo(db), cacheClient, zlog)
	locationRepo := repository.NewLocationRepo(db)
	placementRepo := repository.NewCachedPlacementRepo(repository.NewPlacementRepo(db), cacheClient, zlog)
	clientRepo := repository.NewClientRepo(db)
	employeeRepo := repository.NewEmployeeRepo(db)
	userRepo := repository.NewCachedUserRepo(repository.NewUserRepo(db), cacheClient, zlog)
	buyRepo := repository.NewCachedBuyRepo(repository.NewBuyRepo(db), cacheClient, zlog)

	manufacturerService := service.NewManufacturerService(manufacturerRepo)
	articleService := service.NewArticleService(articleRepo, manufacturerRepo)
	locationService := service.NewLocationService(locationRepo)
	placementService := service.NewPlacementService(placementRepo)
	clientService := service.NewClientService(clientRepo)
	employeeService := service.NewEmployeeService(employeeRepo)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, employeeRepo)

	manufacturerHandler := handler.NewManufacturerHandler(manufacturerService)
	articleHandler := handler.NewArticleHandler(articleService)
	locationHandler := handler.NewLocationHandler(locationService)
	placementHandler := handler.NewPlacementHandler(placementService)
	clientHandler := handler.NewClientHandler(clientService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	userHandler := handler.NewUserHandler(userService)
	buyHandler := handler.NewBuyHandler(service.NewBuyService(buyRepo))
	authHandler := handler.NewAuthHandler(authService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      "Warehouse API v1.0",
		ErrorHandler: apperr.ErrorHandler(zlog),
	})

	// Middleware
	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	api.Post("/manufacturers", manufacturerHandler.Create)
	api.Get("/manufacturers", manufacturerHandler.List)
	api.Get("/manufacturers/:id", manufacturerHandler.Get)
	api.Put("/manufacturers/:id", manufacturerHandler.Update)
	api.Delete("/manufacturers/:id", manufacturerHandler.Delete)

	api.Post("/articles", articleHandler.Create)
	api.Get("/articles", articleHandler.List)
	api.Get("/articles/:id", articleHandler.Get)
	api.Put("/articles/:id", articleHandler.Update)
	api.Delete("/articles/:id", articleHandler.Delete)

	api.Post("/locations", locationHandler.Create)
	api.Get("/locations", locationHandler.List)
	api.Get("/locations/:id", locationHandler.Get)
	api.Put("/locations/:id", locationHandler.Update)
	api.Delete("/locations/:id", locationHandler.Delete)

	api.Post("/placements", placementHandler.Create)
	api.Get("/placements", placementHandler.List)
	api.Get("/placements/:id", placementHandler.Get)
	api.Put("/placements/:id", placementHandler.Update)
	api.Delete("/placements/:id", placementHandler.Delete)

	api.Post("/clients", clientHandler.Create)
	api.Get("/clients", clientHandler.List)
	api.Get("/clients/:id", clientHandler.Get)
	api.Put("/clients/:id", clientHandler.Update)
	api.Delete("/clients/:id", clientHandler.Delete)

	api.Post("/employees", employeeHandler.Create)
	api.Get("/employees", employeeHandler.List)
	api.Get("/employees/:id", employeeHandler.Get)
	api.Put("/employees/:id", employeeHandler.Update)
	api.Delete("/employees/:id", employeeHandler.Delete)

	api.Post("/buys", buyHandler.Create)
	api.Get("/buys", buyHandler.List)
	api.Get("/buys/:id", buyHandler.Get)
	api.Put("/buys/:id", buyHandler.Update)
	api.Delete("/buys/:id", buyHandler.Delete)

	// ============ PROTECTED ROUTES ============
	// Account management requires a valid token.
	users := api.Group("/users", middleware.RequireAuth())
	users.Post("", userHandler.Create)
	users.Get("", userHandler.List)
	users.Get("/username/:username", userHandler.GetByUsername)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			zlog.Panic("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}
	zlog.Info("server exited")
}
