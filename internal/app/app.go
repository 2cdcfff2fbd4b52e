package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lounge_backend/internal/auth"
	"lounge_backend/internal/config"
	"lounge_backend/internal/email"
	"lounge_backend/internal/handlers"
	"lounge_backend/internal/logger"
	"lounge_backend/internal/middleware"
	"lounge_backend/internal/models"
	"lounge_backend/internal/repositories"
	"lounge_backend/internal/routes"
	"lounge_backend/internal/services"
	"lounge_backend/internal/storage"
	"lounge_backend/internal/validator"
	"lounge_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected", "driver", cfg.Database.Driver)

	if err := autoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		// Без админа приложением управлять нельзя - не запускаем сервер
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	redisClient := config.NewRedisClient(cfg)
	if redisClient == nil {
		logger.Warn("Redis unavailable, response caching disabled")
	} else {
		logger.Info("Redis connected", "addr", cfg.Redis.Addr)
	}

	ginRouter := SetupRouter(cfg, gormDB, redisClient)

	// Фоновая деактивация истекших подписок
	worker := workers.NewSubscriptionWorker(repositories.NewSubscriptionRepository(gormDB))
	worker.Start(context.Background())

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// openDatabase открывает соединение с БД по драйверу из конфигурации.
// TranslateError нужен, чтобы нарушения уникальных индексов приходили
// как gorm.ErrDuplicatedKey независимо от драйвера.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{TranslateError: true}

	switch cfg.Database.Driver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.Database.DSN), gormConfig)
	case "postgres", "":
		return gorm.Open(postgres.Open(cfg.Database.DSN), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Lounge{},
		&models.Booking{},
		&models.Subscription{},
		&models.SubscriptionTransaction{},
	)
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client) *gin.Engine {
	storageInstance, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "path", cfg.Storage.BasePath)

	serviceContainer := initializeServices(cfg, gormDB, storageInstance)

	appHandlers := initializeHandlers(cfg, serviceContainer, gormDB, redisClient)

	ginRouter := initializeGinRouter(cfg)

	routes.RegisterRoutes(ginRouter, appHandlers, cfg)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.Enabled && cfg.Email.SMTPHost != "" {
		emailService = email.NewSMTPSender(cfg)
		logger.Info("Email sender initialized", "host", cfg.Email.SMTPHost)
	} else {
		emailService = email.NoopProvider{}
		logger.Warn("Email sending disabled, using noop provider")
	}

	userRepo := repositories.NewUserRepository(gormDB)
	loungeRepo := repositories.NewLoungeRepository(gormDB)
	bookingRepo := repositories.NewBookingRepository(gormDB)
	subscriptionRepo := repositories.NewSubscriptionRepository(gormDB)
	transactionRepo := repositories.NewSubscriptionTransactionRepository(gormDB)

	uploadService := services.NewUploadService(storageInstance, cfg.Upload.MaxSize, cfg.Upload.AllowedTypes)
	authService := services.NewAuthService(userRepo, subscriptionRepo, emailService)
	userService := services.NewUserService(userRepo, subscriptionRepo, emailService)
	loungeService := services.NewLoungeService(loungeRepo, bookingRepo)
	bookingService := services.NewBookingService(bookingRepo, loungeRepo, userRepo, subscriptionRepo)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, transactionRepo, userRepo)

	return &services.ServiceContainer{
		AuthService:         authService,
		UserService:         userService,
		LoungeService:       loungeService,
		BookingService:      bookingService,
		SubscriptionService: subscriptionService,
		UploadService:       uploadService,
		EmailService:        emailService,
		Storage:             storageInstance,
	}
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer, gormDB *gorm.DB, redisClient *redis.Client) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	subscriptionRepo := repositories.NewSubscriptionRepository(gormDB)
	cacheTTL := time.Duration(cfg.Redis.CacheTTL) * time.Second

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, container.UserService),
		LoungeHandler:       handlers.NewLoungeHandler(baseHandler, container.LoungeService, container.UploadService, redisClient, cacheTTL),
		BookingHandler:      handlers.NewBookingHandler(baseHandler, container.BookingService, subscriptionRepo),
		SubscriptionHandler: handlers.NewSubscriptionHandler(baseHandler, container.SubscriptionService),
		UploadHandler:       handlers.NewUploadHandler(baseHandler, container.UploadService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	return router
}

// seedFirstAdmin создает первого админа, если его еще нет.
// Учетные данные берутся из конфигурации.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		FirstName:    "Platform",
		LastName:     "Admin",
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		IsAdmin:      true,
		Role:         models.UserRoleAdmin,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
