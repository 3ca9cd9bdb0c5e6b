// @title Vocabulary Builder API
// @version 1.0
// @description Personal vocabulary lists, multiple-choice quizzes and progress tracking.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "vocab-builder/cmd/api/docs"
	"vocab-builder/internal/adapter"
	"vocab-builder/internal/cache"
	"vocab-builder/internal/config"
	"vocab-builder/internal/database"
	"vocab-builder/internal/domain"
	"vocab-builder/internal/handler"
	"vocab-builder/internal/logger"
	"vocab-builder/internal/middleware"
	"vocab-builder/internal/repository"
	"vocab-builder/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	db, err := database.NewSQLXDB(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(ctx, db, database.Up); err != nil {
			appLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	quizStore := newQuizStore(ctx, cfg, db, cacheAdapter)

	userRepository := repository.NewSQLXUserRepository(db)
	vocabularyRepository := repository.NewSQLXVocabularyRepository(db)
	resultRepository := repository.NewSQLXQuizResultRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	authService, err := service.NewAuthService(userRepository, cacheAdapter, cfg.Auth.JWT)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	userService := service.NewUserService(userRepository)
	vocabularyService := service.NewVocabularyService(vocabularyRepository)
	quizService := service.NewQuizService(vocabularyRepository, resultRepository, quizStore, txManager, cacheAdapter, nil)
	progressService := service.NewProgressService(resultRepository, vocabularyRepository, cacheAdapter, cfg.CacheTTLs.Progress)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Request-ID",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, handler.Routes{
		AuthService: authService,
		Auth:        handler.NewAuthHandler(authService),
		User:        handler.NewUserHandler(userService),
		Vocabulary:  handler.NewVocabularyHandler(vocabularyService),
		Quiz:        handler.NewQuizHandler(quizService),
		Progress:    handler.NewProgressHandler(progressService),
		Health: handler.NewHealthHandler(map[string]handler.HealthCheck{
			"database": db.PingContext,
			"cache":    cacheAdapter.Ping,
		}),
		DefaultQuizSize: cfg.Quiz.DefaultCount,
		MaxQuizSize:     cfg.Quiz.MaxCount,
	})

	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Logger.Env),
			zap.String("quiz_store", cfg.Quiz.Store),
		)
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

// newQuizStore picks where open quizzes live between creation and grading.
// The database store also starts a sweeper that runs until ctx is cancelled.
func newQuizStore(ctx context.Context, cfg *config.Config, db *sqlx.DB, c domain.Cache) domain.QuizStore {
	if cfg.Quiz.Store == config.QuizStoreRedis {
		return adapter.NewRedisQuizStore(c, cfg.Quiz.OpenQuizTTL)
	}

	store := repository.NewSQLXQuizStore(db, cfg.Quiz.OpenQuizTTL)
	go sweepExpiredQuizzes(ctx, store, cfg.Quiz.SweepInterval)
	return store
}

func sweepExpiredQuizzes(ctx context.Context, store *repository.SQLXQuizStore, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := store.DeleteExpired(ctx)
			if err != nil {
				logger.Get().Warn("Failed to delete expired quizzes", zap.Error(err))
				continue
			}
			if removed > 0 {
				logger.Get().Info("Deleted expired quizzes", zap.Int64("count", removed))
			}
		}
	}
}
