package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jub0bs/fcors"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/wheelmate/internal/auth"
	"github.com/shenikar/wheelmate/internal/cache"
	"github.com/shenikar/wheelmate/internal/config"
	v1 "github.com/shenikar/wheelmate/internal/handler/http/v1"
	"github.com/shenikar/wheelmate/internal/repository/memory"
	"github.com/shenikar/wheelmate/internal/repository/mongodb"
	pgrepo "github.com/shenikar/wheelmate/internal/repository/postgres"
	"github.com/shenikar/wheelmate/internal/service"
	"github.com/shenikar/wheelmate/internal/webhook"
	"github.com/shenikar/wheelmate/pkg/logger"
	mongoclient "github.com/shenikar/wheelmate/pkg/mongo"
	pgclient "github.com/shenikar/wheelmate/pkg/postgres"
	redisclient "github.com/shenikar/wheelmate/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/wheelmate/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// repositories - хранилища выбранного драйвера и функция закрытия соединений
type repositories struct {
	facilities service.FacilityRepository
	users      service.UserRepository
	close      func()
}

func newRepositories(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*repositories, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, err := mongoclient.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.MongoDatabase)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		log.Info("Successfully connected to MongoDB")
		return &repositories{
			facilities: mongodb.NewFacilityRepository(db),
			users:      mongodb.NewUserRepository(db),
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					log.WithError(err).Warn("Failed to disconnect from MongoDB")
				}
			},
		}, nil

	case config.StorePostgres:
		log.Info("Running database migrations...")
		if err := pgclient.Migrate(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			return nil, err
		}
		log.Info("Database migrations applied successfully")

		dbpool, err := pgclient.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		log.Info("Successfully connected to PostgreSQL")
		return &repositories{
			facilities: pgrepo.NewFacilityRepository(dbpool),
			users:      pgrepo.NewUserRepository(dbpool),
			close:      dbpool.Close,
		}, nil

	case config.StoreMemory:
		log.Warn("Using in-memory store, data is lost on restart")
		return &repositories{
			facilities: memory.NewFacilityRepository(),
			users:      memory.NewUserRepository(),
			close:      func() {},
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func newCORS(cfg *config.Config) (func(http.Handler) http.Handler, error) {
	methods := fcors.WithMethods(http.MethodGet, http.MethodPost)
	headers := fcors.WithRequestHeaders("Authorization", "Content-Type")
	if len(cfg.CORSOrigins) == 0 {
		return fcors.AllowAccess(fcors.FromAnyOrigin(), methods, headers)
	}
	return fcors.AllowAccess(fcors.FromOrigins(cfg.CORSOrigins[0], cfg.CORSOrigins[1:]...), methods, headers)
}

// @title WheelMate API
// @version 1.0
// @description Accessible facility directory for wheelchair users.
// @host localhost:5000
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, logger.FileConfig{
		Path:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos, err := newRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize store %q: %v", cfg.StoreDriver, err)
	}
	defer repos.close()

	// Кэш списка и издатель событий: Redis, если настроен
	var (
		facilityCache  service.FacilityCache
		eventPublisher webhook.EventPublisher
		redisClient    *redis.Client
	)
	if cfg.RedisEnabled() {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		facilityCache = cache.NewRedisCache(redisClient, cfg.CacheTTL)
		eventPublisher = webhook.NewRedisEventPublisher(redisClient)

		// Инициализация и запуск воркера вебхуков
		webhook.NewWorker(redisClient, log, cfg).Start(ctx)
	} else {
		localCache := cache.NewLocalCache(cfg.CacheTTL)
		localCache.Start(ctx)
		facilityCache = localCache
		eventPublisher = webhook.NopPublisher{}
		log.Info("Redis is not configured, using in-process cache without webhooks")
	}

	// Инициализация сервисов
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	facilityService := service.NewFacilityService(repos.facilities, facilityCache, eventPublisher, log, cfg)
	authService := service.NewAuthService(repos.users, tokens, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(facilityService, authService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.GET("/", handler.Root)
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	cors, err := newCORS(cfg)
	if err != nil {
		log.Fatalf("Invalid CORS configuration: %v", err)
	}

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           cors(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
	cancel()

	log.Info("Server gracefully stopped")
}
