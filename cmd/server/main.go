package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/mustafayildiz-m/iw-project/internal/audit"
	"github.com/mustafayildiz-m/iw-project/internal/cache"
	"github.com/mustafayildiz-m/iw-project/internal/config"
	"github.com/mustafayildiz-m/iw-project/internal/domain"
	"github.com/mustafayildiz-m/iw-project/internal/handler"
	"github.com/mustafayildiz-m/iw-project/internal/middleware"
	"github.com/mustafayildiz-m/iw-project/internal/repository"
	"github.com/mustafayildiz-m/iw-project/internal/seed"
	"github.com/mustafayildiz-m/iw-project/internal/service"
	"github.com/mustafayildiz-m/iw-project/pkg/database"
	"github.com/mustafayildiz-m/iw-project/pkg/jwt"
	"github.com/mustafayildiz-m/iw-project/pkg/log"
	"github.com/mustafayildiz-m/iw-project/pkg/response"
	"github.com/mustafayildiz-m/iw-project/pkg/storage"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "."
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log.Init(log.Config{
		Level:       cfg.LogLevel,
		ServiceName: "iw-project",
	})
	logger := log.L()

	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.AutoMigrate(db, domain.AllModels()...); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}

	ctx := context.Background()

	languageRepo := repository.NewGormLanguageRepository(db)
	if err := seed.Languages(ctx, languageRepo); err != nil {
		logger.Fatal().Err(err).Msg("language seed failed")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Str("address", cfg.Redis.Address).Msg("redis connection failed")
	}

	tokenManager, err := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Duration, cfg.JWT.Issuer)
	if err != nil {
		logger.Fatal().Err(err).Msg("jwt manager init failed")
	}

	store, localBase, err := buildStorage(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("storage init failed")
	}

	userRepo := repository.NewGormUserRepository(db)
	scholarRepo := repository.NewGormScholarRepository(db)
	followRepo := repository.NewGormFollowRepository(db)
	postRepo := repository.NewGormPostRepository(db)
	bookRepo := repository.NewGormBookRepository(db)
	articleRepo := repository.NewGormArticleRepository(db)
	searchRepo := repository.NewGormSearchRepository(db)

	recorder := audit.NewRecorder(*logger)
	searchCache := cache.NewRedisSearchCache(redisClient)

	authService := service.NewAuthService(userRepo, tokenManager, recorder)
	userService := service.NewUserService(userRepo)
	searchService := service.NewSearchService(searchRepo, followRepo, searchCache, cfg.Cache.SearchTTL)
	followService := service.NewFollowService(followRepo, userRepo, scholarRepo, recorder)
	uploadService := service.NewUploadService(store, cfg.Upload.MaxSizeBytes)
	postService := service.NewPostService(postRepo, userRepo, scholarRepo, bookRepo, articleRepo, recorder)
	libraryService := service.NewLibraryService(scholarRepo, bookRepo, languageRepo, followRepo)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(log.GinMiddleware(*logger))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "ok"})
	})

	if localBase != "" {
		uploads := router.Group(cfg.Upload.URLPrefix, middleware.StaticCacheHeaders())
		uploads.Static("/", localBase)
	}

	api := router.Group("/")
	handler.NewAuthHandler(authService).RegisterRoutes(api)
	handler.NewUserHandler(userService, tokenManager).RegisterRoutes(api)
	handler.NewSearchHandler(searchService, tokenManager).RegisterRoutes(api)
	handler.NewFollowHandler(followService, tokenManager).RegisterRoutes(api)
	handler.NewPostHandler(postService, uploadService, tokenManager).RegisterRoutes(api)
	handler.NewLibraryHandler(libraryService, uploadService, tokenManager).RegisterRoutes(api)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("server starting")
	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// buildStorage selects the blob backend. The second return value is the
// local base directory to serve statically, empty for remote backends.
func buildStorage(ctx context.Context, cfg *config.Config) (storage.Storage, string, error) {
	switch cfg.Storage.Backend {
	case "s3":
		s3Store, err := storage.NewS3Storage(ctx, cfg.Storage.S3)
		if err != nil {
			return nil, "", err
		}
		return s3Store, "", nil
	default:
		localStore, err := storage.NewLocalStorage(storage.LocalConfig{
			BasePath:  cfg.Upload.BasePath,
			URLPrefix: cfg.Upload.URLPrefix,
		})
		if err != nil {
			return nil, "", err
		}
		return localStore, localStore.GetBasePath(), nil
	}
}
