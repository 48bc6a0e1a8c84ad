package routes

import (
	"context"
	_ "fixsync/docs"
	"fixsync/internal/adapter/http/handlers"
	"fixsync/internal/adapter/persistence/repository"
	"fixsync/internal/infrastructure/database"
	"fixsync/internal/infrastructure/logger"
	"fixsync/internal/infrastructure/media"
	"fixsync/internal/usecase"
	"fixsync/internal/usecase/interfaces"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	defaultPort = "8080"

	RepositoryDynamoDB = "dynamodb"
	RepositoryPostgres = "postgres"
	RepositoryMemory   = "memory"
)

// Run will start the server
func Run() {
	logger.InitializeAndConfigure()

	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	repo := newJobRepository(context.Background(), os.Getenv("JOB_REPOSITORY"))
	store := newMediaStore(context.Background())
	registerRoutes(router, usecase.NewJobUseCase(repo, store))

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	logger.Infof("[http][routes] listening port=%s", port)
	if err := router.Run(":" + port); err != nil {
		logger.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func registerRoutes(router *gin.Engine, uc usecase.IJobUseCase) {
	jobHandler := handlers.NewJobHandler(uc)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addJobRoutes(v1, jobHandler)
}

// newJobRepository picks the storage backend from JOB_REPOSITORY.
func newJobRepository(ctx context.Context, kind string) interfaces.IJobRepository {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case RepositoryMemory:
		logger.Warnf("[http][routes] using in-memory job repository; data is lost on restart")
		return repository.NewJobMemoryRepository()
	case RepositoryPostgres:
		repo := repository.NewJobGormRepository(database.ConnectPostgres())
		if err := repo.Migrate(ctx); err != nil {
			logger.Fatalf("[http][routes] jobs table migration failed err=%v", err)
		}
		return repo
	case "", RepositoryDynamoDB:
		return repository.NewJobDynamoRepository(database.ConnectDynamoDB())
	default:
		logger.Fatalf("[http][routes] unknown JOB_REPOSITORY=%q", kind)
		return nil
	}
}

// newMediaStore returns nil when MEDIA_BUCKET is unset, which disables uploads.
func newMediaStore(ctx context.Context) interfaces.IMediaStore {
	store, err := media.NewS3MediaStoreFromEnv(ctx)
	if err != nil {
		logger.Warnf("[http][routes] media store not configured: %v", err)
		return nil
	}
	return store
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.LoggerWithWriter(logger.Logger().Writer()))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
