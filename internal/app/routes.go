package app

import (
	"github.com/selmenealex/my-finance/internal/auth"
	"github.com/selmenealex/my-finance/internal/cache"
	"github.com/selmenealex/my-finance/internal/config"
	"github.com/selmenealex/my-finance/internal/handlers"
	"github.com/selmenealex/my-finance/internal/repo"
	"github.com/selmenealex/my-finance/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, users repo.UserRepo, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))

	secret := []byte(cfg.JWT.Secret)

	authSvc := service.NewAuthService(users)
	authHandler := handlers.NewAuthHandler(authSvc, secret)

	var dataCache *cache.DataCache
	if rdb != nil {
		dataCache = cache.NewDataCache(rdb, cfg.Redis.DefaultTTL.Duration())
	}
	dataSvc := service.NewDataService(users, dataCache)
	dataHandler := handlers.NewDataHandler(dataSvc)

	api := r.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	protected := api.Group("", auth.RequireToken(secret))
	protected.GET("/data", dataHandler.Get)
	protected.POST("/data", dataHandler.Save)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "my-finance API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"health":  "/health",
			"api":     "/api",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	store := "file"
	if cfg.DatabaseMode() {
		store = "postgres"
	}
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env, "store": store})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}
