package main

import (
	"context"
	"log"
	"time"

	_ "taxengine/api/swagger" // swagger docs
	"taxengine/internal/config"
	"taxengine/internal/database"
	"taxengine/internal/handler"
	"taxengine/internal/middleware"
	"taxengine/internal/repository"
	"taxengine/internal/service"
	"taxengine/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           US Tax Engine API
// @version         1.0
// @description     Economic nexus monitoring and zip-code sales-tax rate calculation.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var catalogRepo repository.CatalogRepository
	switch cfg.CatalogSource {
	case config.CatalogPostgres:
		catalogRepo, err = database.OpenCatalog(ctx, cfg.DB.DSN())
		if err != nil {
			log.Fatalf("Database catalog failed: %v", err)
		}
	default:
		catalogRepo = repository.NewStaticCatalogRepository()
	}

	evaluator, baseRates, err := service.LoadCatalog(ctx, catalogRepo)
	if err != nil {
		log.Fatalf("Loading catalog failed: %v", err)
	}
	log.Printf("Catalog loaded from %s: %d nexus rules, %d zip rates", cfg.CatalogSource, len(evaluator.Rules()), baseRates.Len())

	// Set up dependencies (Session -> Service -> Handler)
	store := session.NewStore(baseRates, session.WithIdleTTL(cfg.SessionTTL))
	issuer := session.NewIssuer(cfg.SessionSecret, cfg.SessionTTL)
	requireSession := middleware.RequireSession(store, issuer, cfg.SecureCookies)

	nexusService := service.NewNexusService(evaluator)
	rateService := service.NewRateService()

	nexusHandler := handler.NewNexusHandler(nexusService, cfg.MaxUploadBytes)
	rateHandler := handler.NewRateHandler(rateService, requireSession, cfg.MaxUploadBytes)
	sessionHandler := handler.NewSessionHandler(rateService, store, issuer, requireSession, cfg.SecureCookies)

	// Set up Gin Router
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", middleware.SessionHeader}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.ExposeHeaders = []string{middleware.SessionHeader}
	router.Use(cors.New(corsConfig))

	if limiter := middleware.NewClientLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst); limiter != nil {
		router.Use(middleware.RateLimit(limiter))
	}

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// API Routing
	nexusHandler.RegisterRoutes(router.Group(""))
	rateHandler.RegisterRoutes(router.Group(""))
	sessionHandler.RegisterRoutes(router.Group(""))

	log.Printf("Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
