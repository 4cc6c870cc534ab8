package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "carimport/api/swagger" // swagger docs
	"carimport/internal/cache"
	"carimport/internal/config"
	"carimport/internal/customs"
	"carimport/internal/database"
	"carimport/internal/handler"
	"carimport/internal/logger"
	"carimport/internal/middleware"
	"carimport/internal/rates"
	"carimport/internal/repository"
	"carimport/internal/service"
	"carimport/internal/shipping"
	"carimport/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title           Car Import Cost API
// @version         1.0
// @description     Import cost calculator for vehicles bought at US auctions and delivered to Armenia.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load config: " + err.Error())
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic("build logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore := newCacheStore(ctx, cfg, log)
	defer closeStore()

	db := connectDatabase(cfg, log)

	// Set up dependencies (Repository -> Service -> Handler)
	var directory shipping.Directory
	if db != nil {
		shippingRepo := repository.NewShippingCityRepository(db)
		directory = shippingRepo
		if cfg.Shipping.SeedDirectory {
			written, err := shipping.SeedDirectory(ctx, repository.NewTransactionManager(db), shippingRepo)
			if err != nil {
				log.Error("failed to seed shipping directory", zap.Error(err))
			} else if written > 0 {
				log.Info("shipping directory seeded", zap.Int("rows", written))
			}
		}
	}

	rateProvider := rates.NewProvider(cfg.Rates.URL,
		rates.WithTimeout(cfg.Rates.Timeout),
		rates.WithCache(store, cfg.Rates.CacheTTL),
		rates.WithLogger(log.Named("rates")))
	shippingResolver := shipping.NewResolver(directory,
		shipping.WithCache(store, cfg.Shipping.CacheTTL),
		shipping.WithLogger(log.Named("shipping")))
	taxClient := customs.NewClient(cfg.Tax.URL,
		customs.WithTimeout(cfg.Tax.Timeout),
		customs.WithLogger(log.Named("customs")))

	insuranceRate := cfg.Pricing.InsuranceRate()
	calculatorService := service.NewCalculatorService(service.CalculatorDeps{
		Rates:         rateProvider,
		Shipping:      shippingResolver,
		Tax:           taxClient,
		InsuranceRate: &insuranceRate,
		Logger:        log.Named("calculator"),
	})
	ratesService := service.NewRatesService(rateProvider)
	cacheService := service.NewCacheService(rateProvider, shippingResolver, log.Named("cache"))

	// Set up WebSocket Hub and the rate refresher feeding it
	wsHub := websocket.NewHub(cfg.Server.CORSOrigins, log.Named("ws"))
	go wsHub.Run(ctx)
	go service.NewRateRefresher(rateProvider, wsHub, cfg.Rates.RefreshInterval, log.Named("refresher")).Run(ctx)

	// Initialize Handlers
	secret := cfg.JWTSecret()
	calculatorHandler := handler.NewCalculatorHandler(calculatorService, secret)
	ratesHandler := handler.NewRatesHandler(ratesService)
	shippingHandler := handler.NewShippingHandler(shippingResolver, secret)
	adminHandler := handler.NewAdminHandler(cacheService, secret)

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(middleware.RequestLogger(log.Named("http")), middleware.Recovery(log))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", middleware.HeaderRequestID}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.ExposeHeaders = []string{middleware.HeaderRequestID}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "database": db != nil, "ws_clients": wsHub.Clients()})
	})

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// WebSocket endpoint
	router.GET("/ws/rates", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	// API Routing
	calculatorHandler.RegisterRoutes(router.Group(""))
	ratesHandler.RegisterRoutes(router.Group(""))
	shippingHandler.RegisterRoutes(router.Group(""))
	adminHandler.RegisterRoutes(router.Group(""))

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
	}

	go func() {
		log.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newCacheStore returns Redis when enabled and reachable, otherwise an
// in-process store.
func newCacheStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (cache.Store, func()) {
	if !cfg.Redis.Enabled {
		return cache.NewMemoryStore(nil), func() {}
	}

	client := cache.NewRedisClient(cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	store := cache.NewRedisStore(client, cfg.Redis.Namespace)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := store.HealthCheck(pingCtx); err != nil {
		log.Warn("redis unavailable, using in-memory cache", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		_ = store.Close()
		return cache.NewMemoryStore(nil), func() {}
	}

	log.Info("connected to redis", zap.String("addr", cfg.Redis.Addr))
	return store, func() { _ = store.Close() }
}

// connectDatabase returns nil when the directory is disabled or unreachable;
// shipping then resolves from the bundled tariff only.
func connectDatabase(cfg *config.Config, log *zap.Logger) *gorm.DB {
	if !cfg.Database.Enabled {
		return nil
	}

	db, err := database.NewConnection(cfg.Database.DSN(), database.Options{
		AutoMigrate: cfg.Database.AutoMigrate,
		LogSQL:      cfg.Database.LogSQL,
		MaxOpen:     cfg.Database.MaxOpenConns,
		MaxIdle:     cfg.Database.MaxIdleConns,
	}, log.Named("db"))
	if err != nil {
		log.Error("database connection failed, shipping directory disabled", zap.Error(err))
		return nil
	}

	log.Info("connected to PostgreSQL")
	return db
}
