package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tenalyadmin/internal/config"
	"tenalyadmin/internal/events"
	"tenalyadmin/internal/middleware"
	"tenalyadmin/internal/modules/ads"
	"tenalyadmin/internal/modules/auth"
	"tenalyadmin/internal/modules/stats"
	"tenalyadmin/internal/modules/users"
	"tenalyadmin/internal/modules/verification"
	"tenalyadmin/internal/session"
	"tenalyadmin/internal/tenaly"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := buildLogger(cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	store, err := session.Open(cfg.SessionDSN, cfg.SessionTTL)
	if err != nil {
		logger.Fatal("open session store", zap.Error(err))
	}

	api := tenaly.New(cfg.APIBaseURL, logger)
	hub := events.NewHub(logger)
	defer hub.Close()

	authService := auth.NewService(api, store, logger)
	authHandler := auth.NewHandler(authService)

	adsService := ads.NewService(api, hub, logger)
	adsHandler := ads.NewHandler(adsService)

	usersService := users.NewService(api, hub, logger)
	usersHandler := users.NewHandler(usersService)

	verificationService := verification.NewService(api, hub, logger)
	verificationHandler := verification.NewHandler(verificationService)

	statsService := stats.NewService(api, logger)
	statsHandler := stats.NewHandler(statsService)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(auth.RequireSession(authService))
		{
			authHandler.RegisterProtectedRoutes(protected)
			adsHandler.RegisterProtectedRoutes(protected)
			usersHandler.RegisterProtectedRoutes(protected)
			verificationHandler.RegisterProtectedRoutes(protected)
			statsHandler.RegisterProtectedRoutes(protected)
			protected.GET("/events", hub.Serve)
		}
	}

	logger.Info("listening", zap.String("addr", cfg.Addr), zap.String("upstream", cfg.APIBaseURL))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func buildLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
