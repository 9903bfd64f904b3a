package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/config"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/handlers"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/logging"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/middleware"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/observability"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/services"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/state"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/docs"
)

// @title           Exegese Pura & Simples API
// @version         1.0
// @description     API do aplicativo de estudo bíblico Exegese Pura & Simples. Gerencia sessões, perfis, configuração de conteúdo, estudos gerados por IA, mural da comunidade, anotações e feedback.

// @contact.name   FerTaise Tech

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @tag.name session
// @tag.description Estado da sessão e navegação

// @tag.name profile
// @tag.description Cadastro e perfil do usuário

// @tag.name ai
// @tag.description Geração de estudos e conversa com a IA

// @tag.name admin
// @tag.description Console administrativo

// @tag.name health
// @tag.description Verificação de saúde

func main() {
	// .env is optional, real deployments use environment variables
	_ = godotenv.Load()

	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	observability.InitTracer()
	defer observability.ShutdownTracer()

	config.InitMongoDB()
	config.InitRedis()

	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Wire services
	dataManager := services.NewDataManager(config.Redis, config.MongoDB, logging.Logger)
	cacheService := services.NewCacheService(config.Redis, logging.Logger)
	profileService := services.NewProfileService(dataManager, config.MongoDB, logging.Logger)
	configService := services.NewConfigService(config.Redis, config.MongoDB, logging.Logger)
	communityService := services.NewCommunityService(config.MongoDB, logging.Logger)
	feedbackService := services.NewFeedbackService(dataManager, config.MongoDB, logging.Logger)
	assetService := services.NewAssetService(logging.Logger)
	geminiService := services.NewGeminiService(logging.Logger)

	store := state.NewStore(cacheService, profileService, configService, logging.Logger)

	api := handlers.NewAPI(
		store,
		profileService,
		configService,
		cacheService,
		communityService,
		feedbackService,
		assetService,
		geminiService,
		logging.Logger,
	)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.Default(),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	{
		v1.GET("/health", api.Health)
		v1.GET("/config", api.GetConfig)
		v1.GET("/devotionals", api.ListDevotionals)

		// Session routes work for guests and signed-in users alike
		session := v1.Group("", middleware.OptionalAuth())
		{
			session.POST("/session/resolve", api.ResolveSession)
			session.GET("/session", api.GetSession)
			session.POST("/session/navigate", api.Navigate)
			session.GET("/session/screen", api.GetScreen)
			session.POST("/session/signout", api.SignOut)
			session.PUT("/session/theme", api.SetTheme)
			session.PUT("/session/reading-settings", api.SetReadingSettings)

			session.POST("/ai/chat", api.Chat)
			session.POST("/ai/exegesis", api.Exegesis)

			session.GET("/studies", api.ListStudies)
			session.POST("/studies", api.SaveStudy)
			session.DELETE("/studies/:id", api.DeleteStudy)

			session.GET("/community/studies", api.ListSharedStudies)
			session.POST("/community/studies", api.PublishStudy)
			session.POST("/community/studies/:id/like", api.LikeSharedStudy)

			session.GET("/notes", api.ListNotes)
			session.POST("/notes", api.CreateNote)
			session.PUT("/notes/:id", api.UpdateNote)
			session.DELETE("/notes/:id", api.DeleteNote)

			session.POST("/feedback", api.SubmitFeedback)
		}

		// Routes that require a signed-in identity
		authed := v1.Group("", middleware.AuthMiddleware())
		{
			authed.POST("/register", api.Register)
			authed.GET("/profile", api.GetProfile)
			authed.PATCH("/profile", api.UpdateProfile)
		}

		// Admin console
		v1.POST("/admin/login", api.AdminLogin)
		admin := v1.Group("", middleware.RequireAdmin())
		{
			admin.PUT("/config", api.PutConfig)
			admin.POST("/config/cover", api.UploadCover)
			admin.GET("/admin/users", api.ListUsers)
			admin.GET("/admin/feedback", api.ListFeedback)
			admin.GET("/admin/analytics", api.Analytics)
		}
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logging.Logger.Info("server exited gracefully")
}
