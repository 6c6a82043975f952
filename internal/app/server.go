package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"zabudowy-service/internal/config"
	"zabudowy-service/internal/db"
	authHandler "zabudowy-service/internal/handlers/auth"
	catalogHandler "zabudowy-service/internal/handlers/catalog"
	contactHandler "zabudowy-service/internal/handlers/contact"
	projectHandler "zabudowy-service/internal/handlers/project"
	publicHandler "zabudowy-service/internal/handlers/public"
	seedHandler "zabudowy-service/internal/handlers/seed"
	settingsHandler "zabudowy-service/internal/handlers/settings"
	uploadHandler "zabudowy-service/internal/handlers/upload"
	wsHandler "zabudowy-service/internal/handlers/ws"
	"zabudowy-service/internal/middleware"
	"zabudowy-service/internal/pkg/session"
	"zabudowy-service/internal/pkg/token"
	"zabudowy-service/internal/repository/postgres"
	"zabudowy-service/internal/seed"
	authsvc "zabudowy-service/internal/service/auth"
	catalogsvc "zabudowy-service/internal/service/catalog"
	contactsvc "zabudowy-service/internal/service/contact"
	projectsvc "zabudowy-service/internal/service/project"
	settingssvc "zabudowy-service/internal/service/settings"
	"zabudowy-service/internal/storage"
	"zabudowy-service/internal/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	return &Server{
		cfg:    config.Load(),
		engine: gin.New(),
	}
}

func (s *Server) Start(ctx context.Context) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := postgres.ConnectDB(s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()
	logger.Info("connected to PostgreSQL")

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redisClient.Close()
	logger.Info("connected to Redis")

	// ----- Sessions -----
	tokenManager := token.NewManager(s.cfg.SessionSecret, "zabudowy-service", "zabudowy-admin", s.cfg.SessionTTL)
	sessionManager := session.NewManager(redisClient)

	// ----- Repositories -----
	linkRepo := postgres.NewCatalogLinkRepository()
	brandRepo := postgres.NewVehicleBrandRepository(pool, linkRepo)
	categoryRepo := postgres.NewCategoryRepository(pool, linkRepo)
	projectRepo := postgres.NewProjectRepository(pool)
	contactRepo := postgres.NewContactMessageRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// ----- WebSocket hub -----
	hub := ws.NewHub(logger)
	go hub.Run(ctx)

	// ----- Services -----
	authService := authsvc.NewAuthService(userRepo, tokenManager, sessionManager, logger)
	brandService := catalogsvc.NewBrandService(brandRepo, logger)
	categoryService := catalogsvc.NewCategoryService(categoryRepo, logger)
	viewService := catalogsvc.NewViewService(brandRepo, categoryRepo, projectRepo, logger)
	projectService := projectsvc.NewService(projectRepo, logger)
	contactService := contactsvc.NewService(contactRepo, hub, logger)
	settingsService := settingssvc.NewService(settingRepo, logger)
	seeder := seed.NewSeeder(brandRepo, categoryRepo, projectRepo, settingRepo, logger)

	// ----- Upload storage -----
	uploadStore, err := storage.NewUploadStore(s.cfg.UploadDir, s.cfg.PublicUploadPath, logger)
	if err != nil {
		return fmt.Errorf("failed to prepare upload storage: %w", err)
	}

	// ----- Admin account -----
	if err := s.ensureAdmin(ctx, authService); err != nil {
		logger.Error("failed to ensure admin account", zap.Error(err))
	}

	// ----- Handlers -----
	cookieTTL := int(s.cfg.SessionTTL / time.Second)
	handlers := &Handlers{
		AuthHandler:     authHandler.NewAuthHandler(authService, cookieTTL, s.cfg.SecureCookies),
		BrandHandler:    catalogHandler.NewBrandHandler(brandService),
		CategoryHandler: catalogHandler.NewCategoryHandler(categoryService),
		ProjectHandler:  projectHandler.NewProjectHandler(projectService),
		ContactHandler:  contactHandler.NewContactHandler(contactService),
		SettingsHandler: settingsHandler.NewSettingsHandler(settingsService),
		UploadHandler:   uploadHandler.NewUploadHandler(uploadStore),
		PublicHandler:   publicHandler.NewPublicHandler(brandService, categoryService, viewService, projectService),
		SeedHandler:     seedHandler.NewSeedHandler(seeder),
		WSHandler:       wsHandler.NewWebSocketHandler(hub, authService, logger),
		AuthMiddleware:  middleware.NewAuthMiddleware(authService),
	}

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(s.cfg.AllowedOrigin),
	)

	SetupRouter(s.engine, handlers)
	s.engine.Static(s.cfg.PublicUploadPath, uploadStore.Dir())

	srv := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("server starting", zap.String("addr", s.cfg.HTTPAddr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received, draining connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func (s *Server) ensureAdmin(ctx context.Context, authService *authsvc.AuthService) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	email := s.cfg.AdminEmail
	password := s.cfg.AdminPassword
	name := s.cfg.AdminName

	if password == "" {
		s.logger.Warn("ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}
	if len(password) < 8 {
		return fmt.Errorf("admin password must be at least 8 characters")
	}

	return authService.EnsureAdminExists(ctx, email, password, name)
}
