package app

import (
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

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AuthHandler     *authHandler.AuthHandler
	BrandHandler    *catalogHandler.BrandHandler
	CategoryHandler *catalogHandler.CategoryHandler
	ProjectHandler  *projectHandler.ProjectHandler
	ContactHandler  *contactHandler.ContactHandler
	SettingsHandler *settingsHandler.SettingsHandler
	UploadHandler   *uploadHandler.UploadHandler
	PublicHandler   *publicHandler.PublicHandler
	SeedHandler     *seedHandler.SeedHandler
	WSHandler       *wsHandler.WebSocketHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ==================== WebSocket ====================
	// Session is checked inside the handler; browser clients may pass the
	// token as a query parameter during the upgrade.
	api.GET("/admin/ws", h.WSHandler.HandleConnection)

	// ==================== Public Website ====================
	api.GET("/brands", h.PublicHandler.ListBrands)
	api.GET("/brands/:slug", h.PublicHandler.GetBrandView)
	api.GET("/categories", h.PublicHandler.ListCategories)
	api.GET("/categories/:slug", h.PublicHandler.GetCategoryView)
	api.GET("/projects", h.PublicHandler.ListProjects)
	api.GET("/projects/featured", h.PublicHandler.ListFeaturedProjects)
	api.GET("/projects/:slug", h.PublicHandler.GetProject)
	api.GET("/settings", h.SettingsHandler.GetSettings)
	api.POST("/contact", h.ContactHandler.Submit)

	// ==================== Auth ====================
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.AuthHandler.Login)
	}

	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.RequireAdmin())
	{
		authProtected.POST("/logout", h.AuthHandler.Logout)
		authProtected.GET("/me", h.AuthHandler.Me)
	}

	// ==================== Admin ====================
	admin := api.Group("/admin")
	admin.Use(h.AuthMiddleware.RequireAdmin())
	{
		admin.GET("/vehicle-brands", h.BrandHandler.ListBrands)
		admin.GET("/vehicle-brands/:id", h.BrandHandler.GetBrand)
		admin.POST("/vehicle-brands", h.BrandHandler.CreateBrand)
		admin.PUT("/vehicle-brands/:id", h.BrandHandler.UpdateBrand)
		admin.DELETE("/vehicle-brands/:id", h.BrandHandler.DeleteBrand)

		admin.GET("/categories", h.CategoryHandler.ListCategories)
		admin.GET("/categories/:id", h.CategoryHandler.GetCategory)
		admin.POST("/categories", h.CategoryHandler.CreateCategory)
		admin.PUT("/categories/:id", h.CategoryHandler.UpdateCategory)
		admin.DELETE("/categories/:id", h.CategoryHandler.DeleteCategory)

		admin.GET("/projects", h.ProjectHandler.ListProjects)
		admin.GET("/projects/:id", h.ProjectHandler.GetProject)
		admin.POST("/projects", h.ProjectHandler.CreateProject)
		admin.PUT("/projects/:id", h.ProjectHandler.UpdateProject)
		admin.DELETE("/projects/:id", h.ProjectHandler.DeleteProject)

		admin.GET("/messages", h.ContactHandler.ListMessages)
		admin.GET("/messages/unread-count", h.ContactHandler.UnreadCount)
		admin.PUT("/messages/:id/read", h.ContactHandler.MarkRead)

		admin.GET("/settings", h.SettingsHandler.GetSettings)
		admin.PUT("/settings", h.SettingsHandler.UpsertSettings)
		admin.POST("/seed", h.SeedHandler.Run)
	}

	// ==================== Uploads ====================
	api.POST("/upload", h.AuthMiddleware.RequireAdmin(), h.UploadHandler.Upload)
}
