package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deniz/campushub/internal/app/controllers"
	"github.com/deniz/campushub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	projectController *controllers.ProjectController,
	tagController *controllers.TagController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public project catalog routes ---
	projects := v1.Group("/projects")
	{
		projects.GET("", projectController.ListProjects)
		projects.GET("/:id", projectController.GetProjectByID)
	}

	// Tag catalogs (public access)
	v1.GET("/languages", tagController.GetLanguages)
	v1.GET("/specializations", tagController.GetSpecializations)

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated admin routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/projects/:id/languages/:name", tagController.ToggleLanguage)
		authenticated.POST("/projects/:id/specializations/:name", tagController.ToggleSpecialization)
	}
}
