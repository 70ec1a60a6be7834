package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/grupo09/paises-backend/src/controllers"
	"github.com/grupo09/paises-backend/src/middleware"
)

func SetupPageRoutes(router *gin.Engine) {
	pageController := controllers.NewPageController()

	api := router.Group("/api")
	{
		api.GET("/", pageController.Index)
		api.GET("/about", pageController.About)
		api.GET("/contact", pageController.Contact)
	}

	router.GET("/healthz", pageController.Health)
	router.GET("/metrics", middleware.MetricsHandler())
	router.NoRoute(pageController.NotFound)
}
