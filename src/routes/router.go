package routes

import (
	"html"
	"html/template"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/grupo09/paises-backend/src/config"
	"github.com/grupo09/paises-backend/src/controllers"
	"github.com/grupo09/paises-backend/src/middleware"
)

// NewRouter builds the gin engine with every middleware, view and route.
func NewRouter(cfg *config.Config, service controllers.CountryService) *gin.Engine {
	router := gin.New()
	// Recovery runs inside the logger and metrics so panics are recorded as 500s.
	router.Use(
		middleware.RequestLogger(),
		middleware.Metrics(),
		middleware.Recovery(cfg.IsDevelopment()),
	)
	if len(cfg.CORSOrigins) > 0 {
		router.Use(middleware.SetupCORS(cfg.CORSOrigins))
	}

	router.SetFuncMap(template.FuncMap{
		"unescape": html.UnescapeString,
	})
	router.LoadHTMLGlob(filepath.Join(cfg.ViewsDir, "*.html"))
	router.Static("/public", cfg.PublicDir)

	SetupCountryRoutes(router, service, cfg.IsDevelopment())
	SetupPageRoutes(router)

	return router
}
