package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/grupo09/paises-backend/src/controllers"
	"github.com/grupo09/paises-backend/src/middleware"
)

func SetupCountryRoutes(router *gin.Engine, service controllers.CountryService, exposeDetails bool) {
	countryController := controllers.NewCountryController(service, exposeDetails)

	api := router.Group("/api")
	{
		api.GET("/paises", countryController.GetAllCountries)
		api.GET("/paises/exportar", countryController.ExportCountries)
		api.POST("/paises/importar", countryController.ImportCountries)
		api.GET("/paises/:id", countryController.GetCountryByID)
		api.GET("/buscarPais", countryController.SearchCountries)
		api.POST("/AgregarPais", middleware.ValidateCountry(), countryController.CreateCountry)
		api.PUT("/ActualizarPais/:id", middleware.ValidateCountry(), countryController.UpdateCountry)
		api.DELETE("/EliminarPais/:id", countryController.DeleteCountry)

		// Forms
		api.GET("/formAgregarPais", countryController.AddCountryForm)
		api.GET("/formEditarPais/:id", countryController.EditCountryForm)
		api.GET("/formBuscarPorNombre", countryController.SearchCountryForm)
		api.GET("/confirmarEliminar/:id", countryController.ConfirmDeleteForm)
	}
}
