package controllers

//go:generate mockgen -source=countryControllers.go -destination=mocks/mocks.go -package=mocks CountryService

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/grupo09/paises-backend/src/middleware"
	"github.com/grupo09/paises-backend/src/models"
	"github.com/grupo09/paises-backend/src/repository"
	"github.com/grupo09/paises-backend/src/services"
)

const (
	countriesPath = "/api/paises"
	xlsxMIME      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// CountryService is what the controllers need from the service layer.
type CountryService interface {
	GetAllCountries(ctx context.Context) ([]models.CountryModel, error)
	GetCountryByID(ctx context.Context, id string) (*models.CountryModel, error)
	SearchCountriesByName(ctx context.Context, name string) ([]models.CountryModel, error)
	CreateCountry(ctx context.Context, country *models.CountryModel) (*models.CountryModel, error)
	UpdateCountry(ctx context.Context, id string, patch models.CountryPatch) (*models.CountryModel, error)
	DeleteCountry(ctx context.Context, id string) (*models.CountryModel, error)
	ExportCountriesToExcel(ctx context.Context, w io.Writer) error
	ImportCountriesFromExcel(ctx context.Context, r io.Reader) (*services.ImportResult, error)
}

type CountryController struct {
	service       CountryService
	exposeDetails bool
}

// NewCountryController creates a controller. exposeDetails adds the
// underlying error to 500 responses.
func NewCountryController(service CountryService, exposeDetails bool) *CountryController {
	return &CountryController{service: service, exposeDetails: exposeDetails}
}

// GetAllCountries handles GET requests to retrieve all country records
func (c *CountryController) GetAllCountries(ctx *gin.Context) {
	f, ok := acceptable(ctx)
	if !ok {
		return
	}
	countries, err := c.service.GetAllCountries(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		c.respondInternal(ctx, f, err, "retrieving countries")
		return
	}
	if countries == nil {
		countries = []models.CountryModel{}
	}
	respond(ctx, f, http.StatusOK, "dashboard.html", countries)
}

// GetCountryByID handles GET requests to retrieve a country record by ID
func (c *CountryController) GetCountryByID(ctx *gin.Context) {
	f, ok := acceptable(ctx)
	if !ok {
		return
	}
	id, ok := countryID(ctx, f)
	if !ok {
		return
	}
	country, err := c.service.GetCountryByID(ctx.Request.Context(), id)
	if err != nil {
		c.respondFailure(ctx, f, err, "retrieving country")
		return
	}
	respondOrRedirect(ctx, f, http.StatusFound, countriesPath, http.StatusOK, country)
}

// SearchCountries handles GET requests to find countries by name. It always
// answers with JSON.
func (c *CountryController) SearchCountries(ctx *gin.Context) {
	name := strings.TrimSpace(ctx.Query("nombre"))
	if name == "" {
		name = strings.TrimSpace(ctx.Query("name"))
	}
	if name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Country name is required"})
		return
	}

	countries, err := c.service.SearchCountriesByName(ctx.Request.Context(), name)
	if err != nil {
		_ = ctx.Error(err)
		body := gin.H{"message": "Error searching countries."}
		if c.exposeDetails {
			body["error"] = err.Error()
		}
		ctx.JSON(http.StatusInternalServerError, body)
		return
	}
	if len(countries) == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"countries": []models.CountryModel{}, "message": "Country not found"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"countries": countries})
}

// CreateCountry handles POST requests to create a new country record
func (c *CountryController) CreateCountry(ctx *gin.Context) {
	f, ok := acceptable(ctx)
	if !ok {
		return
	}
	input, ok := middleware.CountryInputFrom(ctx)
	if !ok {
		respondError(ctx, f, http.StatusBadRequest, "Invalid request body")
		return
	}
	country, err := input.ToCountry()
	if err != nil {
		c.respondFailure(ctx, f, err, "creating country")
		return
	}

	created, err := c.service.CreateCountry(ctx.Request.Context(), &country)
	if err != nil {
		c.respondFailure(ctx, f, err, "creating country")
		return
	}
	respondOrRedirect(ctx, f, http.StatusSeeOther, countriesPath, http.StatusCreated, created)
}

// UpdateCountry handles PUT requests to update a country record by ID
func (c *CountryController) UpdateCountry(ctx *gin.Context) {
	f, ok := acceptable(ctx)
	if !ok {
		return
	}
	id, ok := countryID(ctx, f)
	if !ok {
		return
	}
	input, ok := middleware.CountryInputFrom(ctx)
	if !ok {
		respondError(ctx, f, http.StatusBadRequest, "Invalid request body")
		return
	}
	patch, err := input.ToPatch()
	if err != nil {
		c.respondFailure(ctx, f, err, "updating country")
		return
	}

	updated, err := c.service.UpdateCountry(ctx.Request.Context(), id, patch)
	if err != nil {
		c.respondFailure(ctx, f, err, "updating country")
		return
	}
	respondOrRedirect(ctx, f, http.StatusSeeOther, countriesPath, http.StatusOK, updated)
}

// DeleteCountry handles DELETE requests to delete a country record by ID
func (c *CountryController) DeleteCountry(ctx *gin.Context) {
	f, ok := acceptable(ctx)
	if !ok {
		return
	}
	id, ok := countryID(ctx, f)
	if !ok {
		return
	}
	deleted, err := c.service.DeleteCountry(ctx.Request.Context(), id)
	if err != nil {
		c.respondFailure(ctx, f, err, "deleting country")
		return
	}
	respondOrRedirect(ctx, f, http.StatusSeeOther, countriesPath, http.StatusOK, gin.H{
		"message":        "Country deleted successfully",
		"deletedCountry": deleted,
	})
}

// ExportCountries handles GET requests to download the catalog as xlsx
func (c *CountryController) ExportCountries(ctx *gin.Context) {
	var buf bytes.Buffer
	if err := c.service.ExportCountriesToExcel(ctx.Request.Context(), &buf); err != nil {
		_ = ctx.Error(err)
		// the download itself is not negotiated; failures fall back to JSON
		f := negotiate(ctx)
		if f == formatNone {
			f = formatJSON
		}
		c.respondInternal(ctx, f, err, "exporting countries")
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="paises.xlsx"`)
	ctx.Data(http.StatusOK, xlsxMIME, buf.Bytes())
}

// ImportCountries handles POST requests carrying an xlsx file in the "file" field
func (c *CountryController) ImportCountries(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "An .xlsx file is required in the \"file\" field"})
		return
	}
	file, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Could not read the uploaded file"})
		return
	}
	defer file.Close()

	result, err := c.service.ImportCountriesFromExcel(ctx.Request.Context(), file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// countryID reads the :id parameter and answers 400 when it is not a well
// formed identifier.
func countryID(ctx *gin.Context, f format) (string, bool) {
	id := ctx.Param("id")
	if !primitive.IsValidObjectID(id) {
		respondError(ctx, f, http.StatusBadRequest, "Invalid country ID")
		return "", false
	}
	return id, true
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrCountryNotFound)
}
