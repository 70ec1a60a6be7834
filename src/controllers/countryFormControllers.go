package controllers

import (
	"html"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/grupo09/paises-backend/src/models"
)

// countryForm is the view model of the edit and delete-confirmation pages.
type countryForm struct {
	Country      *models.CountryModel `json:"country"`
	OfficialName string               `json:"-"`
	Borders      string               `json:"-"`
	Timezones    string               `json:"-"`
	GiniYear     string               `json:"-"`
	GiniIndex    string               `json:"-"`
}

func newCountryForm(c *models.CountryModel) countryForm {
	form := countryForm{
		Country:      c,
		OfficialName: html.UnescapeString(c.OfficialName),
		Borders:      strings.Join(c.Borders, ", "),
		Timezones:    strings.Join(c.Timezones, ", "),
	}
	if year, index, ok := c.Gini.Latest(); ok {
		form.GiniYear = year
		form.GiniIndex = strconv.FormatFloat(index, 'f', -1, 64)
	}
	return form
}

// AddCountryForm renders the creation form
func (c *CountryController) AddCountryForm(ctx *gin.Context) {
	if f, ok := acceptable(ctx); ok {
		respond(ctx, f, http.StatusOK, "addCountry.html", countryForm{})
	}
}

// SearchCountryForm renders the search-by-name form
func (c *CountryController) SearchCountryForm(ctx *gin.Context) {
	if f, ok := acceptable(ctx); ok {
		respond(ctx, f, http.StatusOK, "searchCountry.html", gin.H{})
	}
}

// EditCountryForm renders the edit form filled with the stored record
func (c *CountryController) EditCountryForm(ctx *gin.Context) {
	c.renderCountryForm(ctx, "editCountry.html")
}

// ConfirmDeleteForm renders the delete confirmation page
func (c *CountryController) ConfirmDeleteForm(ctx *gin.Context) {
	c.renderCountryForm(ctx, "confirmDelete.html")
}

func (c *CountryController) renderCountryForm(ctx *gin.Context, view string) {
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
	respond(ctx, f, http.StatusOK, view, newCountryForm(country))
}
