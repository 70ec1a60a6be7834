package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PageController struct{}

func NewPageController() *PageController {
	return &PageController{}
}

// Index renders the landing page
func (p *PageController) Index(ctx *gin.Context) {
	if f, ok := acceptable(ctx); ok {
		respond(ctx, f, http.StatusOK, "index.html", gin.H{"title": "Países de habla hispana"})
	}
}

// About renders the about page
func (p *PageController) About(ctx *gin.Context) {
	if f, ok := acceptable(ctx); ok {
		respond(ctx, f, http.StatusOK, "about.html", gin.H{"title": "Acerca de"})
	}
}

// Contact renders the contact page
func (p *PageController) Contact(ctx *gin.Context) {
	if f, ok := acceptable(ctx); ok {
		respond(ctx, f, http.StatusOK, "contact.html", gin.H{"title": "Contacto"})
	}
}

// Health reports that the process is serving requests
func (p *PageController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NotFound answers every unmatched route
func (p *PageController) NotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
}
