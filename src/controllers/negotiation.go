package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/munnerz/goautoneg"

	"github.com/grupo09/paises-backend/src/models"
)

type format int

const (
	formatNone format = iota
	formatHTML
	formatJSON
)

const notAcceptable = "Not Acceptable"

// negotiate picks the representation for the request. HTML wins over JSON
// whenever both are acceptable; a missing Accept header accepts anything.
func negotiate(ctx *gin.Context) format {
	header := strings.TrimSpace(ctx.GetHeader("Accept"))
	if header == "" {
		header = "*/*"
	}
	accepts := goautoneg.ParseAccept(header)

	switch {
	case quality(accepts, "text", "html") > 0:
		return formatHTML
	case quality(accepts, "application", "json") > 0:
		return formatJSON
	default:
		return formatNone
	}
}

// quality returns the q value of the most specific range matching the type.
func quality(accepts []goautoneg.Accept, typ, subType string) float64 {
	best, q := -1, 0.0
	for _, a := range accepts {
		var specificity int
		switch {
		case a.Type == typ && a.SubType == subType:
			specificity = 2
		case a.Type == typ && a.SubType == "*":
			specificity = 1
		case a.Type == "*" && a.SubType == "*":
			specificity = 0
		default:
			continue
		}
		if specificity > best {
			best, q = specificity, a.Q
		}
	}
	return q
}

// acceptable negotiates the representation once per request. Clients that
// accept neither HTML nor JSON get 406 and the handler must stop.
func acceptable(ctx *gin.Context) (format, bool) {
	f := negotiate(ctx)
	if f == formatNone {
		ctx.String(http.StatusNotAcceptable, notAcceptable)
		return formatNone, false
	}
	return f, true
}

// respond renders view for HTML clients and serializes payload for JSON ones.
func respond(ctx *gin.Context, f format, status int, view string, payload any) {
	if f == formatHTML {
		ctx.HTML(status, view, payload)
		return
	}
	ctx.JSON(status, payload)
}

// respondOrRedirect redirects HTML clients and sends payload to JSON ones.
func respondOrRedirect(ctx *gin.Context, f format, redirectCode int, location string, status int, payload any) {
	if f == formatHTML {
		ctx.Redirect(redirectCode, location)
		return
	}
	ctx.JSON(status, payload)
}

// respondError reports a failure as plain text to HTML clients and as a
// {"message": ...} body to JSON ones.
func respondError(ctx *gin.Context, f format, status int, message string) {
	if f == formatHTML {
		ctx.String(status, message)
		return
	}
	ctx.JSON(status, gin.H{"message": message})
}

func respondValidation(ctx *gin.Context, f format, verr *models.ValidationError) {
	if f == formatHTML {
		ctx.String(http.StatusBadRequest, strings.Join(verr.Messages(), "\n"))
		return
	}
	ctx.JSON(http.StatusBadRequest, gin.H{"message": "Validation errors", "errors": verr.Errors})
}

// respondFailure maps an error coming from the service layer to a response.
func (c *CountryController) respondFailure(ctx *gin.Context, f format, err error, action string) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		respondValidation(ctx, f, verr)
	case isNotFound(err):
		respondError(ctx, f, http.StatusNotFound, "Country not found")
	default:
		_ = ctx.Error(err)
		c.respondInternal(ctx, f, err, action)
	}
}

func (c *CountryController) respondInternal(ctx *gin.Context, f format, err error, action string) {
	message := "Error " + action + "."
	if !c.exposeDetails {
		respondError(ctx, f, http.StatusInternalServerError, message)
		return
	}
	if f == formatHTML {
		ctx.String(http.StatusInternalServerError, message+"\n"+err.Error())
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"message": message, "error": err.Error()})
}
