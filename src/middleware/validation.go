package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/grupo09/paises-backend/src/dtos"
	"github.com/grupo09/paises-backend/src/models"
)

const countryInputKey = "countryInput"

// ValidateCountry binds the create/update payload, sanitizes and validates it.
// Invalid payloads are rejected with 400 before any controller runs; valid
// ones are stored in the context for CountryInputFrom.
func ValidateCountry() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		input, err := BindCountryInput(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": "Invalid request body",
				"errors":  []models.FieldError{{Field: "body", Message: err.Error()}},
			})
			return
		}

		if errs := dtos.Validate(&input); len(errs) > 0 {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": "Validation errors",
				"errors":  errs,
			})
			return
		}

		ctx.Set(countryInputKey, input)
		ctx.Next()
	}
}

// CountryInputFrom returns the payload validated by ValidateCountry.
func CountryInputFrom(ctx *gin.Context) (dtos.CountryInput, bool) {
	v, ok := ctx.Get(countryInputKey)
	if !ok {
		return dtos.CountryInput{}, false
	}
	input, ok := v.(dtos.CountryInput)
	return input, ok
}

func scalarTargets(in *dtos.CountryInput) map[string]**string {
	return map[string]**string{
		"name":         &in.Name,
		"officialName": &in.OfficialName,
		"capital":      &in.Capital,
		"area":         &in.Area,
		"population":   &in.Population,
		"giniIndex":    &in.GiniIndex,
		"giniYear":     &in.GiniYear,
	}
}

func listTargets(in *dtos.CountryInput) map[string]*[]string {
	return map[string]*[]string{
		"borders":   &in.Borders,
		"timezones": &in.Timezones,
	}
}

// BindCountryInput reads the payload from a JSON body or from form fields.
// List fields submitted as text are split on commas.
func BindCountryInput(ctx *gin.Context) (dtos.CountryInput, error) {
	if ctx.ContentType() == binding.MIMEJSON {
		return bindJSONInput(ctx.Request.Body)
	}
	return bindFormInput(ctx), nil
}

func bindFormInput(ctx *gin.Context) dtos.CountryInput {
	var in dtos.CountryInput
	for key, dst := range scalarTargets(&in) {
		if v, ok := ctx.GetPostForm(key); ok {
			value := v
			*dst = &value
		}
	}
	for key, dst := range listTargets(&in) {
		values, ok := ctx.GetPostFormArray(key)
		if !ok {
			values, ok = ctx.GetPostFormArray(key + "[]")
		}
		if !ok {
			continue
		}
		if len(values) == 1 {
			*dst = dtos.SplitList(values[0])
		} else {
			*dst = append([]string{}, values...)
		}
	}
	return in
}

func bindJSONInput(body io.Reader) (dtos.CountryInput, error) {
	var in dtos.CountryInput

	dec := json.NewDecoder(body)
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return in, nil
		}
		return in, fmt.Errorf("malformed JSON: %w", err)
	}

	for key, dst := range scalarTargets(&in) {
		v, err := jsonScalar(raw[key])
		if err != nil {
			return in, fmt.Errorf("%s %w", key, err)
		}
		*dst = v
	}
	for key, dst := range listTargets(&in) {
		v, err := jsonList(raw[key])
		if err != nil {
			return in, fmt.Errorf("%s %w", key, err)
		}
		*dst = v
	}
	return in, nil
}

var errNotScalar = errors.New("must be a text, number or boolean value")

func jsonScalar(v any) (*string, error) {
	var s string
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		s = t
	case json.Number:
		s = t.String()
	case bool:
		s = strconv.FormatBool(t)
	default:
		return nil, errNotScalar
	}
	return &s, nil
}

func jsonList(v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return dtos.SplitList(t), nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, err := jsonScalar(item)
			if err != nil || s == nil {
				return nil, errors.New("must be a list of text values")
			}
			out = append(out, *s)
		}
		return out, nil
	default:
		return nil, errors.New("must be a list or comma separated text")
	}
}
