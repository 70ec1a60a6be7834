package dtos

import (
	"strconv"
	"strings"

	"github.com/grupo09/paises-backend/src/models"
)

// CountryInput is the create/update payload as submitted by a form or a JSON
// client. Nil scalar fields and nil lists were not submitted at all.
type CountryInput struct {
	Name         *string
	OfficialName *string
	Capital      *string
	Area         *string
	Population   *string
	Borders      []string
	Timezones    []string
	GiniIndex    *string
	GiniYear     *string
}

// SplitList turns comma separated text into a list, dropping blank items.
// The result is never nil.
func SplitList(text string) []string {
	out := []string{}
	for _, part := range strings.Split(text, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// AssembleGini combines a separately supplied index and year into the single
// entry gini mapping. It reports false unless both are present and the index
// is numeric.
func AssembleGini(index, year *string) (models.Gini, bool) {
	if isBlank(index) || isBlank(year) {
		return nil, false
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(*index), 64)
	if err != nil {
		return nil, false
	}
	return models.NewGini(strings.TrimSpace(*year), value), true
}

// ToCountry builds the record to create. Absent lists default to empty ones
// and gini is only set when both its inputs are present.
func (in CountryInput) ToCountry() (models.CountryModel, error) {
	country := models.CountryModel{
		Name:         deref(in.Name),
		OfficialName: deref(in.OfficialName),
		Capital:      deref(in.Capital),
		Borders:      listOrEmpty(in.Borders),
		Timezones:    listOrEmpty(in.Timezones),
	}

	if in.Area != nil {
		area, err := parseArea(*in.Area)
		if err != nil {
			return models.CountryModel{}, err
		}
		country.Area = area
	}
	if in.Population != nil {
		population, err := parsePopulation(*in.Population)
		if err != nil {
			return models.CountryModel{}, err
		}
		country.Population = population
	}
	if gini, ok := AssembleGini(in.GiniIndex, in.GiniYear); ok {
		country.Gini = gini
	}
	return country, nil
}

// ToPatch builds the update to apply. Lists always replace the stored ones
// (empty when absent). When the gini inputs are not both present the stored
// gini is removed.
func (in CountryInput) ToPatch() (models.CountryPatch, error) {
	patch := models.CountryPatch{
		Name:         in.Name,
		OfficialName: in.OfficialName,
		Capital:      in.Capital,
		Borders:      listOrEmpty(in.Borders),
		Timezones:    listOrEmpty(in.Timezones),
	}

	if in.Area != nil {
		area, err := parseArea(*in.Area)
		if err != nil {
			return models.CountryPatch{}, err
		}
		patch.Area = &area
	}
	if in.Population != nil {
		population, err := parsePopulation(*in.Population)
		if err != nil {
			return models.CountryPatch{}, err
		}
		patch.Population = &population
	}
	if gini, ok := AssembleGini(in.GiniIndex, in.GiniYear); ok {
		patch.Gini = gini
	} else {
		patch.UnsetGini = true
	}
	return patch, nil
}

func parseArea(raw string) (float64, error) {
	area, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fieldError("area", "Area must be a non-negative number.")
	}
	return area, nil
}

func parsePopulation(raw string) (int64, error) {
	population, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fieldError("population", "Population must be a non-negative integer.")
	}
	return population, nil
}

func fieldError(field, msg string) error {
	return &models.ValidationError{Errors: []models.FieldError{{Field: field, Message: msg}}}
}

func listOrEmpty(l []string) models.StringList {
	if l == nil {
		return models.StringList{}
	}
	return models.StringList(l)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
