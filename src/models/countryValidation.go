package models

import (
	"math"
	"regexp"
	"strings"

	"github.com/asaskevich/govalidator"
)

var (
	// BorderCodePattern matches a three letter uppercase country code.
	BorderCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	giniYearPattern   = regexp.MustCompile(`^[0-9]{4}$`)
)

// FieldError is a validation failure on a single field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a country does not satisfy the schema.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Messages returns the field messages in order.
func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		out = append(out, fe.Message)
	}
	return out
}

type schemaErrors []FieldError

func (s *schemaErrors) add(field, msg string) {
	*s = append(*s, FieldError{Field: field, Message: msg})
}

func (s schemaErrors) err() error {
	if len(s) == 0 {
		return nil
	}
	return &ValidationError{Errors: s}
}

// Validate checks every stored field of the country.
func (c *CountryModel) Validate() error {
	var errs schemaErrors
	validateName(&errs, c.Name)
	validateOfficialName(&errs, c.OfficialName)
	validateCapital(&errs, c.Capital)
	validateBorders(&errs, c.Borders)
	validateArea(&errs, c.Area)
	validatePopulation(&errs, c.Population)
	validateGini(&errs, c.Gini)
	return errs.err()
}

// Validate checks only the fields the patch supplies. Since every rule is
// per field, a valid record stays valid after a valid patch is applied.
func (p CountryPatch) Validate() error {
	var errs schemaErrors
	if p.Name != nil {
		validateName(&errs, *p.Name)
	}
	if p.OfficialName != nil {
		validateOfficialName(&errs, *p.OfficialName)
	}
	if p.Capital != nil {
		validateCapital(&errs, *p.Capital)
	}
	if p.Borders != nil {
		validateBorders(&errs, p.Borders)
	}
	if p.Area != nil {
		validateArea(&errs, *p.Area)
	}
	if p.Population != nil {
		validatePopulation(&errs, *p.Population)
	}
	if !p.UnsetGini && p.Gini != nil {
		validateGini(&errs, p.Gini)
	}
	return errs.err()
}

func validateName(errs *schemaErrors, name string) {
	if strings.TrimSpace(name) == "" {
		errs.add("name", "Country name is required.")
	}
}

func validateOfficialName(errs *schemaErrors, name string) {
	if strings.TrimSpace(name) == "" {
		errs.add("officialName", "Official name is required.")
		return
	}
	if !govalidator.StringLength(name, "3", "90") {
		errs.add("officialName", "Official name must be between 3 and 90 characters.")
	}
}

func validateCapital(errs *schemaErrors, capital string) {
	if strings.TrimSpace(capital) == "" {
		errs.add("capital", "Capital is required.")
		return
	}
	if !govalidator.StringLength(capital, "2", "90") {
		errs.add("capital", "Capital must be between 2 and 90 characters.")
	}
}

func validateBorders(errs *schemaErrors, borders StringList) {
	for _, b := range borders {
		if !BorderCodePattern.MatchString(b) {
			errs.add("borders", "Each border must be a three letter uppercase country code.")
			return
		}
	}
}

func validateArea(errs *schemaErrors, area float64) {
	if math.IsNaN(area) || math.IsInf(area, 0) || area < 0 {
		errs.add("area", "Area must be a non-negative number.")
	}
}

func validatePopulation(errs *schemaErrors, population int64) {
	if population < 0 {
		errs.add("population", "Population must be a non-negative integer.")
	}
}

func validateGini(errs *schemaErrors, gini Gini) {
	if gini == nil {
		return
	}
	if len(gini) != 1 {
		errs.add("gini", "Gini must hold exactly one year.")
		return
	}
	for year, index := range gini {
		if !giniYearPattern.MatchString(year) {
			errs.add("gini", "Gini year must be a 4 digit number.")
		}
		if math.IsNaN(index) || index < 0 || index > 100 {
			errs.add("gini", "Gini index must be a number between 0 and 100.")
		}
	}
}
