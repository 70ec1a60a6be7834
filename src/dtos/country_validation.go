package dtos

import (
	"strconv"

	"github.com/asaskevich/govalidator"

	"github.com/grupo09/paises-backend/src/models"
)

type ruleCheck struct {
	ok      func(string) bool
	message string
}

// scalarRule sanitizes a submitted text field and checks it. Checks stop at
// the first failure, so each field reports at most one message.
type scalarRule struct {
	field      string
	value      func(in *CountryInput) **string
	sanitizers []func(string) string
	checks     []ruleCheck
}

type listRule struct {
	field string
	value func(in *CountryInput) []string
	check func(list []string) bool
	msg   string
}

var scalarRules = []scalarRule{
	{
		field:      "officialName",
		value:      func(in *CountryInput) **string { return &in.OfficialName },
		sanitizers: []func(string) string{trim, govalidator.Escape},
		checks: []ruleCheck{
			{notEmpty, "Official name is required."},
			{length(3, 90), "Official name must be between 3 and 90 characters."},
		},
	},
	{
		field:  "name",
		value:  func(in *CountryInput) **string { return &in.Name },
		checks: []ruleCheck{{notEmpty, "Country name is required."}},
	},
	{
		field:      "capital",
		value:      func(in *CountryInput) **string { return &in.Capital },
		sanitizers: []func(string) string{trim},
		checks: []ruleCheck{
			{notEmpty, "Capital is required."},
			{length(2, 90), "Capital must be between 2 and 90 characters."},
		},
	},
	{
		field: "giniIndex",
		value: func(in *CountryInput) **string { return &in.GiniIndex },
		checks: []ruleCheck{
			{notEmpty, "Gini index is required."},
			{floatBetween(0, 100), "Gini index must be a number between 0 and 100."},
		},
	},
	{
		field: "giniYear",
		value: func(in *CountryInput) **string { return &in.GiniYear },
		checks: []ruleCheck{
			{notEmpty, "Gini year is required."},
			{length(4, 4), "Gini year must be a 4 digit number."},
		},
	},
	{
		field: "area",
		value: func(in *CountryInput) **string { return &in.Area },
		checks: []ruleCheck{
			{notEmpty, "Area is required."},
			{nonNegativeFloat, "Area must be a non-negative number."},
		},
	},
	{
		field: "population",
		value: func(in *CountryInput) **string { return &in.Population },
		checks: []ruleCheck{
			{notEmpty, "Population is required."},
			{nonNegativeInt, "Population must be a non-negative integer."},
		},
	},
}

var listRules = []listRule{
	{
		field: "borders",
		value: func(in *CountryInput) []string { return in.Borders },
		check: func(list []string) bool {
			for _, b := range list {
				if !models.BorderCodePattern.MatchString(b) {
					return false
				}
			}
			return true
		},
		msg: "Each border must be a three letter uppercase country code.",
	},
	{
		field: "timezones",
		value: func(in *CountryInput) []string { return in.Timezones },
		// only explicitly submitted lists are checked
		check: func(list []string) bool { return list == nil || len(list) > 0 },
		msg:   "When timezones are provided there must be at least one.",
	},
}

// Validate sanitizes the input in place and returns one error per failing
// field, in rule order. An empty result means the input is valid.
func Validate(in *CountryInput) []models.FieldError {
	var errs []models.FieldError

	for _, rule := range scalarRules {
		ptr := rule.value(in)
		value := ""
		if *ptr != nil {
			value = **ptr
			for _, sanitize := range rule.sanitizers {
				value = sanitize(value)
			}
			*ptr = &value
		}
		for _, c := range rule.checks {
			if !c.ok(value) {
				errs = append(errs, models.FieldError{Field: rule.field, Message: c.message})
				break
			}
		}
	}

	for _, rule := range listRules {
		if !rule.check(rule.value(in)) {
			errs = append(errs, models.FieldError{Field: rule.field, Message: rule.msg})
		}
	}

	return errs
}

func trim(s string) string {
	return govalidator.Trim(s, "")
}

func notEmpty(s string) bool {
	return s != ""
}

func length(min, max int) func(string) bool {
	lo, hi := strconv.Itoa(min), strconv.Itoa(max)
	return func(s string) bool {
		return govalidator.StringLength(s, lo, hi)
	}
}

func floatBetween(min, max float64) func(string) bool {
	return func(s string) bool {
		if !govalidator.IsFloat(s) {
			return false
		}
		f, err := govalidator.ToFloat(s)
		return err == nil && govalidator.InRangeFloat64(f, min, max)
	}
}

func nonNegativeFloat(s string) bool {
	if !govalidator.IsFloat(s) {
		return false
	}
	f, err := govalidator.ToFloat(s)
	return err == nil && f >= 0
}

func nonNegativeInt(s string) bool {
	if !govalidator.IsInt(s) {
		return false
	}
	n, err := govalidator.ToInt(s)
	return err == nil && n >= 0
}
