package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	excelize "github.com/xuri/excelize/v2"

	"github.com/grupo09/paises-backend/src/dtos"
	"github.com/grupo09/paises-backend/src/models"
)

// CountrySheet is the worksheet used by both export and import.
const CountrySheet = "Paises"

var countryColumns = []string{
	"Name", "Official name", "Capital", "Area", "Population",
	"Borders", "Timezones", "Gini year", "Gini index",
}

// ImportResult summarizes a spreadsheet import. Failed rows do not stop it.
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

// ExportCountriesToExcel writes the whole catalog as an xlsx workbook
func (s *CountryService) ExportCountriesToExcel(ctx context.Context, w io.Writer) error {
	countries, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", CountrySheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if err := f.SetSheetRow(CountrySheet, "A1", &countryColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, c := range countries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		giniYear, giniIndex := "", ""
		if year, index, ok := c.Gini.Latest(); ok {
			giniYear = year
			giniIndex = strconv.FormatFloat(index, 'f', -1, 64)
		}
		row := []interface{}{
			c.Name,
			html.UnescapeString(c.OfficialName),
			c.Capital,
			c.Area,
			c.Population,
			strings.Join(c.Borders, ", "),
			strings.Join(c.Timezones, ", "),
			giniYear,
			giniIndex,
		}
		if err := f.SetSheetRow(CountrySheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	return f.Write(w)
}

// ImportCountriesFromExcel creates one country per data row of the workbook.
// Rows go through the same sanitizing and validation as the create form.
func (s *CountryService) ImportCountriesFromExcel(ctx context.Context, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(CountrySheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %s: %w", CountrySheet, err)
	}

	result := &ImportResult{Errors: []string{}}

	for i, row := range rows {
		// header
		if i == 0 {
			continue
		}
		if isEmptyRow(row) {
			continue
		}

		input := rowToInput(row)
		if errs := dtos.Validate(&input); len(errs) > 0 {
			result.Errors = append(result.Errors, rowError(i+1, &models.ValidationError{Errors: errs}))
			continue
		}
		country, err := input.ToCountry()
		if err != nil {
			result.Errors = append(result.Errors, rowError(i+1, err))
			continue
		}
		if _, err := s.repo.Create(ctx, &country); err != nil {
			result.Errors = append(result.Errors, rowError(i+1, err))
			continue
		}
		result.Imported++
	}

	return result, nil
}

func rowToInput(row []string) dtos.CountryInput {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	return dtos.CountryInput{
		Name:         dtos.StringPtr(cell(0)),
		OfficialName: dtos.StringPtr(cell(1)),
		Capital:      dtos.StringPtr(cell(2)),
		Area:         dtos.StringPtr(cell(3)),
		Population:   dtos.StringPtr(cell(4)),
		Borders:      dtos.SplitList(cell(5)),
		Timezones:    optionalList(cell(6)),
		GiniYear:     dtos.StringPtr(cell(7)),
		GiniIndex:    dtos.StringPtr(cell(8)),
	}
}

// optionalList treats an empty cell as "not provided".
func optionalList(text string) []string {
	if text == "" {
		return nil
	}
	return dtos.SplitList(text)
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func rowError(row int, err error) string {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("Row %d: %s", row, strings.Join(verr.Messages(), " "))
	}
	return fmt.Sprintf("Row %d: %v", row, err)
}
