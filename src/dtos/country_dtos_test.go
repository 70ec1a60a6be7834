package dtos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo09/paises-backend/src/models"
)

func validInput() CountryInput {
	return CountryInput{
		Name:         StringPtr("Costa Rica"),
		OfficialName: StringPtr("  Republic of Costa Rica "),
		Capital:      StringPtr(" San José "),
		Area:         StringPtr("51100"),
		Population:   StringPtr("5094114"),
		Borders:      SplitList("NIC, PAN"),
		Timezones:    SplitList("UTC-06:00"),
		GiniIndex:    StringPtr("30"),
		GiniYear:     StringPtr("2020"),
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"USA", "MEX"}, SplitList("USA, MEX"))
	assert.Equal(t, []string{"USA", "MEX"}, SplitList(" USA,, MEX ,"))
	assert.Equal(t, []string{}, SplitList(""))
	assert.Equal(t, []string{}, SplitList(" , "))
}

func TestAssembleGini(t *testing.T) {
	gini, ok := AssembleGini(StringPtr("30"), StringPtr("2020"))
	require.True(t, ok)
	assert.Equal(t, models.Gini{"2020": 30}, gini)

	_, ok = AssembleGini(StringPtr("30"), nil)
	assert.False(t, ok)
	_, ok = AssembleGini(StringPtr(""), StringPtr("2020"))
	assert.False(t, ok)
	_, ok = AssembleGini(StringPtr("abc"), StringPtr("2020"))
	assert.False(t, ok)
}

func TestToCountry(t *testing.T) {
	in := validInput()
	require.Empty(t, Validate(&in))

	c, err := in.ToCountry()
	require.NoError(t, err)
	assert.Equal(t, "Costa Rica", c.Name)
	assert.Equal(t, "Republic of Costa Rica", c.OfficialName)
	assert.Equal(t, "San José", c.Capital)
	assert.Equal(t, 51100.0, c.Area)
	assert.Equal(t, int64(5094114), c.Population)
	assert.Equal(t, models.StringList{"NIC", "PAN"}, c.Borders)
	assert.Equal(t, models.Gini{"2020": 30}, c.Gini)
}

func TestToCountryDefaults(t *testing.T) {
	in := validInput()
	in.Borders = nil
	in.Timezones = nil
	in.GiniIndex = nil

	c, err := in.ToCountry()
	require.NoError(t, err)
	assert.Equal(t, models.StringList{}, c.Borders)
	assert.Equal(t, models.StringList{}, c.Timezones)
	assert.Nil(t, c.Gini)
}

func TestToCountryRejectsUnparsableNumbers(t *testing.T) {
	in := validInput()
	in.Population = StringPtr("many")
	_, err := in.ToCountry()
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "population", verr.Errors[0].Field)
}

func TestToPatch(t *testing.T) {
	t.Run("with gini", func(t *testing.T) {
		in := validInput()
		in.Borders = nil
		patch, err := in.ToPatch()
		require.NoError(t, err)
		assert.Equal(t, models.Gini{"2020": 30}, patch.Gini)
		assert.False(t, patch.UnsetGini)
		assert.Equal(t, models.StringList{}, patch.Borders)
		require.NotNil(t, patch.Area)
		assert.Equal(t, 51100.0, *patch.Area)
	})

	t.Run("blank gini unsets it", func(t *testing.T) {
		in := validInput()
		in.GiniIndex = StringPtr("")
		in.GiniYear = StringPtr("")
		patch, err := in.ToPatch()
		require.NoError(t, err)
		assert.True(t, patch.UnsetGini)
		assert.Nil(t, patch.Gini)
	})

	t.Run("absent scalars stay untouched", func(t *testing.T) {
		patch, err := CountryInput{Capital: StringPtr("Lima")}.ToPatch()
		require.NoError(t, err)
		assert.Nil(t, patch.Name)
		assert.Nil(t, patch.Area)
		assert.Equal(t, "Lima", *patch.Capital)
	})
}

func TestValidate(t *testing.T) {
	fields := func(errs []models.FieldError) []string {
		out := make([]string, 0, len(errs))
		for _, e := range errs {
			out = append(out, e.Field)
		}
		return out
	}

	t.Run("empty input reports every required field once", func(t *testing.T) {
		in := CountryInput{}
		errs := Validate(&in)
		assert.Equal(t, []string{"officialName", "name", "capital", "giniIndex", "giniYear", "area", "population"}, fields(errs))
	})

	t.Run("sanitizes official name and capital", func(t *testing.T) {
		in := validInput()
		in.OfficialName = StringPtr("  Trinidad & Tobago ")
		require.Empty(t, Validate(&in))
		assert.Equal(t, "Trinidad &amp; Tobago", *in.OfficialName)
		assert.Equal(t, "San José", *in.Capital)
	})

	tests := []struct {
		name   string
		mutate func(in *CountryInput)
		field  string
	}{
		{"official name too short", func(in *CountryInput) { in.OfficialName = StringPtr(" ab ") }, "officialName"},
		{"capital too short", func(in *CountryInput) { in.Capital = StringPtr("X") }, "capital"},
		{"lowercase border", func(in *CountryInput) { in.Borders = SplitList("usa") }, "borders"},
		{"four letter border", func(in *CountryInput) { in.Borders = []string{"USAA"} }, "borders"},
		{"gini over 100", func(in *CountryInput) { in.GiniIndex = StringPtr("100.5") }, "giniIndex"},
		{"gini not a number", func(in *CountryInput) { in.GiniIndex = StringPtr("high") }, "giniIndex"},
		{"gini year length", func(in *CountryInput) { in.GiniYear = StringPtr("20") }, "giniYear"},
		{"timezones given but empty", func(in *CountryInput) { in.Timezones = SplitList(" , ") }, "timezones"},
		{"negative area", func(in *CountryInput) { in.Area = StringPtr("-1") }, "area"},
		{"fractional population", func(in *CountryInput) { in.Population = StringPtr("1.5") }, "population"},
		{"negative population", func(in *CountryInput) { in.Population = StringPtr("-3") }, "population"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			assert.Equal(t, []string{tt.field}, fields(Validate(&in)))
		})
	}

	t.Run("absent timezones and borders are fine", func(t *testing.T) {
		in := validInput()
		in.Timezones = nil
		in.Borders = nil
		assert.Empty(t, Validate(&in))
	})
}
