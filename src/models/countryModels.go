package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

// CountryModel is a country of the catalog. The same struct is stored as a
// MongoDB document and as a Postgres row; ID is the 24 hex character
// identifier assigned by the store.
type CountryModel struct {
	ID           string     `json:"id" bson:"-" gorm:"column:id;primaryKey;type:char(24)"`
	Name         string     `json:"name" bson:"name" gorm:"column:name;type:varchar(255);not null"`
	OfficialName string     `json:"officialName" bson:"officialName" gorm:"column:official_name;type:varchar(255);not null"`
	Capital      string     `json:"capital" bson:"capital" gorm:"column:capital;type:varchar(255);not null"`
	Borders      StringList `json:"borders" bson:"borders" gorm:"column:borders;type:jsonb;not null"`
	Area         float64    `json:"area" bson:"area" gorm:"column:area;not null"`
	Population   int64      `json:"population" bson:"population" gorm:"column:population;not null"`
	Gini         Gini       `json:"gini,omitempty" bson:"gini,omitempty" gorm:"column:gini;type:jsonb"`
	Timezones    StringList `json:"timezones" bson:"timezones" gorm:"column:timezones;type:jsonb;not null"`
	Creator      string     `json:"creator" bson:"creator" gorm:"column:creator;type:varchar(100);not null;index"`
}

func (CountryModel) TableName() string {
	return "countries"
}

// Normalize replaces nil sequences with empty ones so they are stored as
// arrays and never as null.
func (c *CountryModel) Normalize() {
	if c.Borders == nil {
		c.Borders = StringList{}
	}
	if c.Timezones == nil {
		c.Timezones = StringList{}
	}
	if len(c.Gini) == 0 {
		c.Gini = nil
	}
}

// CountryPatch describes a partial update. Nil fields are left untouched.
// UnsetGini removes the gini field entirely and wins over Gini.
type CountryPatch struct {
	Name         *string
	OfficialName *string
	Capital      *string
	Borders      StringList
	Area         *float64
	Population   *int64
	Gini         Gini
	Timezones    StringList
	UnsetGini    bool
}

// IsEmpty reports whether applying the patch would change nothing.
func (p CountryPatch) IsEmpty() bool {
	return p.Name == nil && p.OfficialName == nil && p.Capital == nil &&
		p.Borders == nil && p.Area == nil && p.Population == nil &&
		p.Gini == nil && p.Timezones == nil && !p.UnsetGini
}

// Apply merges the patch into c.
func (p CountryPatch) Apply(c *CountryModel) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.OfficialName != nil {
		c.OfficialName = *p.OfficialName
	}
	if p.Capital != nil {
		c.Capital = *p.Capital
	}
	if p.Borders != nil {
		c.Borders = p.Borders
	}
	if p.Area != nil {
		c.Area = *p.Area
	}
	if p.Population != nil {
		c.Population = *p.Population
	}
	if p.Timezones != nil {
		c.Timezones = p.Timezones
	}
	if p.UnsetGini {
		c.Gini = nil
	} else if p.Gini != nil {
		c.Gini = p.Gini
	}
}

// StringList is an ordered list of strings persisted as a JSON array in
// relational stores.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	out := StringList{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*l = out
	return nil
}

// Gini maps a four digit year to the Gini index measured that year.
type Gini map[string]float64

// NewGini builds a single entry Gini mapping.
func NewGini(year string, index float64) Gini {
	return Gini{year: index}
}

// Latest returns the entry with the most recent year.
func (g Gini) Latest() (year string, index float64, ok bool) {
	if len(g) == 0 {
		return "", 0, false
	}
	years := make([]string, 0, len(g))
	for y := range g {
		years = append(years, y)
	}
	sort.Strings(years)
	year = years[len(years)-1]
	return year, g[year], true
}

func (g Gini) Value() (driver.Value, error) {
	if g == nil {
		return nil, nil
	}
	b, err := json.Marshal(map[string]float64(g))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (g *Gini) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*g = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Gini", src)
	}
	out := Gini{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	if len(out) == 0 {
		out = nil
	}
	*g = out
	return nil
}
