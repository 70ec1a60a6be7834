package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/grupo09/paises-backend/src/models"
)

func TestPatchUpdate(t *testing.T) {
	name := "Uruguay"
	area := 181034.0

	t.Run("sets supplied fields and unsets gini", func(t *testing.T) {
		update := patchUpdate(models.CountryPatch{
			Name:      &name,
			Area:      &area,
			Borders:   models.StringList{},
			Gini:      models.NewGini("2020", 40),
			UnsetGini: true,
		})
		assert.Equal(t, bson.M{
			"$set":   bson.M{"name": name, "area": area, "borders": models.StringList{}},
			"$unset": bson.M{"gini": ""},
		}, update)
	})

	t.Run("sets gini when supplied", func(t *testing.T) {
		update := patchUpdate(models.CountryPatch{Gini: models.NewGini("2020", 40)})
		assert.Equal(t, bson.M{"$set": bson.M{"gini": models.NewGini("2020", 40)}}, update)
	})
}

func TestCountryDocumentToModel(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := countryDocument{ID: oid, CountryModel: models.CountryModel{Name: "Peru"}}
	c := doc.toModel()
	assert.Equal(t, oid.Hex(), c.ID)
	assert.Equal(t, "Peru", c.Name)
}

func TestCountryDocumentOmitsModelID(t *testing.T) {
	raw, err := bson.Marshal(countryDocument{CountryModel: models.CountryModel{ID: "ignored", Name: "Peru"}})
	assert.NoError(t, err)

	var m bson.M
	assert.NoError(t, bson.Unmarshal(raw, &m))
	assert.NotContains(t, m, "_id")
	assert.NotContains(t, m, "gini")
	assert.Equal(t, "Peru", m["name"])
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%\_a\\b`, escapeLike(`100%_a\b`))
	assert.Equal(t, "rica", escapeLike("rica"))
}
