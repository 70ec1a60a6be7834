package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/grupo09/paises-backend/src/models"
)

// countryDocument adds the store-assigned _id to the stored fields.
type countryDocument struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	models.CountryModel `bson:",inline"`
}

func (d countryDocument) toModel() models.CountryModel {
	c := d.CountryModel
	c.ID = d.ID.Hex()
	return c
}

type MongoCountryRepository struct {
	collection *mongo.Collection
	tenant     string
}

// NewMongoCountryRepository creates a repository over the given collection
func NewMongoCountryRepository(db *mongo.Database, collection, tenant string) *MongoCountryRepository {
	return &MongoCountryRepository{collection: db.Collection(collection), tenant: tenant}
}

// EnsureIndexes creates the index backing tenant scoped listing and search
func (r *MongoCountryRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "creator", Value: 1}, {Key: "name", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("creating countries index: %w", err)
	}
	return nil
}

func (r *MongoCountryRepository) byID(id string) (bson.M, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false
	}
	return bson.M{"_id": oid, "creator": r.tenant}, true
}

// FindByID retrieves a country by its identifier
func (r *MongoCountryRepository) FindByID(ctx context.Context, id string) (*models.CountryModel, error) {
	filter, ok := r.byID(id)
	if !ok {
		return nil, ErrCountryNotFound
	}
	var doc countryDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, notFoundOr(err)
	}
	country := doc.toModel()
	return &country, nil
}

// FindAll retrieves every country of the tenant
func (r *MongoCountryRepository) FindAll(ctx context.Context) ([]models.CountryModel, error) {
	return r.find(ctx, bson.M{"creator": r.tenant})
}

// FindByName retrieves the countries whose name contains the given text, ignoring case
func (r *MongoCountryRepository) FindByName(ctx context.Context, name string) ([]models.CountryModel, error) {
	return r.find(ctx, bson.M{
		"name":    primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"},
		"creator": r.tenant,
	})
}

func (r *MongoCountryRepository) find(ctx context.Context, filter bson.M) ([]models.CountryModel, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("finding countries: %w", err)
	}
	var docs []countryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding countries: %w", err)
	}
	countries := make([]models.CountryModel, 0, len(docs))
	for _, d := range docs {
		countries = append(countries, d.toModel())
	}
	return countries, nil
}

// Create validates and stores a new country
func (r *MongoCountryRepository) Create(ctx context.Context, country *models.CountryModel) (*models.CountryModel, error) {
	created := *country
	created.ID = ""
	created.Creator = r.tenant
	created.Normalize()
	if err := created.Validate(); err != nil {
		return nil, err
	}

	res, err := r.collection.InsertOne(ctx, countryDocument{CountryModel: created})
	if err != nil {
		return nil, fmt.Errorf("inserting country: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	created.ID = oid.Hex()
	return &created, nil
}

// Update applies the patch to the matching country and returns the result
func (r *MongoCountryRepository) Update(ctx context.Context, id string, patch models.CountryPatch) (*models.CountryModel, error) {
	filter, ok := r.byID(id)
	if !ok {
		return nil, ErrCountryNotFound
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	var doc countryDocument
	err := r.collection.FindOneAndUpdate(ctx, filter, patchUpdate(patch),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, notFoundOr(err)
	}
	country := doc.toModel()
	return &country, nil
}

func patchUpdate(p models.CountryPatch) bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.OfficialName != nil {
		set["officialName"] = *p.OfficialName
	}
	if p.Capital != nil {
		set["capital"] = *p.Capital
	}
	if p.Borders != nil {
		set["borders"] = p.Borders
	}
	if p.Area != nil {
		set["area"] = *p.Area
	}
	if p.Population != nil {
		set["population"] = *p.Population
	}
	if p.Timezones != nil {
		set["timezones"] = p.Timezones
	}
	if !p.UnsetGini && p.Gini != nil {
		set["gini"] = p.Gini
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if p.UnsetGini {
		update["$unset"] = bson.M{"gini": ""}
	}
	return update
}

// Delete removes the matching country and returns it
func (r *MongoCountryRepository) Delete(ctx context.Context, id string) (*models.CountryModel, error) {
	filter, ok := r.byID(id)
	if !ok {
		return nil, ErrCountryNotFound
	}
	var doc countryDocument
	if err := r.collection.FindOneAndDelete(ctx, filter).Decode(&doc); err != nil {
		return nil, notFoundOr(err)
	}
	country := doc.toModel()
	return &country, nil
}

// Count returns the number of documents in the collection
func (r *MongoCountryRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("counting countries: %w", err)
	}
	return n, nil
}

// InsertMany stores the given countries in a single bulk write
func (r *MongoCountryRepository) InsertMany(ctx context.Context, countries []models.CountryModel) error {
	if len(countries) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(countries))
	for _, c := range countries {
		c.ID = ""
		c.Creator = r.tenant
		c.Normalize()
		docs = append(docs, countryDocument{CountryModel: c})
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("inserting countries: %w", err)
	}
	return nil
}

func notFoundOr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrCountryNotFound
	}
	return fmt.Errorf("country store: %w", err)
}
