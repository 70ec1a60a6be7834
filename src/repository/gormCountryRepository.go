package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/grupo09/paises-backend/src/models"
)

// GormCountryRepository stores countries in a relational table. Identifiers
// are generated in the same 24 hex character format the document store uses,
// so the HTTP layer is unaware of the backend.
type GormCountryRepository struct {
	db     *gorm.DB
	table  string
	tenant string
}

// NewGormCountryRepository creates a repository over the given table
func NewGormCountryRepository(db *gorm.DB, table, tenant string) *GormCountryRepository {
	return &GormCountryRepository{db: db, table: table, tenant: tenant}
}

// Migrate creates or updates the countries table
func (r *GormCountryRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Table(r.table).AutoMigrate(&models.CountryModel{}); err != nil {
		return fmt.Errorf("migrating countries table: %w", err)
	}
	return nil
}

func (r *GormCountryRepository) scoped(tx *gorm.DB) *gorm.DB {
	return tx.Table(r.table).Where("creator = ?", r.tenant)
}

// FindByID retrieves a country by its identifier
func (r *GormCountryRepository) FindByID(ctx context.Context, id string) (*models.CountryModel, error) {
	if !primitive.IsValidObjectID(id) {
		return nil, ErrCountryNotFound
	}
	var country models.CountryModel
	if err := r.scoped(r.db.WithContext(ctx)).Where("id = ?", id).First(&country).Error; err != nil {
		return nil, recordNotFoundOr(err)
	}
	return &country, nil
}

// FindAll retrieves every country of the tenant
func (r *GormCountryRepository) FindAll(ctx context.Context) ([]models.CountryModel, error) {
	countries := []models.CountryModel{}
	if err := r.scoped(r.db.WithContext(ctx)).Order("id").Find(&countries).Error; err != nil {
		return nil, fmt.Errorf("finding countries: %w", err)
	}
	return countries, nil
}

// FindByName retrieves the countries whose name contains the given text, ignoring case
func (r *GormCountryRepository) FindByName(ctx context.Context, name string) ([]models.CountryModel, error) {
	countries := []models.CountryModel{}
	err := r.scoped(r.db.WithContext(ctx)).
		Where("name ILIKE ?", "%"+escapeLike(name)+"%").
		Order("id").
		Find(&countries).Error
	if err != nil {
		return nil, fmt.Errorf("searching countries: %w", err)
	}
	return countries, nil
}

// Create validates and stores a new country
func (r *GormCountryRepository) Create(ctx context.Context, country *models.CountryModel) (*models.CountryModel, error) {
	created := *country
	created.ID = primitive.NewObjectID().Hex()
	created.Creator = r.tenant
	created.Normalize()
	if err := created.Validate(); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Table(r.table).Create(&created).Error; err != nil {
		return nil, fmt.Errorf("inserting country: %w", err)
	}
	return &created, nil
}

// Update merges the patch into the stored country, validates the result and saves it
func (r *GormCountryRepository) Update(ctx context.Context, id string, patch models.CountryPatch) (*models.CountryModel, error) {
	if !primitive.IsValidObjectID(id) {
		return nil, ErrCountryNotFound
	}

	var country models.CountryModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := r.scoped(tx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&country).Error
		if err != nil {
			return recordNotFoundOr(err)
		}

		patch.Apply(&country)
		country.Normalize()
		if err := country.Validate(); err != nil {
			return err
		}
		if err := tx.Table(r.table).Save(&country).Error; err != nil {
			return fmt.Errorf("saving country: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// Delete removes the matching country and returns it
func (r *GormCountryRepository) Delete(ctx context.Context, id string) (*models.CountryModel, error) {
	if !primitive.IsValidObjectID(id) {
		return nil, ErrCountryNotFound
	}

	var country models.CountryModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.scoped(tx).Where("id = ?", id).First(&country).Error; err != nil {
			return recordNotFoundOr(err)
		}
		res := r.scoped(tx).Where("id = ?", id).Delete(&models.CountryModel{})
		if res.Error != nil {
			return fmt.Errorf("deleting country: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrCountryNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// Count returns the number of rows in the table
func (r *GormCountryRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Table(r.table).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting countries: %w", err)
	}
	return n, nil
}

// InsertMany stores the given countries in batches
func (r *GormCountryRepository) InsertMany(ctx context.Context, countries []models.CountryModel) error {
	if len(countries) == 0 {
		return nil
	}
	rows := make([]models.CountryModel, 0, len(countries))
	for _, c := range countries {
		c.ID = primitive.NewObjectID().Hex()
		c.Creator = r.tenant
		c.Normalize()
		rows = append(rows, c)
	}
	if err := r.db.WithContext(ctx).Table(r.table).CreateInBatches(&rows, 100).Error; err != nil {
		return fmt.Errorf("inserting countries: %w", err)
	}
	return nil
}

func recordNotFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCountryNotFound
	}
	return fmt.Errorf("country store: %w", err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
