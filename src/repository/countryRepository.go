package repository

//go:generate mockgen -source=countryRepository.go -destination=mocks/mocks.go -package=mocks CountryRepository

import (
	"context"
	"errors"

	"github.com/grupo09/paises-backend/src/models"
)

// ErrCountryNotFound is returned when no country of the tenant matches the
// identifier. Malformed identifiers also yield it.
var ErrCountryNotFound = errors.New("country not found")

// CountryRepository is the only component allowed to talk to the store.
// Every read and write is scoped to the repository's tenant tag.
type CountryRepository interface {
	FindByID(ctx context.Context, id string) (*models.CountryModel, error)
	FindAll(ctx context.Context) ([]models.CountryModel, error)
	FindByName(ctx context.Context, name string) ([]models.CountryModel, error)
	Create(ctx context.Context, country *models.CountryModel) (*models.CountryModel, error)
	Update(ctx context.Context, id string, patch models.CountryPatch) (*models.CountryModel, error)
	Delete(ctx context.Context, id string) (*models.CountryModel, error)

	// Count returns how many countries exist in the store, regardless of tenant.
	Count(ctx context.Context) (int64, error)
	// InsertMany bulk inserts seed data without schema validation.
	InsertMany(ctx context.Context, countries []models.CountryModel) error
}
