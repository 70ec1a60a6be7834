package services

import (
	"context"

	"github.com/grupo09/paises-backend/src/models"
	"github.com/grupo09/paises-backend/src/repository"
)

type CountryService struct {
	repo repository.CountryRepository
}

// NewCountryService creates a new instance of CountryService
func NewCountryService(repo repository.CountryRepository) *CountryService {
	return &CountryService{repo: repo}
}

// GetAllCountries retrieves all country records of the catalog
func (s *CountryService) GetAllCountries(ctx context.Context) ([]models.CountryModel, error) {
	return s.repo.FindAll(ctx)
}

// GetCountryByID retrieves a country record by ID
func (s *CountryService) GetCountryByID(ctx context.Context, id string) (*models.CountryModel, error) {
	return s.repo.FindByID(ctx, id)
}

// SearchCountriesByName retrieves the countries whose name contains the given text
func (s *CountryService) SearchCountriesByName(ctx context.Context, name string) ([]models.CountryModel, error) {
	return s.repo.FindByName(ctx, name)
}

// CreateCountry creates a new country record
func (s *CountryService) CreateCountry(ctx context.Context, country *models.CountryModel) (*models.CountryModel, error) {
	return s.repo.Create(ctx, country)
}

// UpdateCountry updates an existing country record
func (s *CountryService) UpdateCountry(ctx context.Context, id string, patch models.CountryPatch) (*models.CountryModel, error) {
	return s.repo.Update(ctx, id, patch)
}

// DeleteCountry deletes a country record by ID and returns it
func (s *CountryService) DeleteCountry(ctx context.Context, id string) (*models.CountryModel, error) {
	return s.repo.Delete(ctx, id)
}
