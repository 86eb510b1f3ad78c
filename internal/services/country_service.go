package services

import (
	"context"

	"roamio/internal/models/db_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

type CountryServiceInterface interface {
	GetCountries(ctx context.Context) ([]db_models.Country, error)
	GetCountryByCode(ctx context.Context, code string) (*db_models.Country, error)
}

type CountryService struct {
	countryRepo repositories.CountryRepository
}

func NewCountryService(countryRepo repositories.CountryRepository) CountryServiceInterface {
	return &CountryService{countryRepo: countryRepo}
}

func (s *CountryService) GetCountries(ctx context.Context) ([]db_models.Country, error) {
	return s.countryRepo.GetAll(ctx)
}

func (s *CountryService) GetCountryByCode(ctx context.Context, code string) (*db_models.Country, error) {
	country, err := s.countryRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, utils.ErrCountryNotFound
	}
	return country, nil
}
