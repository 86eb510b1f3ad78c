package catalogfx

import (
	"go.uber.org/fx"
	"roamio/internal/infra"
	"roamio/internal/repositories"
	"roamio/internal/services"
)

var Module = fx.Provide(
	provideCountryRepo, provideCountryService,
	provideDestinationRepo, provideDestinationService,
	provideHotelRepo, provideHotelService,
	provideAttractionRepo, provideAttractionService,
)

func provideCountryRepo(db *infra.MemoryDB) repositories.CountryRepository {
	return repositories.NewCountryRepository(db)
}

func provideCountryService(countryRepo repositories.CountryRepository) services.CountryServiceInterface {
	return services.NewCountryService(countryRepo)
}

func provideDestinationRepo(db *infra.MemoryDB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideDestinationService(destinationRepo repositories.DestinationRepository) services.DestinationServiceInterface {
	return services.NewDestinationService(destinationRepo)
}

func provideHotelRepo(db *infra.MemoryDB) repositories.HotelRepository {
	return repositories.NewHotelRepository(db)
}

func provideHotelService(hotelRepo repositories.HotelRepository, destinationRepo repositories.DestinationRepository) services.HotelServiceInterface {
	return services.NewHotelService(hotelRepo, destinationRepo)
}

func provideAttractionRepo(db *infra.MemoryDB) repositories.AttractionRepository {
	return repositories.NewAttractionRepository(db)
}

func provideAttractionService(attractionRepo repositories.AttractionRepository, destinationRepo repositories.DestinationRepository) services.AttractionServiceInterface {
	return services.NewAttractionService(attractionRepo, destinationRepo)
}
