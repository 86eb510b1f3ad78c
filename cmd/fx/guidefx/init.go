package guidefx

import (
	"go.uber.org/fx"
	"roamio/internal/infra"
	"roamio/internal/repositories"
	"roamio/internal/services"
)

var Module = fx.Provide(provideGuideRepo, provideGuideService)

func provideGuideRepo(db *infra.MemoryDB) repositories.GuideRepository {
	return repositories.NewGuideRepository(db)
}

func provideGuideService(guideRepo repositories.GuideRepository) services.GuideServiceInterface {
	return services.NewGuideService(guideRepo)
}
