package plannerfx

import (
	"math/rand"
	"time"

	"go.uber.org/fx"
	"roamio/internal/services"
)

var Module = fx.Provide(provideRand, providePlannerService)

func provideRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func providePlannerService(rng *rand.Rand) services.PlannerServiceInterface {
	return services.NewPlannerService(rng)
}
