package accountfx

import (
	"go.uber.org/fx"
	"roamio/internal/infra"
	"roamio/internal/repositories"
	"roamio/internal/services"
	mem "roamio/pkg/memcache"
)

var Module = fx.Provide(provideAccountRepo, provideAccountService)

func provideAccountRepo(db *infra.MemoryDB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, revoked mem.RevokedTokenStore) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, revoked)
}
