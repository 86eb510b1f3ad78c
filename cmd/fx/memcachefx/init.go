package memcachefx

import (
	"go.uber.org/fx"
	mem "roamio/pkg/memcache"
)

var Module = fx.Provide(provideRevokedTokenStore)

func provideRevokedTokenStore() mem.RevokedTokenStore {
	return mem.NewRevokedTokens()
}
