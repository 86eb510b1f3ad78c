package storefx

import (
	"go.uber.org/fx"
	"roamio/internal/infra"
)

var Module = fx.Provide(provideMemoryDB)

func provideMemoryDB() *infra.MemoryDB {
	db := infra.NewMemoryDB()
	infra.Seed(db)
	return db
}
