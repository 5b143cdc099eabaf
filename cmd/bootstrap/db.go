package bootstrap

import (
	"context"

	"atlas-hotel/internal/infra/db"
	"atlas-hotel/internal/infra/filestore"
	"atlas-hotel/internal/infra/uow"
	"atlas-hotel/internal/pkg/config"
	"atlas-hotel/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewUnitOfWork,
	),
)

func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config) (shared.UnitOfWork, error) {
	store, cleanup, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return store, nil
}

// OpenStore opens the store selected by STORE_DRIVER. cleanup closes the
// Postgres pool and is a no-op for the JSON file.
func OpenStore(cfg config.Config) (shared.UnitOfWork, func(), error) {
	if cfg.Store.Driver != config.StoreDriverPostgres {
		store, err := filestore.Open(cfg.Store.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	return uow.NewPostgresUoW(pool), cleanup, nil
}
