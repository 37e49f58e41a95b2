package components

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"room-reservation/internal/infra/db"
	"room-reservation/internal/infra/memory"
	"room-reservation/internal/infra/readstore"
	"room-reservation/internal/infra/repository"
	"room-reservation/internal/infra/seed"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/infra/uow"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"
	"room-reservation/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
	fx.Invoke(SeedDemoData),
)

// Persistence is the storage backend selected by DB_DRIVER.
type Persistence struct {
	fx.Out

	UoW          shared.UnitOfWork
	Reservations queries.ReservationReadStore
	Rooms        queries.RoomReadStore
	Users        queries.UserReadStore
	Catalog      seed.Target
}

func NewPersistence(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Persistence, error) {
	switch cfg.DB.Driver {
	case config.DriverMemory:
		logger.Warn("インメモリストアで起動します。再起動でデータは失われます")
		return newMemoryPersistence(), nil
	case config.DriverPostgres:
		pool, err := NewDB(lc, cfg, logger)
		if err != nil {
			return Persistence{}, err
		}
		return NewPostgresPersistence(pool), nil
	default:
		return Persistence{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}
}

func newMemoryPersistence() Persistence {
	store := memory.NewStore()
	return Persistence{
		UoW:          store,
		Reservations: memory.NewReservationReadStore(store),
		Rooms:        memory.NewRoomReadStore(store),
		Users:        memory.NewUserReadStore(store),
		Catalog:      store,
	}
}

func NewPostgresPersistence(pool *pgxpool.Pool) Persistence {
	q := NewSQLQueries(pool)
	dbtx := NewDBTX(pool)
	return Persistence{
		UoW:          uow.NewPostgresUoW(pool, q),
		Reservations: readstore.NewReservationReadStore(q, dbtx),
		Rooms:        readstore.NewRoomReadStore(q, dbtx),
		Users:        readstore.NewUserReadStore(q, dbtx),
		Catalog:      repository.NewCatalogRepository(q, dbtx),
	}
}

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := db.ApplyMigrations(ctx, pool, migrations.FS); err != nil {
			cleanup()
			return nil, err
		}
		logger.Info("マイグレーションを適用しました")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func SeedDemoData(lc fx.Lifecycle, cfg config.Config, target seed.Target, logger *slog.Logger) {
	if !cfg.App.SeedDemoData {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return seed.Demo(ctx, target, cfg.App.DemoPassword, logger)
		},
	})
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
