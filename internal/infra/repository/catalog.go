package repository

import (
	"context"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
)

type CatalogWriteQueries interface {
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) error
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
}

// CatalogRepository inserts reference data (rooms and accounts), which has
// no write use case of its own.
type CatalogRepository struct {
	queries CatalogWriteQueries
	db      sqlc.DBTX
}

func NewCatalogRepository(queries CatalogWriteQueries, db sqlc.DBTX) *CatalogRepository {
	return &CatalogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogRepository) AddRoom(ctx context.Context, rm *room.Room) error {
	area, err := pgconv.Float64ToNumeric(rm.Area())
	if err != nil {
		return infra.WrapRepoErr("failed to convert room area", err, infra.KindDBFailure)
	}

	err = r.queries.CreateRoom(ctx, r.db, sqlc.CreateRoomParams{
		ID:       rm.ID(),
		Name:     rm.Name(),
		Capacity: int32(rm.Capacity()),
		Area:     area,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

func (r *CatalogRepository) AddUser(ctx context.Context, u *user.User) error {
	err := r.queries.CreateUser(ctx, r.db, sqlc.CreateUserParams{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}
