package repository

import (
	"context"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	"room-reservation/internal/infra/repository/converter"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	LockRoom(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) error
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	UpdateReservationSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationSlotParams) (int64, error)
	SoftDeleteReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.SoftDeleteReservationParams) (int64, error)
}

// ReservationRepository is bound to one transaction.
type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// LockRoom takes a transaction-scoped advisory lock keyed by the room id.
func (r *ReservationRepository) LockRoom(ctx context.Context, roomID uuid.UUID) error {
	if err := r.queries.LockRoom(ctx, r.db, roomID); err != nil {
		return infra.WrapRepoErr("failed to lock room", err)
	}
	return nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservationSlot(ctx, r.db, converter.ReservationToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "active reservation not found")
	}
	return nil
}

func (r *ReservationRepository) SoftDelete(ctx context.Context, res *reservation.Reservation) error {
	cancelledAt := res.CancelledAt()
	if cancelledAt == nil {
		return infra.NewRepoErr(infra.KindDBFailure, "reservation has no cancellation time")
	}

	affected, err := r.queries.SoftDeleteReservation(ctx, r.db, sqlc.SoftDeleteReservationParams{
		ID:        res.ID(),
		DeletedAt: pgconv.TimeToPgtype(*cancelledAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to cancel reservation", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "active reservation not found")
	}
	return nil
}
