package readstore

import (
	"context"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	"room-reservation/internal/infra/repository/converter"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	FindReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindReservationViewByIDRow, error)
	ListUpcomingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingReservationsParams) ([]sqlc.ListUpcomingReservationsRow, error)
	ListCanceledOrPastReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCanceledOrPastReservationsParams) ([]sqlc.ListCanceledOrPastReservationsRow, error)
	FindActiveReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	ListActiveReservationsByRoom(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) ([]sqlc.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.FindReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return rowToReservationView(row), nil
}

func (r *ReservationReadStore) ListUpcoming(ctx context.Context, now time.Time, ownerID *uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListUpcomingReservations(ctx, r.db, sqlc.ListUpcomingReservationsParams{
		Now:     pgconv.TimeToPgtype(now),
		OwnerID: pgconv.UUIDPtrToPgtype(ownerID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming reservations", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, rowToReservationView(sqlc.FindReservationViewByIDRow(row)))
	}
	return views, nil
}

func (r *ReservationReadStore) ListCanceledOrPast(ctx context.Context, now time.Time, ownerID *uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListCanceledOrPastReservations(ctx, r.db, sqlc.ListCanceledOrPastReservationsParams{
		Now:     pgconv.TimeToPgtype(now),
		OwnerID: pgconv.UUIDPtrToPgtype(ownerID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cancelled or past reservations", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, rowToReservationView(sqlc.FindReservationViewByIDRow(row)))
	}
	return views, nil
}

// ActiveByID loads the aggregate for a write; cancelled rows are not found.
func (r *ReservationReadStore) ActiveByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.FindActiveReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active reservation", err)
	}

	res, err := converter.ReservationFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationReadStore) ActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListActiveReservationsByRoom(ctx, r.db, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations of room", err)
	}

	result := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationFromInfra(row)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
		}
		result = append(result, res)
	}
	return result, nil
}

func rowToReservationView(row sqlc.FindReservationViewByIDRow) *queries.ReservationView {
	status := reservation.StatusActive
	cancelledAt := pgconv.TimePtrFromPgtype(row.DeletedAt)
	if cancelledAt != nil {
		status = reservation.StatusCancelled
	}

	return &queries.ReservationView{
		ID:          row.ID,
		RoomID:      row.RoomID,
		RoomName:    row.RoomName,
		UserID:      row.UserID,
		UserName:    row.UserName,
		UserEmail:   row.UserEmail,
		StartTime:   pgconv.TimeFromPgtype(row.StartTime),
		EndTime:     pgconv.TimeFromPgtype(row.EndTime),
		Status:      string(status),
		CancelledAt: cancelledAt,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
