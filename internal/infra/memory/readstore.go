package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	_ queries.ReservationReadStore = (*ReservationReadStore)(nil)
	_ queries.RoomReadStore        = (*RoomReadStore)(nil)
	_ queries.UserReadStore        = (*UserReadStore)(nil)
)

type ReservationReadStore struct {
	store *Store
}

func NewReservationReadStore(store *Store) *ReservationReadStore {
	return &ReservationReadStore{store: store}
}

func (r *ReservationReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	data := r.store.snapshot()
	rec, ok := data.reservations[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return toReservationView(data, rec), nil
}

func (r *ReservationReadStore) ListUpcoming(_ context.Context, now time.Time, ownerID *uuid.UUID) ([]*queries.ReservationView, error) {
	return r.list(ownerID, func(rec reservationRecord) bool {
		return rec.deletedAt == nil && !rec.end.Before(now)
	}), nil
}

func (r *ReservationReadStore) ListCanceledOrPast(_ context.Context, now time.Time, ownerID *uuid.UUID) ([]*queries.ReservationView, error) {
	return r.list(ownerID, func(rec reservationRecord) bool {
		return rec.deletedAt != nil || rec.end.Before(now)
	}), nil
}

func (r *ReservationReadStore) list(ownerID *uuid.UUID, keep func(reservationRecord) bool) []*queries.ReservationView {
	data := r.store.snapshot()

	var matched []reservationRecord
	for _, rec := range data.reservations {
		if ownerID != nil && rec.userID != *ownerID {
			continue
		}
		if keep(rec) {
			matched = append(matched, rec)
		}
	}
	slices.SortFunc(matched, func(a, b reservationRecord) int {
		if c := a.start.Compare(b.start); c != 0 {
			return c
		}
		return strings.Compare(a.id.String(), b.id.String())
	})

	views := make([]*queries.ReservationView, 0, len(matched))
	for _, rec := range matched {
		views = append(views, toReservationView(data, rec))
	}
	return views
}

func toReservationView(data *state, rec reservationRecord) *queries.ReservationView {
	status := reservation.StatusActive
	if rec.deletedAt != nil {
		status = reservation.StatusCancelled
	}
	rm := data.rooms[rec.roomID]
	owner := data.users[rec.userID]

	return &queries.ReservationView{
		ID:          rec.id,
		RoomID:      rec.roomID,
		RoomName:    rm.name,
		UserID:      rec.userID,
		UserName:    owner.name,
		UserEmail:   owner.email,
		StartTime:   rec.start,
		EndTime:     rec.end,
		Status:      string(status),
		CancelledAt: rec.deletedAt,
		CreatedAt:   rec.createdAt,
		UpdatedAt:   rec.updatedAt,
	}
}

type RoomReadStore struct {
	store *Store
}

func NewRoomReadStore(store *Store) *RoomReadStore {
	return &RoomReadStore{store: store}
}

func (r *RoomReadStore) List(_ context.Context) ([]*queries.RoomView, error) {
	data := r.store.snapshot()
	views := make([]*queries.RoomView, 0, len(data.rooms))
	for _, rec := range data.rooms {
		views = append(views, toRoomView(rec))
	}
	slices.SortFunc(views, func(a, b *queries.RoomView) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return views, nil
}

func (r *RoomReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.RoomView, error) {
	rec, ok := r.store.snapshot().rooms[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "room not found")
	}
	return toRoomView(rec), nil
}

func toRoomView(rec roomRecord) *queries.RoomView {
	return &queries.RoomView{
		ID:        rec.id,
		Name:      rec.name,
		Capacity:  rec.capacity,
		Area:      rec.area,
		CreatedAt: rec.createdAt,
		UpdatedAt: rec.updatedAt,
	}
}

type UserReadStore struct {
	store *Store
}

func NewUserReadStore(store *Store) *UserReadStore {
	return &UserReadStore{store: store}
}

func (r *UserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	rec, ok := r.store.snapshot().users[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return toUserView(rec), nil
}

func (r *UserReadStore) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	for _, rec := range r.store.snapshot().users {
		if strings.EqualFold(rec.email, strings.TrimSpace(email)) {
			return toUserView(rec), rec.passwordHash, nil
		}
	}
	return nil, "", infra.NewRepoErr(infra.KindNotFound, "user not found")
}

func toUserView(rec userRecord) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       rec.id,
		Name:     rec.name,
		Email:    rec.email,
		Role:     rec.role,
		IsActive: rec.isActive,
	}
}
