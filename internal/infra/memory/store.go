package memory

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/room"
	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type roomRecord struct {
	id        uuid.UUID
	name      string
	capacity  int
	area      float64
	createdAt time.Time
	updatedAt time.Time
}

type userRecord struct {
	id           uuid.UUID
	name         string
	email        string
	passwordHash string
	role         string
	isActive     bool
	lastLogin    *time.Time
}

type reservationRecord struct {
	id        uuid.UUID
	roomID    uuid.UUID
	userID    uuid.UUID
	start     time.Time
	end       time.Time
	deletedAt *time.Time
	createdAt time.Time
	updatedAt time.Time
}

type state struct {
	rooms        map[uuid.UUID]roomRecord
	users        map[uuid.UUID]userRecord
	reservations map[uuid.UUID]reservationRecord
}

func (s *state) clone() *state {
	return &state{
		rooms:        maps.Clone(s.rooms),
		users:        maps.Clone(s.users),
		reservations: maps.Clone(s.reservations),
	}
}

// Store keeps everything in process memory. Transactions run one at a time
// against a staged copy that replaces the committed state only when fn
// succeeds.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	data *state
}

func NewStore() *Store {
	return &Store{
		data: &state{
			rooms:        map[uuid.UUID]roomRecord{},
			users:        map[uuid.UUID]userRecord{},
			reservations: map[uuid.UUID]reservationRecord{},
		},
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	staged := s.data.clone()
	s.mu.RUnlock()

	if err := fn(ctx, &memTx{data: staged}); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = staged
	s.mu.Unlock()
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &committedReads{store: s}
}

func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// AddRoom and AddUser seed reference data; rooms and users have no write use case.
func (s *Store) AddRoom(ctx context.Context, r *room.Room) error {
	return s.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		data := tx.(*memTx).data
		for _, existing := range data.rooms {
			if strings.EqualFold(existing.name, r.Name()) {
				return infra.NewRepoErr(infra.KindDuplicateKey, "room name already exists")
			}
		}
		data.rooms[r.ID()] = roomRecord{
			id:        r.ID(),
			name:      r.Name(),
			capacity:  r.Capacity(),
			area:      r.Area(),
			createdAt: r.CreatedAt(),
			updatedAt: r.UpdatedAt(),
		}
		return nil
	})
}

func (s *Store) AddUser(ctx context.Context, u *user.User) error {
	return s.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		data := tx.(*memTx).data
		for _, existing := range data.users {
			if strings.EqualFold(existing.email, u.Email().Value()) {
				return infra.NewRepoErr(infra.KindDuplicateKey, "email already registered")
			}
		}
		data.users[u.ID()] = userRecord{
			id:           u.ID(),
			name:         u.Name(),
			email:        u.Email().Value(),
			passwordHash: u.PasswordHash(),
			role:         u.Role().String(),
			isActive:     u.IsActive(),
		}
		return nil
	})
}

type memTx struct {
	data *state
}

func (t *memTx) Reservations() shared.ReservationRepository { return &reservationRepo{data: t.data} }
func (t *memTx) Users() shared.UserRepository               { return &userRepo{data: t.data} }
func (t *memTx) Reads() shared.CommandReads                 { return &stateReads{data: t.data} }

type reservationRepo struct {
	data *state
}

// LockRoom is a no-op: Within already runs transactions one at a time.
func (r *reservationRepo) LockRoom(context.Context, uuid.UUID) error {
	return nil
}

func (r *reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.data.rooms[res.RoomID()]; !ok {
		return infra.NewConstraintErr(infra.KindForeignKeyViolated, infra.ConstraintReservationRoom, "room does not exist")
	}
	if _, ok := r.data.users[res.OwnerID()]; !ok {
		return infra.NewConstraintErr(infra.KindForeignKeyViolated, infra.ConstraintReservationUser, "user does not exist")
	}
	if _, ok := r.data.reservations[res.ID()]; ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "reservation already exists")
	}
	if r.overlaps(res) {
		return infra.NewRepoErr(infra.KindConflict, "overlapping reservation")
	}
	r.data.reservations[res.ID()] = toRecord(res)
	return nil
}

func (r *reservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	current, ok := r.data.reservations[res.ID()]
	if !ok || current.deletedAt != nil {
		return infra.NewRepoErr(infra.KindNotFound, "active reservation not found")
	}
	if _, ok := r.data.rooms[res.RoomID()]; !ok {
		return infra.NewConstraintErr(infra.KindForeignKeyViolated, infra.ConstraintReservationRoom, "room does not exist")
	}
	if r.overlaps(res) {
		return infra.NewRepoErr(infra.KindConflict, "overlapping reservation")
	}
	current.roomID = res.RoomID()
	current.start = res.Slot().Start()
	current.end = res.Slot().End()
	current.updatedAt = res.UpdatedAt()
	r.data.reservations[res.ID()] = current
	return nil
}

func (r *reservationRepo) SoftDelete(_ context.Context, res *reservation.Reservation) error {
	current, ok := r.data.reservations[res.ID()]
	if !ok || current.deletedAt != nil {
		return infra.NewRepoErr(infra.KindNotFound, "active reservation not found")
	}
	if res.CancelledAt() == nil {
		return infra.NewRepoErr(infra.KindDBFailure, "reservation has no cancellation time")
	}
	at := *res.CancelledAt()
	current.deletedAt = &at
	current.updatedAt = res.UpdatedAt()
	r.data.reservations[res.ID()] = current
	return nil
}

// overlaps mirrors the exclusion constraint of the SQL schema.
func (r *reservationRepo) overlaps(res *reservation.Reservation) bool {
	id := res.ID()
	return !reservation.IsAvailable(activeByRoom(r.data, res.RoomID()), res.RoomID(), res.Slot(), &id)
}

type userRepo struct {
	data *state
}

func (r *userRepo) UpdateLastLogin(_ context.Context, userID uuid.UUID, at time.Time) error {
	current, ok := r.data.users[userID]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	current.lastLogin = &at
	r.data.users[userID] = current
	return nil
}

// stateReads reads one fixed state: a transaction's staged copy or a committed snapshot.
type stateReads struct {
	data *state
}

func (r *stateReads) RoomByID(_ context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	rec, ok := r.data.rooms[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "room not found")
	}
	return &shared.RoomSnapshot{ID: rec.id, Name: rec.name, Capacity: rec.capacity}, nil
}

func (r *stateReads) UserContactByID(_ context.Context, id uuid.UUID) (*shared.UserContact, error) {
	rec, ok := r.data.users[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return &shared.UserContact{ID: rec.id, Name: rec.name, Email: rec.email}, nil
}

func (r *stateReads) ActiveReservationByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	rec, ok := r.data.reservations[id]
	if !ok || rec.deletedAt != nil {
		return nil, infra.NewRepoErr(infra.KindNotFound, "active reservation not found")
	}
	return rec.toDomain(), nil
}

func (r *stateReads) ActiveReservationsByRoom(_ context.Context, roomID uuid.UUID) ([]*reservation.Reservation, error) {
	return activeByRoom(r.data, roomID), nil
}

// committedReads resolves the committed state on every call.
type committedReads struct {
	store *Store
}

func (r *committedReads) reads() *stateReads {
	return &stateReads{data: r.store.snapshot()}
}

func (r *committedReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	return r.reads().RoomByID(ctx, id)
}

func (r *committedReads) UserContactByID(ctx context.Context, id uuid.UUID) (*shared.UserContact, error) {
	return r.reads().UserContactByID(ctx, id)
}

func (r *committedReads) ActiveReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return r.reads().ActiveReservationByID(ctx, id)
}

func (r *committedReads) ActiveReservationsByRoom(ctx context.Context, roomID uuid.UUID) ([]*reservation.Reservation, error) {
	return r.reads().ActiveReservationsByRoom(ctx, roomID)
}

func activeByRoom(data *state, roomID uuid.UUID) []*reservation.Reservation {
	var result []*reservation.Reservation
	for _, rec := range data.reservations {
		if rec.roomID == roomID && rec.deletedAt == nil {
			result = append(result, rec.toDomain())
		}
	}
	slices.SortFunc(result, func(a, b *reservation.Reservation) int {
		return a.Slot().Start().Compare(b.Slot().Start())
	})
	return result
}

func toRecord(res *reservation.Reservation) reservationRecord {
	return reservationRecord{
		id:        res.ID(),
		roomID:    res.RoomID(),
		userID:    res.OwnerID(),
		start:     res.Slot().Start(),
		end:       res.Slot().End(),
		deletedAt: res.CancelledAt(),
		createdAt: res.CreatedAt(),
		updatedAt: res.UpdatedAt(),
	}
}

func (rec reservationRecord) toDomain() *reservation.Reservation {
	// records only ever come from valid aggregates
	slot, _ := reservation.NewTimeSlot(rec.start, rec.end)
	var cancelledAt *time.Time
	if rec.deletedAt != nil {
		at := *rec.deletedAt
		cancelledAt = &at
	}
	return reservation.ReconstructReservation(rec.id, rec.roomID, rec.userID, slot, cancelledAt, rec.createdAt, rec.updatedAt)
}
