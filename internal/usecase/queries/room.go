package queries

import (
	"context"

	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound = errs.ErrRoomNotFound
)

type RoomQueries interface {
	List(ctx context.Context) ([]*RoomView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type RoomReadStore interface {
	List(ctx context.Context) ([]*RoomView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
}

func NewRoomQueries(readStore RoomReadStore) RoomQueries {
	return &roomQueriesImpl{readStore: readStore}
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	return q.readStore.List(ctx)
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	room, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, err
	}
	return room, nil
}
