package seed

import (
	"context"
	"log/slog"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/password"

	"github.com/google/uuid"
)

type Target interface {
	AddRoom(ctx context.Context, r *room.Room) error
	AddUser(ctx context.Context, u *user.User) error
}

type demoRoom struct {
	name     string
	capacity int
	area     float64
}

type demoAccount struct {
	name  string
	email string
	role  user.Role
}

var demoRooms = []demoRoom{
	{name: "Salle Turing", capacity: 12, area: 35.5},
	{name: "Salle Lovelace", capacity: 6, area: 18},
	{name: "Salle Hopper", capacity: 30, area: 80.25},
}

var demoAccounts = []demoAccount{
	{name: "Admin", email: "admin@example.com", role: user.RoleAdmin},
	{name: "Alice Martin", email: "alice@example.com", role: user.RoleSalarie},
	{name: "Bob Durand", email: "bob@example.com", role: user.RoleSalarie},
}

// Demo inserts a fixed set of rooms and accounts sharing demoPassword.
// Rows that already exist are skipped, so it is safe to run on every start.
func Demo(ctx context.Context, target Target, demoPassword string, logger *slog.Logger) error {
	for _, d := range demoRooms {
		r, err := room.NewRoom(uuid.New(), d.name, d.capacity, d.area)
		if err != nil {
			return errs.Wrapf(err, "invalid demo room %q", d.name)
		}
		if err := skipDuplicate(target.AddRoom(ctx, r)); err != nil {
			return errs.Wrapf(err, "failed to seed room %q", d.name)
		}
	}

	hash, err := password.HashPassword(demoPassword)
	if err != nil {
		return errs.Wrap(err, "failed to hash demo password")
	}

	for _, d := range demoAccounts {
		email, err := user.NewEmail(d.email)
		if err != nil {
			return errs.Wrapf(err, "invalid demo email %q", d.email)
		}
		u, err := user.NewUser(d.name, email, hash, d.role)
		if err != nil {
			return errs.Wrapf(err, "invalid demo account %q", d.email)
		}
		if err := skipDuplicate(target.AddUser(ctx, u)); err != nil {
			return errs.Wrapf(err, "failed to seed account %q", d.email)
		}
	}

	logger.Warn("demo data seeded", "rooms", len(demoRooms), "accounts", len(demoAccounts))
	return nil
}

func skipDuplicate(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return nil
	}
	return err
}
