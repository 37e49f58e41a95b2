package reservation

import "github.com/google/uuid"

// Requester is the principal acting on a reservation. Privileged principals
// may act on reservations owned by others.
type Requester struct {
	ID         uuid.UUID
	Privileged bool
}

func (r Requester) CanModify(res *Reservation) bool {
	if res == nil {
		return false
	}
	return r.Privileged || r.ID == res.ownerID
}

// OwnerScope returns the owner filter a listing must be restricted to.
// Privileged requesters keep the requested filter, others only see their own.
func (r Requester) OwnerScope(requested *uuid.UUID) *uuid.UUID {
	if r.Privileged {
		return requested
	}
	id := r.ID
	return &id
}
