package errs

// Sentinel errors shared by the command and query sides
var (
	// Reservation errors
	ErrReservationNotFound = New("reservation not found")
	ErrRoomUnavailable     = New("room unavailable for the requested time slot")
	ErrInvalidTimeSlot     = New("invalid time slot")
	ErrForbidden           = New("operation not permitted for requester")
	ErrOwnerNotFound       = New("reservation owner not found")

	// Room errors
	ErrRoomNotFound = New("room not found")

	// User errors
	ErrUserNotFound = New("user not found")
	ErrUserInactive = New("user inactive")
)
