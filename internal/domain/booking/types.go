package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// BlocksCapacity reports whether a booking with this status consumes the
// property's capacity for its dates. Pending blocks the same as confirmed;
// cancelled and completed never block new bookings.
func (s Status) BlocksCapacity() bool {
	switch s {
	case StatusPending, StatusConfirmed:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled || next == StatusCompleted
	default:
		// cancelled and completed are terminal
		return false
	}
}

// BlockingStatuses is the set used by conflict queries, in the order the
// store expects them.
func BlockingStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}
