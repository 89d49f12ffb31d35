package booking

type Status string

const (
	StatusDraft             Status = "DRAFT"
	StatusPendingForPayment Status = "PENDING_FOR_PAYMENT"
	StatusBooked            Status = "BOOKED"
	StatusExpired           Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPendingForPayment, StatusBooked, StatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may leave this status.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusBooked, StatusExpired:
		return true
	case StatusDraft, StatusPendingForPayment:
		return false
	default:
		return false
	}
}

// CanTransitionTo encodes the booking lifecycle:
// DRAFT → PENDING_FOR_PAYMENT → BOOKED, with EXPIRED reachable from DRAFT
// or PENDING_FOR_PAYMENT when the payment timer runs out.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusDraft:
		return next == StatusPendingForPayment || next == StatusExpired
	case StatusPendingForPayment:
		return next == StatusBooked || next == StatusExpired
	case StatusBooked, StatusExpired:
		return false
	default:
		return false
	}
}
