package slot

import (
	"time"

	"github.com/google/uuid"
)

// Availability is the computed view of one slot on one day. It is never
// persisted; every query builds it fresh.
type Availability struct {
	Descriptor
	Status    Status
	BookingID uuid.UUID // confirmed booking occupying the slot, if any
	HolderID  uuid.UUID // user holding the slot under a payment timer, if any
}

// ConfirmedSlot is one slot descriptor owned by a confirmed booking.
type ConfirmedSlot struct {
	Descriptor
	BookingID uuid.UUID
}

// Hold is a temporary, expiring claim placed on a slot during checkout.
type Hold struct {
	Descriptor
	BookingID uuid.UUID
	BookingNo string
	HolderID  uuid.UUID
	ExpiresAt time.Time
}

// BuildGrid synthesizes the baseline "nothing booked" grid: one available
// cell per day of the expanded range.
func BuildGrid(c Criteria, dates []Date) []Availability {
	grid := make([]Availability, 0, len(dates))
	for _, date := range dates {
		grid = append(grid, Availability{
			Descriptor: c.DescriptorFor(date),
			Status:     StatusAvailable,
		})
	}
	return grid
}

// MergeConfirmed overlays confirmed bookings onto the grid and returns a new
// grid. A cell whose descriptor matches a confirmed slot becomes booked and
// carries that booking's id. Cells belonging to ownBookingID are then forced
// back to available so a user editing an existing booking can reselect its
// own slots.
func MergeConfirmed(grid []Availability, booked []ConfirmedSlot, ownBookingID uuid.UUID) []Availability {
	merged := make([]Availability, len(grid))
	copy(merged, grid)

	for i := range merged {
		for _, b := range booked {
			if b.Descriptor.Equal(merged[i].Descriptor) {
				merged[i].Status = StatusBooked
				merged[i].BookingID = b.BookingID
				break
			}
		}
		if ownBookingID != uuid.Nil && merged[i].BookingID == ownBookingID {
			merged[i].Status = StatusAvailable
		}
	}
	return merged
}

// MergeHolds overlays active payment-timer holds onto the grid and returns a
// new grid. It runs strictly after MergeConfirmed and only escalates
// available cells: a cell already attributed to a confirmed booking is left
// untouched, so a hold can never mask or resurrect a confirmed slot. Cells
// held by requesterID are forced back to available, so a user always sees
// their own in-progress hold as selectable.
func MergeHolds(grid []Availability, holds []Hold, requesterID uuid.UUID) []Availability {
	merged := make([]Availability, len(grid))
	copy(merged, grid)

	for i := range merged {
		if merged[i].BookingID != uuid.Nil {
			continue
		}
		for _, h := range holds {
			if h.Descriptor.MatchesHold(merged[i].Descriptor) {
				merged[i].Status = StatusBooked
				merged[i].HolderID = h.HolderID
				break
			}
		}
		if requesterID != uuid.Nil && merged[i].HolderID == requesterID {
			merged[i].Status = StatusAvailable
		}
	}
	return merged
}
