package slot

import "github.com/google/uuid"

// Descriptor is the identity key of a bookable slot: one advertisement face
// on one calendar day, scoped to a tenant.
type Descriptor struct {
	AdType      string
	Location    string
	FaceArea    string
	NightLight  bool
	BookingDate Date
	TenantID    string
}

// Equal reports full identity: all six fields must match.
func (d Descriptor) Equal(other Descriptor) bool {
	return d.AdType == other.AdType &&
		d.Location == other.Location &&
		d.FaceArea == other.FaceArea &&
		d.NightLight == other.NightLight &&
		d.BookingDate.Equal(other.BookingDate) &&
		d.TenantID == other.TenantID
}

// MatchesHold matches the way timer holds are cross-referenced: on the four
// face attributes plus the booking date, tenant excluded.
func (d Descriptor) MatchesHold(other Descriptor) bool {
	return d.AdType == other.AdType &&
		d.Location == other.Location &&
		d.FaceArea == other.FaceArea &&
		d.NightLight == other.NightLight &&
		d.BookingDate.Equal(other.BookingDate)
}

// Criteria describes one slot-availability search.
type Criteria struct {
	TenantID   string
	AdType     string
	Location   string
	FaceArea   string
	NightLight bool
	StartDate  Date
	EndDate    Date

	// BookingID identifies the booking currently being viewed or edited, if
	// any. Cells belonging to it render as available to the caller.
	BookingID uuid.UUID

	// IsTimerRequired asks the caller to place a payment-timer hold on the
	// slots this search returns as available.
	IsTimerRequired bool
}

// DescriptorFor synthesizes the candidate descriptor for one day of the
// searched range.
func (c Criteria) DescriptorFor(date Date) Descriptor {
	return Descriptor{
		AdType:      c.AdType,
		Location:    c.Location,
		FaceArea:    c.FaceArea,
		NightLight:  c.NightLight,
		BookingDate: date,
		TenantID:    c.TenantID,
	}
}
