package commands

import (
	"context"

	"adslot-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Insert(ctx context.Context, b *booking.Booking) error
	// UpdateSynchronously applies the update transactionally; the write is
	// acknowledged before the call returns.
	UpdateSynchronously(ctx context.Context, b *booking.Booking) error
	FindByBookingNo(ctx context.Context, bookingNo string) (*booking.Booking, error)
}

type DraftRepository interface {
	Insert(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	// Delete is idempotent: deleting an absent draft is a no-op.
	Delete(ctx context.Context, draftID uuid.UUID) error
	FindByID(ctx context.Context, draftID uuid.UUID) (*booking.Booking, error)
	// FindLiveDraftID returns the draft currently owned by the user, or nil.
	FindLiveDraftID(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error)
}

// UpdatePersister queues a booking update for asynchronous persistence.
type UpdatePersister interface {
	EnqueueBookingUpdate(ctx context.Context, b *booking.Booking) error
}

// TimerHoldBinder stamps the holds a user acquired during slot search with
// the booking they were promoted into.
type TimerHoldBinder interface {
	BindBooking(ctx context.Context, holderID uuid.UUID, bookingID uuid.UUID, bookingNo string) error
}

// MasterDataSnapshot is the subset of MDMS data the create flow validates
// descriptor fields against.
type MasterDataSnapshot struct {
	AdTypes   []string
	Locations []string
	FaceAreas []string
}

func (s MasterDataSnapshot) contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func (s MasterDataSnapshot) HasAdType(v string) bool   { return s.contains(s.AdTypes, v) }
func (s MasterDataSnapshot) HasLocation(v string) bool { return s.contains(s.Locations, v) }
func (s MasterDataSnapshot) HasFaceArea(v string) bool { return s.contains(s.FaceAreas, v) }

type MasterDataService interface {
	Fetch(ctx context.Context, tenantID string) (MasterDataSnapshot, error)
}

// PIIEncryptor moves applicant data between plaintext and at-rest forms.
type PIIEncryptor interface {
	EncryptApplicant(a booking.Applicant) (booking.Applicant, error)
	DecryptApplicant(a booking.Applicant) (booking.Applicant, error)
}

// DemandService raises a payment demand against the billing collaborator.
type DemandService interface {
	CreateDemand(ctx context.Context, b *booking.Booking) error
}
