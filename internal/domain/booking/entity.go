package booking

import (
	"time"

	"adslot-booking/internal/domain/slot"

	"github.com/google/uuid"
)

// Booking is the aggregate for one advertisement booking application, from
// draft through payment to confirmation. All mutation goes through the
// lifecycle methods; direct status writes are not possible from outside.
type Booking struct {
	id                     uuid.UUID
	bookingNo              string
	draftID                *uuid.UUID
	tenant                 TenantID
	applicant              Applicant
	slots                  []slot.Descriptor
	status                 Status
	receiptNo              string
	paymentDate            *time.Time
	permissionLetterFileID string
	paymentReceiptFileID   string
	createdBy              uuid.UUID
	createdAt              time.Time
	updatedAt              time.Time
}

// NewBooking creates a booking entering the payment-pending stage. When the
// application was promoted from a draft, draftID records which one was
// consumed.
func NewBooking(
	tenant TenantID,
	applicant Applicant,
	slots []slot.Descriptor,
	createdBy uuid.UUID,
	draftID *uuid.UUID,
	now time.Time,
) (*Booking, error) {
	if len(slots) == 0 {
		return nil, ErrNoSlots
	}
	return &Booking{
		id:        uuid.New(),
		bookingNo: NewBookingNo(tenant, now),
		draftID:   draftID,
		tenant:    tenant,
		applicant: applicant,
		slots:     slots,
		status:    StatusPendingForPayment,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewDraft creates an unsubmitted, editable booking owned by one user.
// Drafts have no booking number until promoted.
func NewDraft(
	tenant TenantID,
	applicant Applicant,
	slots []slot.Descriptor,
	createdBy uuid.UUID,
	now time.Time,
) *Booking {
	draftID := uuid.New()
	return &Booking{
		id:        uuid.New(),
		draftID:   &draftID,
		tenant:    tenant,
		applicant: applicant,
		slots:     slots,
		status:    StatusDraft,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}
}

func Reconstruct(
	id uuid.UUID,
	bookingNo string,
	draftID *uuid.UUID,
	tenant TenantID,
	applicant Applicant,
	slots []slot.Descriptor,
	status Status,
	receiptNo string,
	paymentDate *time.Time,
	permissionLetterFileID string,
	paymentReceiptFileID string,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                     id,
		bookingNo:              bookingNo,
		draftID:                draftID,
		tenant:                 tenant,
		applicant:              applicant,
		slots:                  slots,
		status:                 status,
		receiptNo:              receiptNo,
		paymentDate:            paymentDate,
		permissionLetterFileID: permissionLetterFileID,
		paymentReceiptFileID:   paymentReceiptFileID,
		createdBy:              createdBy,
		createdAt:              createdAt,
		updatedAt:              updatedAt,
	}
}

// TransitionTo moves the booking along the lifecycle, rejecting transitions
// the state machine does not allow.
func (b *Booking) TransitionTo(next Status, now time.Time) error {
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	b.updatedAt = now
	return nil
}

// ApplyFileRefs merges incoming file-store references with a
// fill-only-if-empty policy: a reference already stored is never overwritten.
func (b *Booking) ApplyFileRefs(permissionLetterFileID, paymentReceiptFileID string, now time.Time) {
	changed := false
	if b.permissionLetterFileID == "" && permissionLetterFileID != "" {
		b.permissionLetterFileID = permissionLetterFileID
		changed = true
	}
	if b.paymentReceiptFileID == "" && paymentReceiptFileID != "" {
		b.paymentReceiptFileID = paymentReceiptFileID
		changed = true
	}
	if changed {
		b.updatedAt = now
	}
}

// StampPayment records a successful payment and confirms the booking.
func (b *Booking) StampPayment(receiptNo string, paidAt time.Time, now time.Time) error {
	if b.status != StatusPendingForPayment {
		return ErrMissingPaymentOwner
	}
	b.receiptNo = receiptNo
	b.paymentDate = &paidAt
	return b.TransitionTo(StatusBooked, now)
}

// ReplaceApplicant swaps the applicant, used when moving between the
// encrypted at-rest form and the plaintext view form.
func (b *Booking) ReplaceApplicant(a Applicant) {
	b.applicant = a
}

// UpdateDraftContents replaces the editable parts of a draft in place.
func (b *Booking) UpdateDraftContents(applicant Applicant, slots []slot.Descriptor, now time.Time) {
	b.applicant = applicant
	b.slots = slots
	b.updatedAt = now
}

func (b *Booking) IsDraft() bool {
	return b.status == StatusDraft
}

func (b *Booking) ID() uuid.UUID                  { return b.id }
func (b *Booking) BookingNo() string              { return b.bookingNo }
func (b *Booking) DraftID() *uuid.UUID            { return b.draftID }
func (b *Booking) Tenant() TenantID               { return b.tenant }
func (b *Booking) Applicant() Applicant           { return b.applicant }
func (b *Booking) Slots() []slot.Descriptor       { return b.slots }
func (b *Booking) Status() Status                 { return b.status }
func (b *Booking) ReceiptNo() string              { return b.receiptNo }
func (b *Booking) PaymentDate() *time.Time        { return b.paymentDate }
func (b *Booking) PermissionLetterFileID() string { return b.permissionLetterFileID }
func (b *Booking) PaymentReceiptFileID() string   { return b.paymentReceiptFileID }
func (b *Booking) CreatedBy() uuid.UUID           { return b.createdBy }
func (b *Booking) CreatedAt() time.Time           { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time           { return b.updatedAt }
