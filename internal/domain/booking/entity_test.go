//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"adslot-booking/internal/domain/booking"
	"adslot-booking/internal/domain/slot"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)

func testTenant(t *testing.T) booking.TenantID {
	t.Helper()
	tenant, err := booking.NewTenantID("pg.citya")
	require.NoError(t, err)
	return tenant
}

func testSlots() []slot.Descriptor {
	return []slot.Descriptor{{
		AdType:      "Hoarding",
		Location:    "Main Road",
		FaceArea:    "20x10",
		NightLight:  true,
		BookingDate: slot.NewDate(2026, time.June, 10),
		TenantID:    "pg.citya",
	}}
}

func TestNewBooking(t *testing.T) {
	t.Run("enters payment-pending with a booking number", func(t *testing.T) {
		b, err := booking.NewBooking(testTenant(t), booking.NewApplicant("Asha", "9999999999"),
			testSlots(), uuid.New(), nil, testNow)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPendingForPayment, b.Status())
		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.True(t, strings.HasPrefix(b.BookingNo(), "ADV-PG-20260601-"))
		assert.Nil(t, b.DraftID())
		assert.Equal(t, testNow, b.CreatedAt())
	})

	t.Run("requires at least one slot", func(t *testing.T) {
		_, err := booking.NewBooking(testTenant(t), booking.Applicant{}, nil, uuid.New(), nil, testNow)
		assert.ErrorIs(t, err, booking.ErrNoSlots)
	})

	t.Run("records the consumed draft", func(t *testing.T) {
		draftID := uuid.New()
		b, err := booking.NewBooking(testTenant(t), booking.Applicant{}, testSlots(),
			uuid.New(), &draftID, testNow)
		require.NoError(t, err)
		require.NotNil(t, b.DraftID())
		assert.Equal(t, draftID, *b.DraftID())
	})
}

func TestNewDraft(t *testing.T) {
	b := booking.NewDraft(testTenant(t), booking.NewApplicant("Asha", "9999999999"),
		nil, uuid.New(), testNow)

	assert.Equal(t, booking.StatusDraft, b.Status())
	assert.True(t, b.IsDraft())
	assert.Empty(t, b.BookingNo())
	require.NotNil(t, b.DraftID())
	assert.NotEqual(t, uuid.Nil, *b.DraftID())
}

func TestTransitionTo(t *testing.T) {
	b := booking.NewDraft(testTenant(t), booking.Applicant{}, nil, uuid.New(), testNow)

	later := testNow.Add(time.Hour)
	require.NoError(t, b.TransitionTo(booking.StatusPendingForPayment, later))
	assert.Equal(t, booking.StatusPendingForPayment, b.Status())
	assert.Equal(t, later, b.UpdatedAt())

	err := b.TransitionTo(booking.StatusDraft, later)
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	assert.Equal(t, booking.StatusPendingForPayment, b.Status())
}

func TestApplyFileRefs(t *testing.T) {
	newPending := func(t *testing.T) *booking.Booking {
		t.Helper()
		b, err := booking.NewBooking(testTenant(t), booking.Applicant{}, testSlots(),
			uuid.New(), nil, testNow)
		require.NoError(t, err)
		return b
	}

	t.Run("fills empty references", func(t *testing.T) {
		b := newPending(t)
		b.ApplyFileRefs("letter-1", "receipt-1", testNow.Add(time.Minute))

		assert.Equal(t, "letter-1", b.PermissionLetterFileID())
		assert.Equal(t, "receipt-1", b.PaymentReceiptFileID())
		assert.Equal(t, testNow.Add(time.Minute), b.UpdatedAt())
	})

	t.Run("never overwrites a stored reference", func(t *testing.T) {
		b := newPending(t)
		b.ApplyFileRefs("letter-1", "", testNow)
		b.ApplyFileRefs("letter-2", "receipt-1", testNow.Add(time.Minute))

		assert.Equal(t, "letter-1", b.PermissionLetterFileID())
		assert.Equal(t, "receipt-1", b.PaymentReceiptFileID())
	})

	t.Run("blank input leaves stored value and timestamp alone", func(t *testing.T) {
		b := newPending(t)
		before := b.UpdatedAt()
		b.ApplyFileRefs("", "", testNow.Add(time.Hour))

		assert.Empty(t, b.PermissionLetterFileID())
		assert.Equal(t, before, b.UpdatedAt())
	})
}

func TestStampPayment(t *testing.T) {
	paidAt := testNow.Add(5 * time.Minute)

	t.Run("confirms a pending booking", func(t *testing.T) {
		b, err := booking.NewBooking(testTenant(t), booking.Applicant{}, testSlots(),
			uuid.New(), nil, testNow)
		require.NoError(t, err)

		require.NoError(t, b.StampPayment("RCPT-1", paidAt, paidAt))
		assert.Equal(t, booking.StatusBooked, b.Status())
		assert.Equal(t, "RCPT-1", b.ReceiptNo())
		require.NotNil(t, b.PaymentDate())
		assert.Equal(t, paidAt, *b.PaymentDate())
	})

	t.Run("rejects payment on a draft", func(t *testing.T) {
		b := booking.NewDraft(testTenant(t), booking.Applicant{}, nil, uuid.New(), testNow)
		err := b.StampPayment("RCPT-1", paidAt, paidAt)
		assert.ErrorIs(t, err, booking.ErrMissingPaymentOwner)
	})

	t.Run("rejects double payment", func(t *testing.T) {
		b, err := booking.NewBooking(testTenant(t), booking.Applicant{}, testSlots(),
			uuid.New(), nil, testNow)
		require.NoError(t, err)
		require.NoError(t, b.StampPayment("RCPT-1", paidAt, paidAt))

		err = b.StampPayment("RCPT-2", paidAt, paidAt)
		assert.ErrorIs(t, err, booking.ErrMissingPaymentOwner)
		assert.Equal(t, "RCPT-1", b.ReceiptNo())
	})
}

func TestUpdateDraftContents(t *testing.T) {
	b := booking.NewDraft(testTenant(t), booking.NewApplicant("Asha", "9999999999"),
		testSlots(), uuid.New(), testNow)

	newSlots := testSlots()
	newSlots[0].BookingDate = slot.NewDate(2026, time.June, 20)
	later := testNow.Add(time.Hour)
	b.UpdateDraftContents(booking.NewApplicant("Ravi", "8888888888"), newSlots, later)

	assert.Equal(t, "Ravi", b.Applicant().Name())
	assert.Equal(t, later, b.UpdatedAt())
	if diff := cmp.Diff(newSlots, b.Slots(), cmp.Comparer(func(a, b slot.Date) bool {
		return a.Equal(b)
	})); diff != "" {
		t.Errorf("slots mismatch (-want +got):\n%s", diff)
	}
}

func TestNewBookingNo(t *testing.T) {
	no := booking.NewBookingNo(testTenant(t), testNow)
	parts := strings.Split(no, "-")

	require.Len(t, parts, 4)
	assert.Equal(t, "ADV", parts[0])
	assert.Equal(t, "PG", parts[1])
	assert.Equal(t, "20260601", parts[2])
	assert.Len(t, parts[3], 8)
	assert.NotEqual(t, no, booking.NewBookingNo(testTenant(t), testNow))
}
