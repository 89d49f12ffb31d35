//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"adslot-booking/internal/domain/booking"
	"adslot-booking/internal/domain/slot"
	"adslot-booking/internal/infra"
	"adslot-booking/internal/pkg/clock"
	"adslot-booking/internal/pkg/errs"
	"adslot-booking/internal/usecase/commands"
	commandsmock "adslot-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var commandNow = time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)

type bookingCommandsFixture struct {
	bookingRepo *commandsmock.MockBookingRepository
	draftRepo   *commandsmock.MockDraftRepository
	persister   *commandsmock.MockUpdatePersister
	timerBinder *commandsmock.MockTimerHoldBinder
	mdms        *commandsmock.MockMasterDataService
	encryptor   *commandsmock.MockPIIEncryptor
	demand      *commandsmock.MockDemandService
	cmd         commands.BookingCommands
}

func newBookingCommandsFixture(t *testing.T) *bookingCommandsFixture {
	ctrl := gomock.NewController(t)
	f := &bookingCommandsFixture{
		bookingRepo: commandsmock.NewMockBookingRepository(ctrl),
		draftRepo:   commandsmock.NewMockDraftRepository(ctrl),
		persister:   commandsmock.NewMockUpdatePersister(ctrl),
		timerBinder: commandsmock.NewMockTimerHoldBinder(ctrl),
		mdms:        commandsmock.NewMockMasterDataService(ctrl),
		encryptor:   commandsmock.NewMockPIIEncryptor(ctrl),
		demand:      commandsmock.NewMockDemandService(ctrl),
	}
	f.cmd = commands.NewBookingCommands(
		f.bookingRepo, f.draftRepo, f.persister, f.timerBinder,
		f.mdms, f.encryptor, f.demand, clock.NewMockClock(commandNow),
	)
	return f
}

func masterData() commands.MasterDataSnapshot {
	return commands.MasterDataSnapshot{
		AdTypes:   []string{"Hoarding", "Gantry"},
		Locations: []string{"Main Road"},
		FaceAreas: []string{"20x10"},
	}
}

func createParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		TenantID:        "pg.citya",
		ApplicantName:   "Asha",
		ApplicantMobile: "9999999999",
		Slots: []commands.SlotParams{{
			AdType:      "Hoarding",
			Location:    "Main Road",
			FaceArea:    "20x10",
			NightLight:  true,
			BookingDate: slot.NewDate(2026, time.June, 10),
		}},
	}
}

func passthroughEncryption(f *bookingCommandsFixture) {
	f.encryptor.EXPECT().EncryptApplicant(gomock.Any()).
		DoAndReturn(func(a booking.Applicant) (booking.Applicant, error) { return a, nil }).
		AnyTimes()
	f.encryptor.EXPECT().DecryptApplicant(gomock.Any()).
		DoAndReturn(func(a booking.Applicant) (booking.Applicant, error) { return a, nil }).
		AnyTimes()
}

func TestBookingCreate(t *testing.T) {
	userID := uuid.New()

	t.Run("raises demand, persists and binds timer holds", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		passthroughEncryption(f)

		f.mdms.EXPECT().Fetch(gomock.Any(), "pg").Return(masterData(), nil)
		gomock.InOrder(
			f.demand.EXPECT().CreateDemand(gomock.Any(), gomock.Any()).Return(nil),
			f.bookingRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, b *booking.Booking) error {
					assert.Equal(t, booking.StatusPendingForPayment, b.Status())
					assert.Equal(t, userID, b.CreatedBy())
					return nil
				}),
			f.timerBinder.EXPECT().BindBooking(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(nil),
		)

		view, err := f.cmd.Create(context.Background(), createParams(), userID)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(view.BookingNo, "ADV-PG-20260601-"))
		assert.Equal(t, "Asha", view.ApplicantName)
		require.Len(t, view.Slots, 1)
		assert.Equal(t, "2026-06-10", view.Slots[0].BookingDate)
	})

	t.Run("consumes the originating draft", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		passthroughEncryption(f)
		draftID := uuid.New()
		params := createParams()
		params.DraftID = &draftID

		f.mdms.EXPECT().Fetch(gomock.Any(), "pg").Return(masterData(), nil)
		f.demand.EXPECT().CreateDemand(gomock.Any(), gomock.Any()).Return(nil)
		f.bookingRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.timerBinder.EXPECT().BindBooking(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(nil)
		f.draftRepo.EXPECT().Delete(gomock.Any(), draftID).Return(nil)

		view, err := f.cmd.Create(context.Background(), params, userID)
		require.NoError(t, err)
		require.NotNil(t, view.DraftID)
		assert.Equal(t, draftID, *view.DraftID)
	})

	t.Run("a lost timer binding does not fail the booking", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		passthroughEncryption(f)

		f.mdms.EXPECT().Fetch(gomock.Any(), "pg").Return(masterData(), nil)
		f.demand.EXPECT().CreateDemand(gomock.Any(), gomock.Any()).Return(nil)
		f.bookingRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.timerBinder.EXPECT().BindBooking(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		_, err := f.cmd.Create(context.Background(), createParams(), userID)
		assert.NoError(t, err)
	})

	t.Run("rejects a malformed tenant id", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		params := createParams()
		params.TenantID = "pg"

		_, err := f.cmd.Create(context.Background(), params, userID)
		assert.ErrorIs(t, err, errs.ErrInvalidTenant)
	})

	t.Run("unavailable master data aborts the flow", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		f.mdms.EXPECT().Fetch(gomock.Any(), "pg").
			Return(commands.MasterDataSnapshot{}, assert.AnError)

		_, err := f.cmd.Create(context.Background(), createParams(), userID)
		assert.ErrorIs(t, err, errs.ErrMasterDataUnavailable)
	})

	t.Run("rejects a slot descriptor outside master data", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		params := createParams()
		params.Slots[0].Location = "Nonexistent Street"

		f.mdms.EXPECT().Fetch(gomock.Any(), "pg").Return(masterData(), nil)

		_, err := f.cmd.Create(context.Background(), params, userID)
		assert.ErrorIs(t, err, errs.ErrMasterDataValidation)
	})

	t.Run("a failed demand never reaches the repository", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		passthroughEncryption(f)

		f.mdms.EXPECT().Fetch(gomock.Any(), "pg").Return(masterData(), nil)
		f.demand.EXPECT().CreateDemand(gomock.Any(), gomock.Any()).Return(assert.AnError)

		_, err := f.cmd.Create(context.Background(), createParams(), userID)
		assert.Error(t, err)
	})
}

func storedPendingBooking(t *testing.T, userID uuid.UUID) *booking.Booking {
	t.Helper()
	tenant, err := booking.NewTenantID("pg.citya")
	require.NoError(t, err)
	b, err := booking.NewBooking(tenant, booking.NewApplicant("Asha", "9999999999"),
		[]slot.Descriptor{{
			AdType:      "Hoarding",
			Location:    "Main Road",
			FaceArea:    "20x10",
			BookingDate: slot.NewDate(2026, time.June, 10),
			TenantID:    "pg.citya",
		}}, userID, nil, commandNow)
	require.NoError(t, err)
	return b
}

func TestBookingUpdate(t *testing.T) {
	userID := uuid.New()

	t.Run("queues the merged booking for async persistence", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		passthroughEncryption(f)
		stored := storedPendingBooking(t, userID)

		f.bookingRepo.EXPECT().FindByBookingNo(gomock.Any(), stored.BookingNo()).Return(stored, nil)
		f.persister.EXPECT().EnqueueBookingUpdate(gomock.Any(), stored).Return(nil)

		view, err := f.cmd.Update(context.Background(), commands.UpdateBookingParams{
			BookingNo:              stored.BookingNo(),
			PermissionLetterFileID: "letter-1",
		})
		require.NoError(t, err)
		require.NotNil(t, view.PermissionLetterFileID)
		assert.Equal(t, "letter-1", *view.PermissionLetterFileID)
		assert.Equal(t, booking.StatusPendingForPayment.String(), view.Status)
	})

	t.Run("unknown booking number maps to not found", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		f.bookingRepo.EXPECT().FindByBookingNo(gomock.Any(), "ADV-PG-20260601-MISSING1").
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := f.cmd.Update(context.Background(), commands.UpdateBookingParams{
			BookingNo: "ADV-PG-20260601-MISSING1",
		})
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("persister failure surfaces", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		stored := storedPendingBooking(t, userID)

		f.bookingRepo.EXPECT().FindByBookingNo(gomock.Any(), stored.BookingNo()).Return(stored, nil)
		f.persister.EXPECT().EnqueueBookingUpdate(gomock.Any(), stored).Return(assert.AnError)

		_, err := f.cmd.Update(context.Background(), commands.UpdateBookingParams{
			BookingNo: stored.BookingNo(),
		})
		assert.ErrorIs(t, err, errs.ErrPersisterOperationFailed)
	})
}

func TestBookingUpdateSynchronously(t *testing.T) {
	userID := uuid.New()
	paidAt := commandNow.Add(5 * time.Minute)

	t.Run("payment confirms the booking through the repository", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		passthroughEncryption(f)
		stored := storedPendingBooking(t, userID)

		f.bookingRepo.EXPECT().FindByBookingNo(gomock.Any(), stored.BookingNo()).Return(stored, nil)
		f.bookingRepo.EXPECT().UpdateSynchronously(gomock.Any(), stored).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				assert.Equal(t, booking.StatusBooked, b.Status())
				return nil
			})

		view, err := f.cmd.UpdateSynchronously(context.Background(), commands.UpdateBookingParams{
			BookingNo: stored.BookingNo(),
			Payment:   &commands.PaymentDetail{ReceiptNo: "RCPT-1", PaidAt: paidAt},
		})
		require.NoError(t, err)
		assert.Equal(t, booking.StatusBooked.String(), view.Status)
		require.NotNil(t, view.ReceiptNo)
		assert.Equal(t, "RCPT-1", *view.ReceiptNo)
	})

	t.Run("payment on a confirmed booking is rejected", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		stored := storedPendingBooking(t, userID)
		require.NoError(t, stored.StampPayment("RCPT-1", paidAt, paidAt))

		f.bookingRepo.EXPECT().FindByBookingNo(gomock.Any(), stored.BookingNo()).Return(stored, nil)

		_, err := f.cmd.UpdateSynchronously(context.Background(), commands.UpdateBookingParams{
			BookingNo: stored.BookingNo(),
			Payment:   &commands.PaymentDetail{ReceiptNo: "RCPT-2", PaidAt: paidAt},
		})
		assert.ErrorIs(t, err, booking.ErrMissingPaymentOwner)
	})
}
