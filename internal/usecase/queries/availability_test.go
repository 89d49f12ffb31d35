//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"adslot-booking/internal/domain/slot"
	"adslot-booking/internal/pkg/errs"
	"adslot-booking/internal/usecase/queries"
	queriesmock "adslot-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAvailabilityFixture(t *testing.T) (*queriesmock.MockConfirmedSlotReadStore, *queriesmock.MockTimerHoldStore, queries.AvailabilityQueries) {
	ctrl := gomock.NewController(t)
	confirmed := queriesmock.NewMockConfirmedSlotReadStore(ctrl)
	timer := queriesmock.NewMockTimerHoldStore(ctrl)
	return confirmed, timer, queries.NewAvailabilityQueries(confirmed, timer)
}

func searchCriteria(days int) slot.Criteria {
	start := slot.NewDate(2026, time.June, 1)
	return slot.Criteria{
		TenantID:   "pg.citya",
		AdType:     "Hoarding",
		Location:   "Main Road",
		FaceArea:   "20x10",
		NightLight: true,
		StartDate:  start,
		EndDate:    start.AddDays(days - 1),
	}
}

func TestSlotAvailability(t *testing.T) {
	requesterID := uuid.New()

	t.Run("empty stores yield an all-available grid", func(t *testing.T) {
		confirmed, timer, q := newAvailabilityFixture(t)
		c := searchCriteria(3)

		confirmed.EXPECT().FindConfirmedSlots(gomock.Any(), c).Return(nil, nil)
		timer.EXPECT().FindActiveHolds(gomock.Any(), c).Return(nil, nil)

		views, err := q.SlotAvailability(context.Background(), c, requesterID)
		require.NoError(t, err)
		require.Len(t, views, 3)
		for i, v := range views {
			assert.Equal(t, slot.StatusAvailable.String(), v.Status)
			assert.Equal(t, c.StartDate.AddDays(i).String(), v.BookingDate)
			assert.Nil(t, v.BookingID)
			assert.Nil(t, v.HolderID)
		}
	})

	t.Run("confirmed bookings and holds overlay the grid", func(t *testing.T) {
		confirmed, timer, q := newAvailabilityFixture(t)
		c := searchCriteria(3)
		bookingID := uuid.New()
		holderID := uuid.New()

		confirmed.EXPECT().FindConfirmedSlots(gomock.Any(), c).Return([]slot.ConfirmedSlot{
			{Descriptor: c.DescriptorFor(c.StartDate), BookingID: bookingID},
		}, nil)
		timer.EXPECT().FindActiveHolds(gomock.Any(), c).Return([]slot.Hold{
			{Descriptor: c.DescriptorFor(c.StartDate.AddDays(1)), HolderID: holderID},
		}, nil)

		views, err := q.SlotAvailability(context.Background(), c, requesterID)
		require.NoError(t, err)
		require.Len(t, views, 3)

		assert.Equal(t, slot.StatusBooked.String(), views[0].Status)
		require.NotNil(t, views[0].BookingID)
		assert.Equal(t, bookingID, *views[0].BookingID)

		assert.Equal(t, slot.StatusBooked.String(), views[1].Status)
		require.NotNil(t, views[1].HolderID)
		assert.Equal(t, holderID, *views[1].HolderID)

		assert.Equal(t, slot.StatusAvailable.String(), views[2].Status)
	})

	t.Run("own booking renders available when editing", func(t *testing.T) {
		confirmed, timer, q := newAvailabilityFixture(t)
		c := searchCriteria(1)
		c.BookingID = uuid.New()

		confirmed.EXPECT().FindConfirmedSlots(gomock.Any(), c).Return([]slot.ConfirmedSlot{
			{Descriptor: c.DescriptorFor(c.StartDate), BookingID: c.BookingID},
		}, nil)
		timer.EXPECT().FindActiveHolds(gomock.Any(), c).Return(nil, nil)

		views, err := q.SlotAvailability(context.Background(), c, requesterID)
		require.NoError(t, err)
		assert.Equal(t, slot.StatusAvailable.String(), views[0].Status)
	})

	t.Run("timer request claims only selectable cells", func(t *testing.T) {
		confirmed, timer, q := newAvailabilityFixture(t)
		c := searchCriteria(2)
		c.IsTimerRequired = true
		bookingID := uuid.New()

		confirmed.EXPECT().FindConfirmedSlots(gomock.Any(), c).Return([]slot.ConfirmedSlot{
			{Descriptor: c.DescriptorFor(c.StartDate), BookingID: bookingID},
		}, nil)
		timer.EXPECT().FindActiveHolds(gomock.Any(), c).Return(nil, nil)
		timer.EXPECT().AcquireHolds(gomock.Any(), requesterID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, cells []slot.Availability) error {
				require.Len(t, cells, 1)
				assert.True(t, cells[0].BookingDate.Equal(c.StartDate.AddDays(1)))
				return nil
			})

		_, err := q.SlotAvailability(context.Background(), c, requesterID)
		require.NoError(t, err)
	})

	t.Run("over-long range is rejected before any store call", func(t *testing.T) {
		_, _, q := newAvailabilityFixture(t)
		c := searchCriteria(slot.MaxBookingDays + 1)

		_, err := q.SlotAvailability(context.Background(), c, requesterID)
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})

	t.Run("inverted range yields an empty result without error", func(t *testing.T) {
		confirmed, timer, q := newAvailabilityFixture(t)
		c := searchCriteria(1)
		c.StartDate = c.EndDate.AddDays(5)

		confirmed.EXPECT().FindConfirmedSlots(gomock.Any(), c).Return(nil, nil)
		timer.EXPECT().FindActiveHolds(gomock.Any(), c).Return(nil, nil)

		views, err := q.SlotAvailability(context.Background(), c, requesterID)
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}
