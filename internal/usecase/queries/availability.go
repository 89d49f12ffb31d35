package queries

import (
	"context"
	"errors"

	"adslot-booking/internal/domain/slot"
	"adslot-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ConfirmedSlotReadStore interface {
	FindConfirmedSlots(ctx context.Context, c slot.Criteria) ([]slot.ConfirmedSlot, error)
}

type TimerHoldStore interface {
	FindActiveHolds(ctx context.Context, c slot.Criteria) ([]slot.Hold, error)
	AcquireHolds(ctx context.Context, holderID uuid.UUID, cells []slot.Availability) error
}

type AvailabilityQueries interface {
	SlotAvailability(ctx context.Context, c slot.Criteria, requesterID uuid.UUID) ([]SlotAvailabilityView, error)
}

type availabilityQueriesImpl struct {
	confirmedStore ConfirmedSlotReadStore
	timerStore     TimerHoldStore
}

func NewAvailabilityQueries(confirmedStore ConfirmedSlotReadStore, timerStore TimerHoldStore) AvailabilityQueries {
	return &availabilityQueriesImpl{
		confirmedStore: confirmedStore,
		timerStore:     timerStore,
	}
}

// SlotAvailability computes exactly one status per calendar day of the
// searched range: the baseline grid, overlaid with confirmed bookings, then
// with active payment-timer holds. When the criteria asks for a timer, the
// cells still available to the requester are claimed before returning.
func (q *availabilityQueriesImpl) SlotAvailability(
	ctx context.Context,
	c slot.Criteria,
	requesterID uuid.UUID,
) ([]SlotAvailabilityView, error) {
	dates, err := slot.ExpandRange(c.StartDate, c.EndDate)
	if err != nil {
		if errors.Is(err, slot.ErrDateRangeTooLong) {
			return nil, errs.Mark(err, errs.ErrInvalidDateRange)
		}
		return nil, err
	}

	grid := slot.BuildGrid(c, dates)

	booked, err := q.confirmedStore.FindConfirmedSlots(ctx, c)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load confirmed slots")
	}
	grid = slot.MergeConfirmed(grid, booked, c.BookingID)

	holds, err := q.timerStore.FindActiveHolds(ctx, c)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load active timer holds")
	}
	grid = slot.MergeHolds(grid, holds, requesterID)

	if c.IsTimerRequired {
		if err := q.timerStore.AcquireHolds(ctx, requesterID, selectable(grid)); err != nil {
			return nil, errs.Wrap(err, "failed to acquire timer holds")
		}
	}

	views := make([]SlotAvailabilityView, len(grid))
	for i, cell := range grid {
		views[i] = toSlotAvailabilityView(cell)
	}
	return views, nil
}

// selectable returns the cells a requester may still act on.
func selectable(grid []slot.Availability) []slot.Availability {
	cells := make([]slot.Availability, 0, len(grid))
	for _, cell := range grid {
		if cell.Status == slot.StatusAvailable {
			cells = append(cells, cell)
		}
	}
	return cells
}

func toSlotAvailabilityView(cell slot.Availability) SlotAvailabilityView {
	view := SlotAvailabilityView{
		AdType:      cell.AdType,
		Location:    cell.Location,
		FaceArea:    cell.FaceArea,
		NightLight:  cell.NightLight,
		TenantID:    cell.TenantID,
		BookingDate: cell.BookingDate.String(),
		Status:      cell.Status.String(),
	}
	if cell.BookingID != uuid.Nil {
		id := cell.BookingID
		view.BookingID = &id
	}
	if cell.HolderID != uuid.Nil {
		id := cell.HolderID
		view.HolderID = &id
	}
	return view
}
