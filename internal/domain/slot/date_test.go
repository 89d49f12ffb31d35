//go:build unit

package slot_test

import (
	"testing"
	"time"

	"adslot-booking/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := slot.ParseDate("2026-03-15")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-15", d.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := slot.ParseDate("15/03/2026")
		assert.Error(t, err)
	})
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2026, time.March, 15, 18, 42, 7, 0, time.FixedZone("IST", 19800))
	assert.Equal(t, "2026-03-15", slot.DateOf(ts).String())
}

func TestExpandRange(t *testing.T) {
	tests := []struct {
		name      string
		start     slot.Date
		end       slot.Date
		wantDays  int
		wantErrIs error
	}{
		{
			name:     "single day",
			start:    slot.NewDate(2026, time.January, 1),
			end:      slot.NewDate(2026, time.January, 1),
			wantDays: 1,
		},
		{
			name:     "three days inclusive",
			start:    slot.NewDate(2026, time.January, 1),
			end:      slot.NewDate(2026, time.January, 3),
			wantDays: 3,
		},
		{
			name:     "start after end yields empty sequence",
			start:    slot.NewDate(2026, time.January, 5),
			end:      slot.NewDate(2026, time.January, 1),
			wantDays: 0,
		},
		{
			name:     "maximum span accepted",
			start:    slot.NewDate(2026, time.January, 1),
			end:      slot.NewDate(2026, time.January, 1).AddDays(slot.MaxBookingDays - 1),
			wantDays: slot.MaxBookingDays,
		},
		{
			name:      "one day over the maximum rejected",
			start:     slot.NewDate(2026, time.January, 1),
			end:       slot.NewDate(2026, time.January, 1).AddDays(slot.MaxBookingDays),
			wantErrIs: slot.ErrDateRangeTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, err := slot.ExpandRange(tt.start, tt.end)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)
			assert.Len(t, dates, tt.wantDays)
			if tt.wantDays > 0 {
				assert.True(t, dates[0].Equal(tt.start))
				assert.True(t, dates[len(dates)-1].Equal(tt.end))
			}
		})
	}

	t.Run("month boundary is crossed correctly", func(t *testing.T) {
		dates, err := slot.ExpandRange(
			slot.NewDate(2026, time.January, 30),
			slot.NewDate(2026, time.February, 2),
		)
		require.NoError(t, err)
		require.Len(t, dates, 4)
		assert.Equal(t, "2026-01-31", dates[1].String())
		assert.Equal(t, "2026-02-01", dates[2].String())
	})
}
