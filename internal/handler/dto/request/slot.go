package request

import (
	"adslot-booking/internal/domain/slot"

	"github.com/google/uuid"
)

type SlotSearchRequest struct {
	TenantID         string  `json:"tenantId" binding:"required"`
	AdType           string  `json:"adType" binding:"required"`
	Location         string  `json:"location" binding:"required"`
	FaceArea         string  `json:"faceArea" binding:"required"`
	NightLight       bool    `json:"nightLight"`
	BookingStartDate string  `json:"bookingStartDate" binding:"required"`
	BookingEndDate   string  `json:"bookingEndDate" binding:"required"`
	BookingID        *string `json:"bookingId,omitempty"`
	IsTimerRequired  bool    `json:"isTimerRequired"`
}

func (r SlotSearchRequest) ToCriteria() (slot.Criteria, error) {
	start, err := slot.ParseDate(r.BookingStartDate)
	if err != nil {
		return slot.Criteria{}, err
	}
	end, err := slot.ParseDate(r.BookingEndDate)
	if err != nil {
		return slot.Criteria{}, err
	}

	bookingID := uuid.Nil
	if r.BookingID != nil && *r.BookingID != "" {
		bookingID, err = uuid.Parse(*r.BookingID)
		if err != nil {
			return slot.Criteria{}, err
		}
	}

	return slot.Criteria{
		TenantID:        r.TenantID,
		AdType:          r.AdType,
		Location:        r.Location,
		FaceArea:        r.FaceArea,
		NightLight:      r.NightLight,
		StartDate:       start,
		EndDate:         end,
		BookingID:       bookingID,
		IsTimerRequired: r.IsTimerRequired,
	}, nil
}
