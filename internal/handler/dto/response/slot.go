package response

import (
	"adslot-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotAvailabilityResponse struct {
	AdType      string     `json:"adType"`
	Location    string     `json:"location"`
	FaceArea    string     `json:"faceArea"`
	NightLight  bool       `json:"nightLight"`
	TenantID    string     `json:"tenantId"`
	BookingDate string     `json:"bookingDate"`
	Status      string     `json:"slotStatus"`
	BookingID   *uuid.UUID `json:"bookingId,omitempty"`
	HolderID    *uuid.UUID `json:"uuid,omitempty"`
}

func FromSlotAvailabilityViews(views []queries.SlotAvailabilityView) ([]SlotAvailabilityResponse, error) {
	resp := make([]SlotAvailabilityResponse, 0, len(views))
	if err := copier.Copy(&resp, views); err != nil {
		return nil, err
	}
	return resp, nil
}
