package response

import (
	"time"

	"adslot-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingSlotResponse struct {
	AdType      string `json:"adType"`
	Location    string `json:"location"`
	FaceArea    string `json:"faceArea"`
	NightLight  bool   `json:"nightLight"`
	BookingDate string `json:"bookingDate"`
	TenantID    string `json:"tenantId"`
}

type BookingResponse struct {
	ID                     uuid.UUID             `json:"id"`
	BookingNo              string                `json:"bookingNo,omitempty"`
	DraftID                *uuid.UUID            `json:"draftId,omitempty"`
	TenantID               string                `json:"tenantId"`
	ApplicantName          string                `json:"applicantName"`
	ApplicantMobile        string                `json:"applicantMobile"`
	Status                 string                `json:"status"`
	ReceiptNo              *string               `json:"receiptNo,omitempty"`
	PaymentDate            *time.Time            `json:"paymentDate,omitempty"`
	PermissionLetterFileID *string               `json:"permissionLetterFilestoreId,omitempty"`
	PaymentReceiptFileID   *string               `json:"paymentReceiptFilestoreId,omitempty"`
	CreatedBy              uuid.UUID             `json:"createdBy"`
	CreatedAt              time.Time             `json:"createdAt"`
	UpdatedAt              time.Time             `json:"updatedAt"`
	Slots                  []BookingSlotResponse `json:"slots"`
}

type BookingSearchResponse struct {
	Bookings   []*BookingResponse `json:"bookings"`
	TotalCount int                `json:"totalCount"`
}

func FromBookingView(view *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingResponse, error) {
	resp := make([]*BookingResponse, len(views))
	for i, view := range views {
		r, err := FromBookingView(view)
		if err != nil {
			return nil, err
		}
		resp[i] = r
	}
	return resp, nil
}
