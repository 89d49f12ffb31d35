package request

import (
	"time"

	"adslot-booking/internal/domain/slot"
	"adslot-booking/internal/usecase/commands"
	"adslot-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotRequest struct {
	AdType      string `json:"adType" binding:"required"`
	Location    string `json:"location" binding:"required"`
	FaceArea    string `json:"faceArea" binding:"required"`
	NightLight  bool   `json:"nightLight"`
	BookingDate string `json:"bookingDate" binding:"required"`
}

type CreateBookingRequest struct {
	TenantID      string        `json:"tenantId" binding:"required"`
	ApplicantName string        `json:"applicantName" binding:"required"`
	MobileNumber  string        `json:"mobileNumber" binding:"required"`
	DraftID       *uuid.UUID    `json:"draftId,omitempty"`
	Slots         []SlotRequest `json:"cartDetails" binding:"required,min=1,dive"`
}

func (r CreateBookingRequest) ToParams() (commands.CreateBookingParams, error) {
	slots, err := toSlotParams(r.Slots)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}
	return commands.CreateBookingParams{
		TenantID:        r.TenantID,
		ApplicantName:   r.ApplicantName,
		ApplicantMobile: r.MobileNumber,
		Slots:           slots,
		DraftID:         r.DraftID,
	}, nil
}

type PaymentRequest struct {
	ReceiptNo string    `json:"receiptNo" binding:"required"`
	PaidAt    time.Time `json:"paidAt" binding:"required"`
}

type UpdateBookingRequest struct {
	PermissionLetterFileID string          `json:"permissionLetterFilestoreId,omitempty"`
	PaymentReceiptFileID   string          `json:"paymentReceiptFilestoreId,omitempty"`
	Payment                *PaymentRequest `json:"payment,omitempty"`
}

func (r UpdateBookingRequest) ToParams(bookingNo string) commands.UpdateBookingParams {
	params := commands.UpdateBookingParams{
		BookingNo:              bookingNo,
		PermissionLetterFileID: r.PermissionLetterFileID,
		PaymentReceiptFileID:   r.PaymentReceiptFileID,
	}
	if r.Payment != nil {
		params.Payment = &commands.PaymentDetail{
			ReceiptNo: r.Payment.ReceiptNo,
			PaidAt:    r.Payment.PaidAt,
		}
	}
	return params
}

type SearchBookingsQuery struct {
	TenantID      string `form:"tenantId"`
	BookingNo     string `form:"bookingNo"`
	ApplicantName string `form:"applicantName"`
	MobileNumber  string `form:"mobileNumber"`
	Status        string `form:"status"`
	FromDate      string `form:"fromDate"`
	ToDate        string `form:"toDate"`
	Limit         int32  `form:"limit,default=50"`
	Offset        int32  `form:"offset"`
}

func (q SearchBookingsQuery) ToCriteria() (queries.BookingSearchCriteria, error) {
	c := queries.BookingSearchCriteria{
		TenantID:      q.TenantID,
		BookingNo:     q.BookingNo,
		ApplicantName: q.ApplicantName,
		MobileNumber:  q.MobileNumber,
		Status:        q.Status,
		Limit:         q.Limit,
		Offset:        q.Offset,
	}
	if q.FromDate != "" {
		from, err := slot.ParseDate(q.FromDate)
		if err != nil {
			return c, err
		}
		t := from.Time()
		c.FromDate = &t
	}
	if q.ToDate != "" {
		to, err := slot.ParseDate(q.ToDate)
		if err != nil {
			return c, err
		}
		// Inclusive upper bound: cover the whole day.
		t := to.Time().Add(24*time.Hour - time.Nanosecond)
		c.ToDate = &t
	}
	return c, nil
}

func toSlotParams(slots []SlotRequest) ([]commands.SlotParams, error) {
	params := make([]commands.SlotParams, len(slots))
	for i, s := range slots {
		date, err := slot.ParseDate(s.BookingDate)
		if err != nil {
			return nil, err
		}
		params[i] = commands.SlotParams{
			AdType:      s.AdType,
			Location:    s.Location,
			FaceArea:    s.FaceArea,
			NightLight:  s.NightLight,
			BookingDate: date,
		}
	}
	return params, nil
}
