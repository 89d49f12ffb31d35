package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SlotAvailabilityView struct {
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

type BookingSlotView struct {
	AdType      string `json:"adType"`
	Location    string `json:"location"`
	FaceArea    string `json:"faceArea"`
	NightLight  bool   `json:"nightLight"`
	BookingDate string `json:"bookingDate"`
	TenantID    string `json:"tenantId"`
}

type BookingView struct {
	ID                     uuid.UUID         `json:"id"`
	BookingNo              string            `json:"bookingNo,omitempty"`
	DraftID                *uuid.UUID        `json:"draftId,omitempty"`
	TenantID               string            `json:"tenantId"`
	ApplicantName          string            `json:"applicantName"`
	ApplicantMobile        string            `json:"applicantMobile"`
	Status                 string            `json:"status"`
	ReceiptNo              *string           `json:"receiptNo,omitempty"`
	PaymentDate            *time.Time        `json:"paymentDate,omitempty"`
	PermissionLetterFileID *string           `json:"permissionLetterFilestoreId,omitempty"`
	PaymentReceiptFileID   *string           `json:"paymentReceiptFilestoreId,omitempty"`
	CreatedBy              uuid.UUID         `json:"createdBy"`
	CreatedAt              time.Time         `json:"createdAt"`
	UpdatedAt              time.Time         `json:"updatedAt"`
	Slots                  []BookingSlotView `json:"slots"`
}

// BookingSearchCriteria filters booking searches. Name and mobile are
// matched against encrypted columns and must be encrypted before querying.
type BookingSearchCriteria struct {
	TenantID      string
	BookingNo     string
	ApplicantName string
	MobileNumber  string
	Status        string
	FromDate      *time.Time
	ToDate        *time.Time
	Limit         int32
	Offset        int32
}
