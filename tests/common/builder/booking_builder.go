//go:build unit || e2e

package builder

import (
	"time"

	reqdto "adslot-booking/internal/handler/dto/request"
	"adslot-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	BookingNo       string
	TenantID        string
	ApplicantName   string
	ApplicantMobile string
	Status          string
	AdType          string
	Location        string
	FaceArea        string
	NightLight      bool
	BookingDate     string
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:              uuid.New(),
		BookingNo:       "ADV-PG-20260601-A1B2C3D4",
		TenantID:        "pg.citya",
		ApplicantName:   "Asha Verma",
		ApplicantMobile: "9999999999",
		Status:          "PENDING_FOR_PAYMENT",
		AdType:          "Hoarding",
		Location:        "Main Road",
		FaceArea:        "20x10",
		NightLight:      true,
		BookingDate:     "2026-06-10",
		CreatedBy:       uuid.New(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		TenantID:      b.TenantID,
		ApplicantName: b.ApplicantName,
		MobileNumber:  b.ApplicantMobile,
		Slots: []reqdto.SlotRequest{{
			AdType:      b.AdType,
			Location:    b.Location,
			FaceArea:    b.FaceArea,
			NightLight:  b.NightLight,
			BookingDate: b.BookingDate,
		}},
	}
}

func (b *BookingBuilder) BuildSlotSearchRequestDTO() reqdto.SlotSearchRequest {
	return reqdto.SlotSearchRequest{
		TenantID:         b.TenantID,
		AdType:           b.AdType,
		Location:         b.Location,
		FaceArea:         b.FaceArea,
		NightLight:       b.NightLight,
		BookingStartDate: b.BookingDate,
		BookingEndDate:   b.BookingDate,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID,
		BookingNo:       b.BookingNo,
		TenantID:        b.TenantID,
		ApplicantName:   b.ApplicantName,
		ApplicantMobile: b.ApplicantMobile,
		Status:          b.Status,
		CreatedBy:       b.CreatedBy,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
		Slots: []queries.BookingSlotView{{
			AdType:      b.AdType,
			Location:    b.Location,
			FaceArea:    b.FaceArea,
			NightLight:  b.NightLight,
			BookingDate: b.BookingDate,
			TenantID:    b.TenantID,
		}},
	}
}

func (b *BookingBuilder) BuildAvailabilityView(status string) queries.SlotAvailabilityView {
	return queries.SlotAvailabilityView{
		AdType:      b.AdType,
		Location:    b.Location,
		FaceArea:    b.FaceArea,
		NightLight:  b.NightLight,
		TenantID:    b.TenantID,
		BookingDate: b.BookingDate,
		Status:      status,
	}
}
