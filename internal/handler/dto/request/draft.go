package request

import (
	"adslot-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// SaveDraftRequest accepts partial applications: only the tenant is
// mandatory, everything else may arrive on a later save.
type SaveDraftRequest struct {
	TenantID      string        `json:"tenantId" binding:"required"`
	ApplicantName string        `json:"applicantName"`
	MobileNumber  string        `json:"mobileNumber"`
	DraftID       *uuid.UUID    `json:"draftId,omitempty"`
	Slots         []SlotRequest `json:"cartDetails" binding:"dive"`
}

func (r SaveDraftRequest) ToParams() (commands.SaveDraftParams, error) {
	slots, err := toSlotParams(r.Slots)
	if err != nil {
		return commands.SaveDraftParams{}, err
	}
	return commands.SaveDraftParams{
		TenantID:        r.TenantID,
		ApplicantName:   r.ApplicantName,
		ApplicantMobile: r.MobileNumber,
		Slots:           slots,
		DraftID:         r.DraftID,
	}, nil
}
