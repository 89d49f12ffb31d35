package commands

import (
	"context"
	"log/slog"

	"adslot-booking/internal/domain/booking"
	"adslot-booking/internal/domain/slot"
	"adslot-booking/internal/infra"
	"adslot-booking/internal/pkg/clock"
	"adslot-booking/internal/pkg/errs"
	"adslot-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SaveDraftParams struct {
	TenantID        string
	ApplicantName   string
	ApplicantMobile string
	Slots           []SlotParams
	DraftID         *uuid.UUID
}

type DraftCommands interface {
	// Save updates the draft in place when a draft id is supplied; otherwise
	// it inserts a new draft only if the user has none yet (insert-or-skip).
	Save(ctx context.Context, params SaveDraftParams, userID uuid.UUID) (*queries.BookingView, error)
	// Delete discards a draft; a blank or already-deleted draft is a no-op.
	Delete(ctx context.Context, draftID string) error
}

type draftCommandsImpl struct {
	draftRepo DraftRepository
	encryptor PIIEncryptor
	clock     clock.Clock
}

func NewDraftCommands(draftRepo DraftRepository, encryptor PIIEncryptor, clock clock.Clock) DraftCommands {
	return &draftCommandsImpl{
		draftRepo: draftRepo,
		encryptor: encryptor,
		clock:     clock,
	}
}

func (c *draftCommandsImpl) Save(
	ctx context.Context,
	params SaveDraftParams,
	userID uuid.UUID,
) (*queries.BookingView, error) {
	tenant, err := booking.NewTenantID(params.TenantID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTenant)
	}

	applicant := booking.NewApplicant(params.ApplicantName, params.ApplicantMobile)
	encrypted, err := c.encryptor.EncryptApplicant(applicant)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrEncryptionFailed)
	}
	descriptors := toDescriptors(params.Slots, params.TenantID)

	if params.DraftID != nil {
		return c.updateExisting(ctx, *params.DraftID, encrypted, descriptors)
	}

	entity := booking.NewDraft(tenant, encrypted, descriptors, userID, c.clock.Now())

	liveDraftID, err := c.draftRepo.FindLiveDraftID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if liveDraftID == nil {
		if err := c.draftRepo.Insert(ctx, entity); err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	} else {
		// One live draft per user: a concurrent or earlier draft wins and the
		// insert is skipped.
		slog.Info("user already owns a live draft, skipping insert",
			"user_id", userID.String(), "draft_id", liveDraftID.String())
	}

	return c.toDecryptedView(entity)
}

func (c *draftCommandsImpl) updateExisting(
	ctx context.Context,
	draftID uuid.UUID,
	applicant booking.Applicant,
	descriptors []slot.Descriptor,
) (*queries.BookingView, error) {
	entity, err := c.draftRepo.FindByID(ctx, draftID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Wrap(err, "failed to load draft for update")
	}

	entity.UpdateDraftContents(applicant, descriptors, c.clock.Now())
	if err := c.draftRepo.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c.toDecryptedView(entity)
}

func (c *draftCommandsImpl) Delete(ctx context.Context, draftID string) error {
	if draftID == "" {
		return nil
	}
	id, err := uuid.Parse(draftID)
	if err != nil {
		return errs.Wrap(err, "invalid draft id")
	}

	slog.Info("deleting draft entry", "draft_id", draftID)
	if err := c.draftRepo.Delete(ctx, id); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *draftCommandsImpl) toDecryptedView(entity *booking.Booking) (*queries.BookingView, error) {
	decrypted, err := c.encryptor.DecryptApplicant(entity.Applicant())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrEncryptionFailed)
	}
	return toBookingView(entity, decrypted), nil
}
