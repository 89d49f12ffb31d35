package commands

import (
	"context"
	"log/slog"
	"time"

	"adslot-booking/internal/domain/booking"
	"adslot-booking/internal/domain/slot"
	"adslot-booking/internal/infra"
	"adslot-booking/internal/pkg/clock"
	"adslot-booking/internal/pkg/errs"
	"adslot-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotParams struct {
	AdType      string
	Location    string
	FaceArea    string
	NightLight  bool
	BookingDate slot.Date
}

type CreateBookingParams struct {
	TenantID        string
	ApplicantName   string
	ApplicantMobile string
	Slots           []SlotParams
	DraftID         *uuid.UUID
}

type PaymentDetail struct {
	ReceiptNo string
	PaidAt    time.Time
}

type UpdateBookingParams struct {
	BookingNo              string
	PermissionLetterFileID string
	PaymentReceiptFileID   string
	Payment                *PaymentDetail
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams, userID uuid.UUID) (*queries.BookingView, error)
	// Update queues the merged booking for asynchronous persistence.
	Update(ctx context.Context, params UpdateBookingParams) (*queries.BookingView, error)
	// UpdateSynchronously persists the merged booking before returning, for
	// callers that must observe the write (payment confirmation).
	UpdateSynchronously(ctx context.Context, params UpdateBookingParams) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookingRepo BookingRepository
	draftRepo   DraftRepository
	persister   UpdatePersister
	timerBinder TimerHoldBinder
	mdms        MasterDataService
	encryptor   PIIEncryptor
	demand      DemandService
	clock       clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	draftRepo DraftRepository,
	persister UpdatePersister,
	timerBinder TimerHoldBinder,
	mdms MasterDataService,
	encryptor PIIEncryptor,
	demand DemandService,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo: bookingRepo,
		draftRepo:   draftRepo,
		persister:   persister,
		timerBinder: timerBinder,
		mdms:        mdms,
		encryptor:   encryptor,
		demand:      demand,
		clock:       clock,
	}
}

// Create validates and persists a new booking in the payment-pending state,
// binds the caller's timer holds to it, and consumes the originating draft.
func (c *bookingCommandsImpl) Create(
	ctx context.Context,
	params CreateBookingParams,
	userID uuid.UUID,
) (*queries.BookingView, error) {
	tenant, err := booking.NewTenantID(params.TenantID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTenant)
	}

	mdmsData, err := c.mdms.Fetch(ctx, tenant.Root())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrMasterDataUnavailable)
	}
	if err := validateSlotsAgainstMasterData(params.Slots, mdmsData); err != nil {
		return nil, err
	}

	applicant := booking.NewApplicant(params.ApplicantName, params.ApplicantMobile)
	encrypted, err := c.encryptor.EncryptApplicant(applicant)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrEncryptionFailed)
	}

	entity, err := booking.NewBooking(
		tenant,
		encrypted,
		toDescriptors(params.Slots, params.TenantID),
		userID,
		params.DraftID,
		c.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := c.demand.CreateDemand(ctx, entity); err != nil {
		return nil, errs.Wrap(err, "failed to create demand")
	}

	if err := c.bookingRepo.Insert(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := c.timerBinder.BindBooking(ctx, userID, entity.ID(), entity.BookingNo()); err != nil {
		// The booking exists; a lost binding only shortens the hold window.
		slog.Warn("failed to bind timer holds to booking",
			"booking_no", entity.BookingNo(), "error", err.Error())
	}

	if params.DraftID != nil {
		slog.Info("deleting consumed draft", "draft_id", params.DraftID.String())
		if err := c.draftRepo.Delete(ctx, *params.DraftID); err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	return c.toDecryptedView(entity)
}

func (c *bookingCommandsImpl) Update(
	ctx context.Context,
	params UpdateBookingParams,
) (*queries.BookingView, error) {
	entity, err := c.mergeUpdate(ctx, params)
	if err != nil {
		return nil, err
	}

	if err := c.persister.EnqueueBookingUpdate(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrPersisterOperationFailed)
	}

	return c.toDecryptedView(entity)
}

func (c *bookingCommandsImpl) UpdateSynchronously(
	ctx context.Context,
	params UpdateBookingParams,
) (*queries.BookingView, error) {
	entity, err := c.mergeUpdate(ctx, params)
	if err != nil {
		return nil, err
	}

	if err := c.bookingRepo.UpdateSynchronously(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.toDecryptedView(entity)
}

// mergeUpdate loads the stored booking by number and folds the incoming
// request into it: file references fill only when empty, and a payment
// detail stamps the receipt and confirms the booking.
func (c *bookingCommandsImpl) mergeUpdate(
	ctx context.Context,
	params UpdateBookingParams,
) (*booking.Booking, error) {
	entity, err := c.bookingRepo.FindByBookingNo(ctx, params.BookingNo)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Wrap(err, "failed to load booking for update")
	}

	now := c.clock.Now()
	entity.ApplyFileRefs(params.PermissionLetterFileID, params.PaymentReceiptFileID, now)

	if params.Payment != nil {
		if err := entity.StampPayment(params.Payment.ReceiptNo, params.Payment.PaidAt, now); err != nil {
			return nil, err
		}
	}

	return entity, nil
}

func (c *bookingCommandsImpl) toDecryptedView(entity *booking.Booking) (*queries.BookingView, error) {
	decrypted, err := c.encryptor.DecryptApplicant(entity.Applicant())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrEncryptionFailed)
	}
	return toBookingView(entity, decrypted), nil
}

func validateSlotsAgainstMasterData(slots []SlotParams, md MasterDataSnapshot) error {
	for _, s := range slots {
		if !md.HasAdType(s.AdType) || !md.HasLocation(s.Location) || !md.HasFaceArea(s.FaceArea) {
			return errs.Mark(
				errs.New("slot descriptor not present in master data"),
				errs.ErrMasterDataValidation,
			)
		}
	}
	return nil
}

func toDescriptors(slots []SlotParams, tenantID string) []slot.Descriptor {
	descriptors := make([]slot.Descriptor, len(slots))
	for i, s := range slots {
		descriptors[i] = slot.Descriptor{
			AdType:      s.AdType,
			Location:    s.Location,
			FaceArea:    s.FaceArea,
			NightLight:  s.NightLight,
			BookingDate: s.BookingDate,
			TenantID:    tenantID,
		}
	}
	return descriptors
}

func toBookingView(b *booking.Booking, applicant booking.Applicant) *queries.BookingView {
	view := &queries.BookingView{
		ID:              b.ID(),
		BookingNo:       b.BookingNo(),
		DraftID:         b.DraftID(),
		TenantID:        b.Tenant().String(),
		ApplicantName:   applicant.Name(),
		ApplicantMobile: applicant.Mobile(),
		Status:          b.Status().String(),
		PaymentDate:     b.PaymentDate(),
		CreatedBy:       b.CreatedBy(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
	if v := b.ReceiptNo(); v != "" {
		view.ReceiptNo = &v
	}
	if v := b.PermissionLetterFileID(); v != "" {
		view.PermissionLetterFileID = &v
	}
	if v := b.PaymentReceiptFileID(); v != "" {
		view.PaymentReceiptFileID = &v
	}
	view.Slots = make([]queries.BookingSlotView, len(b.Slots()))
	for i, d := range b.Slots() {
		view.Slots[i] = queries.BookingSlotView{
			AdType:      d.AdType,
			Location:    d.Location,
			FaceArea:    d.FaceArea,
			NightLight:  d.NightLight,
			BookingDate: d.BookingDate.String(),
			TenantID:    d.TenantID,
		}
	}
	return view
}
