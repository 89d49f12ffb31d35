package writerepo

import (
	"context"
	"time"

	"adslot-booking/internal/domain/booking"
	"adslot-booking/internal/infra"
	"adslot-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DraftRepository stores drafts as DRAFT-status rows in the booking tables,
// keyed additionally by draft_id and owning user.
type DraftRepository struct {
	pool *pgxpool.Pool
}

func NewDraftRepository(pool *pgxpool.Pool) *DraftRepository {
	return &DraftRepository{pool: pool}
}

func (r *DraftRepository) Insert(ctx context.Context, b *booking.Booking) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertBookingSQL, bookingArgs(b)...); err != nil {
			return infra.WrapRepoErr("failed to insert draft", err)
		}
		return insertSlots(ctx, tx, b.ID(), b.Slots())
	})
}

func (r *DraftRepository) Update(ctx context.Context, b *booking.Booking) error {
	const query = `
		UPDATE adv_booking SET
			applicant_name = $2, applicant_mobile = $3, updated_at = $4
		WHERE draft_id = $1 AND status = $5`

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query,
			b.DraftID(),
			b.Applicant().Name(),
			b.Applicant().Mobile(),
			b.UpdatedAt(),
			booking.StatusDraft.String(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to update draft", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr("draft not found for update", pgx.ErrNoRows, infra.KindNotFound)
		}

		// Slots are replaced wholesale; a draft edit may change any of them.
		if _, err := tx.Exec(ctx,
			`DELETE FROM adv_booking_slot WHERE booking_id = $1`, b.ID()); err != nil {
			return infra.WrapRepoErr("failed to clear draft slots", err)
		}
		return insertSlots(ctx, tx, b.ID(), b.Slots())
	})
}

// Delete removes a draft and its slots. Deleting an absent draft id affects
// zero rows and is not an error.
func (r *DraftRepository) Delete(ctx context.Context, draftID uuid.UUID) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			DELETE FROM adv_booking_slot
			WHERE booking_id IN (
				SELECT id FROM adv_booking WHERE draft_id = $1 AND status = $2
			)`, draftID, booking.StatusDraft.String()); err != nil {
			return infra.WrapRepoErr("failed to delete draft slots", err)
		}
		if _, err := tx.Exec(ctx,
			`DELETE FROM adv_booking WHERE draft_id = $1 AND status = $2`,
			draftID, booking.StatusDraft.String()); err != nil {
			return infra.WrapRepoErr("failed to delete draft", err)
		}
		return nil
	})
}

func (r *DraftRepository) FindByID(ctx context.Context, draftID uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, draft_id, tenant_id, applicant_name, applicant_mobile,
		       status, created_by, created_at, updated_at
		FROM adv_booking
		WHERE draft_id = $1 AND status = $2`

	var (
		id              uuid.UUID
		storedDraftID   pgtype.UUID
		tenantID        string
		applicantName   string
		applicantMobile string
		status          string
		createdBy       uuid.UUID
		createdAt       time.Time
		updatedAt       time.Time
	)
	err := r.pool.QueryRow(ctx, query, draftID, booking.StatusDraft.String()).Scan(
		&id, &storedDraftID, &tenantID, &applicantName, &applicantMobile,
		&status, &createdBy, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("draft not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find draft", err)
	}

	bookingRepo := BookingRepository{pool: r.pool}
	slots, err := bookingRepo.findSlots(ctx, id)
	if err != nil {
		return nil, err
	}

	tenant, err := booking.NewTenantID(tenantID)
	if err != nil {
		return nil, infra.WrapRepoErr("stored draft has malformed tenant id", err)
	}

	return booking.Reconstruct(
		id,
		"",
		pgconv.UUIDPtrFromPgtype(storedDraftID),
		tenant,
		booking.NewApplicant(applicantName, applicantMobile),
		slots,
		booking.Status(status),
		"",
		nil,
		"",
		"",
		createdBy,
		createdAt,
		updatedAt,
	), nil
}

// FindLiveDraftID returns the draft id of the user's current draft, or nil.
// The schema backs this with a partial unique index on (created_by) for
// DRAFT rows, so the check-then-insert in the usecase cannot produce twins.
func (r *DraftRepository) FindLiveDraftID(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	const query = `
		SELECT draft_id FROM adv_booking
		WHERE created_by = $1 AND status = $2
		LIMIT 1`

	var draftID pgtype.UUID
	err := r.pool.QueryRow(ctx, query, userID, booking.StatusDraft.String()).Scan(&draftID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to look up live draft", err)
	}
	return pgconv.UUIDPtrFromPgtype(draftID), nil
}
