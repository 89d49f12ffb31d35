package writerepo

import (
	"context"
	"time"

	"adslot-booking/internal/domain/booking"
	"adslot-booking/internal/domain/slot"
	"adslot-booking/internal/infra"
	"adslot-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

const insertBookingSQL = `
	INSERT INTO adv_booking (
		id, booking_no, draft_id, tenant_id, applicant_name, applicant_mobile,
		status, receipt_no, payment_date, permission_letter_file_id,
		payment_receipt_file_id, created_by, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

const insertSlotSQL = `
	INSERT INTO adv_booking_slot (
		id, booking_id, ad_type, location, face_area, night_light,
		booking_date, tenant_id
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertBookingSQL, bookingArgs(b)...); err != nil {
			return infra.WrapRepoErr("failed to insert booking", err)
		}
		return insertSlots(ctx, tx, b.ID(), b.Slots())
	})
}

// UpdateSynchronously persists the booking inside a transaction; the caller
// observes the committed state on return.
func (r *BookingRepository) UpdateSynchronously(ctx context.Context, b *booking.Booking) error {
	const query = `
		UPDATE adv_booking SET
			status = $2, receipt_no = $3, payment_date = $4,
			permission_letter_file_id = $5, payment_receipt_file_id = $6,
			updated_at = $7
		WHERE id = $1`

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query,
			b.ID(),
			b.Status().String(),
			pgconv.NullableStringToPgtype(b.ReceiptNo()),
			pgconv.TimePtrToPgtype(b.PaymentDate()),
			pgconv.NullableStringToPgtype(b.PermissionLetterFileID()),
			pgconv.NullableStringToPgtype(b.PaymentReceiptFileID()),
			b.UpdatedAt(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to update booking", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr("booking not found for update", pgx.ErrNoRows, infra.KindNotFound)
		}
		return nil
	})
}

func (r *BookingRepository) FindByBookingNo(ctx context.Context, bookingNo string) (*booking.Booking, error) {
	const query = `
		SELECT id, booking_no, draft_id, tenant_id, applicant_name,
		       applicant_mobile, status, receipt_no, payment_date,
		       permission_letter_file_id, payment_receipt_file_id,
		       created_by, created_at, updated_at
		FROM adv_booking
		WHERE booking_no = $1`

	var (
		id                 uuid.UUID
		no                 pgtype.Text
		draftID            pgtype.UUID
		tenantID           string
		applicantName      string
		applicantMobile    string
		status             string
		receiptNo          pgtype.Text
		paymentDate        pgtype.Timestamptz
		permissionLetterID pgtype.Text
		paymentReceiptID   pgtype.Text
		createdBy          uuid.UUID
		createdAt          time.Time
		updatedAt          time.Time
	)
	err := r.pool.QueryRow(ctx, query, bookingNo).Scan(
		&id, &no, &draftID, &tenantID, &applicantName, &applicantMobile,
		&status, &receiptNo, &paymentDate, &permissionLetterID,
		&paymentReceiptID, &createdBy, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by booking no", err)
	}

	slots, err := r.findSlots(ctx, id)
	if err != nil {
		return nil, err
	}

	tenant, err := booking.NewTenantID(tenantID)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has malformed tenant id", err)
	}

	return booking.Reconstruct(
		id,
		textOrEmpty(no),
		pgconv.UUIDPtrFromPgtype(draftID),
		tenant,
		booking.NewApplicant(applicantName, applicantMobile),
		slots,
		booking.Status(status),
		textOrEmpty(receiptNo),
		pgconv.TimePtrFromPgtype(paymentDate),
		textOrEmpty(permissionLetterID),
		textOrEmpty(paymentReceiptID),
		createdBy,
		createdAt,
		updatedAt,
	), nil
}

func (r *BookingRepository) findSlots(ctx context.Context, bookingID uuid.UUID) ([]slot.Descriptor, error) {
	const query = `
		SELECT ad_type, location, face_area, night_light, booking_date, tenant_id
		FROM adv_booking_slot
		WHERE booking_id = $1
		ORDER BY booking_date`

	rows, err := r.pool.Query(ctx, query, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booking slots", err)
	}
	defer rows.Close()

	var slots []slot.Descriptor
	for rows.Next() {
		var (
			adType      string
			location    string
			faceArea    string
			nightLight  bool
			bookingDate time.Time
			tenantID    string
		)
		if err := rows.Scan(&adType, &location, &faceArea, &nightLight,
			&bookingDate, &tenantID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking slot", err)
		}
		slots = append(slots, slot.Descriptor{
			AdType:      adType,
			Location:    location,
			FaceArea:    faceArea,
			NightLight:  nightLight,
			BookingDate: slot.DateOf(bookingDate),
			TenantID:    tenantID,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking slots", err)
	}
	return slots, nil
}

func bookingArgs(b *booking.Booking) []any {
	return []any{
		b.ID(),
		pgconv.NullableStringToPgtype(b.BookingNo()),
		pgconv.UUIDPtrToPgtype(b.DraftID()),
		b.Tenant().String(),
		b.Applicant().Name(),
		b.Applicant().Mobile(),
		b.Status().String(),
		pgconv.NullableStringToPgtype(b.ReceiptNo()),
		pgconv.TimePtrToPgtype(b.PaymentDate()),
		pgconv.NullableStringToPgtype(b.PermissionLetterFileID()),
		pgconv.NullableStringToPgtype(b.PaymentReceiptFileID()),
		b.CreatedBy(),
		b.CreatedAt(),
		b.UpdatedAt(),
	}
}

func insertSlots(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID, slots []slot.Descriptor) error {
	for _, d := range slots {
		if _, err := tx.Exec(ctx, insertSlotSQL,
			uuid.New(), bookingID, d.AdType, d.Location, d.FaceArea,
			d.NightLight, d.BookingDate.Time(), d.TenantID,
		); err != nil {
			return infra.WrapRepoErr("failed to insert booking slot", err)
		}
	}
	return nil
}

func textOrEmpty(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}
