package readstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"adslot-booking/internal/domain/booking"
	"adslot-booking/internal/domain/slot"
	"adslot-booking/internal/infra"
	"adslot-booking/internal/pkg/pgconv"
	"adslot-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

const bookingColumns = `
	b.id, b.booking_no, b.draft_id, b.tenant_id, b.applicant_name,
	b.applicant_mobile, b.status, b.receipt_no, b.payment_date,
	b.permission_letter_file_id, b.payment_receipt_file_id,
	b.created_by, b.created_at, b.updated_at`

// FindConfirmedSlots returns the slot descriptors of confirmed bookings that
// collide with the searched descriptor over the date range.
func (r *BookingReadStore) FindConfirmedSlots(ctx context.Context, c slot.Criteria) ([]slot.ConfirmedSlot, error) {
	const query = `
		SELECT s.booking_id, s.ad_type, s.location, s.face_area,
		       s.night_light, s.booking_date, s.tenant_id
		FROM adv_booking_slot s
		JOIN adv_booking b ON b.id = s.booking_id
		WHERE b.status = $1
		  AND s.tenant_id = $2
		  AND s.ad_type = $3
		  AND s.location = $4
		  AND s.face_area = $5
		  AND s.night_light = $6
		  AND s.booking_date BETWEEN $7 AND $8`

	rows, err := r.pool.Query(ctx, query,
		booking.StatusBooked.String(),
		c.TenantID, c.AdType, c.Location, c.FaceArea, c.NightLight,
		c.StartDate.Time(), c.EndDate.Time(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query confirmed slots", err)
	}
	defer rows.Close()

	var confirmed []slot.ConfirmedSlot
	for rows.Next() {
		var (
			bookingID   uuid.UUID
			adType      string
			location    string
			faceArea    string
			nightLight  bool
			bookingDate time.Time
			tenantID    string
		)
		if err := rows.Scan(&bookingID, &adType, &location, &faceArea,
			&nightLight, &bookingDate, &tenantID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan confirmed slot", err)
		}
		confirmed = append(confirmed, slot.ConfirmedSlot{
			Descriptor: slot.Descriptor{
				AdType:      adType,
				Location:    location,
				FaceArea:    faceArea,
				NightLight:  nightLight,
				BookingDate: slot.DateOf(bookingDate),
				TenantID:    tenantID,
			},
			BookingID: bookingID,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read confirmed slots", err)
	}
	return confirmed, nil
}

func (r *BookingReadStore) Search(ctx context.Context, c queries.BookingSearchCriteria) ([]*queries.BookingView, error) {
	where, args := buildSearchFilter(c)

	query := fmt.Sprintf(`SELECT %s FROM adv_booking b %s ORDER BY b.created_at DESC`, bookingColumns, where)
	if c.Limit > 0 {
		args = append(args, c.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if c.Offset > 0 {
		args = append(args, c.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search bookings", err)
	}
	defer rows.Close()

	views, err := scanBookingViews(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachSlots(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *BookingReadStore) Count(ctx context.Context, c queries.BookingSearchCriteria) (int, error) {
	where, args := buildSearchFilter(c)

	var count int
	query := "SELECT COUNT(*) FROM adv_booking b " + where
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err)
	}
	return count, nil
}

func (r *BookingReadStore) FindDraftsByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	query := fmt.Sprintf(`SELECT %s FROM adv_booking b
		WHERE b.created_by = $1 AND b.status = $2
		ORDER BY b.created_at DESC`, bookingColumns)

	rows, err := r.pool.Query(ctx, query, userID, booking.StatusDraft.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query draft applications", err)
	}
	defer rows.Close()

	views, err := scanBookingViews(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachSlots(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func buildSearchFilter(c queries.BookingSearchCriteria) (string, []any) {
	conditions := []string{"1=1"}
	var args []any

	add := func(cond string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if c.TenantID != "" {
		add("b.tenant_id = $%d", c.TenantID)
	}
	if c.BookingNo != "" {
		add("b.booking_no = $%d", c.BookingNo)
	}
	if c.ApplicantName != "" {
		add("b.applicant_name = $%d", c.ApplicantName)
	}
	if c.MobileNumber != "" {
		add("b.applicant_mobile = $%d", c.MobileNumber)
	}
	if c.Status != "" {
		add("b.status = $%d", c.Status)
	}
	if c.FromDate != nil {
		add("b.created_at >= $%d", *c.FromDate)
	}
	if c.ToDate != nil {
		add("b.created_at <= $%d", *c.ToDate)
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

func scanBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	var views []*queries.BookingView
	for rows.Next() {
		var (
			id                  uuid.UUID
			bookingNo           pgtype.Text
			draftID             pgtype.UUID
			tenantID            string
			applicantName       string
			applicantMobile     string
			status              string
			receiptNo           pgtype.Text
			paymentDate         pgtype.Timestamptz
			permissionLetterID  pgtype.Text
			paymentReceiptID    pgtype.Text
			createdBy           uuid.UUID
			createdAt           time.Time
			updatedAt           time.Time
		)
		if err := rows.Scan(&id, &bookingNo, &draftID, &tenantID, &applicantName,
			&applicantMobile, &status, &receiptNo, &paymentDate,
			&permissionLetterID, &paymentReceiptID,
			&createdBy, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}

		view := &queries.BookingView{
			ID:                     id,
			DraftID:                pgconv.UUIDPtrFromPgtype(draftID),
			TenantID:               tenantID,
			ApplicantName:          applicantName,
			ApplicantMobile:        applicantMobile,
			Status:                 status,
			ReceiptNo:              pgconv.StringPtrFromPgtype(receiptNo),
			PaymentDate:            pgconv.TimePtrFromPgtype(paymentDate),
			PermissionLetterFileID: pgconv.StringPtrFromPgtype(permissionLetterID),
			PaymentReceiptFileID:   pgconv.StringPtrFromPgtype(paymentReceiptID),
			CreatedBy:              createdBy,
			CreatedAt:              createdAt,
			UpdatedAt:              updatedAt,
		}
		if bookingNo.Valid {
			view.BookingNo = bookingNo.String
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return views, nil
}

func (r *BookingReadStore) attachSlots(ctx context.Context, views []*queries.BookingView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(views))
	byID := make(map[uuid.UUID]*queries.BookingView, len(views))
	for i, v := range views {
		ids[i] = v.ID
		byID[v.ID] = v
	}

	const query = `
		SELECT booking_id, ad_type, location, face_area, night_light,
		       booking_date, tenant_id
		FROM adv_booking_slot
		WHERE booking_id = ANY($1)
		ORDER BY booking_date`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to query booking slots", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bookingID   uuid.UUID
			adType      string
			location    string
			faceArea    string
			nightLight  bool
			bookingDate time.Time
			tenantID    string
		)
		if err := rows.Scan(&bookingID, &adType, &location, &faceArea,
			&nightLight, &bookingDate, &tenantID); err != nil {
			return infra.WrapRepoErr("failed to scan booking slot", err)
		}
		if view, ok := byID[bookingID]; ok {
			view.Slots = append(view.Slots, queries.BookingSlotView{
				AdType:      adType,
				Location:    location,
				FaceArea:    faceArea,
				NightLight:  nightLight,
				BookingDate: slot.DateOf(bookingDate).String(),
				TenantID:    tenantID,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read booking slots", err)
	}
	return nil
}
