package queries

import (
	"context"

	"adslot-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	Search(ctx context.Context, c BookingSearchCriteria) ([]*BookingView, error)
	Count(ctx context.Context, c BookingSearchCriteria) (int, error)
	FindDraftsByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

// PIICodec encrypts search inputs and decrypts stored applicant fields.
// Equal plaintexts must produce equal ciphertexts so encrypted columns stay
// searchable by exact match.
type PIICodec interface {
	EncryptValue(plaintext string) (string, error)
	DecryptValue(ciphertext string) (string, error)
}

type BookingQueries interface {
	Search(ctx context.Context, c BookingSearchCriteria) ([]*BookingView, error)
	Count(ctx context.Context, c BookingSearchCriteria) (int, error)
	DraftsByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	codec PIICodec
}

func NewBookingQueries(store BookingReadStore, codec PIICodec) BookingQueries {
	return &bookingQueriesImpl{store: store, codec: codec}
}

func (q *bookingQueriesImpl) Search(ctx context.Context, c BookingSearchCriteria) ([]*BookingView, error) {
	c, err := q.encryptCriteria(c)
	if err != nil {
		return nil, err
	}

	views, err := q.store.Search(ctx, c)
	if err != nil {
		return nil, errs.Wrap(err, "failed to search bookings")
	}
	return q.decryptViews(views)
}

func (q *bookingQueriesImpl) Count(ctx context.Context, c BookingSearchCriteria) (int, error) {
	c, err := q.encryptCriteria(c)
	if err != nil {
		return 0, err
	}

	count, err := q.store.Count(ctx, c)
	if err != nil {
		return 0, errs.Wrap(err, "failed to count bookings")
	}
	return count, nil
}

func (q *bookingQueriesImpl) DraftsByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	views, err := q.store.FindDraftsByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load draft applications")
	}
	return q.decryptViews(views)
}

// encryptCriteria converts name/mobile search inputs to their at-rest form
// before the store sees them.
func (q *bookingQueriesImpl) encryptCriteria(c BookingSearchCriteria) (BookingSearchCriteria, error) {
	if c.ApplicantName != "" {
		enc, err := q.codec.EncryptValue(c.ApplicantName)
		if err != nil {
			return c, errs.Mark(err, errs.ErrEncryptionFailed)
		}
		c.ApplicantName = enc
	}
	if c.MobileNumber != "" {
		enc, err := q.codec.EncryptValue(c.MobileNumber)
		if err != nil {
			return c, errs.Mark(err, errs.ErrEncryptionFailed)
		}
		c.MobileNumber = enc
	}
	return c, nil
}

func (q *bookingQueriesImpl) decryptViews(views []*BookingView) ([]*BookingView, error) {
	for _, v := range views {
		name, err := q.codec.DecryptValue(v.ApplicantName)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrEncryptionFailed)
		}
		mobile, err := q.codec.DecryptValue(v.ApplicantMobile)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrEncryptionFailed)
		}
		v.ApplicantName = name
		v.ApplicantMobile = mobile
	}
	return views, nil
}
