package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTenantID     = errors.New("tenant id must contain a sub-tenant segment")
	ErrInvalidTransition   = errors.New("invalid booking status transition")
	ErrNoSlots             = errors.New("booking must cover at least one slot")
	ErrMissingPaymentOwner = errors.New("payment can only be stamped on a pending booking")
)

// TenantID is a composite municipal tenant id of the form "state.city".
// A bare id with no sub-tenant segment is rejected.
type TenantID struct {
	value string
}

func NewTenantID(value string) (TenantID, error) {
	parts := strings.Split(value, ".")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return TenantID{}, ErrInvalidTenantID
	}
	return TenantID{value: value}, nil
}

func (t TenantID) String() string {
	return t.value
}

// Root is the state-level segment used for master-data lookups.
func (t TenantID) Root() string {
	return strings.SplitN(t.value, ".", 2)[0]
}

// Applicant carries the PII of the person booking the advertisement. Name
// and mobile are encrypted at rest; the same value type holds either form.
type Applicant struct {
	name   string
	mobile string
}

func NewApplicant(name, mobile string) Applicant {
	return Applicant{name: name, mobile: mobile}
}

func (a Applicant) Name() string {
	return a.name
}

func (a Applicant) Mobile() string {
	return a.mobile
}

// NewBookingNo derives a human-facing booking number from the tenant and
// creation time, with a random suffix for uniqueness.
func NewBookingNo(tenant TenantID, now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("ADV-%s-%s-%s",
		strings.ToUpper(tenant.Root()), now.Format("20060102"), suffix)
}
