package timerstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"adslot-booking/internal/domain/slot"
	"adslot-booking/internal/pkg/config"
	"adslot-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates a Redis client from configuration.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

// Store keeps payment-timer holds in redis. Each hold lives under a key
// derived from its descriptor with a TTL equal to the payment window, so
// "active" means "still present": expired holds vanish without cleanup.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, cfg config.TimerConfig) *Store {
	return &Store{client: client, ttl: cfg.HoldDuration}
}

type holdRecord struct {
	BookingID   uuid.UUID `json:"bookingId,omitempty"`
	BookingNo   string    `json:"bookingNo,omitempty"`
	HolderID    uuid.UUID `json:"uuid"`
	AdType      string    `json:"adType"`
	Location    string    `json:"location"`
	FaceArea    string    `json:"faceArea"`
	NightLight  bool      `json:"nightLight"`
	BookingDate string    `json:"bookingDate"`
	TenantID    string    `json:"tenantId"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func holdKey(d slot.Descriptor) string {
	return fmt.Sprintf("adv:timer:%s:%s:%s:%s:%t:%s",
		d.TenantID, d.AdType, d.Location, d.FaceArea, d.NightLight, d.BookingDate)
}

func holderSetKey(holderID uuid.UUID) string {
	return "adv:timer:holder:" + holderID.String()
}

// FindActiveHolds loads the not-yet-expired holds colliding with the
// searched descriptor over the date range.
func (s *Store) FindActiveHolds(ctx context.Context, c slot.Criteria) ([]slot.Hold, error) {
	dates, err := slot.ExpandRange(c.StartDate, c.EndDate)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, nil
	}

	keys := make([]string, len(dates))
	for i, date := range dates {
		keys[i] = holdKey(c.DescriptorFor(date))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errs.Wrap(err, "failed to load timer holds")
	}

	var holds []slot.Hold
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue // expired or never held
		}
		var record holdRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, errs.Wrap(err, "malformed timer hold record")
		}
		hold, err := record.toHold()
		if err != nil {
			return nil, err
		}
		holds = append(holds, hold)
	}
	return holds, nil
}

// AcquireHolds claims the given cells for the holder. SetNX gives at most
// one winner per descriptor; losing a cell to a concurrent claimant is not
// an error, the next availability read will show the other holder.
func (s *Store) AcquireHolds(ctx context.Context, holderID uuid.UUID, cells []slot.Availability) error {
	now := time.Now()
	for _, cell := range cells {
		record := holdRecord{
			HolderID:    holderID,
			AdType:      cell.AdType,
			Location:    cell.Location,
			FaceArea:    cell.FaceArea,
			NightLight:  cell.NightLight,
			BookingDate: cell.BookingDate.String(),
			TenantID:    cell.TenantID,
			ExpiresAt:   now.Add(s.ttl),
		}
		payload, err := json.Marshal(record)
		if err != nil {
			return errs.Wrap(err, "failed to encode timer hold")
		}

		key := holdKey(cell.Descriptor)
		acquired, err := s.client.SetNX(ctx, key, payload, s.ttl).Result()
		if err != nil {
			return errs.Wrap(err, "failed to acquire timer hold")
		}
		if !acquired {
			continue
		}
		if err := s.trackHolderKey(ctx, holderID, key); err != nil {
			return err
		}
	}
	return nil
}

// BindBooking stamps the holder's live holds with the booking they were
// promoted into, keeping each hold's remaining TTL.
func (s *Store) BindBooking(ctx context.Context, holderID uuid.UUID, bookingID uuid.UUID, bookingNo string) error {
	keys, err := s.client.SMembers(ctx, holderSetKey(holderID)).Result()
	if err != nil {
		return errs.Wrap(err, "failed to list holder keys")
	}

	for _, key := range keys {
		raw, err := s.client.Get(ctx, key).Result()
		if err == redis.Nil {
			continue // hold already expired
		}
		if err != nil {
			return errs.Wrap(err, "failed to load timer hold")
		}

		var record holdRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return errs.Wrap(err, "malformed timer hold record")
		}
		if record.HolderID != holderID {
			continue
		}
		record.BookingID = bookingID
		record.BookingNo = bookingNo

		payload, err := json.Marshal(record)
		if err != nil {
			return errs.Wrap(err, "failed to encode timer hold")
		}
		if err := s.client.Set(ctx, key, payload, redis.KeepTTL).Err(); err != nil {
			return errs.Wrap(err, "failed to bind timer hold")
		}
	}
	return nil
}

func (s *Store) trackHolderKey(ctx context.Context, holderID uuid.UUID, key string) error {
	setKey := holderSetKey(holderID)
	if err := s.client.SAdd(ctx, setKey, key).Err(); err != nil {
		return errs.Wrap(err, "failed to track holder key")
	}
	if err := s.client.Expire(ctx, setKey, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to expire holder key set")
	}
	return nil
}

func (r holdRecord) toHold() (slot.Hold, error) {
	date, err := slot.ParseDate(r.BookingDate)
	if err != nil {
		return slot.Hold{}, errs.Wrap(err, "malformed timer hold date")
	}
	return slot.Hold{
		Descriptor: slot.Descriptor{
			AdType:      r.AdType,
			Location:    r.Location,
			FaceArea:    r.FaceArea,
			NightLight:  r.NightLight,
			BookingDate: date,
			TenantID:    r.TenantID,
		},
		BookingID: r.BookingID,
		BookingNo: r.BookingNo,
		HolderID:  r.HolderID,
		ExpiresAt: r.ExpiresAt,
	}, nil
}
