package persister

import (
	"context"
	"encoding/json"
	"time"

	"adslot-booking/internal/domain/booking"
	"adslot-booking/internal/pkg/config"
	"adslot-booking/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// KafkaPersister publishes booking updates to the persistence topic. A
// downstream consumer applies them to the database, so callers must not
// assume the row has changed when Enqueue returns.
type KafkaPersister struct {
	writer *kafka.Writer
}

func NewKafkaPersister(cfg config.KafkaConfig) *KafkaPersister {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.BookingUpdateTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
	return &KafkaPersister{writer: writer}
}

type bookingUpdateMessage struct {
	BookingID              string  `json:"bookingId"`
	BookingNo              string  `json:"bookingNo"`
	TenantID               string  `json:"tenantId"`
	Status                 string  `json:"status"`
	ReceiptNo              string  `json:"receiptNo,omitempty"`
	PaymentDate            *string `json:"paymentDate,omitempty"`
	PermissionLetterFileID string  `json:"permissionLetterFileStoreId,omitempty"`
	PaymentReceiptFileID   string  `json:"paymentReceiptFileStoreId,omitempty"`
	UpdatedAt              string  `json:"updatedAt"`
}

// EnqueueBookingUpdate publishes the booking's current state keyed by
// booking number, so updates to one booking stay ordered on a partition.
func (p *KafkaPersister) EnqueueBookingUpdate(ctx context.Context, b *booking.Booking) error {
	msg := bookingUpdateMessage{
		BookingID:              b.ID().String(),
		BookingNo:              b.BookingNo(),
		TenantID:               b.Tenant().String(),
		Status:                 b.Status().String(),
		ReceiptNo:              b.ReceiptNo(),
		PermissionLetterFileID: b.PermissionLetterFileID(),
		PaymentReceiptFileID:   b.PaymentReceiptFileID(),
		UpdatedAt:              b.UpdatedAt().UTC().Format(time.RFC3339),
	}
	if pd := b.PaymentDate(); pd != nil {
		formatted := pd.UTC().Format(time.RFC3339)
		msg.PaymentDate = &formatted
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return errs.Wrap(err, "failed to encode booking update")
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(b.BookingNo()),
		Value: payload,
	})
	if err != nil {
		return errs.Wrap(err, "failed to publish booking update")
	}
	return nil
}

func (p *KafkaPersister) Close() error {
	return p.writer.Close()
}
