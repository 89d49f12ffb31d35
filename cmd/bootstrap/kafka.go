package bootstrap

import (
	"context"

	"adslot-booking/internal/infra/persister"
	"adslot-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		NewKafkaPersister,
	),
)

func NewKafkaPersister(lc fx.Lifecycle, cfg config.Config) *persister.KafkaPersister {
	p := persister.NewKafkaPersister(cfg.Kafka)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})

	return p
}
