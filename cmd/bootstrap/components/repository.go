package components

import (
	"adslot-booking/internal/infra/billing"
	"adslot-booking/internal/infra/crypto"
	"adslot-booking/internal/infra/mdms"
	"adslot-booking/internal/infra/persister"
	"adslot-booking/internal/infra/readstore"
	"adslot-booking/internal/infra/timerstore"
	"adslot-booking/internal/infra/writerepo"
	"adslot-booking/internal/pkg/config"
	"adslot-booking/internal/usecase/commands"
	"adslot-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			writerepo.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			writerepo.NewDraftRepository,
			fx.As(new(commands.DraftRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.ConfirmedSlotReadStore)),
			fx.As(new(queries.BookingReadStore)),
		),
		// Timer holds
		fx.Annotate(
			NewTimerStore,
			fx.As(new(queries.TimerHoldStore)),
			fx.As(new(commands.TimerHoldBinder)),
		),
		// Async persistence
		fx.Annotate(
			func(p *persister.KafkaPersister) *persister.KafkaPersister { return p },
			fx.As(new(commands.UpdatePersister)),
		),
		// External collaborators
		fx.Annotate(
			NewMdmsClient,
			fx.As(new(commands.MasterDataService)),
		),
		fx.Annotate(
			NewDemandClient,
			fx.As(new(commands.DemandService)),
		),
		// PII encryption
		fx.Annotate(
			NewEncryptor,
			fx.As(new(commands.PIIEncryptor)),
			fx.As(new(queries.PIICodec)),
		),
	),
)

func NewTimerStore(client *redis.Client, cfg config.Config) *timerstore.Store {
	return timerstore.NewStore(client, cfg.Timer)
}

func NewMdmsClient(cfg config.Config) *mdms.Client {
	return mdms.NewClient(cfg.Mdms)
}

func NewDemandClient(cfg config.Config) *billing.DemandClient {
	return billing.NewDemandClient(cfg.Billing)
}

func NewEncryptor(cfg config.Config) (*crypto.Encryptor, error) {
	return crypto.NewEncryptor(cfg.Crypto)
}
