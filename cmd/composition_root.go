package cmd

import (
	"log/slog"

	api "shipflow/internal/adapters/in/http"
	"shipflow/internal/adapters/out/postgres"
	"shipflow/internal/adapters/out/postgres/disputerepo"
	"shipflow/internal/adapters/out/postgres/pushtokenrepo"
	"shipflow/internal/adapters/out/postgres/shipmentrepo"
	"shipflow/internal/adapters/out/postgres/transitionrepo"
	"shipflow/internal/adapters/out/push"
	"shipflow/internal/adapters/out/redisbus"
	"shipflow/internal/core/application/notifications"
	"shipflow/internal/core/application/usecases/commands"
	"shipflow/internal/core/application/usecases/queries"
	"shipflow/internal/core/domain/services"
	"shipflow/internal/core/ports"
	"shipflow/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires the adapters into the use cases. The live channel is
// only built when a redis client is supplied.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	registry   services.StatusRegistry
	locks      *commands.ShipmentLocks
	pushes     *push.Channel
	live       *redisbus.LiveChannel
	fanOut     *notifications.FanOut
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, rdb goredis.UniversalClient, logger *slog.Logger) *CompositionRoot {
	pushes := push.NewChannel(push.Config{
		BaseURL:     cfg.PushAPIURL,
		AccessToken: cfg.PushAccessToken,
	}, pushtokenrepo.NewGormPushTokenRepository(gormDB), logger)

	channels := []ports.NotificationChannel{pushes}
	var live *redisbus.LiveChannel
	if rdb != nil {
		live = redisbus.NewLiveChannel(rdb, cfg.RedisChannelPrefix)
		channels = append(channels, live)
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   services.NewStatusRegistry(),
		locks:      commands.NewShipmentLocks(commands.DefaultShipmentLockStripes),
		pushes:     pushes,
		live:       live,
		fanOut: notifications.NewFanOut(channels, notifications.Config{
			Lanes:          cfg.NotifyLanes,
			LaneBuffer:     cfg.NotifyLaneBuffer,
			ChannelTimeout: cfg.NotifyChannelTimeout,
		}, logger),
	}
}

// FanOut is started and stopped by the entry point around the server's lifetime.
func (c *CompositionRoot) FanOut() *notifications.FanOut {
	return c.fanOut
}

func (c *CompositionRoot) CreateChangeStatusCommandHandler() commands.ChangeStatusCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeStatusCommandHandler(f, c.registry, c.fanOut, c.locks)
}

func (c *CompositionRoot) CreateFileDisputeCommandHandler() commands.FileDisputeCommandHandler {
	var f commands.DisputeUoWFactory = FuncDisputeUoWFactory(func() commands.DisputeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFileDisputeCommandHandler(f, c.registry, c.fanOut, c.locks)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateAssignCarrierCommandHandler() commands.AssignCarrierCommandHandler {
	return commands.NewAssignCarrierCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateRegisterPushTokenCommandHandler() commands.RegisterPushTokenCommandHandler {
	var f commands.PushTokenUoWFactory = FuncPushTokenUoWFactory(func() commands.PushTokenUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterPushTokenCommandHandler(f)
}

func (c *CompositionRoot) CreateGetShipmentStatusQueryHandler() queries.GetShipmentStatusQueryHandler {
	return queries.NewGetShipmentStatusQueryHandler(shipmentrepo.NewGormShipmentRepository(c.gormDB), c.registry)
}

func (c *CompositionRoot) CreateGetShipmentHistoryQueryHandler() queries.GetShipmentHistoryQueryHandler {
	return queries.NewGetShipmentHistoryQueryHandler(
		shipmentrepo.NewGormShipmentRepository(c.gormDB),
		transitionrepo.NewGormTransitionRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateGetActiveDisputeQueryHandler() queries.GetActiveDisputeQueryHandler {
	return queries.NewGetActiveDisputeQueryHandler(
		shipmentrepo.NewGormShipmentRepository(c.gormDB),
		disputerepo.NewGormDisputeRepository(c.gormDB),
	)
}

// CreateHandlers collects every use case the HTTP API exposes.
func (c *CompositionRoot) CreateHandlers() api.Handlers {
	handlers := api.Handlers{
		CreateShipment:    c.CreateCreateShipmentCommandHandler(),
		AssignCarrier:     c.CreateAssignCarrierCommandHandler(),
		ChangeStatus:      c.CreateChangeStatusCommandHandler(),
		FileDispute:       c.CreateFileDisputeCommandHandler(),
		RegisterPushToken: c.CreateRegisterPushTokenCommandHandler(),
		ShipmentStatus:    c.CreateGetShipmentStatusQueryHandler(),
		ShipmentHistory:   c.CreateGetShipmentHistoryQueryHandler(),
		ActiveDispute:     c.CreateGetActiveDisputeQueryHandler(),
	}
	if c.live != nil {
		handlers.LiveEvents = c.live
	}
	return handlers
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) (*jobs.JobManager, error) {
	receipts, err := jobs.NewPushReceiptJob(c.pushes, c.cfg.PushReceiptsSchedule, logger)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(logger, receipts), nil
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncDisputeUoWFactory func() commands.DisputeUoW

func (f FuncDisputeUoWFactory) Create() commands.DisputeUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncPushTokenUoWFactory func() commands.PushTokenUoW

func (f FuncPushTokenUoWFactory) Create() commands.PushTokenUoW {
	return f()
}
