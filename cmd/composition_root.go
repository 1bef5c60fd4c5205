package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "clinicmeals/internal/adapters/in/http"
	"clinicmeals/internal/adapters/out/kafka"
	"clinicmeals/internal/adapters/out/logsink"
	"clinicmeals/internal/adapters/out/postgres"
	"clinicmeals/internal/adapters/out/rabbitmq"
	"clinicmeals/internal/core/application/usecases/commands"
	"clinicmeals/internal/core/application/usecases/queries"
	"clinicmeals/internal/core/domain/services"
	"clinicmeals/internal/core/ports"
	"clinicmeals/internal/jobs"
	"clinicmeals/internal/pkg/auth"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	pool       *pgxpool.Pool
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	hasher     *auth.BcryptHasher
	tokens     *auth.JWTStrategy
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	pool *pgxpool.Pool,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) *CompositionRoot {
	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		pool:       pool,
		publisher:  publisher,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, services.NewPricingCalculator()),
		hasher:     auth.NewBcryptHasher(0),
		tokens:     auth.NewJWTStrategy(cfg.JWTSecret, auth.WithTTL(cfg.TokenTTL)),
	}
}

// NewNotificationPublisher connects the sink selected by NOTIFICATION_SINK.
func NewNotificationPublisher(cfg Config, logger *slog.Logger) (ports.NotificationPublisher, error) {
	switch cfg.NotificationSink {
	case SinkKafka:
		producer, err := kafka.NewSyncProducer(cfg.KafkaBrokers())
		if err != nil {
			return nil, err
		}
		return kafka.NewPublisher(producer, cfg.KafkaNotificationTopic, logger), nil
	case SinkRabbitMQ:
		conn, err := rabbitmq.Dial(cfg.RabbitMQURL)
		if err != nil {
			return nil, err
		}
		return rabbitmq.NewPublisher(conn, cfg.RabbitMQExchange), nil
	case SinkLog:
		return logsink.NewPublisher(logger), nil
	default:
		return nil, fmt.Errorf("unknown notification sink %q", cfg.NotificationSink)
	}
}

// NewEcho builds the HTTP API with every handler and the clinic time zone.
func (c *CompositionRoot) NewEcho() *echo.Echo {
	server := httpin.NewServer(c.Handlers(), c.tokens, c.logger, httpin.WithLocation(c.cfg.Location))
	return server.NewEcho()
}

func (c *CompositionRoot) patientUoWs() FuncUoWFactory[commands.PatientUoW] {
	return func() commands.PatientUoW { return c.uowFactory.Create() }
}

func (c *CompositionRoot) patientOrderUoWs() FuncUoWFactory[commands.PatientOrderUoW] {
	return func() commands.PatientOrderUoW { return c.uowFactory.Create() }
}

func (c *CompositionRoot) employeeOrderUoWs() FuncUoWFactory[commands.EmployeeOrderUoW] {
	return func() commands.EmployeeOrderUoW { return c.uowFactory.Create() }
}

func (c *CompositionRoot) orderUoWs() FuncUoWFactory[commands.OrderUoW] {
	return func() commands.OrderUoW { return c.uowFactory.Create() }
}

func (c *CompositionRoot) catalogUoWs() FuncUoWFactory[commands.CatalogUoW] {
	return func() commands.CatalogUoW { return c.uowFactory.Create() }
}

func (c *CompositionRoot) notificationUoWs() FuncUoWFactory[commands.NotificationUoW] {
	return func() commands.NotificationUoW { return c.uowFactory.Create() }
}

func (c *CompositionRoot) accountUoWs() FuncUoWFactory[commands.AccountUoW] {
	return func() commands.AccountUoW { return c.uowFactory.Create() }
}

func (c *CompositionRoot) CreateCreateAccountCommandHandler() *commands.CreateAccountCommandHandler {
	h := commands.NewCreateAccountCommandHandler(c.accountUoWs(), c.hasher)
	return &h
}

func (c *CompositionRoot) CreateCreatePatientCommandHandler() *commands.CreatePatientCommandHandler {
	h := commands.NewCreatePatientCommandHandler(c.patientUoWs())
	return &h
}

func (c *CompositionRoot) CreateUpdatePatientCommandHandler() *commands.UpdatePatientCommandHandler {
	h := commands.NewUpdatePatientCommandHandler(c.patientUoWs())
	return &h
}

func (c *CompositionRoot) CreateDischargePatientCommandHandler() *commands.DischargePatientCommandHandler {
	h := commands.NewDischargePatientCommandHandler(c.patientUoWs())
	return &h
}

func (c *CompositionRoot) CreateAddWeeklyMenuItemCommandHandler() *commands.AddWeeklyMenuItemCommandHandler {
	h := commands.NewAddWeeklyMenuItemCommandHandler(c.catalogUoWs())
	return &h
}

func (c *CompositionRoot) CreateSetWeeklyMenuItemAvailabilityCommandHandler() *commands.SetWeeklyMenuItemAvailabilityCommandHandler {
	h := commands.NewSetWeeklyMenuItemAvailabilityCommandHandler(c.catalogUoWs())
	return &h
}

func (c *CompositionRoot) CreateAddEmployeeMenuCommandHandler() *commands.AddEmployeeMenuCommandHandler {
	h := commands.NewAddEmployeeMenuCommandHandler(c.catalogUoWs())
	return &h
}

func (c *CompositionRoot) CreateUpdateEmployeeMenuCommandHandler() *commands.UpdateEmployeeMenuCommandHandler {
	h := commands.NewUpdateEmployeeMenuCommandHandler(c.catalogUoWs())
	return &h
}

func (c *CompositionRoot) CreateAttachEmployeeMenuPhotoCommandHandler() *commands.AttachEmployeeMenuPhotoCommandHandler {
	h := commands.NewAttachEmployeeMenuPhotoCommandHandler(c.catalogUoWs())
	return &h
}

func (c *CompositionRoot) CreateSeedCatalogCommandHandler() *commands.SeedCatalogCommandHandler {
	h := commands.NewSeedCatalogCommandHandler(c.catalogUoWs(), c.logger)
	return &h
}

func (c *CompositionRoot) CreateCreatePatientOrderCommandHandler() *commands.CreatePatientOrderCommandHandler {
	h := commands.NewCreatePatientOrderCommandHandler(
		c.patientOrderUoWs(), services.NewMenuResolver(), c.logger)
	return &h
}

func (c *CompositionRoot) CreateCreateEmployeeOrderCommandHandler() *commands.CreateEmployeeOrderCommandHandler {
	h := commands.NewCreateEmployeeOrderCommandHandler(
		c.employeeOrderUoWs(), services.NewPricingCalculator())
	return &h
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() *commands.ChangeOrderStatusCommandHandler {
	h := commands.NewChangeOrderStatusCommandHandler(
		c.orderUoWs(), services.NewNotificationEmitter(), c.logger)
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	h := commands.NewDeleteOrderCommandHandler(c.orderUoWs())
	return &h
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() *commands.MarkNotificationReadCommandHandler {
	h := commands.NewMarkNotificationReadCommandHandler(c.notificationUoWs())
	return &h
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler() *commands.DispatchNotificationsCommandHandler {
	h := commands.NewDispatchNotificationsCommandHandler(
		c.notificationUoWs(), c.publisher, c.logger)
	return &h
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateDispatchNotificationsCommandHandler(), c.cfg.RelaySchedule, c.cfg.RelayBatchSize, c.logger)
}

// Handlers wires every use case the HTTP API serves.
func (c *CompositionRoot) Handlers() httpin.Handlers {
	return httpin.Handlers{
		Login:         queries.NewLoginQueryHandler(c.pool, c.hasher, c.tokens),
		CreateAccount: c.CreateCreateAccountCommandHandler(),

		ActivePatients:   queries.NewGetActivePatientsQueryHandler(c.pool),
		Patient:          queries.NewGetPatientQueryHandler(c.pool),
		CreatePatient:    c.CreateCreatePatientCommandHandler(),
		UpdatePatient:    c.CreateUpdatePatientCommandHandler(),
		DischargePatient: c.CreateDischargePatientCommandHandler(),

		WeeklyMenu:              queries.NewGetWeeklyMenuQueryHandler(c.pool),
		AddWeeklyMenuItem:       c.CreateAddWeeklyMenuItemCommandHandler(),
		SetWeeklyItemAvailable:  c.CreateSetWeeklyMenuItemAvailabilityCommandHandler(),
		EmployeeMenus:           queries.NewGetEmployeeMenusQueryHandler(c.pool),
		EmployeeMenuPhoto:       queries.NewGetEmployeeMenuPhotoQueryHandler(c.pool),
		AddEmployeeMenu:         c.CreateAddEmployeeMenuCommandHandler(),
		UpdateEmployeeMenu:      c.CreateUpdateEmployeeMenuCommandHandler(),
		AttachEmployeeMenuPhoto: c.CreateAttachEmployeeMenuPhotoCommandHandler(),

		CreatePatientOrder:  c.CreateCreatePatientOrderCommandHandler(),
		PatientOrders:       queries.NewGetPatientOrdersQueryHandler(c.pool),
		CreateEmployeeOrder: c.CreateCreateEmployeeOrderCommandHandler(),
		EmployeeOrders:      queries.NewGetEmployeeOrdersQueryHandler(c.pool),
		KitchenBoard:        queries.NewGetKitchenBoardQueryHandler(c.pool),
		ChangeOrderStatus:   c.CreateChangeOrderStatusCommandHandler(),
		DeleteOrder:         c.CreateDeleteOrderCommandHandler(),

		Notifications:        queries.NewGetNotificationsQueryHandler(c.pool),
		MarkNotificationRead: c.CreateMarkNotificationReadCommandHandler(),
	}
}

// Bootstrap creates the admin account when configured and loads the catalog
// seed file when one is set. Both are idempotent.
func (c *CompositionRoot) Bootstrap(ctx context.Context, seed func(path string) (commands.SeedCatalogCommand, error)) error {
	if c.cfg.AdminLogin != "" {
		created, err := c.CreateCreateAccountCommandHandler().
			EnsureAdminAccount(ctx, c.cfg.AdminLogin, c.cfg.AdminDisplayName, c.cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("ensure admin account: %w", err)
		}
		if created {
			c.logger.Info("admin account created", "login", c.cfg.AdminLogin)
		}
	}

	if c.cfg.CatalogSeedPath == "" {
		return nil
	}
	cmd, err := seed(c.cfg.CatalogSeedPath)
	if err != nil {
		return fmt.Errorf("read catalog seed: %w", err)
	}
	if _, err = c.CreateSeedCatalogCommandHandler().Handle(ctx, cmd); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}

// FuncUoWFactory adapts a constructor function to commands.UoWFactory.
type FuncUoWFactory[T commands.TxManager] func() T

func (f FuncUoWFactory[T]) Create() T {
	return f()
}
