package di

import (
	"context"
	"time"

	"gorm.io/gorm"

	"taskhub/application/serviceimpl"
	"taskhub/domain/ports"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/infrastructure/mail"
	"taskhub/infrastructure/messaging"
	"taskhub/infrastructure/postgres"
	redispkg "taskhub/infrastructure/redis"
	"taskhub/infrastructure/storage"
	"taskhub/infrastructure/websocket"
	"taskhub/interfaces/api/handlers"
	"taskhub/pkg/clock"
	"taskhub/pkg/config"
	"taskhub/pkg/logger"
	"taskhub/pkg/scheduler"
)

type Container struct {
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redispkg.Client // optional, analytics cache
	NATSPub     *messaging.NATSEventPublisher
	Storage     ports.StoragePort
	Mailer      ports.Mailer
	Hub         *websocket.Hub
	Scheduler   *scheduler.Scheduler

	// Repositories
	UserRepository         repositories.UserRepository
	TaskRepository         repositories.TaskRepository
	NotificationRepository repositories.NotificationRepository
	AttachmentRepository   repositories.AttachmentRepository

	// Services
	UserService         services.UserService
	TaskService         services.TaskService
	AnalyticsService    services.AnalyticsService
	NotificationService services.NotificationService
	AttachmentService   services.AttachmentService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()

	c.initServices()

	if err := c.seedAdmin(); err != nil {
		return err
	}

	return c.initScheduler()
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized", "level", c.Config.Log.Level, "format", c.Config.Log.Format)
	return nil
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	})
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis is optional; without it the analytics cache is simply off.
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, analytics cache disabled", "error", err)
		} else {
			c.RedisClient = redisClient
		}
	}

	// NATS is optional; without it task events are not published.
	if c.Config.NATS.URL != "" {
		natsPub, err := messaging.NewNATSEventPublisher(c.Config.NATS.URL)
		if err != nil {
			logger.Warn("NATS unavailable, task events disabled", "error", err)
		} else {
			c.NATSPub = natsPub
		}
	}

	if err := c.initStorage(); err != nil {
		return err
	}

	c.initMailer()

	c.Hub = websocket.NewHub()

	return nil
}

func (c *Container) initStorage() error {
	switch c.Config.Storage.Type {
	case "s3":
		s3Storage, err := storage.NewS3Storage(storage.S3StorageConfig{
			Endpoint:  c.Config.Storage.S3.Endpoint,
			AccessKey: c.Config.Storage.S3.AccessKey,
			SecretKey: c.Config.Storage.S3.SecretKey,
			Bucket:    c.Config.Storage.S3.Bucket,
			UseSSL:    c.Config.Storage.S3.UseSSL,
			Region:    c.Config.Storage.S3.Region,
			PublicURL: c.Config.Storage.S3.PublicURL,
		})
		if err != nil {
			return err
		}
		c.Storage = s3Storage
	default:
		localStorage, err := storage.NewLocalStorage(storage.LocalStorageConfig{
			BasePath: c.Config.Storage.BasePath,
			BaseURL:  c.Config.Storage.BaseURL,
		})
		if err != nil {
			return err
		}
		c.Storage = localStorage
	}

	logger.Info("Storage initialized", "type", c.Config.Storage.Type)
	return nil
}

func (c *Container) initMailer() {
	if c.Config.SMTP.Username == "" && c.Config.IsDevelopment() {
		c.Mailer = mail.NoopMailer{}
		logger.Info("Mailer initialized", "type", "noop")
		return
	}

	c.Mailer = mail.NewSMTPMailer(&c.Config.SMTP)
	logger.Info("Mailer initialized", "type", "smtp", "host", c.Config.SMTP.Host)
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	c.NotificationRepository = postgres.NewNotificationRepository(c.DB)
	c.AttachmentRepository = postgres.NewAttachmentRepository(c.DB)
}

func (c *Container) initServices() {
	clk := clock.System()

	var events ports.TaskEventPublisher = messaging.NoopEventPublisher{}
	if c.NATSPub != nil {
		events = c.NATSPub
	}

	c.NotificationService = serviceimpl.NewNotificationService(
		c.NotificationRepository,
		c.TaskRepository,
		c.Mailer,
		c.Hub,
		clk,
	)

	c.TaskService = serviceimpl.NewTaskService(
		c.TaskRepository,
		c.UserRepository,
		c.NotificationService,
		events,
		clk,
	)

	c.AnalyticsService = serviceimpl.NewAnalyticsService(c.TaskRepository, c.RedisClient, clk)

	c.UserService = serviceimpl.NewUserService(
		c.UserRepository,
		c.TaskRepository,
		c.Mailer,
		c.Config.JWT.Secret,
		c.Config.Admin,
		clk,
	)

	c.AttachmentService = serviceimpl.NewAttachmentService(
		c.AttachmentRepository,
		c.TaskRepository,
		c.Storage,
	)
}

func (c *Container) seedAdmin() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return c.UserService.EnsureAdmin(ctx)
}

func (c *Container) initScheduler() error {
	tz, err := time.LoadLocation(c.Config.Sweep.Timezone)
	if err != nil {
		logger.Warn("Unknown sweep timezone, falling back to UTC", "tz", c.Config.Sweep.Timezone)
		tz = time.UTC
	}

	c.Scheduler = scheduler.New(tz)

	err = c.Scheduler.AddJob("deadline-reminders", c.Config.Sweep.CronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		c.NotificationService.SendDeadlineReminders(ctx)
	})
	if err != nil {
		return err
	}

	c.Scheduler.Start()
	return nil
}

// GetHandlerServices bundles the services the HTTP layer needs.
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:         c.UserService,
		TaskService:         c.TaskService,
		AnalyticsService:    c.AnalyticsService,
		NotificationService: c.NotificationService,
		AttachmentService:   c.AttachmentService,
		JWTSecret:           c.Config.JWT.Secret,
	}
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) Cleanup() error {
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}

	if c.NATSPub != nil {
		c.NATSPub.Close()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis client", "error", err)
		}
	}

	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			return sqlDB.Close()
		}
	}

	return nil
}
