package container

import (
	"context"
	"fmt"
	"time"

	"eco-restaurants/internal/config"
	"eco-restaurants/internal/infrastructure/cache"
	"eco-restaurants/internal/infrastructure/database"
	"eco-restaurants/internal/infrastructure/lock"

	"eco-restaurants/internal/domains/restaurant/handler"
	"eco-restaurants/internal/domains/restaurant/model"
	"eco-restaurants/internal/domains/restaurant/repository"
	"eco-restaurants/internal/domains/restaurant/service"
	"eco-restaurants/pkg/logger"

	"github.com/rs/zerolog/log"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application, built once at
// startup in dependency order.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB // nil with the memory store
	Redis  *cache.RedisClient   // nil when Redis is unreachable
	Locker lock.Locker

	// Restaurant domain
	Catalog           *model.Catalog
	RestaurantStore   repository.Store
	RestaurantService service.ServiceInterface
	RestaurantHandler *handler.RestaurantHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the dependency graph:
// 1. Config
// 2. Infrastructure (DB, Redis, name locker)
// 3. Store
// 4. Service
// 5. Handler
func NewContainer() (*Container, error) {
	log.Info().Msg("🔧 Initializing DI Container...")

	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("env", cfg.App.Environment).Str("store", cfg.Store.Driver).Msg("✅ Config loaded")

	if err := c.initInfrastructure(); err != nil {
		c.Cleanup()
		return nil, err
	}

	if err := c.initStore(); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	c.initService()
	c.RestaurantHandler = handler.NewRestaurantHandler(c.RestaurantService)

	log.Info().Msg("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initInfrastructure() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if c.Config.Store.Driver == config.StoreDriverPostgres {
		log.Info().Msg("🗄️  Connecting to PostgreSQL...")

		dbConfig, err := config.LoadDatabaseConfig()
		if err != nil {
			return fmt.Errorf("failed to load database config: %w", err)
		}

		db := database.NewPostgresDB(dbConfig)
		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db

		if err := db.HealthCheck(ctx); err != nil {
			return fmt.Errorf("database health check failed: %w", err)
		}
		log.Info().Msg("✅ Database connected")
	}

	// Redis failure is not critical: the name lock falls back to a
	// process-local one, which is enough for a single instance.
	redisClient := cache.NewRedisClient(cache.Options{
		Addr:        c.Config.Redis.Host,
		Password:    c.Config.Redis.Password,
		DB:          c.Config.Redis.DB,
		PoolSize:    c.Config.Redis.PoolSize,
		DialTimeout: c.Config.Redis.DialTimeout,
	})
	if err := redisClient.Connect(ctx); err != nil {
		logger.Warn("⚠️  Redis connection failed (non-critical), using local name lock", err)
		_ = redisClient.Close()
		c.Locker = lock.NewLocalLocker()
	} else {
		c.Redis = redisClient
		c.Locker = lock.NewRedisLocker(redisClient.Client, c.Config.Store.NameLockTTL)
		log.Info().Msg("✅ Redis connected, using distributed name lock")
	}

	return nil
}

func (c *Container) initStore() error {
	switch c.Config.Store.Driver {
	case config.StoreDriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := repository.EnsureSchema(ctx, c.DB.Pool); err != nil {
			return err
		}
		c.RestaurantStore = repository.NewPostgresStore(c.DB.Pool)
	case config.StoreDriverMemory:
		log.Warn().Msg("⚠️  Using in-memory store, data is lost on restart")
		c.RestaurantStore = repository.NewMemoryStore()
	default:
		return fmt.Errorf("unknown store driver %q", c.Config.Store.Driver)
	}
	return nil
}

func (c *Container) initService() {
	c.Catalog = model.DefaultCatalog()
	c.RestaurantService = service.NewRestaurantService(
		c.RestaurantStore,
		c.Locker,
		c.Catalog,
		service.WithQueryTimeout(c.Config.Store.QueryTimeout),
	)
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases infrastructure resources. Safe on a partially built
// container.
func (c *Container) Cleanup() {
	log.Info().Msg("🧹 Cleaning up resources...")

	if c.DB != nil {
		c.DB.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Warn("⚠️  Failed to close Redis", err)
		}
	}

	log.Info().Msg("✅ Cleanup completed")
}
