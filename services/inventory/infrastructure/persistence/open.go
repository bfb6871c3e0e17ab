package persistence

import (
	"context"
	"fmt"

	"github.com/ghuser/wherearethenoodles/pkg/cache"
	"github.com/ghuser/wherearethenoodles/pkg/config"
	"github.com/ghuser/wherearethenoodles/pkg/database"
	"github.com/ghuser/wherearethenoodles/services/inventory/domain/repositories"
	"github.com/ghuser/wherearethenoodles/services/inventory/infrastructure/persistence/file"
	"github.com/ghuser/wherearethenoodles/services/inventory/infrastructure/persistence/memory"
	"github.com/ghuser/wherearethenoodles/services/inventory/infrastructure/persistence/postgres"
	redisslot "github.com/ghuser/wherearethenoodles/services/inventory/infrastructure/persistence/redis"
	s3slot "github.com/ghuser/wherearethenoodles/services/inventory/infrastructure/persistence/s3"
	"github.com/ghuser/wherearethenoodles/services/inventory/infrastructure/persistence/sqlite"
)

// Driver is a storage slot that can be health-checked and released.
type Driver interface {
	repositories.Slot
	Ping(ctx context.Context) error
	Close() error
}

// Shared carries connections owned by the process that some drivers borrow.
// Fields are nil when the corresponding backend is not configured.
type Shared struct {
	DB    *database.Database
	Redis *cache.RedisClient
}

// OpenSlot constructs the driver selected by cfg.StorageDriver.
func OpenSlot(ctx context.Context, cfg *config.Config, shared Shared) (Driver, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return memory.New(), nil
	case config.StorageFile:
		return wrap(file.New(cfg.StoragePath))
	case config.StorageSQLite:
		return wrap(sqlite.New(ctx, cfg.SQLitePath))
	case config.StoragePostgres:
		if shared.DB == nil {
			return nil, fmt.Errorf("storage driver %q needs a database connection", cfg.StorageDriver)
		}
		return wrap(postgres.New(ctx, shared.DB))
	case config.StorageRedis:
		if shared.Redis == nil {
			return nil, fmt.Errorf("storage driver %q needs REDIS_URL", cfg.StorageDriver)
		}
		return redisslot.New(shared.Redis), nil
	case config.StorageS3:
		return wrap(s3slot.New(ctx, s3slot.Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
			PathStyle:       cfg.S3PathStyle,
		}))
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// wrap keeps a typed nil driver out of the Driver interface on error.
func wrap[D Driver](d D, err error) (Driver, error) {
	if err != nil {
		return nil, err
	}
	return d, nil
}
