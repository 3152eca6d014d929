// Package repositories provides data access layer implementations: the
// persisted analysis history and the one-time result store.
package repositories

import (
	"context"
	"time"

	"fraudshield/internal/config"
	"fraudshield/internal/models"
	"fraudshield/internal/repositories/cache"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the global database instance used across the application.
var DB *gorm.DB

// Results is the global one-time result store. It is redis-backed when
// redis is reachable, in-memory otherwise.
var Results cache.ResultStore

// InitDB connects to postgres with startup retry and migrates the schema.
func InitDB() error {
	dsn := "host=" + config.GetEnv("DB_HOST", "localhost") +
		" user=" + config.GetEnv("DB_USER", "postgres") +
		" password=" + config.GetEnv("DB_PASSWORD", "postgres") +
		" dbname=" + config.GetEnv("DB_NAME", "fraudshield") +
		" port=" + config.GetEnv("DB_PORT", "5432") +
		" sslmode=" + config.GetEnv("DB_SSLMODE", "disable")

	connect := func() error {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Warn().Err(err).Msg("database not ready, retrying")
			return err
		}
		DB = db
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(connect, policy); err != nil {
		return err
	}

	return DB.AutoMigrate(&models.Analysis{})
}

// InitResultStore wires the result store, preferring redis and falling back
// to the in-memory store when redis is unreachable.
func InitResultStore() {
	redisCfg := &cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	}
	store := cache.NewRedisStore(cache.NewRedisClient(redisCfg))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.HealthCheck(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, download tokens are held in memory")
		Results = cache.NewMemoryStore()
		return
	}

	log.Info().Str("addr", redisCfg.Host+":"+redisCfg.Port).Msg("result store backed by redis")
	Results = store
}
