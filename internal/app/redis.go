package app

import (
	"strconv"

	"property-listings/internal/common/logging"
	"property-listings/internal/redis"
)

// initializeRedis connects the shared cache store. A missing address or a
// failed connection leaves the client nil and the service uncached.
func (app *App) initializeRedis() error {
	if app.Config.RedisAddress == "" {
		app.Logger.Info("Redis: Not configured (queryset and response caching disabled)")
		return nil
	}

	redisDB, _ := strconv.Atoi(app.Config.RedisDB)
	redisPoolSize, _ := strconv.Atoi(app.Config.RedisPoolSize)

	redisClient, err := redis.NewClient(&redis.Config{
		Address:  app.Config.RedisAddress,
		Password: app.Config.RedisPassword,
		DB:       redisDB,
		PoolSize: redisPoolSize,
	})
	if err != nil {
		return err
	}

	app.RedisClient = redisClient
	app.Logger.Info("Redis: Connected", logging.Field{Key: "address", Value: app.Config.RedisAddress})
	app.Logger.Info("Queryset cache: Enabled",
		logging.Field{Key: "key", Value: "all_properties"},
		logging.Field{Key: "ttl", Value: app.Config.QuerysetCacheTTL.String()},
	)
	app.Logger.Info("Response cache: Enabled",
		logging.Field{Key: "ttl", Value: app.Config.ResponseCacheTTL.String()},
	)

	return nil
}
