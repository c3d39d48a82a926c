// Package redis wraps go-redis with the small surface the listing service
// needs from its cache store: key-value operations with TTLs and the server
// statistics used for cache-effectiveness reporting.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	apperrors "property-listings/internal/common/errors"
)

// operation timeout applied to every cache-store round trip
const opTimeout = 5 * time.Second

type Client struct {
	rdb    *redis.Client
	config *Config
}

type Config struct {
	Address  string `json:"address"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"pool_size"`
}

func NewClient(config *Config) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("redis config is required")
	}

	if config.Address == "" {
		config.Address = "localhost:6379"
	}
	if config.PoolSize == 0 {
		config.PoolSize = 10
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Address,
		Password: config.Password,
		DB:       config.DB,
		PoolSize: config.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, apperrors.ConnectionError("failed to connect to Redis", err)
	}

	return &Client{
		rdb:    rdb,
		config: config,
	}, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

func (c *Client) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}

// Key-value operations

func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	var data []byte
	var err error

	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		data, err = json.Marshal(v)
		if err != nil {
			return apperrors.InternalError("failed to marshal cache value", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return c.rdb.Set(ctx, key, data, expiration).Err()
}

func (c *Client) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return c.rdb.Get(ctx, key).Result()
}

func (c *Client) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

// Delete removes a key and reports whether it was actually present.
func (c *Client) Delete(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	removed, err := c.rdb.Del(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to delete key: %w", err)
	}
	return removed > 0, nil
}

func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	count, err := c.rdb.Exists(ctx, key).Result()
	return count > 0, err
}

// TTL returns the remaining lifetime of a key. Reading a TTL does not touch it.
func (c *Client) TTL(ctx context.Context, key string) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return c.rdb.TTL(ctx, key).Result()
}

// IsNil reports whether err is the cache-miss sentinel returned by Get.
func IsNil(err error) bool {
	return err == redis.Nil
}

// Server statistics

// ServerStats holds the subset of INFO counters used for cache-effectiveness
// reporting. The keyspace counters are server-wide: they cover every key the
// server has served, not just the keys this service owns.
type ServerStats struct {
	KeyspaceHits           int64  `json:"keyspace_hits"`
	KeyspaceMisses         int64  `json:"keyspace_misses"`
	RedisVersion           string `json:"redis_version"`
	UsedMemory             int64  `json:"used_memory"`
	UsedMemoryHuman        string `json:"used_memory_human"`
	ConnectedClients       int64  `json:"connected_clients"`
	TotalCommandsProcessed int64  `json:"total_commands_processed"`
	InstantaneousOpsPerSec int64  `json:"instantaneous_ops_per_sec"`
}

// Stats issues INFO against the server and parses the counters out of the
// reply. It is a read-only operation and does not touch any key or TTL.
func (c *Client) Stats(ctx context.Context) (*ServerStats, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	info, err := c.rdb.Info(ctx).Result()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.TimeoutError("timed out reading server info", err)
		}
		return nil, apperrors.UnavailableError("cache store statistics unavailable", err)
	}

	return parseServerInfo(info), nil
}

// parseServerInfo extracts the fields of interest from a raw INFO reply.
// Unknown lines and section headers are skipped; absent counters stay zero.
func parseServerInfo(info string) *ServerStats {
	stats := &ServerStats{RedisVersion: "unknown"}

	for _, line := range strings.Split(info, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		switch key {
		case "keyspace_hits":
			stats.KeyspaceHits = parseInt(value)
		case "keyspace_misses":
			stats.KeyspaceMisses = parseInt(value)
		case "redis_version":
			stats.RedisVersion = value
		case "used_memory":
			stats.UsedMemory = parseInt(value)
		case "used_memory_human":
			stats.UsedMemoryHuman = value
		case "connected_clients":
			stats.ConnectedClients = parseInt(value)
		case "total_commands_processed":
			stats.TotalCommandsProcessed = parseInt(value)
		case "instantaneous_ops_per_sec":
			stats.InstantaneousOpsPerSec = parseInt(value)
		}
	}

	return stats
}

func parseInt(value string) int64 {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
