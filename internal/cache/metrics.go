package cache

import (
	"context"
	"math"

	"property-listings/internal/common/logging"
	"property-listings/internal/redis"
)

// Efficiency ratings, ordered bands over the hit ratio with inclusive lower
// bounds: >=90 Excellent, >=70 Good, >=50 Fair, below that Poor.
const (
	EfficiencyExcellent = "Excellent"
	EfficiencyGood      = "Good"
	EfficiencyFair      = "Fair"
	EfficiencyPoor      = "Poor"
)

// StatsSource is the read-only statistics capability of the cache store. It
// is deliberately separate from Store so that diagnostic reads can never
// touch keys or TTLs.
type StatsSource interface {
	Stats(ctx context.Context) (*redis.ServerStats, error)
}

// Metrics is an ephemeral cache-effectiveness snapshot, computed fresh on
// every call and never persisted.
//
// The hit and miss counters are server-wide: they cover every key the cache
// server has served, not just the property queryset. Scope spells this out
// for callers.
type Metrics struct {
	Available bool `json:"available"`

	KeyspaceHits   int64   `json:"keyspace_hits"`
	KeyspaceMisses int64   `json:"keyspace_misses"`
	TotalRequests  int64   `json:"total_requests"`
	HitRatio       float64 `json:"hit_ratio"`
	MissRatio      float64 `json:"miss_ratio"`

	CacheEfficiency string `json:"cache_efficiency"`
	Recommendation  string `json:"recommendation"`
	Scope           string `json:"scope"`

	RedisVersion           string `json:"redis_version"`
	UsedMemory             int64  `json:"used_memory"`
	UsedMemoryHuman        string `json:"used_memory_human"`
	ConnectedClients       int64  `json:"connected_clients"`
	TotalCommandsProcessed int64  `json:"total_commands_processed"`
	InstantaneousOpsPerSec int64  `json:"instantaneous_ops_per_sec"`

	Error string `json:"error,omitempty"`
}

const metricsScope = "server-wide counters; not limited to the all_properties key"

// Analyzer computes cache-effectiveness metrics from the cache store's raw
// server counters, bypassing the property cache entirely.
type Analyzer struct {
	source StatsSource
	logger logging.Logger
}

// NewAnalyzer creates an analyzer over the given statistics source. A nil
// source is treated the same as an unreachable cache store.
func NewAnalyzer(source StatsSource) *Analyzer {
	return &Analyzer{
		source: source,
		logger: logging.GetGlobalLogger().WithFields(logging.Field{Key: "component", Value: "cache_metrics"}),
	}
}

// Metrics retrieves the server counters and derives hit/miss ratios, an
// efficiency rating and a recommendation. This is a diagnostic path: when the
// cache store is unreachable it degrades to an explicit unavailable snapshot
// instead of failing.
func (a *Analyzer) Metrics(ctx context.Context) *Metrics {
	if a.source == nil {
		return unavailableMetrics("cache store not configured")
	}

	stats, err := a.source.Stats(ctx)
	if err != nil {
		a.logger.Warn("Failed to retrieve cache store statistics", logging.Err(err))
		return unavailableMetrics(err.Error())
	}

	total := stats.KeyspaceHits + stats.KeyspaceMisses

	var hitRatio, missRatio float64
	if total > 0 {
		hitRatio = round2(float64(stats.KeyspaceHits) / float64(total) * 100)
		missRatio = round2(100 - hitRatio)
	}

	efficiency := rateEfficiency(hitRatio)

	m := &Metrics{
		Available:       true,
		KeyspaceHits:    stats.KeyspaceHits,
		KeyspaceMisses:  stats.KeyspaceMisses,
		TotalRequests:   total,
		HitRatio:        hitRatio,
		MissRatio:       missRatio,
		CacheEfficiency: efficiency,
		Recommendation:  recommendationFor(efficiency),
		Scope:           metricsScope,

		RedisVersion:           stats.RedisVersion,
		UsedMemory:             stats.UsedMemory,
		UsedMemoryHuman:        stats.UsedMemoryHuman,
		ConnectedClients:       stats.ConnectedClients,
		TotalCommandsProcessed: stats.TotalCommandsProcessed,
		InstantaneousOpsPerSec: stats.InstantaneousOpsPerSec,
	}

	a.logger.Info("Cache metrics computed",
		logging.Int64("hits", m.KeyspaceHits),
		logging.Int64("misses", m.KeyspaceMisses),
		logging.Any("hit_ratio", m.HitRatio),
		logging.String("efficiency", m.CacheEfficiency),
	)

	return m
}

func unavailableMetrics(reason string) *Metrics {
	return &Metrics{
		Available:       false,
		CacheEfficiency: "Unavailable",
		Recommendation:  "Cache store is unreachable. Check the Redis connection before reading these numbers.",
		Scope:           metricsScope,
		RedisVersion:    "unknown",
		Error:           reason,
	}
}

// rateEfficiency maps a hit ratio onto its rating band
func rateEfficiency(hitRatio float64) string {
	switch {
	case hitRatio >= 90:
		return EfficiencyExcellent
	case hitRatio >= 70:
		return EfficiencyGood
	case hitRatio >= 50:
		return EfficiencyFair
	default:
		return EfficiencyPoor
	}
}

func recommendationFor(efficiency string) string {
	switch efficiency {
	case EfficiencyExcellent:
		return "Cache is performing optimally. No changes needed."
	case EfficiencyGood:
		return "Cache is performing well. Consider longer TTLs for data that rarely changes."
	case EfficiencyFair:
		return "Cache effectiveness is moderate. Review entry TTLs and check whether writes are invalidating more often than necessary."
	default:
		return "Most reads are missing the cache. Raise cache TTLs and review the invalidation strategy."
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
