package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gearlog/backend/services/garage-service/internal/analytics"
)

// ReportCache keeps computed health reports per vehicle. Reports are cheap
// to recompute, so the cache is dropped on any record write for the vehicle.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache returns redis-backed cache.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl}
}

func (c *ReportCache) key(vehicleID int64) string {
	return fmt.Sprintf("health:report:%d", vehicleID)
}

// Save caches a report.
func (c *ReportCache) Save(ctx context.Context, report analytics.HealthReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(report.VehicleID), data, c.ttl).Err()
}

// Get returns the cached report, or redis.Nil when absent.
func (c *ReportCache) Get(ctx context.Context, vehicleID int64) (*analytics.HealthReport, error) {
	result, err := c.client.Get(ctx, c.key(vehicleID)).Result()
	if err != nil {
		return nil, err
	}
	var report analytics.HealthReport
	if err := json.Unmarshal([]byte(result), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Invalidate drops the cached report for a vehicle.
func (c *ReportCache) Invalidate(ctx context.Context, vehicleID int64) error {
	return c.client.Del(ctx, c.key(vehicleID)).Err()
}
