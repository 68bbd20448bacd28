package cache

import (
	"beam-stacking-service/internal/domain"
	"beam-stacking-service/internal/platform/obs"
	"beam-stacking-service/internal/ports"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
)

const DefaultBeamTTL = 24 * time.Hour

type beamRecord struct {
	BeamID   string  `json:"beam_id"`
	Gauge    string  `json:"gauge"`
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm"`
	WeightKg float64 `json:"weight_kg"`
}

// RedisBeamCache is a read-through cache in front of a BeamRepository.
//
// Point lookups are served from "beam:<id>" keys; misses are loaded from the
// backing repository and written back with TTL. Redis failures are logged
// and the backing repository answers instead, so the cache never fails a
// lookup on its own. Listing is not cached.
type RedisBeamCache struct {
	client *redis.Client
	next   ports.BeamRepository
	ttl    time.Duration
}

func NewRedisBeamCache(client *redis.Client, next ports.BeamRepository, ttl time.Duration) (*RedisBeamCache, error) {
	if client == nil {
		return nil, errors.New("beam cache: redis client is nil")
	}
	if next == nil {
		return nil, errors.New("beam cache: backing repository is nil")
	}
	if ttl <= 0 {
		ttl = DefaultBeamTTL
	}

	return &RedisBeamCache{client: client, next: next, ttl: ttl}, nil
}

func beamKey(id string) string { return "beam:" + id }

func (c *RedisBeamCache) ListBeams(ctx context.Context) ([]domain.BeamSpec, error) {
	return c.next.ListBeams(ctx)
}

func (c *RedisBeamCache) GetBeams(ctx context.Context, ids []string) (_ []domain.BeamSpec, err error) {
	defer obs.Time(ctx, "beams.cache.GetBeams")(&err)

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}

	if len(uniq) == 0 {
		return []domain.BeamSpec{}, nil
	}

	keys := make([]string, 0, len(uniq))
	for _, id := range uniq {
		keys = append(keys, beamKey(id))
	}

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		log.Warn("beam cache unavailable, reading repository", "req_id", obs.RequestID(ctx), "err", err)
		return c.next.GetBeams(ctx, uniq)
	}

	out := make([]domain.BeamSpec, 0, len(uniq))
	misses := make([]string, 0)
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			misses = append(misses, uniq[i])
			continue
		}

		var rec beamRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			log.Warn("beam cache: dropping corrupt entry", "key", keys[i], "err", err)
			misses = append(misses, uniq[i])
			continue
		}
		out = append(out, domain.BeamSpec(rec))
	}

	if len(misses) > 0 {
		loaded, err := c.next.GetBeams(ctx, misses)
		if err != nil {
			return nil, fmt.Errorf("beam cache: load misses: %w", err)
		}
		c.store(ctx, loaded)
		out = append(out, loaded...)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].BeamID < out[j].BeamID })
	return out, nil
}

// Write beams back to Redis. Errors are logged, not returned.
func (c *RedisBeamCache) store(ctx context.Context, specs []domain.BeamSpec) {
	if len(specs) == 0 {
		return
	}

	pipe := c.client.Pipeline()
	for _, s := range specs {
		b, err := json.Marshal(beamRecord(s))
		if err != nil {
			log.Warn("beam cache: encode entry", "beam_id", s.BeamID, "err", err)
			continue
		}
		pipe.Set(ctx, beamKey(s.BeamID), b, c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		log.Warn("beam cache: write back failed", "req_id", obs.RequestID(ctx), "err", err)
	}
}
