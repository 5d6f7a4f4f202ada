package stats

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Counts - outcome counters of one route
type Counts struct {
	Success int64 `json:"success"`
	Failure int64 `json:"failure"`
}

// Recorder counts generation outcomes per route for the /metrics endpoint.
type Recorder interface {
	Record(ctx context.Context, route string, success bool) error
	Snapshot(ctx context.Context) (map[string]Counts, error)
}

func field(route string, success bool) string {
	if success {
		return route + ":success"
	}
	return route + ":failure"
}

// MemoryRecorder - process local counters, used when Redis is not configured
type MemoryRecorder struct {
	mu     sync.Mutex
	counts map[string]Counts
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{counts: make(map[string]Counts)}
}

func (m *MemoryRecorder) Record(_ context.Context, route string, success bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.counts[route]
	if success {
		c.Success++
	} else {
		c.Failure++
	}
	m.counts[route] = c
	return nil
}

func (m *MemoryRecorder) Snapshot(_ context.Context) (map[string]Counts, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]Counts, len(m.counts))
	for k, v := range m.counts {
		out[k] = v
	}
	return out, nil
}

// RedisRecorder - counters in a single Redis hash, shared by every instance
type RedisRecorder struct {
	rdb *redis.Client
	key string
}

func NewRedisRecorder(rdb *redis.Client, key string) *RedisRecorder {
	return &RedisRecorder{rdb: rdb, key: key}
}

func (r *RedisRecorder) Record(ctx context.Context, route string, success bool) error {
	if err := r.rdb.HIncrBy(ctx, r.key, field(route, success), 1).Err(); err != nil {
		return fmt.Errorf("redis HINCRBY %s: %w", r.key, err)
	}
	return nil
}

func (r *RedisRecorder) Snapshot(ctx context.Context) (map[string]Counts, error) {
	raw, err := r.rdb.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis HGETALL %s: %w", r.key, err)
	}
	return parseHash(raw), nil
}

// parseHash - "route:success" / "route:failure" fields back into Counts
func parseHash(raw map[string]string) map[string]Counts {
	out := make(map[string]Counts)
	for f, v := range raw {
		route, outcome, ok := strings.Cut(f, ":")
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		c := out[route]
		switch outcome {
		case "success":
			c.Success = n
		case "failure":
			c.Failure = n
		default:
			continue
		}
		out[route] = c
	}
	return out
}
