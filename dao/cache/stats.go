package cache

import (
	"Tuiter/config"
	"Tuiter/models"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// StatsCache 推文计数缓存。计数重算后直接写入新值，读取未命中时只在 key 不存在时回填，
// 回填不会覆盖重算写入的结果
type StatsCache struct {
	redis *redis.Client
	ttl   time.Duration
}

type cachedStats struct {
	Likes    int64 `redis:"likes"`
	Dislikes int64 `redis:"dislikes"`
	Replies  int64 `redis:"replies"`
	Retuits  int64 `redis:"retuits"`
}

func NewStatsCache(rds *redis.Client, conf *config.Config) *StatsCache {
	if rds == nil {
		return nil
	}
	ttl := config.DefaultStatsTTL
	if conf.Redis != nil && conf.Redis.StatsTTL > 0 {
		ttl = conf.Redis.StatsTTL
	}
	return &StatsCache{redis: rds, ttl: ttl}
}

func (c *StatsCache) key(tuitID int64) string {
	return fmt.Sprintf("tuit:stats:%d", tuitID)
}

// Get 未命中时返回 (nil, nil)
func (c *StatsCache) Get(ctx context.Context, tuitID int64) (*models.Stats, error) {
	cmd := c.redis.HGetAll(ctx, c.key(tuitID))
	vals, err := cmd.Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, nil
	}
	var s cachedStats
	if err := cmd.Scan(&s); err != nil {
		return nil, err
	}
	return &models.Stats{Likes: s.Likes, Dislikes: s.Dislikes, Replies: s.Replies, Retuits: s.Retuits}, nil
}

// Set 无条件覆盖，用于重算之后写入最新计数
func (c *StatsCache) Set(ctx context.Context, tuitID int64, stats *models.Stats) error {
	key := c.key(tuitID)
	_, err := c.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, toCached(stats))
		pipe.Expire(ctx, key, c.ttl)
		return nil
	})
	return err
}

var fillScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return 0
end
redis.call("HSET", KEYS[1], "likes", ARGV[1], "dislikes", ARGV[2], "replies", ARGV[3], "retuits", ARGV[4])
redis.call("PEXPIRE", KEYS[1], ARGV[5])
return 1
`)

// Fill 仅在 key 不存在时写入，返回是否写入
func (c *StatsCache) Fill(ctx context.Context, tuitID int64, stats *models.Stats) (bool, error) {
	n, err := fillScript.Run(ctx, c.redis, []string{c.key(tuitID)},
		stats.Likes, stats.Dislikes, stats.Replies, stats.Retuits, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func toCached(stats *models.Stats) cachedStats {
	return cachedStats{
		Likes:    stats.Likes,
		Dislikes: stats.Dislikes,
		Replies:  stats.Replies,
		Retuits:  stats.Retuits,
	}
}

func (c *StatsCache) Invalidate(ctx context.Context, tuitIDs ...int64) error {
	if len(tuitIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(tuitIDs))
	for _, id := range tuitIDs {
		keys = append(keys, c.key(id))
	}
	return c.redis.Del(ctx, keys...).Err()
}
