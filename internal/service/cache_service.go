package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Arockiam07/College-Voting-System/pkg/redis"
)

// CacheService provides cache-aside helpers over the voting keys.
// All methods degrade to cache misses when Redis is not configured,
// so the services stay correct with the database alone.
type CacheService struct {
	redis  *redis.Client
	logger *zap.Logger
}

// NewCacheService creates a new cache service
func NewCacheService(redisClient *redis.Client, logger *zap.Logger) *CacheService {
	return &CacheService{
		redis:  redisClient,
		logger: logger,
	}
}

// VoterHasVotedCached checks the voted flag for (voter, election) in cache only.
// A miss means "unknown", not "has not voted"; callers fall back to the store.
func (c *CacheService) VoterHasVotedCached(ctx context.Context, electionID, voterID string) bool {
	if c.redis == nil {
		return false
	}

	key := c.redis.KeyBuilder.KeyVoterVoted(electionID, voterID)
	exists, err := c.redis.Exists(ctx, key)
	if err != nil {
		c.logger.Warn("Voted-flag cache error, falling back to store",
			zap.String("election_id", electionID),
			zap.Error(err))
		return false
	}

	return exists > 0
}

// CacheBallotCast records the voted flag after a successful cast
func (c *CacheService) CacheBallotCast(ctx context.Context, electionID, voterID string) error {
	if c.redis == nil {
		return nil
	}

	key := c.redis.KeyBuilder.KeyVoterVoted(electionID, voterID)
	if err := c.redis.Set(ctx, key, "1", redis.TTLVoterVote); err != nil {
		c.logger.Warn("Failed to cache voted flag",
			zap.String("election_id", electionID),
			zap.Error(err))
		return err
	}
	return nil
}

// InvalidateResultCaches drops the tally and aggregate caches touched by a
// new ballot. Fire and forget; a stale cache entry expires within its TTL anyway.
func (c *CacheService) InvalidateResultCaches(electionID string) {
	if c.redis == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		keys := []string{
			c.redis.KeyBuilder.KeyElectionResults(electionID),
			c.redis.KeyBuilder.KeyElectionSummaries(),
			c.redis.KeyBuilder.KeyDashboardStats(),
		}
		if err := c.redis.Delete(ctx, keys...); err != nil {
			c.logger.Warn("Failed to invalidate result caches",
				zap.String("election_id", electionID),
				zap.Error(err))
		}
	}()
}

// InvalidateElectionCaches drops caches after admin CRUD on elections or candidates
func (c *CacheService) InvalidateElectionCaches(electionID string) {
	if c.redis == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		keys := []string{
			c.redis.KeyBuilder.KeyElectionSummaries(),
			c.redis.KeyBuilder.KeyDashboardStats(),
		}
		if electionID != "" {
			keys = append(keys,
				c.redis.KeyBuilder.KeyElectionByID(electionID),
				c.redis.KeyBuilder.KeyElectionResults(electionID))
		}
		if err := c.redis.Delete(ctx, keys...); err != nil {
			c.logger.Warn("Failed to invalidate election caches",
				zap.String("election_id", electionID),
				zap.Error(err))
		}
	}()
}

// GetCachedJSON reads a cached JSON payload; empty string on miss or no Redis
func (c *CacheService) GetCachedJSON(ctx context.Context, key string) string {
	if c.redis == nil {
		return ""
	}
	val, err := c.redis.Get(ctx, key)
	if err != nil {
		return ""
	}
	return val
}

// SetCachedJSON stores a JSON payload; failures are logged, never surfaced
func (c *CacheService) SetCachedJSON(ctx context.Context, key, payload string, ttl time.Duration) {
	if c.redis == nil {
		return
	}
	if err := c.redis.Set(ctx, key, payload, ttl); err != nil {
		c.logger.Warn("Failed to write cache",
			zap.String("key", key),
			zap.Error(err))
	}
}

// HealthCheck verifies the cache connection when configured
func (c *CacheService) HealthCheck(ctx context.Context) error {
	if c.redis == nil {
		return nil
	}
	return c.redis.Health(ctx)
}

// Keys exposes the key builder when Redis is configured, nil otherwise
func (c *CacheService) Keys() *redis.KeyBuilder {
	if c.redis == nil {
		return nil
	}
	return c.redis.KeyBuilder
}
