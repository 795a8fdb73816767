package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hokies-connect/backend/internal/domain"
	"github.com/hokies-connect/backend/internal/repository"
)

const alumniPoolKey = "alumni:pool"

// AlumniProfileCache wraps an AlumniProfileRepository with a read-through
// redis cache on List. Every matching run scans the full candidate pool, so
// the pool is cached for a short TTL and invalidated on writes. Cache
// failures degrade to the underlying repository, never to an error.
type AlumniProfileCache struct {
	repo   repository.AlumniProfileRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewAlumniProfileCache(
	repo repository.AlumniProfileRepository,
	client *redis.Client,
	ttl time.Duration,
	logger *zap.Logger,
) *AlumniProfileCache {
	return &AlumniProfileCache{
		repo:   repo,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *AlumniProfileCache) List(ctx context.Context) ([]*domain.AlumniProfile, error) {
	if c.client != nil {
		data, err := c.client.Get(ctx, alumniPoolKey).Bytes()
		if err == nil {
			var profiles []*domain.AlumniProfile
			if err := json.Unmarshal(data, &profiles); err == nil {
				return profiles, nil
			}
			c.logger.Warn("discarding unparseable alumni pool cache entry", zap.Error(err))
		} else if !errors.Is(err, redis.Nil) {
			c.logger.Warn("alumni pool cache read failed", zap.Error(err))
		}
	}

	profiles, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if c.client != nil {
		if data, err := json.Marshal(profiles); err == nil {
			if err := c.client.Set(ctx, alumniPoolKey, data, c.ttl).Err(); err != nil {
				c.logger.Warn("alumni pool cache write failed", zap.Error(err))
			}
		}
	}
	return profiles, nil
}

func (c *AlumniProfileCache) Create(ctx context.Context, profile *domain.AlumniProfile) error {
	if err := c.repo.Create(ctx, profile); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *AlumniProfileCache) Update(ctx context.Context, profile *domain.AlumniProfile) error {
	if err := c.repo.Update(ctx, profile); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *AlumniProfileCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *AlumniProfileCache) GetByID(ctx context.Context, id uuid.UUID) (*domain.AlumniProfile, error) {
	return c.repo.GetByID(ctx, id)
}

func (c *AlumniProfileCache) invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, alumniPoolKey).Err(); err != nil {
		c.logger.Warn("alumni pool cache invalidation failed", zap.Error(err))
	}
}
