// Package service provides the user directory used for display-name
// resolution across the portal.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/users/repository"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/logger"
)

// UnknownName is returned when a user cannot be resolved. It is a real
// display value, not a sentinel: records keep showing "Unknown" rather than
// failing when their user is gone.
const UnknownName = "Unknown"

// Directory resolves user ids to display names with a Redis cache in front
// of the user store. Resolution never fails; misses and store errors both
// come back as UnknownName.
type Directory struct {
	repo  repository.Repository
	cache *redis.Client
	ttl   time.Duration
	log   *logger.Logger
}

func NewDirectory(repo repository.Repository, cache *redis.Client, ttl time.Duration, log *logger.Logger) *Directory {
	return &Directory{repo: repo, cache: cache, ttl: ttl, log: log}
}

// DisplayName resolves one user id to a display name.
func (d *Directory) DisplayName(ctx context.Context, id uuid.UUID) string {
	if id == uuid.Nil {
		return UnknownName
	}

	key := cacheKey(id)
	if d.cache != nil {
		if name, err := d.cache.Get(ctx, key).Result(); err == nil && name != "" {
			return name
		}
	}

	user, err := d.repo.GetUser(ctx, id)
	if err != nil {
		d.log.DegradedPath("users.display_name", "returning Unknown", err)
		return UnknownName
	}

	if d.cache != nil {
		if err := d.cache.Set(ctx, key, user.Name, d.ttl).Err(); err != nil {
			d.log.DegradedPath("users.cache_set", "serving uncached", err)
		}
	}
	return user.Name
}

// DisplayNames resolves a batch of ids, deduplicating lookups.
func (d *Directory) DisplayNames(ctx context.Context, ids []uuid.UUID) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(ids))
	for _, id := range ids {
		if _, done := names[id]; done {
			continue
		}
		names[id] = d.DisplayName(ctx, id)
	}
	return names
}

// List returns all portal users.
func (d *Directory) List(ctx context.Context) ([]repository.UserRow, error) {
	return d.repo.ListUsers(ctx)
}

func cacheKey(id uuid.UUID) string {
	return "users:name:" + id.String()
}
