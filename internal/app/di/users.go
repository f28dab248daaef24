// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "tasktrack_backend/internal/feature/auth/adapters"
	"tasktrack_backend/internal/feature/auth/usecase"
	"tasktrack_backend/internal/platform/cache"
)

// NewUserRepository creates a UserRepository implementation.
// If Redis is available, the MySQL repository is wrapped in a read-through
// cache for ID lookups. Otherwise the database is hit directly.
func NewUserRepository(rdb *redis.Client, db *gorm.DB) usecase.UserRepository {
	users := authadapters.NewUserMySQL(db)
	if rdb != nil {
		return cache.NewCachingUserRepository(rdb, 0, users, "users")
	}
	return users
}
