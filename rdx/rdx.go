// Package rdx caches the public category list in Redis. The cache backs the
// nav bar on every page, so failures here are logged and swallowed: a page
// renders with an empty category menu rather than an error.
package rdx

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"tierranativa/models"
)

var Conn *redis.Client

const (
	categoriesKey = "tn:categories:public"
	categoriesTTL = 5 * time.Minute
)

// Init dials Redis. The connection is verified lazily; a dead Redis only
// disables caching.
func Init(addr string) {
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

// CacheCategories stores the nav category list.
func CacheCategories(ctx context.Context, cats []models.Category) {
	if Conn == nil {
		return
	}
	payload, err := json.Marshal(cats)
	if err != nil {
		log.Println("category cache marshal error:", err)
		return
	}
	if err := Conn.Set(ctx, categoriesKey, payload, categoriesTTL).Err(); err != nil {
		log.Println("category cache set error:", err)
	}
}

// CachedCategories returns the cached list and whether it was present.
func CachedCategories(ctx context.Context) ([]models.Category, bool) {
	if Conn == nil {
		return nil, false
	}
	payload, err := Conn.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("category cache get error:", err)
		}
		return nil, false
	}
	var cats []models.Category
	if err := json.Unmarshal(payload, &cats); err != nil {
		log.Println("category cache decode error:", err)
		return nil, false
	}
	return cats, true
}

// InvalidateCategories drops the cache after an admin mutation so the nav
// picks up the change on the next page.
func InvalidateCategories(ctx context.Context) {
	if Conn == nil {
		return
	}
	if err := Conn.Del(ctx, categoriesKey).Err(); err != nil && err != redis.Nil {
		log.Println("category cache del error:", err)
	}
}
