package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"encore.app/invoicing/model"
)

// IdempotencyCluster is the cache cluster backing idempotency tracking.
var IdempotencyCluster = cache.NewCluster("invoicing-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// IdempotencyCache stores one entry per (endpoint, key) pair. Regeneration
// is cheap to repeat, so entries expire after an hour.
var IdempotencyCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	IdempotencyCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(time.Hour),
	},
)
