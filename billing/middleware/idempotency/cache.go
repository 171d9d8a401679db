package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"github.com/jewelcraft/jewel-billing/billing/model"
)

// ReplayWindow is how long a completed response stays replayable.
const ReplayWindow = 24 * time.Hour

var Cluster = cache.NewCluster("billing-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// Entries holds one entry per (endpoint, X-Idempotency-Key).
var Entries = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(ReplayWindow),
	},
)
