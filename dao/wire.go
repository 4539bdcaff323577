package dao

import (
	"Tuiter/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewTuitDAO,
	NewJoiner,
	NewLikeDAO,
	NewDislikeDAO,
	NewFollowDAO,
	NewBookmarkDAO,
	cache.NewStatsCache,
)
