package repomanager

import (
	"github.com/dmitrijs2005/videoclub/internal/dbx"
	"github.com/dmitrijs2005/videoclub/internal/logging"
	"github.com/dmitrijs2005/videoclub/internal/server/repositories/movies"
)

// cachedManager decorates a RepositoryManager so every movies.Repository it
// vends resolves titles through a shared TitleCache.
type cachedManager struct {
	RepositoryManager
	cache movies.TitleCache
	log   logging.Logger
}

// WithTitleCache wraps m so title lookups are read through cache.
func WithTitleCache(m RepositoryManager, cache movies.TitleCache, log logging.Logger) RepositoryManager {
	return &cachedManager{RepositoryManager: m, cache: cache, log: log}
}

func (m *cachedManager) Movies(db dbx.DBTX) movies.Repository {
	return movies.NewCachedRepository(m.RepositoryManager.Movies(db), m.cache, m.log)
}
