package athlete

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=athlete_test

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const profileCacheTTL = 60 * 60 // seconds

type profileStore interface {
	Get(ctx context.Context, id int) (*Profile, error)
	Save(ctx context.Context, p *Profile) error
}

// CachedRepo loads a profile once and serves it from memory until it
// expires or is saved again.
type CachedRepo struct {
	store profileStore
	cache *freecache.Cache
}

func NewCachedRepo(store profileStore, cache *freecache.Cache) *CachedRepo {
	return &CachedRepo{
		store: store,
		cache: cache,
	}
}

func (c *CachedRepo) Get(ctx context.Context, id int) (*Profile, error) {
	key := cacheKey(id)
	if raw, err := c.cache.Get(key); err == nil {
		var p Profile
		if err := json.Unmarshal(raw, &p); err == nil {
			return &p, nil
		}
		log.Warnf("athlete cache: drop corrupt entry for %d", id)
		c.cache.Del(key)
	}

	p, err := c.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(p); err == nil {
		if err := c.cache.Set(key, raw, profileCacheTTL); err != nil {
			log.Warnf("athlete cache: set %d: %s", id, err)
		}
	}
	return p, nil
}

func (c *CachedRepo) Save(ctx context.Context, p *Profile) error {
	if err := c.store.Save(ctx, p); err != nil {
		return err
	}
	c.cache.Del(cacheKey(p.ID))
	return nil
}

func cacheKey(id int) []byte {
	return []byte("athlete:" + strconv.Itoa(id))
}
