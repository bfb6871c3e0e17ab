package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultPageCacheSize bounds the number of rendered pages kept in memory.
const DefaultPageCacheSize = 64

// PageKey identifies a rendered page: the store revision it was rendered
// from plus the canonical encoding of the view state.
type PageKey struct {
	Revision uint64
	State    string
}

// PageCache is a bounded LRU of rendered HTML pages. Entries for older
// revisions are never read again and age out naturally.
type PageCache struct {
	pages *lru.Cache[PageKey, []byte]
}

// NewPageCache returns a PageCache holding at most size pages.
func NewPageCache(size int) (*PageCache, error) {
	if size <= 0 {
		size = DefaultPageCacheSize
	}
	c, err := lru.New[PageKey, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("create page cache: %w", err)
	}
	return &PageCache{pages: c}, nil
}

// Get returns the cached page for key. A nil cache never hits.
func (c *PageCache) Get(key PageKey) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	return c.pages.Get(key)
}

// Put stores page under key.
func (c *PageCache) Put(key PageKey, page []byte) {
	if c == nil {
		return
	}
	c.pages.Add(key, page)
}
