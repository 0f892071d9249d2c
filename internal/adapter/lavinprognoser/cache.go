package lavinprognoser

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/lavinbot/internal/domain"
	"github.com/couchcryptid/lavinbot/internal/observability"
)

// Store keeps fetched pages keyed by URL.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, page []byte) error
}

// CachedFetcher wraps a PageFetcher with a page Store. Store failures are
// logged and fall through to the inner fetcher.
type CachedFetcher struct {
	inner   domain.PageFetcher
	store   Store
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewCachedFetcher creates a cache decorator around a fetcher.
func NewCachedFetcher(inner domain.PageFetcher, store Store, metrics *observability.Metrics, logger *slog.Logger) *CachedFetcher {
	return &CachedFetcher{
		inner:   inner,
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

func (c *CachedFetcher) FetchPage(ctx context.Context, url string) ([]byte, error) {
	page, ok, err := c.store.Get(ctx, url)
	switch {
	case err != nil:
		c.metrics.PageCache.WithLabelValues("error").Inc()
		c.logger.Warn("page cache get failed", "url", url, "error", err)
	case ok:
		c.metrics.PageCache.WithLabelValues("hit").Inc()
		return page, nil
	default:
		c.metrics.PageCache.WithLabelValues("miss").Inc()
	}

	page, err = c.inner.FetchPage(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := c.store.Set(ctx, url, page); err != nil {
		c.logger.Warn("page cache set failed", "url", url, "error", err)
	}
	return page, nil
}

// MemoryStore is a thread-safe in-memory LRU Store whose entries expire after a TTL.
type MemoryStore struct {
	maxEntries int
	ttl        time.Duration
	clock      clockwork.Clock

	mu      sync.Mutex
	entries map[string]*entry
	head    *entry // most recently used
	tail    *entry // least recently used
}

type entry struct {
	key     string
	page    []byte
	expires time.Time
	prev    *entry
	next    *entry
}

// NewMemoryStore creates an LRU store. A nil clock uses real time.
func NewMemoryStore(maxEntries int, ttl time.Duration, clock clockwork.Clock) *MemoryStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MemoryStore{
		maxEntries: maxEntries,
		ttl:        ttl,
		clock:      clock,
		entries:    make(map[string]*entry),
	}
}

func (c *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !c.clock.Now().Before(e.expires) {
		delete(c.entries, key)
		c.remove(e)
		return nil, false, nil
	}
	c.moveToFront(e)
	return e.page, true, nil
}

func (c *MemoryStore) Set(_ context.Context, key string, page []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	expires := c.clock.Now().Add(c.ttl)
	if e, ok := c.entries[key]; ok {
		e.page = page
		e.expires = expires
		c.moveToFront(e)
		return nil
	}

	e := &entry{key: key, page: page, expires: expires}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
	return nil
}

// Len returns the number of stored pages, expired or not.
func (c *MemoryStore) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *MemoryStore) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *MemoryStore) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *MemoryStore) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *MemoryStore) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
