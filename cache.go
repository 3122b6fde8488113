package docsite

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/eringen/docsite/views"
)

// DocCache is an in-memory cache of published docs with TTL.
type DocCache struct {
	mu      sync.RWMutex
	docs    []views.Doc
	bySlug  map[string]int
	fetched time.Time
	ttl     time.Duration
	store   *DocStore

	loaded  prometheus.Gauge
	reloads prometheus.Counter
}

// NewDocCache creates a DocCache backed by the given DocStore.
func NewDocCache(s *DocStore, ttl time.Duration) *DocCache {
	return &DocCache{
		store: s,
		ttl:   ttl,
		loaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "docsite",
			Name:      "docs_loaded",
			Help:      "Number of published docs in the cache.",
		}),
		reloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "docsite",
			Name:      "doc_cache_reloads_total",
			Help:      "Number of times the doc cache was reloaded from disk.",
		}),
	}
}

// Register exposes the cache metrics on reg.
func (c *DocCache) Register(reg prometheus.Registerer) error {
	if err := reg.Register(c.loaded); err != nil {
		return err
	}
	return reg.Register(c.reloads)
}

func (c *DocCache) valid() bool {
	return c.docs != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *DocCache) Invalidate() {
	c.mu.Lock()
	c.docs = nil
	c.bySlug = nil
	c.mu.Unlock()
}

func (c *DocCache) load() error {
	if c.valid() {
		return nil
	}
	all, err := c.store.ListDocs()
	if err != nil {
		return err
	}
	docs := make([]views.Doc, 0, len(all))
	bySlug := make(map[string]int, len(all))
	for _, d := range all {
		if d.Draft {
			continue
		}
		bySlug[d.Slug] = len(docs)
		docs = append(docs, d)
	}
	c.docs = docs
	c.bySlug = bySlug
	c.fetched = time.Now()
	c.loaded.Set(float64(len(docs)))
	c.reloads.Inc()
	return nil
}

// ensureLoaded returns cached docs after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *DocCache) ensureLoaded() ([]views.Doc, map[string]int, error) {
	c.mu.RLock()
	if c.valid() {
		docs, bySlug := c.docs, c.bySlug
		c.mu.RUnlock()
		return docs, bySlug, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, err
	}
	return c.docs, c.bySlug, nil
}

// ListDocs returns all published docs sorted by slug.
func (c *DocCache) ListDocs() ([]views.Doc, error) {
	docs, _, err := c.ensureLoaded()
	return docs, err
}

// GetDoc returns a single published doc by slug from the cache.
func (c *DocCache) GetDoc(slug string) (views.Doc, error) {
	clean, ok := cleanSlug(slug)
	if !ok {
		return views.Doc{}, ErrDocNotFound
	}
	docs, bySlug, err := c.ensureLoaded()
	if err != nil {
		return views.Doc{}, err
	}
	i, ok := bySlug[clean]
	if !ok {
		return views.Doc{}, ErrDocNotFound
	}
	return docs[i], nil
}
