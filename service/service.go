// Package service orchestrates the pure analysis packages behind a TTL
// result cache. The analyzer itself keeps no cross-call state; caching
// and operational counters live here.
package service

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jeffaseo/backend/analyzer"
	"github.com/jeffaseo/backend/identity"
	"github.com/jeffaseo/backend/meta"
	"github.com/jeffaseo/backend/page"
	"github.com/jeffaseo/backend/stats"
)

// PageAnalysis is the full result of analyzing one HTML document for
// one target keyword.
type PageAnalysis struct {
	ID       string                 `json:"id"`
	Document *page.Document         `json:"document"`
	Keyword  analyzer.KeywordResult `json:"keyword"`
	Score    *analyzer.PageScore    `json:"score"`
	Snippet  meta.Snippet           `json:"snippet"`
}

type cacheEntry struct {
	analysis  *PageAnalysis
	timestamp time.Time
}

// CacheStats reports the state of the result cache.
type CacheStats struct {
	Entries  int           `json:"entries"`
	Hits     int           `json:"hits"`
	Misses   int           `json:"misses"`
	CacheTTL time.Duration `json:"cacheTtl"`
}

// Service runs analyses and caches their results by content id.
type Service struct {
	cfg             analyzer.Config
	cache           map[string]cacheEntry
	cacheMutex      sync.RWMutex
	cacheTTL        time.Duration
	maxCacheSize    int
	lastCleanup     time.Time
	cleanupInterval time.Duration
	stats           *stats.Storage
	done            chan struct{}
	closeOnce       sync.Once
}

// New creates a Service persisting its counters under dataDir.
func New(dataDir string) (*Service, error) {
	statsStorage, err := stats.NewStorage(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize stats storage: %w", err)
	}

	s := &Service{
		cfg:             analyzer.DefaultConfig(),
		cache:           make(map[string]cacheEntry),
		cacheTTL:        30 * time.Minute,
		maxCacheSize:    1000,
		cleanupInterval: 5 * time.Minute,
		lastCleanup:     time.Now(),
		stats:           statsStorage,
		done:            make(chan struct{}),
	}

	go s.periodicCleanup()

	return s, nil
}

// periodicCleanup evicts expired cache entries at a fixed interval.
func (s *Service) periodicCleanup() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.done:
			return
		}
	}
}

// cleanup removes expired entries and enforces the size limit by
// dropping the oldest entries first.
func (s *Service) cleanup() {
	now := time.Now()

	s.cacheMutex.Lock()
	defer s.cacheMutex.Unlock()

	for key, entry := range s.cache {
		if now.Sub(entry.timestamp) > s.cacheTTL {
			delete(s.cache, key)
		}
	}

	if len(s.cache) > s.maxCacheSize {
		entries := make([]struct {
			key       string
			timestamp time.Time
		}, 0, len(s.cache))
		for key, entry := range s.cache {
			entries = append(entries, struct {
				key       string
				timestamp time.Time
			}{key, entry.timestamp})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].timestamp.Before(entries[j].timestamp)
		})
		for i := 0; i < len(entries)-s.maxCacheSize; i++ {
			delete(s.cache, entries[i].key)
		}
	}

	s.lastCleanup = now
}

// SetCacheTTL sets the result cache TTL.
func (s *Service) SetCacheTTL(ttl time.Duration) {
	s.cacheMutex.Lock()
	s.cacheTTL = ttl
	s.cacheMutex.Unlock()
}

// SetMaxCacheSize sets the maximum number of cached analyses.
func (s *Service) SetMaxCacheSize(size int) {
	s.cacheMutex.Lock()
	s.maxCacheSize = size
	s.cacheMutex.Unlock()
	s.cleanup()
}

// ClearCache drops every cached analysis.
func (s *Service) ClearCache() {
	s.cacheMutex.Lock()
	s.cache = make(map[string]cacheEntry)
	s.cacheMutex.Unlock()
}

// IsCached reports whether an unexpired result exists for this html and
// keyword.
func (s *Service) IsCached(html, keyword string) bool {
	key := identity.ContentID("analysis", keyword, html)

	s.cacheMutex.RLock()
	defer s.cacheMutex.RUnlock()

	entry, found := s.cache[key]
	return found && time.Since(entry.timestamp) < s.cacheTTL
}

// GetCacheStats returns cache counters for the current month.
func (s *Service) GetCacheStats() CacheStats {
	current := s.stats.GetCurrentStats()

	s.cacheMutex.RLock()
	entries := len(s.cache)
	ttl := s.cacheTTL
	s.cacheMutex.RUnlock()

	return CacheStats{
		Entries:  entries,
		Hits:     current.CacheHits,
		Misses:   current.CacheMisses,
		CacheTTL: ttl,
	}
}

// AnalyzePage parses html, analyzes the keyword against the body, and
// scores the page. Results are cached by the content id of the inputs.
func (s *Service) AnalyzePage(html, keyword string) (*PageAnalysis, error) {
	if time.Since(s.lastCleanup) > s.cleanupInterval {
		go s.cleanup()
	}

	key := identity.ContentID("analysis", keyword, html)

	s.cacheMutex.RLock()
	if entry, found := s.cache[key]; found && time.Since(entry.timestamp) < s.cacheTTL {
		s.cacheMutex.RUnlock()
		s.stats.RecordCache(1, 0)
		return entry.analysis, nil
	}
	s.cacheMutex.RUnlock()

	s.stats.RecordCache(0, 1)

	analysis, err := s.analyzePage(html, keyword)
	if err != nil {
		return nil, err
	}

	s.cacheMutex.Lock()
	s.cache[key] = cacheEntry{analysis: analysis, timestamp: time.Now()}
	s.cacheMutex.Unlock()

	return analysis, nil
}

func (s *Service) analyzePage(html, keyword string) (*PageAnalysis, error) {
	doc, err := page.ParseString(html)
	if err != nil {
		return nil, err
	}

	result := analyzer.AnalyzeKeyword(doc.BodyText, keyword)
	score, err := analyzer.ScorePageWithConfig(doc.ScoreInput(keyword), s.cfg)
	if err != nil {
		return nil, err
	}

	s.stats.RecordAnalysis(1, 1)

	return &PageAnalysis{
		ID:       identity.ClaimID(doc.Canonical, identity.ContentID("page", keyword, doc.BodyText)),
		Document: doc,
		Keyword:  result,
		Score:    score,
		Snippet:  meta.BuildSnippet(doc.Title, doc.Description, doc.Canonical),
	}, nil
}

// AnalyzeText analyzes a keyword against plain text. Text analyses are
// cheap and not cached.
func (s *Service) AnalyzeText(text, keyword string, tier analyzer.SerpTier) analyzer.KeywordResult {
	if tier == "" {
		tier = analyzer.TierCore
	}
	s.stats.RecordAnalysis(0, 1)
	return analyzer.AnalyzeKeywordWithTier(text, keyword, tier)
}

// GetStats exposes the persistent counters storage.
func (s *Service) GetStats() *stats.Storage {
	return s.stats
}

// Shutdown stops the cleanup goroutine and flushes counters.
func (s *Service) Shutdown() error {
	if s == nil {
		return nil
	}

	s.closeOnce.Do(func() {
		close(s.done)
	})

	if s.stats != nil {
		if err := s.stats.Shutdown(); err != nil {
			return fmt.Errorf("failed to shutdown stats storage: %w", err)
		}
	}

	s.cacheMutex.Lock()
	s.cache = nil
	s.cacheMutex.Unlock()

	return nil
}
