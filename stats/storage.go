package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// MonthlyStats holds the operational counters for one month.
type MonthlyStats struct {
	PageAnalyses    int       `json:"page_analyses"`
	KeywordAnalyses int       `json:"keyword_analyses"`
	CacheHits       int       `json:"cache_hits"`
	CacheMisses     int       `json:"cache_misses"`
	LastUpdated     time.Time `json:"last_updated"`
}

// Storage persists monthly analysis counters to a JSON file with a
// background writer.
type Storage struct {
	mutex       sync.RWMutex
	stats       map[string]*MonthlyStats // key: "YYYY-MM"
	filePath    string
	lastWrite   time.Time
	writeBuffer chan struct{}
	done        chan struct{}
	closeOnce   sync.Once
}

// NewStorage creates a statistics store under dataDir, loading any
// previously persisted counters.
func NewStorage(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Storage{
		stats:       make(map[string]*MonthlyStats),
		filePath:    filepath.Join(dataDir, "stats.json"),
		writeBuffer: make(chan struct{}, 1),
		done:        make(chan struct{}),
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	go s.backgroundWriter()

	return s, nil
}

func (s *Storage) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return json.Unmarshal(data, &s.stats)
}

// save writes the counters atomically via a temp file rename.
func (s *Storage) save() error {
	s.mutex.RLock()
	data, err := json.Marshal(s.stats)
	s.mutex.RUnlock()

	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

func (s *Storage) backgroundWriter() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.writeBuffer:
			s.save()
		case <-ticker.C:
			s.save()
		case <-s.done:
			return
		}
	}
}

func currentMonth() string {
	return time.Now().Format("2006-01")
}

// requestWrite signals the background writer; a pending request is
// never duplicated.
func (s *Storage) requestWrite() {
	select {
	case s.writeBuffer <- struct{}{}:
	default:
	}
}

func (s *Storage) increment(apply func(*MonthlyStats)) {
	month := currentMonth()

	s.mutex.Lock()
	m, exists := s.stats[month]
	if !exists {
		m = &MonthlyStats{}
		s.stats[month] = m
	}
	apply(m)
	m.LastUpdated = time.Now()
	needsWrite := time.Since(s.lastWrite) > time.Minute
	if needsWrite {
		s.lastWrite = time.Now()
	}
	s.mutex.Unlock()

	if needsWrite {
		s.requestWrite()
	}
}

// RecordAnalysis counts completed page and keyword analyses.
func (s *Storage) RecordAnalysis(pages, keywords int) {
	s.increment(func(m *MonthlyStats) {
		m.PageAnalyses += pages
		m.KeywordAnalyses += keywords
	})
}

// RecordCache counts result-cache hits and misses.
func (s *Storage) RecordCache(hits, misses int) {
	s.increment(func(m *MonthlyStats) {
		m.CacheHits += hits
		m.CacheMisses += misses
	})
}

// GetCurrentStats returns the counters for the current month.
func (s *Storage) GetCurrentStats() MonthlyStats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if m, exists := s.stats[currentMonth()]; exists {
		return *m
	}
	return MonthlyStats{}
}

// GetMonthlyStats returns the counters for a specific "YYYY-MM" month.
func (s *Storage) GetMonthlyStats(yearMonth string) (MonthlyStats, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if m, exists := s.stats[yearMonth]; exists {
		return *m, true
	}
	return MonthlyStats{}, false
}

// GetAllMonths lists every month with counters, newest first.
func (s *Storage) GetAllMonths() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	months := make([]string, 0, len(s.stats))
	for month := range s.stats {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// Cleanup drops counters older than retainMonths months.
func (s *Storage) Cleanup(retainMonths int) {
	if retainMonths < 1 {
		retainMonths = 1
	}
	cutoff := time.Now().AddDate(0, -(retainMonths - 1), 0).Format("2006-01")

	s.mutex.Lock()
	for key := range s.stats {
		if key < cutoff {
			delete(s.stats, key)
		}
	}
	s.mutex.Unlock()

	s.requestWrite()
}

// Shutdown stops the background writer and flushes counters to disk.
func (s *Storage) Shutdown() error {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	return s.save()
}
