package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"
)

// Environment variable name for controlling statistics visibility
const ENV_DEV_MODE = "DEV_MODE"

// Statistics represents the collected usage statistics
type Statistics struct {
	UniqueVisitors  map[string]time.Time `json:"uniqueVisitors"`  // IP -> Last Visit Time
	AnalysisCount   int                  `json:"analysisCount"`   // Total number of analysis requests
	ErrorCount      int                  `json:"errorCount"`      // Number of failed requests
	PopularKeywords map[string]int       `json:"popularKeywords"` // Normalized keyword -> Count
	AverageLoadTime float64              `json:"averageLoadTime"` // Average handling time in milliseconds
	TotalLoadTime   float64              `json:"-"`               // Used to calculate average
	RequestCount    int                  `json:"-"`               // Used to calculate average
	LastPersisted   time.Time            `json:"lastPersisted"`   // Last time stats were saved
	mutex           sync.RWMutex         `json:"-"`
}

var (
	stats *Statistics
	once  sync.Once
)

// Initialize creates or loads the statistics
func Initialize() *Statistics {
	once.Do(func() {
		stats = &Statistics{
			UniqueVisitors:  make(map[string]time.Time),
			PopularKeywords: make(map[string]int),
			LastPersisted:   time.Now(),
		}

		if err := stats.Load(); err != nil {
			fmt.Printf("Could not load existing statistics: %v\n", err)
		}
	})
	return stats
}

// TrackVisitor records a unique visitor
func (s *Statistics) TrackVisitor(ip string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.UniqueVisitors[ip] = time.Now()
}

// TrackAnalysis records an analysis request and the keyword it targeted
func (s *Statistics) TrackAnalysis(keyword string, loadTime float64, hasError bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.AnalysisCount++

	if keyword != "" {
		s.PopularKeywords[keyword]++
	}

	if hasError {
		s.ErrorCount++
	}

	s.TotalLoadTime += loadTime
	s.RequestCount++
	s.AverageLoadTime = s.TotalLoadTime / float64(s.RequestCount)
}

// GetUniqueVisitorsCount returns the number of unique visitors in the last 24 hours
func (s *Statistics) GetUniqueVisitorsCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.uniqueVisitorsLocked()
}

func (s *Statistics) uniqueVisitorsLocked() int {
	count := 0
	cutoff := time.Now().Add(-24 * time.Hour)

	for _, lastVisit := range s.UniqueVisitors {
		if lastVisit.After(cutoff) {
			count++
		}
	}

	return count
}

// GetPopularKeywords returns the top N most analyzed keywords
func (s *Statistics) GetPopularKeywords(n int) map[string]int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.popularKeywordsLocked(n)
}

func (s *Statistics) popularKeywordsLocked(n int) map[string]int {
	type kwCount struct {
		keyword string
		count   int
	}
	ranked := make([]kwCount, 0, len(s.PopularKeywords))
	for kw, freq := range s.PopularKeywords {
		ranked = append(ranked, kwCount{kw, freq})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].keyword < ranked[j].keyword
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	result := make(map[string]int, n)
	for _, kc := range ranked[:n] {
		result[kc.keyword] = kc.count
	}
	return result
}

// GetErrorRate returns the error rate as a percentage
func (s *Statistics) GetErrorRate() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.errorRateLocked()
}

func (s *Statistics) errorRateLocked() float64 {
	if s.AnalysisCount == 0 {
		return 0
	}

	return (float64(s.ErrorCount) / float64(s.AnalysisCount)) * 100
}

// Save persists the statistics to a file
func (s *Statistics) Save() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.LastPersisted = time.Now()

	file, err := os.Create("statistics.json")
	if err != nil {
		return fmt.Errorf("could not create statistics file: %v", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	if err := encoder.Encode(s); err != nil {
		return fmt.Errorf("could not encode statistics: %v", err)
	}

	return nil
}

// Load reads the statistics from a file
func (s *Statistics) Load() error {
	file, err := os.Open("statistics.json")
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Not an error if file doesn't exist yet
		}
		return fmt.Errorf("could not open statistics file: %v", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(s); err != nil {
		return fmt.Errorf("could not decode statistics: %v", err)
	}

	return nil
}

// GetStatistics returns a copy of the current statistics, but only in development mode
func (s *Statistics) GetStatistics() map[string]interface{} {
	// In production, return limited statistics without keyword data
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := map[string]interface{}{
		"uniqueVisitors24h": s.uniqueVisitorsLocked(),
		"totalRequests":     s.AnalysisCount,
		"errorRate":         s.errorRateLocked(),
		"averageLoadTime":   s.AverageLoadTime,
	}
	if os.Getenv(ENV_DEV_MODE) == "true" {
		result["popularKeywords"] = s.popularKeywordsLocked(5) // Top 5 keywords only shown in dev mode
	}
	return result
}
