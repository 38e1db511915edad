package stats

import (
	"testing"
	"time"
)

func TestStorage(t *testing.T) {
	tempDir := t.TempDir()

	storage, err := NewStorage(tempDir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	defer storage.Shutdown()

	t.Run("RecordCounters", func(t *testing.T) {
		storage.RecordAnalysis(1, 3)
		storage.RecordCache(2, 4)
		current := storage.GetCurrentStats()

		if current.PageAnalyses != 1 {
			t.Errorf("Expected 1 page analysis, got %d", current.PageAnalyses)
		}
		if current.KeywordAnalyses != 3 {
			t.Errorf("Expected 3 keyword analyses, got %d", current.KeywordAnalyses)
		}
		if current.CacheHits != 2 {
			t.Errorf("Expected 2 cache hits, got %d", current.CacheHits)
		}
		if current.CacheMisses != 4 {
			t.Errorf("Expected 4 cache misses, got %d", current.CacheMisses)
		}
	})

	t.Run("Persistence", func(t *testing.T) {
		if err := storage.Shutdown(); err != nil {
			t.Fatalf("Shutdown: %v", err)
		}

		storage2, err := NewStorage(tempDir)
		if err != nil {
			t.Fatalf("Failed to create second storage: %v", err)
		}
		defer storage2.Shutdown()

		current := storage2.GetCurrentStats()
		if current.PageAnalyses != 1 {
			t.Errorf("Expected 1 page analysis after reload, got %d", current.PageAnalyses)
		}
	})

	t.Run("Cleanup", func(t *testing.T) {
		oldMonth := time.Now().AddDate(0, -2, 0).Format("2006-01")
		storage.mutex.Lock()
		storage.stats[oldMonth] = &MonthlyStats{
			PageAnalyses: 100,
			LastUpdated:  time.Now().AddDate(0, -2, 0),
		}
		storage.mutex.Unlock()

		storage.Cleanup(1)

		if _, exists := storage.GetMonthlyStats(oldMonth); exists {
			t.Error("Old stats should have been cleaned up")
		}
	})

	t.Run("AllMonths", func(t *testing.T) {
		months := storage.GetAllMonths()
		if len(months) == 0 {
			t.Fatal("expected at least the current month")
		}
		for i := 1; i < len(months); i++ {
			if months[i-1] < months[i] {
				t.Errorf("months not newest-first: %v", months)
			}
		}
	})
}
