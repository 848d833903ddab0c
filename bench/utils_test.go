package elastichash_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// BenchmarkMetrics represents metrics for a single benchmark
type BenchmarkMetrics struct {
	Name     string             `json:"name"`
	Category string             `json:"category"`
	Size     int                `json:"size"`
	Metrics  map[string]float64 `json:"metrics"`
}

// BenchmarkSummary represents all benchmark results of one run
type BenchmarkSummary struct {
	Timestamp string             `json:"timestamp"`
	GoVersion string             `json:"go_version"`
	Results   []BenchmarkMetrics `json:"results"`
}

// getMemoryStats returns the current heap usage in megabytes
func getMemoryStats() map[string]float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return map[string]float64{
		"alloc_mb": float64(m.Alloc) / (1024 * 1024),
		"sys_mb":   float64(m.Sys) / (1024 * 1024),
	}
}

// addLoadMetrics records the final load factor, and the load factor at the
// first ErrTableFull only when the table actually filled up
func addLoadMetrics(m map[string]float64, final, firstFull float64, filled bool) {
	m["final_load_factor"] = final
	if filled {
		m["first_full_load_factor"] = firstFull
	}
}

// saveBenchmarkResult appends a result to benchmark_history/<resultsFile>
// in the repository root. It is a no-op unless ELASTICHASH_BENCH_HISTORY
// is set.
func saveBenchmarkResult(metrics BenchmarkMetrics, resultsFile string) error {
	if os.Getenv("ELASTICHASH_BENCH_HISTORY") == "" {
		return nil
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	benchmarkDir := filepath.Join(filepath.Dir(currentDir), "benchmark_history")
	if err := os.MkdirAll(benchmarkDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	summary := BenchmarkSummary{
		Timestamp: time.Now().Format(time.RFC3339),
		GoVersion: runtime.Version(),
	}

	path := filepath.Join(benchmarkDir, resultsFile)
	if existing, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(existing, &summary); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	summary.Results = append(summary.Results, metrics)

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
