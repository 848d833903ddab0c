// Command compare diffs two benchmark_history files written by the scale
// benchmarks in bench/ and exits non-zero on significant regressions.
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
)

// significanceThreshold is the percent change that counts as significant.
const significanceThreshold = 5.0

// BenchResult mirrors one entry of a benchmark_history file.
type BenchResult struct {
	Name     string             `json:"name"`
	Category string             `json:"category"`
	Size     int                `json:"size"`
	Metrics  map[string]float64 `json:"metrics"`
}

// BenchSummary mirrors a benchmark_history file.
type BenchSummary struct {
	Timestamp string        `json:"timestamp"`
	GoVersion string        `json:"go_version"`
	Results   []BenchResult `json:"results"`
}

// MetricComparison is the change of one metric between two runs.
type MetricComparison struct {
	Name          string
	BaseValue     float64
	CurrentValue  float64
	PercentChange float64
	IsRegression  bool
	IsSignificant bool
}

// BenchmarkComparison groups metric changes of one benchmark.
type BenchmarkComparison struct {
	Key     string
	Metrics []MetricComparison
	Score   float64
}

func (c BenchmarkComparison) hasRegressions() bool {
	for _, m := range c.Metrics {
		if m.IsRegression && m.IsSignificant {
			return true
		}
	}
	return false
}

func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: compare <base_json_file> <current_json_file>")
		os.Exit(1)
	}

	base, err := loadSummary(os.Args[1])
	if err != nil {
		fmt.Printf("Error loading base results: %v\n", err)
		os.Exit(1)
	}
	current, err := loadSummary(os.Args[2])
	if err != nil {
		fmt.Printf("Error loading current results: %v\n", err)
		os.Exit(1)
	}

	comparisons := compare(base, current)
	regressions := 0
	for _, c := range comparisons {
		if c.hasRegressions() {
			regressions++
		}
	}

	printComparisons(comparisons)

	if regressions > 0 {
		fmt.Printf("\nWARNING: %d benchmarks regressed significantly\n", regressions)
		os.Exit(1)
	}
}

func loadSummary(path string) (BenchSummary, error) {
	var s BenchSummary
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s, nil
}

func resultKey(r BenchResult) string {
	return fmt.Sprintf("%s/%s/%d", r.Category, r.Name, r.Size)
}

// compare matches results by category, name and table size. When a file
// holds several runs of the same benchmark the last one wins.
func compare(base, current BenchSummary) []BenchmarkComparison {
	baseResults := make(map[string]BenchResult)
	for _, r := range base.Results {
		baseResults[resultKey(r)] = r
	}
	currentResults := make(map[string]BenchResult)
	for _, r := range current.Results {
		currentResults[resultKey(r)] = r
	}

	var comparisons []BenchmarkComparison
	for key, cur := range currentResults {
		b, ok := baseResults[key]
		if !ok {
			continue
		}

		c := BenchmarkComparison{Key: key}
		for name, cv := range cur.Metrics {
			bv, ok := b.Metrics[name]
			if !ok {
				continue
			}
			change := 0.0
			if bv != 0 {
				change = (cv - bv) / bv * 100
			}
			regression := change > 0
			if isHigherBetterMetric(name) {
				regression = change < 0
			}
			if regression {
				c.Score -= math.Abs(change)
			} else {
				c.Score += math.Abs(change)
			}
			c.Metrics = append(c.Metrics, MetricComparison{
				Name:          name,
				BaseValue:     bv,
				CurrentValue:  cv,
				PercentChange: change,
				IsRegression:  regression && change != 0,
				IsSignificant: math.Abs(change) >= significanceThreshold,
			})
		}
		if len(c.Metrics) > 0 {
			c.Score /= float64(len(c.Metrics))
		}
		comparisons = append(comparisons, c)
	}

	// Worst first.
	sort.Slice(comparisons, func(i, j int) bool {
		ri, rj := comparisons[i].hasRegressions(), comparisons[j].hasRegressions()
		if ri != rj {
			return ri
		}
		return comparisons[i].Score < comparisons[j].Score
	})
	return comparisons
}

func printComparisons(comparisons []BenchmarkComparison) {
	if len(comparisons) == 0 {
		fmt.Println("No matching benchmarks found for comparison")
		return
	}

	for _, c := range comparisons {
		status := "ok"
		if c.hasRegressions() {
			status = "REGRESSION"
		}
		fmt.Printf("\n%s [%s] score %+.2f\n", c.Key, status, c.Score)

		sort.Slice(c.Metrics, func(i, j int) bool {
			return math.Abs(c.Metrics[i].PercentChange) > math.Abs(c.Metrics[j].PercentChange)
		})
		for _, m := range c.Metrics {
			if m.PercentChange == 0 {
				continue
			}
			marker := " "
			if m.IsSignificant {
				marker = "+"
				if m.IsRegression {
					marker = "-"
				}
			}
			fmt.Printf("  %s %-24s: %+8.2f%% (%g -> %g)\n",
				marker, m.Name, m.PercentChange, m.BaseValue, m.CurrentValue)
		}
	}
}

// isHigherBetterMetric reports whether a larger value is an improvement.
// Memory figures are the only lower-is-better metrics the benchmarks emit.
func isHigherBetterMetric(name string) bool {
	return strings.HasSuffix(name, "_rate") || strings.Contains(name, "load_factor")
}
