package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareFlagsRegression(t *testing.T) {
	base := BenchSummary{Results: []BenchResult{{
		Name: "NumericKeys", Category: "scale", Size: 1024,
		Metrics: map[string]float64{"insertion_rate": 1000, "alloc_mb": 10},
	}}}
	current := BenchSummary{Results: []BenchResult{{
		Name: "NumericKeys", Category: "scale", Size: 1024,
		Metrics: map[string]float64{"insertion_rate": 800, "alloc_mb": 10},
	}}}

	got := compare(base, current)
	require.Len(t, got, 1)
	assert.True(t, got[0].hasRegressions())
	assert.Equal(t, "scale/NumericKeys/1024", got[0].Key)
}

func TestCompareSkipsUnmatched(t *testing.T) {
	base := BenchSummary{Results: []BenchResult{{Name: "A", Size: 1}}}
	current := BenchSummary{Results: []BenchResult{{Name: "A", Size: 2}}}
	assert.Empty(t, compare(base, current))
}

func TestIsHigherBetterMetric(t *testing.T) {
	assert.True(t, isHigherBetterMetric("random_lookup_rate"))
	assert.True(t, isHigherBetterMetric("first_full_load_factor"))
	assert.False(t, isHigherBetterMetric("alloc_mb"))
}
