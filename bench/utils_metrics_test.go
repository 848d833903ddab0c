package elastichash_test

import "testing"

func TestAddLoadMetrics(t *testing.T) {
	m := map[string]float64{}
	addLoadMetrics(m, 0.8, 0, false)
	if _, ok := m["first_full_load_factor"]; ok {
		t.Errorf("first_full_load_factor recorded for a table that never filled: %v", m)
	}
	if m["final_load_factor"] != 0.8 {
		t.Errorf("final_load_factor = %v, want 0.8", m["final_load_factor"])
	}

	addLoadMetrics(m, 0.97, 0.93, true)
	if m["first_full_load_factor"] != 0.93 {
		t.Errorf("first_full_load_factor = %v, want 0.93", m["first_full_load_factor"])
	}
}
