package huffpack

import "testing"

func TestComputeHistogram(t *testing.T) {
	block := []byte("aabbbc")
	freqs := make([]int, 256)
	ComputeHistogram(block, freqs)

	if freqs['a'] != 2 {
		t.Errorf("expected 2 a's, got %d", freqs['a'])
	}

	if freqs['b'] != 3 {
		t.Errorf("expected 3 b's, got %d", freqs['b'])
	}

	if freqs['c'] != 1 {
		t.Errorf("expected 1 c, got %d", freqs['c'])
	}

	total := 0

	for _, f := range freqs {
		total += f
	}

	if total != len(block) {
		t.Errorf("expected total frequency %d, got %d", len(block), total)
	}
}

func TestComputeHistogramResetsOnReuse(t *testing.T) {
	freqs := make([]int, 256)
	ComputeHistogram([]byte("xxxx"), freqs)
	ComputeHistogram([]byte("y"), freqs)

	if freqs['x'] != 0 {
		t.Errorf("expected stale counts to be cleared, got %d", freqs['x'])
	}

	if freqs['y'] != 1 {
		t.Errorf("expected 1 y, got %d", freqs['y'])
	}
}
