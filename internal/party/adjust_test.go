package party

import "testing"

func TestAdjust(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base    int
		final   int
		adj     Adjustment
		message string
		line    string
	}{
		{base: 0, final: 5, adj: AdjustAdd, message: MessageEpic, line: "0 + 5 = 5"},
		{base: 1, final: 1, adj: AdjustNone, message: MessageChill, line: "1 (unchanged)"},
		{base: 5, final: 5, adj: AdjustNone, message: MessageChill, line: "5 (unchanged)"},
		{base: 6, final: 4, adj: AdjustSubtract, message: MessageClassy, line: "6 - 2 = 4"},
		{base: 20, final: 18, adj: AdjustSubtract, message: MessageClassy, line: "20 - 2 = 18"},
	}

	for _, tc := range tests {
		final, adj, message := Adjust(tc.base)
		if final != tc.final || adj != tc.adj || message != tc.message {
			t.Fatalf("Adjust(%d) = (%d, %s, %q), want (%d, %s, %q)",
				tc.base, final, adj, message, tc.final, tc.adj, tc.message)
		}
		if got := adj.Describe(tc.base, final); got != tc.line {
			t.Fatalf("Describe for base %d = %q, want %q", tc.base, got, tc.line)
		}
	}
}

func TestResultAdjustmentLine(t *testing.T) {
	t.Parallel()

	if got := Compute(testCatalog, nil).AdjustmentLine(); got != "0 + 5 = 5" {
		t.Fatalf("unexpected adjustment line %q", got)
	}
}

func BenchmarkCompute(b *testing.B) {
	indices := []int{0, 1, 2, 3, 4, 5, 6, 7}
	for i := 0; i < b.N; i++ {
		_ = Compute(testCatalog, indices)
	}
}
