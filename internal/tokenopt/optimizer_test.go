package tokenopt

import "testing"

func TestOptimizePrompt(t *testing.T) {
	opt := NewOptimizer()

	tests := []struct {
		prompt   string
		expected string
	}{
		{"  hello   world  ", "hello world"},
		{"请帮助我理解这段代码", "理解这段代码"},
		{"你能解释一下吗", "解释一下吗"},
		{"could you explain this", "explain this"},
		{"already clean", "already clean"},
		{"", ""},
	}

	for _, test := range tests {
		if got := opt.OptimizePrompt(test.prompt); got != test.expected {
			t.Errorf("OptimizePrompt(%q): expected %q, got %q", test.prompt, test.expected, got)
		}
	}
}

func TestHeuristicTokens(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"", 0},
		{"hello", 1},     // 5 * 0.3
		{"你好", 3},        // 2 * 1.5
		{"你好ab", 3},      // 2*1.5 + 2*0.3 = 3.6, truncated
		{"hello world", 3}, // 11 * 0.3
	}

	for _, test := range tests {
		if got := heuristicTokens(test.text); got != test.expected {
			t.Errorf("heuristicTokens(%q): expected %d, got %d", test.text, test.expected, got)
		}
	}
}

func TestUsageStats(t *testing.T) {
	opt := NewOptimizer()

	if stats := opt.Stats(); stats.TotalCalls != 0 {
		t.Errorf("Expected zero calls initially, got %d", stats.TotalCalls)
	}

	opt.RecordUsage(100, 40)
	opt.RecordUsage(20, 10)

	stats := opt.Stats()
	if stats.TotalInputTokens != 120 {
		t.Errorf("Expected 120 input tokens, got %d", stats.TotalInputTokens)
	}
	if stats.TotalOutputTokens != 50 {
		t.Errorf("Expected 50 output tokens, got %d", stats.TotalOutputTokens)
	}
	if stats.TotalCalls != 2 {
		t.Errorf("Expected 2 calls, got %d", stats.TotalCalls)
	}
}
