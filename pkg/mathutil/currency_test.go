package mathutil

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "Round down",
			input:    1.234,
			expected: 1.23,
		},
		{
			name:     "Round up",
			input:    1.236,
			expected: 1.24,
		},
		{
			name:     "Already rounded",
			input:    100.50,
			expected: 100.50,
		},
		{
			name:     "Negative value",
			input:    -1.236,
			expected: -1.24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.input); got != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "ROI style rounding",
			input:    12.34,
			expected: 12.3,
		},
		{
			name:     "Round half up",
			input:    12.36,
			expected: 12.4,
		},
		{
			name:     "Negative percentage",
			input:    -49.96,
			expected: -50.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round1(tt.input); got != tt.expected {
				t.Errorf("Round1(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.001, 100.002, 0.01) {
		t.Errorf("WithinTolerance() = false, expected true for close values")
	}
	if WithinTolerance(100.0, 100.2, 0.01) {
		t.Errorf("WithinTolerance() = true, expected false for distant values")
	}
}

func TestCalculatePercentage(t *testing.T) {
	if got := CalculatePercentage(25, 200); got != 12.5 {
		t.Errorf("CalculatePercentage(25, 200) = %v, expected 12.5", got)
	}
	if got := CalculatePercentage(10, 0); got != 0 {
		t.Errorf("CalculatePercentage(10, 0) = %v, expected 0", got)
	}
}

func TestApplyPercentage(t *testing.T) {
	if got := ApplyPercentage(200, 30); got != 60 {
		t.Errorf("ApplyPercentage(200, 30) = %v, expected 60", got)
	}
}
