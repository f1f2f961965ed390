package board

import (
	"slices"
	"testing"
)

func TestShiftRowLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
	}{
		{
			name:     "gaps between equal tiles",
			input:    []int{2, 0, 0, 0, 2, 0, 4, 0},
			expected: []int{4, 4, 0, 0, 0, 0, 0, 0},
			score:    4,
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 2, 4, 8, 2, 4},
			expected: []int{2, 4, 8, 2, 4, 8, 2, 4},
			score:    0,
		},
		{
			name:     "two pairs then a pair after a blocker",
			input:    []int{2, 2, 2, 2, 8, 4, 4, 2},
			expected: []int{4, 4, 8, 8, 2, 0, 0, 0},
			score:    16,
		},
		{
			name:     "leading zeros",
			input:    []int{0, 0, 0, 2, 2, 2, 2, 4},
			expected: []int{4, 4, 4, 0, 0, 0, 0, 0},
			score:    8,
		},
		{
			name:     "merged tile does not merge again",
			input:    []int{2, 2, 4, 0},
			expected: []int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "odd run merges leftmost pair",
			input:    []int{2, 2, 2, 0},
			expected: []int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "empty row",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    []int{0, 4, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    0,
		},
		{
			name:     "length one",
			input:    []int{8},
			expected: []int{8},
			score:    0,
		},
		{
			name:     "length zero",
			input:    []int{},
			expected: []int{},
			score:    0,
		},
		{
			name:     "non power of two values",
			input:    []int{3, 3, 5, 5},
			expected: []int{6, 10, 0, 0},
			score:    16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := slices.Clone(tt.input)
			result, score := ShiftRowLeft(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("ShiftRowLeft(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("ShiftRowLeft(%v) score = %d, want %d", tt.input, score, tt.score)
			}
			if !slices.Equal(input, tt.input) {
				t.Errorf("ShiftRowLeft mutated its input: %v -> %v", input, tt.input)
			}
		})
	}
}

func TestShiftRowRight(t *testing.T) {
	tests := []struct {
		input    []int
		expected []int
		score    int
	}{
		{[]int{2, 0, 0, 0, 2, 0, 4, 0}, []int{0, 0, 0, 0, 0, 0, 4, 4}, 4},
		{[]int{2, 4, 8, 2, 4, 8, 2, 4}, []int{2, 4, 8, 2, 4, 8, 2, 4}, 0},
		{[]int{2, 2, 2, 2, 8, 4, 4, 2}, []int{0, 0, 0, 4, 4, 8, 8, 2}, 16},
		{[]int{0, 2, 0, 2, 2, 2, 2, 4}, []int{0, 0, 0, 0, 2, 4, 4, 4}, 8},
	}

	for _, tt := range tests {
		result, score := ShiftRowRight(tt.input)
		if !slices.Equal(result, tt.expected) || score != tt.score {
			t.Errorf("ShiftRowRight(%v) = %v, %d, want %v, %d", tt.input, result, score, tt.expected, tt.score)
		}
	}
}

func TestShiftRowMirrorSymmetry(t *testing.T) {
	rows := [][]int{
		{2, 2, 2, 2},
		{4, 0, 4, 8},
		{0, 0, 2, 2},
		{2, 4, 4, 2},
		{16, 16, 8, 8, 0, 4},
		{0, 0, 0},
	}

	for _, row := range rows {
		right, rightScore := ShiftRowRight(row)
		left, leftScore := ShiftRowLeft(reverseRow(row))
		if !slices.Equal(right, reverseRow(left)) {
			t.Errorf("ShiftRowRight(%v) = %v, want mirror %v", row, right, reverseRow(left))
		}
		if rightScore != leftScore {
			t.Errorf("mirror score for %v: right %d, left %d", row, rightScore, leftScore)
		}
	}
}

func TestShiftRowNoMergeStability(t *testing.T) {
	row := []int{0, 2, 0, 4, 8, 0, 2}
	result, score := ShiftRowLeft(row)

	expected := []int{2, 4, 8, 2, 0, 0, 0}
	if !slices.Equal(result, expected) {
		t.Errorf("ShiftRowLeft(%v) = %v, want %v", row, result, expected)
	}
	if score != 0 {
		t.Errorf("ShiftRowLeft(%v) score = %d, want 0", row, score)
	}
}

func TestCompactRow(t *testing.T) {
	tests := []struct {
		input    []int
		expected []int
	}{
		{[]int{2, 0, 0, 0, 2, 0, 4, 0}, []int{2, 2, 4, 0, 0, 0, 0, 0}},
		{[]int{0, 0, 2, 0, 2, 0, 4, 0}, []int{2, 2, 4, 0, 0, 0, 0, 0}},
		{[]int{2, 2, 4, 0, 0, 0, 0, 0}, []int{2, 2, 4, 0, 0, 0, 0, 0}},
		{[]int{2, 2, 4}, []int{2, 2, 4}},
	}

	for _, tt := range tests {
		if got := compactRow(tt.input); !slices.Equal(got, tt.expected) {
			t.Errorf("compactRow(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestMergePairs(t *testing.T) {
	tests := []struct {
		input    []int
		expected []int
		score    int
	}{
		{[]int{2, 2, 2, 2, 4, 8, 0, 0}, []int{4, 0, 4, 0, 4, 8, 0, 0}, 8},
		{[]int{2, 4, 8, 2, 4, 8, 2, 4}, []int{2, 4, 8, 2, 4, 8, 2, 4}, 0},
		{[]int{2, 4, 4, 4, 0, 0, 0, 0}, []int{2, 8, 0, 4, 0, 0, 0, 0}, 8},
	}

	for _, tt := range tests {
		row := slices.Clone(tt.input)
		score := mergePairs(row)
		if !slices.Equal(row, tt.expected) || score != tt.score {
			t.Errorf("mergePairs(%v) = %v, %d, want %v, %d", tt.input, row, score, tt.expected, tt.score)
		}
	}
}
