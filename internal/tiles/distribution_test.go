package tiles

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func testOptions() []TileOption {
	return []TileOption{
		{Value: 2, Weight: 10},
		{Value: 4, Weight: 20},
		{Value: 8, Weight: 30},
		{Value: 16, Weight: 40},
	}
}

func TestNewDistributionIntervals(t *testing.T) {
	tests := []struct {
		name     string
		options  []TileOption
		expected []float64
	}{
		{
			name:     "ascending weights",
			options:  testOptions(),
			expected: []float64{0.1, 0.3, 0.6, 1.0},
		},
		{
			name: "mixed weights",
			options: []TileOption{
				{Value: 2, Weight: 30},
				{Value: 4, Weight: 10},
				{Value: 8, Weight: 35},
				{Value: 16, Weight: 25},
			},
			expected: []float64{0.3, 0.4, 0.75, 1.0},
		},
		{
			name:     "single option",
			options:  []TileOption{{Value: 2, Weight: 100}},
			expected: []float64{1.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			d, err := NewDistribution(tt.options)
			is.NoErr(err)
			is.Equal(d.Intervals(), tt.expected)
		})
	}
}

func TestNewDistributionInvalidWeights(t *testing.T) {
	tests := []struct {
		name    string
		options []TileOption
	}{
		{"sums to 110", []TileOption{{Value: 2, Weight: 30}, {Value: 4, Weight: 80}}},
		{"sums to 90", []TileOption{{Value: 2, Weight: 30}, {Value: 4, Weight: 60}}},
		{"empty table", nil},
		{"zero weight", []TileOption{{Value: 2, Weight: 100}, {Value: 4, Weight: 0}}},
		{"negative weight", []TileOption{{Value: 2, Weight: 110}, {Value: 4, Weight: -10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDistribution(tt.options)
			if !errors.Is(err, ErrInvalidWeights) {
				t.Errorf("NewDistribution(%v) error = %v, want ErrInvalidWeights", tt.options, err)
			}
			if d != nil {
				t.Errorf("NewDistribution(%v) returned a distribution on error", tt.options)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	d := MustDistribution(testOptions())

	tests := []struct {
		draw float64
		want int
	}{
		{0.0, 2},
		{0.09, 2},
		{0.1, 2}, // boundary belongs to the earlier option
		{0.25, 4},
		{0.35, 8},
		{0.61, 16},
		{0.999, 16},
		{1.0, 16},
		{1.5, 16},
	}

	for _, tt := range tests {
		if got := d.Resolve(tt.draw); got != tt.want {
			t.Errorf("Resolve(%v) = %d, want %d", tt.draw, got, tt.want)
		}
	}
}

func TestDistributionIsImmutable(t *testing.T) {
	is := is.New(t)

	options := testOptions()
	d := MustDistribution(options)

	options[0].Value = 1024
	d.Options()[1].Value = 2048
	d.Intervals()[0] = 0.9

	is.Equal(d.Resolve(0.05), 2)
	is.Equal(d.Resolve(0.2), 4)
	is.Equal(d.Intervals()[0], 0.1)
}

func TestMustDistributionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustDistribution with bad weights should panic")
		}
	}()
	MustDistribution([]TileOption{{Value: 2, Weight: 50}})
}
