// Package tiles picks where a new tile appears and what value it takes.
//
// A Distribution maps a uniform draw in [0,1) onto a weighted table of tile
// values. A Generator combines it with a RandomSource to place one tile on a
// uniformly chosen empty cell.
package tiles

import (
	"errors"
	"fmt"
	"slices"
)

// TotalWeight is the sum every option table must reach.
// Weights are whole percentage points.
const TotalWeight = 100

// ErrInvalidWeights is returned when an option table does not sum to TotalWeight.
var ErrInvalidWeights = errors.New("tiles: invalid weights")

// TileOption is one entry of the weighted table.
type TileOption struct {
	Value  int `yaml:"value" json:"value"`
	Weight int `yaml:"weight" json:"weight"` // Percentage points, 1-100
}

// Distribution is a validated option table with its cumulative intervals.
// It is immutable once built.
type Distribution struct {
	options   []TileOption
	intervals []float64
}

// NewDistribution validates the options and precomputes cumulative
// probability intervals: interval i is the running weight through option i
// divided by TotalWeight, so the last interval is exactly 1.
func NewDistribution(options []TileOption) (*Distribution, error) {
	intervals := make([]float64, 0, len(options))
	cumulative := 0
	for i, opt := range options {
		if opt.Weight < 1 || opt.Weight > TotalWeight {
			return nil, fmt.Errorf("%w: option %d (value %d) has weight %d", ErrInvalidWeights, i, opt.Value, opt.Weight)
		}
		cumulative += opt.Weight
		intervals = append(intervals, float64(cumulative)/float64(TotalWeight))
	}

	if cumulative != TotalWeight {
		return nil, fmt.Errorf("%w: weights should sum up to %d, actual sum: %d", ErrInvalidWeights, TotalWeight, cumulative)
	}

	return &Distribution{
		options:   slices.Clone(options),
		intervals: intervals,
	}, nil
}

// MustDistribution is like NewDistribution but panics on error.
// Intended for package-level tables known to be valid.
func MustDistribution(options []TileOption) *Distribution {
	d, err := NewDistribution(options)
	if err != nil {
		panic(err)
	}
	return d
}

// Options returns a copy of the option table.
func (d *Distribution) Options() []TileOption {
	return slices.Clone(d.options)
}

// Intervals returns a copy of the cumulative intervals.
func (d *Distribution) Intervals() []float64 {
	return slices.Clone(d.intervals)
}

// Resolve maps a draw in [0,1) to a tile value. It selects the first option
// whose interval bound is >= draw, so a draw sitting exactly on a boundary
// belongs to the earlier option. Draws past the last bound select the last
// option.
func (d *Distribution) Resolve(draw float64) int {
	index := 0
	for index < len(d.intervals)-1 && draw > d.intervals[index] {
		index++
	}
	return d.options[index].Value
}
