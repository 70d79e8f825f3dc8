package model

import (
	"math"
	"testing"
)

func TestScalerStandardizes(t *testing.T) {
	rows := [][]float64{
		{1, 10, 5},
		{2, 20, 5},
		{3, 30, 5},
	}
	s := FitScaler(rows)

	if got := s.Means[0]; got != 2 {
		t.Errorf("mean = %v, want 2", got)
	}
	scaled := s.TransformAll(rows)

	// Each column should come out zero-mean and, the constant one, all zero.
	for col := 0; col < 3; col++ {
		var sum float64
		for _, r := range scaled {
			sum += r[col]
		}
		if math.Abs(sum) > 1e-9 {
			t.Errorf("column %d mean = %v, want 0", col, sum/3)
		}
	}
	for i, r := range scaled {
		if r[2] != 0 {
			t.Errorf("row %d zero-variance column = %v, want 0", i, r[2])
		}
	}
}

func TestScalerEmptyInput(t *testing.T) {
	s := FitScaler(nil)
	if s.Dims() != 0 {
		t.Errorf("dims = %d, want 0", s.Dims())
	}
}
