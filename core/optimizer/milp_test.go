package optimizer

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestBranchAndBoundIntegralRelaxation(t *testing.T) {
	// Pick at most two of three items; values 5, 4, 3.
	p := binaryProgram{
		obj: []float64{5, 4, 3},
		cons: []ineq{
			{coefs: map[int]float64{0: 1, 1: 1, 2: 1}, bound: 2},
		},
	}
	x, obj, err := branchAndBound(p, map[int]float64{}, time.Time{}, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{1, 1, 0}; !equalInts(x, want) {
		t.Fatalf("solution = %v, want %v", x, want)
	}
	if math.Abs(obj-9) > 1e-9 {
		t.Fatalf("objective = %f, want 9", obj)
	}
}

func TestBranchAndBoundHonorsFixed(t *testing.T) {
	p := binaryProgram{
		obj: []float64{5, 4, 3},
		cons: []ineq{
			{coefs: map[int]float64{0: 1, 1: 1, 2: 1}, bound: 2},
		},
	}
	// The most valuable item is pinned out, as a hard exclusion would do.
	x, obj, err := branchAndBound(p, map[int]float64{0: 0}, time.Time{}, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 1}; !equalInts(x, want) {
		t.Fatalf("solution = %v, want %v", x, want)
	}
	if math.Abs(obj-7) > 1e-9 {
		t.Fatalf("objective = %f, want 7", obj)
	}
}

func TestBranchAndBoundFractionalRelaxation(t *testing.T) {
	// The LP relaxation sits at x0 = 0.75; the integer optimum drops item 0
	// entirely.
	p := binaryProgram{
		obj: []float64{6, 5, 4},
		cons: []ineq{
			{coefs: map[int]float64{0: 4, 1: 3, 2: 3}, bound: 6},
		},
	}
	x, obj, err := branchAndBound(p, map[int]float64{}, time.Time{}, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 1}; !equalInts(x, want) {
		t.Fatalf("solution = %v, want %v", x, want)
	}
	if math.Abs(obj-9) > 1e-9 {
		t.Fatalf("objective = %f, want 9", obj)
	}
}

func TestBranchAndBoundInfeasible(t *testing.T) {
	// Two binaries cannot sum to three or more.
	p := binaryProgram{
		obj: []float64{1, 1},
		cons: []ineq{
			{coefs: map[int]float64{0: -1, 1: -1}, bound: -3},
		},
	}
	_, _, err := branchAndBound(p, map[int]float64{}, time.Time{}, 1000)
	if !errors.Is(err, ErrInfeasible) {
		t.Fatalf("error = %v, want ErrInfeasible", err)
	}
}

func TestBranchAndBoundNodeBudget(t *testing.T) {
	p := binaryProgram{
		obj: []float64{6, 5, 4},
		cons: []ineq{
			{coefs: map[int]float64{0: 4, 1: 3, 2: 3}, bound: 6},
		},
	}
	_, _, err := branchAndBound(p, map[int]float64{}, time.Time{}, 1)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("error = %v, want ErrTimeout", err)
	}
}

func TestBranchAndBoundDeadline(t *testing.T) {
	p := binaryProgram{
		obj: []float64{1, 1},
		cons: []ineq{
			{coefs: map[int]float64{0: 1, 1: 1}, bound: 1},
		},
	}
	_, _, err := branchAndBound(p, map[int]float64{}, time.Now().Add(-time.Second), 1000)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("error = %v, want ErrTimeout", err)
	}
}

func TestSolveRelaxationFullyFixed(t *testing.T) {
	p := binaryProgram{
		obj: []float64{2, 3},
		cons: []ineq{
			{coefs: map[int]float64{0: 1, 1: 1}, bound: 2},
		},
	}
	x, obj, err := solveRelaxation(p, map[int]float64{0: 1, 1: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if x[0] != 1 || x[1] != 1 {
		t.Fatalf("solution = %v, want [1 1]", x)
	}
	if math.Abs(obj-5) > 1e-9 {
		t.Fatalf("objective = %f, want 5", obj)
	}

	// Fixing both to one violates a sum <= 1 row.
	p.cons[0].bound = 1
	if _, _, err := solveRelaxation(p, map[int]float64{0: 1, 1: 1}); !errors.Is(err, ErrInfeasible) {
		t.Fatalf("error = %v, want ErrInfeasible", err)
	}
}

func TestMostFractional(t *testing.T) {
	if got := mostFractional([]float64{0, 1, 1, 0}); got != -1 {
		t.Fatalf("mostFractional on integral solution = %d, want -1", got)
	}
	if got := mostFractional([]float64{0, 0.9, 0.4, 1}); got != 2 {
		t.Fatalf("mostFractional = %d, want 2", got)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
