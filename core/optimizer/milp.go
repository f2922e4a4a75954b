package optimizer

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// ineq is one linear constraint: sum over coefs of coef*x <= bound.
type ineq struct {
	coefs map[int]float64
	bound float64
}

// binaryProgram is a 0/1 maximization problem. fixed pins selected
// variables, which both encodes the hard exclusions and drives branching.
type binaryProgram struct {
	obj  []float64
	cons []ineq
}

const (
	simplexTol     = 1e-7
	integralityTol = 1e-6
)

// solveBinary points to the branch-and-bound entry. It can be overridden in
// tests to simulate solver failures.
var solveBinary = branchAndBound

// branchAndBound maximizes obj over binary variables subject to cons,
// starting from the given fixed assignments. It explores LP relaxations
// depth-first, branching on the most fractional variable, until the budget
// runs out or the tree is exhausted.
func branchAndBound(p binaryProgram, fixed map[int]float64, deadline time.Time, maxNodes int) ([]int, float64, error) {
	type node struct{ fixed map[int]float64 }
	stack := []node{{fixed: fixed}}

	bestObj := math.Inf(-1)
	var best []int
	nodes := 0

	for len(stack) > 0 {
		if nodes >= maxNodes || (!deadline.IsZero() && time.Now().After(deadline)) {
			// Optimality was not proven, with or without an incumbent.
			return nil, 0, ErrTimeout
		}
		nodes++

		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		x, relaxObj, err := solveRelaxation(p, n.fixed)
		if err != nil {
			// Infeasible subtree.
			continue
		}
		if relaxObj <= bestObj+1e-9 {
			continue
		}

		branch := mostFractional(x)
		if branch < 0 {
			rounded := roundSolution(x)
			if !feasible(p, rounded) {
				continue
			}
			if v := objective(p.obj, rounded); v > bestObj {
				bestObj = v
				best = rounded
			}
			continue
		}

		for _, v := range []float64{0, 1} {
			f := make(map[int]float64, len(n.fixed)+1)
			for k, val := range n.fixed {
				f[k] = val
			}
			f[branch] = v
			stack = append(stack, node{fixed: f})
		}
	}

	if best == nil {
		return nil, 0, ErrInfeasible
	}
	return best, bestObj, nil
}

// solveRelaxation solves the LP relaxation with the gonum simplex, variables
// in [0,1] and the fixed assignments substituted out.
func solveRelaxation(p binaryProgram, fixed map[int]float64) ([]float64, float64, error) {
	n := len(p.obj)
	free := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if _, ok := fixed[i]; !ok {
			free = append(free, i)
		}
	}
	pos := make(map[int]int, len(free))
	for j, i := range free {
		pos[i] = j
	}

	var fixedObj float64
	for i, v := range fixed {
		fixedObj += p.obj[i] * v
	}

	// Constraint rows over the free variables; fully fixed rows are checked
	// directly.
	type row struct {
		coefs map[int]float64 // keyed by free position
		bound float64
	}
	var rows []row
	for _, c := range p.cons {
		r := row{coefs: make(map[int]float64), bound: c.bound}
		for i, coef := range c.coefs {
			if v, ok := fixed[i]; ok {
				r.bound -= coef * v
			} else {
				r.coefs[pos[i]] = coef
			}
		}
		if len(r.coefs) == 0 {
			if r.bound < -simplexTol {
				return nil, 0, ErrInfeasible
			}
			continue
		}
		rows = append(rows, r)
	}

	if len(free) == 0 {
		out := make([]float64, n)
		for i, v := range fixed {
			out[i] = v
		}
		return out, fixedObj, nil
	}

	// Upper bounds x_j <= 1 for every free variable.
	for j := range free {
		rows = append(rows, row{coefs: map[int]float64{j: 1}, bound: 1})
	}

	// Standard form: minimize c'x subject to [G|I][x;s] = h, x,s >= 0.
	nf := len(free)
	m := len(rows)
	c := make([]float64, nf+m)
	for j, i := range free {
		c[j] = -p.obj[i]
	}
	a := mat.NewDense(m, nf+m, nil)
	b := make([]float64, m)
	for r, rw := range rows {
		for j, coef := range rw.coefs {
			a.Set(r, j, coef)
		}
		a.Set(r, nf+r, 1)
		b[r] = rw.bound
	}

	opt, xStd, err := lp.Simplex(c, a, b, simplexTol, nil)
	if err != nil {
		return nil, 0, err
	}
	out := make([]float64, n)
	for i, v := range fixed {
		out[i] = v
	}
	for j, i := range free {
		v := xStd[j]
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		out[i] = v
	}
	return out, -opt + fixedObj, nil
}

// mostFractional returns the index of the variable farthest from integral,
// or -1 when the solution is integral.
func mostFractional(x []float64) int {
	best := -1
	bestDist := integralityTol
	for i, v := range x {
		dist := math.Abs(v - math.Round(v))
		if dist > bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}

func roundSolution(x []float64) []int {
	out := make([]int, len(x))
	for i, v := range x {
		out[i] = int(math.Round(v))
	}
	return out
}

func feasible(p binaryProgram, x []int) bool {
	for _, c := range p.cons {
		var sum float64
		for i, coef := range c.coefs {
			sum += coef * float64(x[i])
		}
		if sum > c.bound+simplexTol {
			return false
		}
	}
	return true
}

func objective(obj []float64, x []int) float64 {
	var v float64
	for i, xi := range x {
		v += obj[i] * float64(xi)
	}
	return v
}
