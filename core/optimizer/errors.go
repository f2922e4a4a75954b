package optimizer

import "errors"

var (
	// ErrInfeasible indicates the binary program has no feasible solution.
	ErrInfeasible = errors.New("binary program infeasible")
	// ErrTimeout indicates the solver hit its wall-clock or node budget
	// before proving an optimum.
	ErrTimeout = errors.New("solver budget exhausted")
)
