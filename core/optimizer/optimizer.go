package optimizer

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/YashRawat0947/SIH-2025/core/logger"
	"github.com/YashRawat0947/SIH-2025/core/model"
)

// Optimizer selects which trains to induct by solving a binary program
// combining predictor output, business priorities and hard constraints.
// Instances are cheap and stateless between runs.
type Optimizer struct {
	cfg Config
	log logger.Logger
}

// New returns an optimizer with the given configuration. Zero-value config
// fields fall back to defaults.
func New(cfg Config, log logger.Logger) *Optimizer {
	cfg.SetDefaults()
	if log == nil {
		log = logger.Nop{}
	}
	return &Optimizer{cfg: cfg, log: log}
}

// Config returns the effective configuration.
func (o *Optimizer) Config() Config { return o.cfg }

// Optimize chooses a 0/1 decision per train. When the solver cannot prove an
// optimum the predictor labels become the decisions and the outcome is
// flagged as a fallback; reasoning and summary are produced either way.
func (o *Optimizer) Optimize(trains []model.TrainRecord, preds map[string]model.PredictionResult, target int) (*model.Outcome, error) {
	if len(trains) == 0 {
		return nil, model.ErrEmptyDataset
	}
	if target <= 0 {
		target = o.cfg.TargetInductions
	}

	prog, fixed := o.buildProgram(trains, preds, target)
	deadline := time.Now().Add(time.Duration(o.cfg.SolverTimeoutSeconds) * time.Second)

	o.log.Debugw("solving induction program", map[string]any{
		"trains": len(trains), "target": target, "excluded": len(fixed),
	})
	x, objVal, err := solveBinary(prog, fixed, deadline, o.cfg.MaxNodes)

	out := &model.Outcome{Decisions: make(map[string]model.Decision, len(trains))}
	if err != nil {
		status := model.StatusError
		if err == ErrInfeasible {
			status = model.StatusInfeasible
		}
		o.log.Warnf("solver did not reach an optimum (%v), falling back to predictor labels", err)
		out.Status = status
		out.Fallback = true
		for _, t := range trains {
			out.Decisions[t.ID] = model.Decision{Value: preds[t.ID].Label}
		}
	} else {
		out.Status = model.StatusOptimal
		out.Objective = &objVal
		for i, t := range trains {
			out.Decisions[t.ID] = model.Decision{Value: x[i]}
		}
	}

	for _, t := range trains {
		d := out.Decisions[t.ID]
		d.Reasoning = reasoningFor(t, preds[t.ID], d.Value)
		out.Decisions[t.ID] = d
	}
	out.Summary = model.Summarize(trains, out.Decisions)
	o.log.Infof("optimization %s: %d inducted, %d held", out.Status, out.Summary.TrainsInducted, out.Summary.TrainsHeld)
	return out, nil
}

// buildProgram assembles objective coefficients, hard-exclusion fixings and
// the constraint rows for the given fleet.
func (o *Optimizer) buildProgram(trains []model.TrainRecord, preds map[string]model.PredictionResult, target int) (binaryProgram, map[int]float64) {
	n := len(trains)
	w := o.cfg.Weights

	meanMileage := fleetMeanMileage(trains)
	q80 := mileageQuantile(trains, 0.8)

	// Stable position of each train within its depot group approximates the
	// physical retrieval order.
	depotPos := make([]int, n)
	depotCount := make(map[string]int)
	for i, t := range trains {
		depotPos[i] = depotCount[t.Depot]
		depotCount[t.Depot]++
	}

	obj := make([]float64, n)
	for i, t := range trains {
		p := preds[t.ID].Probability
		service := 0.4*(100*p) + 0.3*t.FitnessScore + 0.2*math.Max(0, 100-t.BrandingHours) + 0.1*t.OnTimePerformance
		mileage := math.Max(0, meanMileage-t.Mileage) / 1000
		shunting := float64(depotPos[i]) * 5
		targetUtil := int(0.8 * float64(o.cfg.depotCapacity(t.Depot)))
		efficiency := math.Max(0, float64(targetUtil-depotPos[i])) * 2

		obj[i] = w.ServicePriority*service + w.MileageBalance*mileage - w.ShuntingCost*shunting + w.DepotEfficiency*efficiency
	}

	fixed := make(map[int]float64)
	for i, t := range trains {
		if t.OpenWorkOrders > 0 || !t.CertValid || t.FitnessScore < o.cfg.MinFitnessScore {
			fixed[i] = 0
		}
	}

	var cons []ineq

	// Total inductions within [max(1, T-10), T+10].
	all := make(map[int]float64, n)
	negAll := make(map[int]float64, n)
	for i := 0; i < n; i++ {
		all[i] = 1
		negAll[i] = -1
	}
	lower := target - 10
	if lower < 1 {
		lower = 1
	}
	cons = append(cons,
		ineq{coefs: all, bound: float64(target + 10)},
		ineq{coefs: negAll, bound: -float64(lower)},
	)

	// Per-depot capacity.
	byDepot := make(map[string]map[int]float64)
	for i, t := range trains {
		if byDepot[t.Depot] == nil {
			byDepot[t.Depot] = make(map[int]float64)
		}
		byDepot[t.Depot][i] = 1
	}
	depots := make([]string, 0, len(byDepot))
	for d := range byDepot {
		depots = append(depots, d)
	}
	sort.Strings(depots)
	for _, d := range depots {
		cons = append(cons, ineq{coefs: byDepot[d], bound: float64(o.cfg.depotCapacity(d))})
	}

	// Top mileage quintile capped at 40% of target.
	highMileage := make(map[int]float64)
	for i, t := range trains {
		if t.Mileage > q80 {
			highMileage[i] = 1
		}
	}
	if len(highMileage) > 0 {
		cons = append(cons, ineq{coefs: highMileage, bound: float64(int(0.4 * float64(target)))})
	}

	// When enough trains have good on-time performance, require most of the
	// selection to come from them.
	goodOTP := make(map[int]float64)
	for i, t := range trains {
		if t.OnTimePerformance >= 90 {
			goodOTP[i] = -1
		}
	}
	if float64(len(goodOTP)) >= 0.6*float64(target) && len(goodOTP) > 0 {
		cons = append(cons, ineq{coefs: goodOTP, bound: -float64(int(0.6 * float64(target)))})
	}

	return binaryProgram{obj: obj, cons: cons}, fixed
}

func fleetMeanMileage(trains []model.TrainRecord) float64 {
	vals := make([]float64, len(trains))
	for i, t := range trains {
		vals[i] = t.Mileage
	}
	return stat.Mean(vals, nil)
}

func mileageQuantile(trains []model.TrainRecord, q float64) float64 {
	vals := make([]float64, len(trains))
	for i, t := range trains {
		vals[i] = t.Mileage
	}
	sort.Float64s(vals)
	return stat.Quantile(q, stat.Empirical, vals, nil)
}
