package optimizer

// Weights holds the objective term weights. ShuntingCost is subtracted from
// the objective, the other terms are added.
type Weights struct {
	ServicePriority float64 `json:"service_priority"`
	MileageBalance  float64 `json:"mileage_balance"`
	ShuntingCost    float64 `json:"shunting_cost"`
	DepotEfficiency float64 `json:"depot_efficiency"`
}

// Config defines optimizer settings.
type Config struct {
	Weights              Weights        `json:"weights"`
	DepotCapacities      map[string]int `json:"depot_capacities"`
	DefaultDepotCapacity int            `json:"default_depot_capacity"`
	TargetInductions     int            `json:"target_inductions"`
	// SolverTimeoutSeconds bounds the branch-and-bound wall clock. A timeout
	// is reported as a non-optimal status, never as a crash.
	SolverTimeoutSeconds int `json:"solver_timeout_seconds"`
	// MaxNodes bounds the branch-and-bound search tree.
	MaxNodes int `json:"max_nodes"`
	// MinFitnessScore is the hard exclusion threshold.
	MinFitnessScore float64 `json:"min_fitness_score"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Weights == (Weights{}) {
		c.Weights = Weights{
			ServicePriority: 0.30,
			MileageBalance:  0.25,
			ShuntingCost:    0.30,
			DepotEfficiency: 0.15,
		}
	}
	if c.DepotCapacities == nil {
		c.DepotCapacities = map[string]int{
			"Aluva":        12,
			"Palarivattom": 8,
			"Kalamassery":  5,
		}
	}
	if c.DefaultDepotCapacity == 0 {
		c.DefaultDepotCapacity = 10
	}
	if c.TargetInductions == 0 {
		c.TargetInductions = 25
	}
	if c.SolverTimeoutSeconds == 0 {
		c.SolverTimeoutSeconds = 10
	}
	if c.MaxNodes == 0 {
		c.MaxNodes = 5000
	}
	if c.MinFitnessScore == 0 {
		c.MinFitnessScore = 60
	}
}

func (c Config) depotCapacity(depot string) int {
	if cap, ok := c.DepotCapacities[depot]; ok {
		return cap
	}
	return c.DefaultDepotCapacity
}
