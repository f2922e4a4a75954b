package model

// PredictionResult carries the classifier output for one train.
type PredictionResult struct {
	Label       int     `json:"label"`       // 1 induct, 0 hold
	Probability float64 `json:"probability"` // induction propensity, 0-1
	Confidence  float64 `json:"confidence"`  // |probability-0.5|*2
}

// Decision is the planner's verdict for one train. It is created by the
// optimizer and may only change through the explicit override path.
type Decision struct {
	Value      int    `json:"value"` // 1 induct, 0 hold
	Reasoning  string `json:"reasoning"`
	Overridden bool   `json:"overridden,omitempty"`
}

// Override is a manual decision supplied by an operator.
type Override struct {
	Value  int    `json:"value"`
	Reason string `json:"reason,omitempty"`
}

// Status reports how the optimizer terminated.
type Status string

const (
	StatusOptimal    Status = "optimal"
	StatusInfeasible Status = "infeasible"
	StatusError      Status = "error"
)

// Outcome is the full result of one optimization run. When Fallback is true
// the decisions were taken directly from the predictor labels because the
// solver did not reach an optimum; Status then records the attempted solve.
type Outcome struct {
	Status    Status              `json:"status"`
	Fallback  bool                `json:"fallback"`
	Objective *float64            `json:"objective,omitempty"`
	Decisions map[string]Decision `json:"decisions"`
	Summary   Summary             `json:"summary"`
}

// RankedTrain is one row of the assembled induction list.
type RankedTrain struct {
	Rank           int     `json:"priority_rank"`
	TrainID        string  `json:"train_id"`
	Decision       string  `json:"decision"` // "Induct" or "Hold"
	FitnessScore   float64 `json:"fitness_score"`
	Depot          string  `json:"depot"`
	Mileage        float64 `json:"mileage"`
	OpenWorkOrders int     `json:"open_work_orders"`
	RecentDelays   int     `json:"recent_delays"`
	CertValid      bool    `json:"cert_valid"`
	Reasoning      string  `json:"reasoning"`
}
