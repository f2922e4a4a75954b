package model

// Summary aggregates a decision map. It is always recomputed from the full
// map together with the decisions it describes, never patched incrementally,
// so its counts cannot drift from the map.
type Summary struct {
	TotalTrains        int            `json:"total_trains"`
	TrainsInducted     int            `json:"trains_inducted"`
	TrainsHeld         int            `json:"trains_held"`
	Inducted           []string       `json:"inducted_trains"`
	Held               []string       `json:"held_trains"`
	AvgFitnessInducted float64        `json:"avg_fitness_inducted"`
	AvgFitnessHeld     float64        `json:"avg_fitness_held"`
	AvgMileageInducted float64        `json:"avg_mileage_inducted"`
	AvgMileageHeld     float64        `json:"avg_mileage_held"`
	DepotDistribution  map[string]int `json:"depot_distribution"`
	OverridesApplied   int            `json:"manual_overrides_applied,omitempty"`
}

// Summarize recomputes the aggregate view of a decision map. Trains are
// walked in input order so the inducted/held lists are deterministic.
func Summarize(trains []TrainRecord, decisions map[string]Decision) Summary {
	s := Summary{
		TotalTrains:       len(trains),
		DepotDistribution: make(map[string]int),
	}
	var fitIn, fitHeld, milIn, milHeld float64
	for _, t := range trains {
		d := decisions[t.ID]
		if d.Overridden {
			s.OverridesApplied++
		}
		if d.Value == 1 {
			s.Inducted = append(s.Inducted, t.ID)
			s.DepotDistribution[t.Depot]++
			fitIn += t.FitnessScore
			milIn += t.Mileage
		} else {
			s.Held = append(s.Held, t.ID)
			fitHeld += t.FitnessScore
			milHeld += t.Mileage
		}
	}
	s.TrainsInducted = len(s.Inducted)
	s.TrainsHeld = len(s.Held)
	if s.TrainsInducted > 0 {
		s.AvgFitnessInducted = fitIn / float64(s.TrainsInducted)
		s.AvgMileageInducted = milIn / float64(s.TrainsInducted)
	}
	if s.TrainsHeld > 0 {
		s.AvgFitnessHeld = fitHeld / float64(s.TrainsHeld)
		s.AvgMileageHeld = milHeld / float64(s.TrainsHeld)
	}
	return s
}
