package predictor

import (
	"math/rand"

	"github.com/YashRawat0947/SIH-2025/core/model"
)

// RuleProbability is the deterministic induction propensity used while the
// model is untrained. Open work orders or an invalid certificate force a
// train to the floor regardless of fitness.
func RuleProbability(t model.TrainRecord) float64 {
	if t.OpenWorkOrders > 0 || !t.CertValid {
		return 0.1
	}
	switch {
	case t.FitnessScore >= 85:
		return 0.9
	case t.FitnessScore >= 75:
		return 0.8
	case t.FitnessScore < 65:
		return 0.3
	default:
		return 0.7
	}
}

// inductionScore is the business-rule score behind synthetic labels. It is
// fully deterministic; the single stochastic draw happens in
// SyntheticLabels.
func inductionScore(t model.TrainRecord) float64 {
	score := 0.5
	switch {
	case t.FitnessScore >= 90:
		score += 0.3
	case t.FitnessScore >= 80:
		score += 0.1
	case t.FitnessScore < 70:
		score -= 0.4
	}
	if t.OpenWorkOrders > 0 {
		score -= 0.5
	}
	if !t.CertValid {
		score -= 0.6
	}
	switch {
	case t.RecentDelays > 3:
		score -= 0.2
	case t.RecentDelays == 0:
		score += 0.1
	}
	switch {
	case t.DaysSinceMaintenance > 21:
		score -= 0.1
	case t.DaysSinceMaintenance < 7:
		score += 0.1
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score
}

// SyntheticLabels derives training labels from the business-rule score with
// one random draw per row. Reproducible only when the caller seeds rng.
func SyntheticLabels(trains []model.TrainRecord, rng *rand.Rand) []int {
	labels := make([]int, len(trains))
	for i, t := range trains {
		if rng.Float64() < inductionScore(t) {
			labels[i] = 1
		}
	}
	return labels
}
