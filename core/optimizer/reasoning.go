package optimizer

import (
	"fmt"
	"strings"

	"github.com/YashRawat0947/SIH-2025/core/model"
)

// reasoningFor lists the qualitative factors supporting one decision. When
// no factor applies the train was a residual optimization choice.
func reasoningFor(t model.TrainRecord, pred model.PredictionResult, decision int) string {
	var reasons []string
	if decision == 1 {
		if t.FitnessScore >= 85 {
			reasons = append(reasons, fmt.Sprintf("High fitness score (%.1f)", t.FitnessScore))
		}
		if t.OpenWorkOrders == 0 {
			reasons = append(reasons, "No open work orders")
		}
		if t.CertValid {
			reasons = append(reasons, "Valid fitness certificate")
		}
		if t.RecentDelays == 0 {
			reasons = append(reasons, "No recent service delays")
		}
		if pred.Probability > 0.7 {
			reasons = append(reasons, fmt.Sprintf("Model recommends induction (%.2f confidence)", pred.Probability))
		}
		if len(reasons) == 0 {
			return "Inducted: Optimization decision"
		}
		return "Inducted: " + strings.Join(reasons, ", ")
	}

	if t.OpenWorkOrders > 0 {
		reasons = append(reasons, fmt.Sprintf("Open work orders (%d)", t.OpenWorkOrders))
	}
	if !t.CertValid {
		reasons = append(reasons, "Invalid/expired fitness certificate")
	}
	if t.FitnessScore < 70 {
		reasons = append(reasons, fmt.Sprintf("Low fitness score (%.1f)", t.FitnessScore))
	}
	if t.RecentDelays > 2 {
		reasons = append(reasons, fmt.Sprintf("Multiple recent delays (%d)", t.RecentDelays))
	}
	if t.MechanicalIssues > 0 {
		reasons = append(reasons, fmt.Sprintf("Mechanical issues (%d)", t.MechanicalIssues))
	}
	if pred.Probability < 0.3 {
		reasons = append(reasons, fmt.Sprintf("Model recommends holding (%.2f confidence)", pred.Probability))
	}
	if len(reasons) == 0 {
		return "Held: Optimization decision"
	}
	return "Held: " + strings.Join(reasons, ", ")
}
