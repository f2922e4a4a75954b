// Package ranking assembles optimization outcomes into the ranked induction
// list consumed by the presentation layer.
package ranking

import (
	"sort"

	"github.com/YashRawat0947/SIH-2025/core/model"
)

// Assemble joins train records with their decisions into a ranked table:
// inducted trains first, then by fitness score descending, ties broken by
// input order. Ranks are dense and 1-based. The function is pure and
// idempotent: identical inputs yield identical output.
func Assemble(trains []model.TrainRecord, out *model.Outcome) []model.RankedTrain {
	if out == nil {
		return nil
	}
	rows := make([]model.RankedTrain, 0, len(trains))
	for _, t := range trains {
		d := out.Decisions[t.ID]
		label := "Hold"
		if d.Value == 1 {
			label = "Induct"
		}
		rows = append(rows, model.RankedTrain{
			TrainID:        t.ID,
			Decision:       label,
			FitnessScore:   t.FitnessScore,
			Depot:          t.Depot,
			Mileage:        t.Mileage,
			OpenWorkOrders: t.OpenWorkOrders,
			RecentDelays:   t.RecentDelays,
			CertValid:      t.CertValid,
			Reasoning:      d.Reasoning,
		})
	}
	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].Decision != rows[b].Decision {
			return rows[a].Decision == "Induct"
		}
		return rows[a].FitnessScore > rows[b].FitnessScore
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
