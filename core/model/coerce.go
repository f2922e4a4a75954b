package model

import (
	"fmt"
	"strconv"
)

// Default values applied when an optional column is absent or cannot be
// coerced to a number. Mileage defaults to the fleet mean, or
// DefaultMileage when no row carries a usable value.
const (
	DefaultFitnessScore      = 50
	DefaultDaysSinceMaint    = 30
	DefaultMileage           = 100000
	DefaultDaysToCertExpiry  = 30
	DefaultOnTimePerformance = 90
)

// CoerceRecords converts a tabular dataset, one map per row, into typed
// TrainRecords. Missing or non-numeric optional columns are defaulted, never
// rejected; only a missing identifier or an empty table is an input error.
func CoerceRecords(rows []map[string]any) ([]TrainRecord, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	// The mileage default is the fleet mean, which needs a first pass.
	var mileageSum float64
	var mileageN int
	for _, row := range rows {
		if v, ok := toFloat(row["mileage"]); ok {
			mileageSum += v
			mileageN++
		}
	}
	mileageDefault := float64(DefaultMileage)
	if mileageN > 0 {
		mileageDefault = mileageSum / float64(mileageN)
	}

	trains := make([]TrainRecord, 0, len(rows))
	for i, row := range rows {
		id, _ := row["train_id"].(string)
		if id == "" {
			return nil, fmt.Errorf("row %d: missing train_id: %w", i, ErrMalformedRecord)
		}
		t := TrainRecord{
			ID:                   id,
			FitnessScore:         floatOr(row["fitness_score"], DefaultFitnessScore),
			Depot:                stringOr(row["depot"], ""),
			Mileage:              floatOr(row["mileage"], mileageDefault),
			DaysSinceMaintenance: floatOr(row["days_since_maintenance"], DefaultDaysSinceMaint),
			OpenWorkOrders:       intOr(row["open_work_orders"], 0),
			CertValid:            boolOr(row["cert_valid"], true),
			DaysToCertExpiry:     intOr(row["days_to_cert_expiry"], DefaultDaysToCertExpiry),
			BrandingHours:        floatOr(row["branding_hours"], 0),
			RecentDelays:         intOr(row["recent_delays"], 0),
			MechanicalIssues:     intOr(row["mechanical_issues"], 0),
			DoorFaults:           intOr(row["door_faults"], 0),
			OnTimePerformance:    floatOr(row["on_time_performance"], DefaultOnTimePerformance),
		}
		if t.Mileage < 0 {
			t.Mileage = mileageDefault
		}
		trains = append(trains, t)
	}
	return trains, nil
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func floatOr(v any, def float64) float64 {
	if f, ok := toFloat(v); ok {
		return f
	}
	return def
}

func intOr(v any, def int) int {
	if f, ok := toFloat(v); ok {
		return int(f)
	}
	return def
}

func boolOr(v any, def bool) bool {
	switch x := v.(type) {
	case bool:
		return x
	case float64:
		return x != 0
	case int:
		return x != 0
	case string:
		b, err := strconv.ParseBool(x)
		if err != nil {
			return def
		}
		return b
	default:
		return def
	}
}

func stringOr(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}
