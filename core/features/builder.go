package features

import (
	"github.com/YashRawat0947/SIH-2025/core/model"
)

// Column names in canonical order. The order is part of the predictor
// contract: it is recorded once at training time and reproduced on every
// prediction call via Frame.Align.
const (
	ColFitnessScore       = "fitness_score"
	ColDaysSinceMaint     = "days_since_maintenance"
	ColMileage            = "mileage"
	ColBrandingHours      = "branding_hours"
	ColRecentDelays       = "recent_delays"
	ColOpenWorkOrders     = "open_work_orders"
	ColDoorFaults         = "door_faults"
	ColMechanicalIssues   = "mechanical_issues"
	ColCertValid          = "cert_valid"
	ColDaysToCertExpiry   = "days_to_cert_expiry"
	ColOnTimePerformance  = "on_time_performance"
	ColFitnessTrend       = "fitness_trend"
	ColMaintenanceUrgency = "maintenance_urgency"
	ColOperationalRisk    = "operational_risk"
	ColDepotEncoded       = "depot_encoded"
)

var columns = []string{
	ColFitnessScore,
	ColDaysSinceMaint,
	ColMileage,
	ColBrandingHours,
	ColRecentDelays,
	ColOpenWorkOrders,
	ColDoorFaults,
	ColMechanicalIssues,
	ColCertValid,
	ColDaysToCertExpiry,
	ColOnTimePerformance,
	ColFitnessTrend,
	ColMaintenanceUrgency,
	ColOperationalRisk,
	ColDepotEncoded,
}

// Columns returns the canonical feature column order.
func Columns() []string { return append([]string(nil), columns...) }

// Builder derives feature frames from train records. Building is a pure
// transform except for the depot registry, which accumulates categories
// until it is frozen at training time.
type Builder struct {
	depots   *Registry
	recorded []string
}

// NewBuilder returns a builder with an open depot registry.
func NewBuilder() *Builder {
	return &Builder{depots: NewRegistry()}
}

// Depots exposes the categorical registry, mainly for persistence.
func (b *Builder) Depots() *Registry { return b.depots }

// Record captures the column order of a training frame. Subsequent Build
// calls align their output to it.
func (b *Builder) Record(cols []string) {
	b.recorded = append([]string(nil), cols...)
	b.depots.Freeze()
}

// Recorded returns the training-time column order, or nil before training.
func (b *Builder) Recorded() []string {
	return append([]string(nil), b.recorded...)
}

// Build produces the feature frame for the given trains. When a column order
// has been recorded the frame is aligned to it.
func (b *Builder) Build(trains []model.TrainRecord) (*Frame, error) {
	if len(trains) == 0 {
		return nil, model.ErrEmptyDataset
	}
	ids := make([]string, len(trains))
	for i, t := range trains {
		ids[i] = t.ID
	}
	f := newFrame(ids, columns)
	for i, t := range trains {
		f.setRow(i, t, b.depots)
	}
	if b.recorded != nil {
		return f.Align(b.recorded), nil
	}
	return f, nil
}

func (f *Frame) setRow(i int, t model.TrainRecord, depots *Registry) {
	set := func(col string, v float64) {
		if c := f.Column(col); c != nil {
			c[i] = v
		}
	}
	set(ColFitnessScore, t.FitnessScore)
	set(ColDaysSinceMaint, t.DaysSinceMaintenance)
	set(ColMileage, t.Mileage)
	set(ColBrandingHours, t.BrandingHours)
	set(ColRecentDelays, float64(t.RecentDelays))
	set(ColOpenWorkOrders, float64(t.OpenWorkOrders))
	set(ColDoorFaults, float64(t.DoorFaults))
	set(ColMechanicalIssues, float64(t.MechanicalIssues))
	set(ColCertValid, boolToFloat(t.CertValid))
	set(ColDaysToCertExpiry, float64(t.DaysToCertExpiry))
	set(ColOnTimePerformance, t.OnTimePerformance)
	set(ColFitnessTrend, FitnessTrend(t))
	set(ColMaintenanceUrgency, MaintenanceUrgency(t))
	set(ColOperationalRisk, OperationalRisk(t))
	set(ColDepotEncoded, float64(depots.Encode(t.Depot)))
}

// FitnessTrend estimates how fitness has degraded since the last
// maintenance visit, clamped to the 0-100 fitness scale.
func FitnessTrend(t model.TrainRecord) float64 {
	trend := t.FitnessScore - 0.5*t.DaysSinceMaintenance
	return clamp(trend, 0, 100)
}

// MaintenanceUrgency scores how overdue a train is for attention, capped
// at 10.
func MaintenanceUrgency(t model.TrainRecord) float64 {
	var urgency float64
	switch {
	case t.DaysSinceMaintenance > 21:
		urgency += 3
	case t.DaysSinceMaintenance > 14:
		urgency += 2
	case t.DaysSinceMaintenance > 7:
		urgency += 1
	}
	urgency += 2 * float64(t.OpenWorkOrders)
	urgency += 1.5 * float64(t.MechanicalIssues)
	if urgency > 10 {
		urgency = 10
	}
	return urgency
}

// OperationalRisk scores recent service trouble, capped at 10.
func OperationalRisk(t model.TrainRecord) float64 {
	risk := 0.5*float64(t.RecentDelays) + float64(t.DoorFaults)
	switch {
	case t.FitnessScore < 70:
		risk += 2
	case t.FitnessScore < 80:
		risk += 1
	}
	if !t.CertValid {
		risk += 3
	}
	if risk > 10 {
		risk = 10
	}
	return risk
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
