package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YashRawat0947/SIH-2025/core/model"
)

func TestDerivedFeatures(t *testing.T) {
	rec := model.TrainRecord{
		ID:                   "KMRL-001",
		FitnessScore:         85,
		DaysSinceMaintenance: 20,
		OpenWorkOrders:       1,
		MechanicalIssues:     1,
		RecentDelays:         2,
		DoorFaults:           1,
		CertValid:            true,
	}
	// 85 - 0.5*20
	assert.Equal(t, 75.0, FitnessTrend(rec))
	// days bucket 2 + 2*owo + 1.5*mech
	assert.Equal(t, 5.5, MaintenanceUrgency(rec))
	// 0.5*2 + 1, fitness 85 adds nothing
	assert.Equal(t, 2.0, OperationalRisk(rec))
}

func TestDerivedFeaturesClamped(t *testing.T) {
	rec := model.TrainRecord{
		FitnessScore:         10,
		DaysSinceMaintenance: 60,
		OpenWorkOrders:       5,
		MechanicalIssues:     4,
		RecentDelays:         10,
		DoorFaults:           8,
		CertValid:            false,
	}
	assert.Equal(t, 0.0, FitnessTrend(rec))
	assert.Equal(t, 10.0, MaintenanceUrgency(rec))
	assert.Equal(t, 10.0, OperationalRisk(rec))
}

func TestBuildColumnOrder(t *testing.T) {
	b := NewBuilder()
	f, err := b.Build([]model.TrainRecord{
		{ID: "a", FitnessScore: 90, Depot: "Aluva"},
		{ID: "b", FitnessScore: 70, Depot: "Palarivattom"},
	})
	require.NoError(t, err)
	assert.Equal(t, Columns(), f.Cols)
	assert.Equal(t, []string{"a", "b"}, f.IDs)
	assert.Equal(t, []float64{90, 70}, f.Column(ColFitnessScore))
}

func TestBuildEmpty(t *testing.T) {
	b := NewBuilder()
	_, err := b.Build(nil)
	assert.ErrorIs(t, err, model.ErrEmptyDataset)
}

func TestRegistryFreezesAfterRecord(t *testing.T) {
	b := NewBuilder()
	_, err := b.Build([]model.TrainRecord{
		{ID: "a", Depot: "Aluva"},
		{ID: "b", Depot: "Palarivattom"},
	})
	require.NoError(t, err)
	b.Record(Columns())
	require.True(t, b.Depots().Frozen())

	// A depot first seen after the freeze collapses to the Unknown code.
	f, err := b.Build([]model.TrainRecord{{ID: "c", Depot: "Tripunithura"}})
	require.NoError(t, err)
	assert.Equal(t, []float64{float64(UnknownCategory)}, f.Column(ColDepotEncoded))

	// Known depots keep their training-time codes.
	f, err = b.Build([]model.TrainRecord{{ID: "d", Depot: "Palarivattom"}})
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, f.Column(ColDepotEncoded))
}

func TestRegistryRestore(t *testing.T) {
	r := NewRegistry()
	r.Restore([]string{"Unknown", "Aluva", "Kalamassery"})
	assert.True(t, r.Frozen())
	assert.Equal(t, 1, r.Encode("Aluva"))
	assert.Equal(t, 2, r.Encode("Kalamassery"))
	assert.Equal(t, UnknownCategory, r.Encode("Palarivattom"))
	assert.Equal(t, []string{"Unknown", "Aluva", "Kalamassery"}, r.Names())
}

func TestFrameAlign(t *testing.T) {
	b := NewBuilder()
	f, err := b.Build([]model.TrainRecord{{ID: "a", FitnessScore: 55, Mileage: 12000}})
	require.NoError(t, err)

	aligned := f.Align([]string{ColMileage, "unseen_column", ColFitnessScore})
	assert.Equal(t, []string{ColMileage, "unseen_column", ColFitnessScore}, aligned.Cols)
	assert.Equal(t, []float64{12000}, aligned.Column(ColMileage))
	assert.Equal(t, []float64{0}, aligned.Column("unseen_column"))
	assert.Equal(t, []float64{55}, aligned.Column(ColFitnessScore))
	assert.Equal(t, []float64{12000, 0, 55}, aligned.Row(0))
}

func TestFrameMatrix(t *testing.T) {
	b := NewBuilder()
	f, err := b.Build([]model.TrainRecord{
		{ID: "a", FitnessScore: 90},
		{ID: "b", FitnessScore: 60},
	})
	require.NoError(t, err)
	m := f.Matrix()
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, len(Columns()), c)
	assert.Equal(t, 90.0, m.At(0, 0))
	assert.Equal(t, 60.0, m.At(1, 0))
}
