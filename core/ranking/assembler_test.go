package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YashRawat0947/SIH-2025/core/model"
)

func fixture() ([]model.TrainRecord, *model.Outcome) {
	trains := []model.TrainRecord{
		{ID: "a", FitnessScore: 70, Depot: "Aluva"},
		{ID: "b", FitnessScore: 95, Depot: "Palarivattom"},
		{ID: "c", FitnessScore: 80, Depot: "Aluva"},
		{ID: "d", FitnessScore: 80, Depot: "Kalamassery"},
	}
	out := &model.Outcome{
		Status: model.StatusOptimal,
		Decisions: map[string]model.Decision{
			"a": {Value: 0, Reasoning: "Held: Optimization decision"},
			"b": {Value: 1, Reasoning: "Inducted: High fitness score (95.0)"},
			"c": {Value: 1, Reasoning: "Inducted: Optimization decision"},
			"d": {Value: 0, Reasoning: "Held: Optimization decision"},
		},
	}
	return trains, out
}

func TestAssembleOrdering(t *testing.T) {
	trains, out := fixture()
	rows := Assemble(trains, out)
	require.Len(t, rows, 4)

	// Inducted first, fitness descending within each block.
	assert.Equal(t, "b", rows[0].TrainID)
	assert.Equal(t, "c", rows[1].TrainID)
	assert.Equal(t, "d", rows[2].TrainID)
	assert.Equal(t, "a", rows[3].TrainID)

	assert.Equal(t, "Induct", rows[0].Decision)
	assert.Equal(t, "Induct", rows[1].Decision)
	assert.Equal(t, "Hold", rows[2].Decision)
	assert.Equal(t, "Hold", rows[3].Decision)

	for i, row := range rows {
		assert.Equal(t, i+1, row.Rank)
	}
	assert.Equal(t, "Inducted: High fitness score (95.0)", rows[0].Reasoning)
}

func TestAssembleTiesKeepInputOrder(t *testing.T) {
	trains := []model.TrainRecord{
		{ID: "x", FitnessScore: 80},
		{ID: "y", FitnessScore: 80},
		{ID: "z", FitnessScore: 80},
	}
	out := &model.Outcome{Decisions: map[string]model.Decision{
		"x": {Value: 1}, "y": {Value: 1}, "z": {Value: 1},
	}}
	rows := Assemble(trains, out)
	assert.Equal(t, "x", rows[0].TrainID)
	assert.Equal(t, "y", rows[1].TrainID)
	assert.Equal(t, "z", rows[2].TrainID)
}

func TestAssembleIdempotent(t *testing.T) {
	trains, out := fixture()
	first := Assemble(trains, out)
	second := Assemble(trains, out)
	assert.Equal(t, first, second)
}

func TestAssembleNilOutcome(t *testing.T) {
	trains, _ := fixture()
	assert.Nil(t, Assemble(trains, nil))
}
