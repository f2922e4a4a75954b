// Package planner orchestrates one planning cycle: predict, optimize,
// assemble. A Session is the explicit context object holding the cycle's
// data, outcome and override state; the core keeps no process-wide state
// beyond the predictor's fitted parameters.
package planner

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/YashRawat0947/SIH-2025/core/logger"
	"github.com/YashRawat0947/SIH-2025/core/metrics"
	"github.com/YashRawat0947/SIH-2025/core/model"
	"github.com/YashRawat0947/SIH-2025/core/optimizer"
	"github.com/YashRawat0947/SIH-2025/core/predictor"
	"github.com/YashRawat0947/SIH-2025/core/ranking"
)

var (
	// ErrOverrideNotFound signals an override for a train id that is not in
	// the current decision map. Nothing is mutated.
	ErrOverrideNotFound = errors.New("override target not found in decision map")
	// ErrNoPlan signals an operation that needs a completed planning cycle.
	ErrNoPlan = errors.New("no planning cycle has run in this session")
)

// Session runs planning cycles for one fleet. Sessions are single-goroutine:
// concurrent fleets must use separate Session (and Predictor) instances, as
// the predictor's encoders and scaler are mutable instance state.
type Session struct {
	id   string
	log  logger.Logger
	sink metrics.Sink

	predictor *predictor.Predictor
	optimizer *optimizer.Optimizer

	trains    []model.TrainRecord
	preds     map[string]model.PredictionResult
	target    int
	outcome   *model.Outcome
	overrides map[string]model.Override
}

// NewSession wires a session from its collaborators. A nil sink disables
// metrics, a nil logger disables logging.
func NewSession(pred *predictor.Predictor, opt *optimizer.Optimizer, log logger.Logger, sink metrics.Sink) *Session {
	if log == nil {
		log = logger.Nop{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Session{
		id:        uuid.NewString(),
		log:       log,
		sink:      sink,
		predictor: pred,
		optimizer: opt,
		overrides: make(map[string]model.Override),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Outcome returns the current (possibly overridden) outcome, or nil before
// the first cycle.
func (s *Session) Outcome() *model.Outcome { return s.outcome }

// Plan runs one full cycle over a fresh train table. Any overrides from a
// previous cycle are discarded; the table supersedes the old one wholesale.
func (s *Session) Plan(trains []model.TrainRecord, target int) (*model.Outcome, error) {
	start := time.Now()
	if len(trains) == 0 {
		return nil, model.ErrEmptyDataset
	}
	for _, t := range trains {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}

	preds, err := s.predictor.Predict(trains)
	if err != nil {
		return nil, err
	}

	solveStart := time.Now()
	out, err := s.optimizer.Optimize(trains, preds, target)
	if err != nil {
		return nil, err
	}
	var objective float64
	if out.Objective != nil {
		objective = *out.Objective
	}
	if err := s.sink.RecordSolve(metrics.SolveResult{
		Status:    string(out.Status),
		Fallback:  out.Fallback,
		Objective: objective,
		Duration:  time.Since(solveStart),
	}); err != nil {
		s.log.Warnf("record solve metrics: %v", err)
	}

	s.trains = trains
	s.preds = preds
	s.target = target
	s.outcome = out
	s.overrides = make(map[string]model.Override)

	if err := s.sink.RecordFleetSize(len(trains)); err != nil {
		s.log.Warnf("record fleet size: %v", err)
	}
	if err := s.sink.RecordPlanCycle(metrics.CycleResult{
		SessionID: s.id,
		Trains:    len(trains),
		Inducted:  out.Summary.TrainsInducted,
		Held:      out.Summary.TrainsHeld,
		Fallback:  out.Fallback,
		Duration:  time.Since(start),
	}); err != nil {
		s.log.Warnf("record plan cycle: %v", err)
	}
	s.log.Debugw("planning cycle complete", map[string]any{
		"session":  s.id,
		"trains":   len(trains),
		"inducted": out.Summary.TrainsInducted,
		"status":   out.Status,
		"fallback": out.Fallback,
	})
	return out, nil
}

// Override forces a decision for one train. Unknown ids are rejected with
// ErrOverrideNotFound and leave the outcome untouched. Applying the same
// override twice is a no-op after the first application.
func (s *Session) Override(trainID string, value int, reason string) error {
	if s.outcome == nil {
		return ErrNoPlan
	}
	if _, ok := s.outcome.Decisions[trainID]; !ok {
		return ErrOverrideNotFound
	}
	s.overrides[trainID] = model.Override{Value: value, Reason: reason}
	optimizer.ApplyOverrides(s.outcome, s.trains, s.overrides)
	s.log.Infof("override applied: train %s -> %d", trainID, value)
	return nil
}

// ClearOverrides discards all overrides and reruns the optimizer from
// scratch over the stored table and predictions, reproducing the decision
// map a fresh zero-override run would yield.
func (s *Session) ClearOverrides() (*model.Outcome, error) {
	if s.outcome == nil {
		return nil, ErrNoPlan
	}
	out, err := s.optimizer.Optimize(s.trains, s.preds, s.target)
	if err != nil {
		return nil, err
	}
	s.outcome = out
	s.overrides = make(map[string]model.Override)
	return out, nil
}

// Ranking assembles the ranked induction list from the current outcome.
func (s *Session) Ranking() ([]model.RankedTrain, error) {
	if s.outcome == nil {
		return nil, ErrNoPlan
	}
	return ranking.Assemble(s.trains, s.outcome), nil
}
