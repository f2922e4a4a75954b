package predictor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/YashRawat0947/SIH-2025/core/features"
)

// artifact is the single serialized unit holding everything a trained
// predictor needs: the forest, scaling parameters, the depot registry and
// the recorded feature column order.
type artifact struct {
	Columns   []string  `json:"columns"`
	Scaler    *Scaler   `json:"scaler"`
	Depots    []string  `json:"depots"`
	Forest    *Forest   `json:"forest"`
	ModelType string    `json:"model_type"`
	TrainedAt time.Time `json:"trained_at"`
}

// Save writes the fitted model to path, replacing any existing artifact
// atomically (temp file then rename) so a concurrent reader never observes
// a half-written model.
func (p *Predictor) Save(path string) error {
	if !p.trained {
		return ErrNotTrained
	}
	art := artifact{
		Columns:   p.builder.Recorded(),
		Scaler:    p.scaler,
		Depots:    p.builder.Depots().Names(),
		Forest:    p.forest,
		ModelType: "random_forest",
		TrainedAt: p.trainedAt,
	}
	data, err := json.Marshal(art)
	if err != nil {
		return fmt.Errorf("encode model artifact: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".model-*.json")
	if err != nil {
		return fmt.Errorf("write model artifact: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write model artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write model artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace model artifact: %w", err)
	}
	p.log.Infof("model saved to %s", path)
	return nil
}

// Load restores a model artifact. A missing file is not an error: it just
// leaves the predictor untrained and returns false. A corrupt or mismatched
// artifact returns ErrModelLoad and changes nothing.
func (p *Predictor) Load(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		p.log.Warnf("model artifact %s not found, staying untrained", path)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrModelLoad, err)
	}
	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return false, fmt.Errorf("%w: %v", ErrModelLoad, err)
	}
	if len(art.Columns) == 0 || art.Scaler == nil || !art.Scaler.valid(len(art.Columns)) || !art.Forest.valid(len(art.Columns)) {
		return false, fmt.Errorf("%w: artifact is structurally inconsistent", ErrModelLoad)
	}

	builder := features.NewBuilder()
	builder.Depots().Restore(art.Depots)
	builder.Record(art.Columns)
	p.builder = builder
	p.scaler = art.Scaler
	p.forest = art.Forest
	p.trained = true
	p.trainedAt = art.TrainedAt
	p.log.Infof("model loaded from %s (trained at %s)", path, art.TrainedAt.Format(time.RFC3339))
	return true, nil
}
