package predictor

import "errors"

var (
	// ErrInsufficientData signals training data below the minimum viable
	// size, or labels that are all one class. A failed training run leaves
	// any previously fitted state untouched.
	ErrInsufficientData = errors.New("insufficient training data")

	// ErrModelLoad signals a corrupt or structurally mismatched model
	// artifact. A failed load never partially restores: whatever state the
	// predictor held before stays as it was.
	ErrModelLoad = errors.New("model artifact load failed")

	// ErrNotTrained signals an operation that requires a fitted model.
	ErrNotTrained = errors.New("model is not trained")
)
