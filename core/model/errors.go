package model

import "errors"

var (
	// ErrEmptyDataset indicates the caller supplied no train records at all.
	ErrEmptyDataset = errors.New("empty train dataset")
	// ErrMalformedRecord indicates a row that cannot be coerced into a
	// TrainRecord, typically a missing identifier.
	ErrMalformedRecord = errors.New("malformed train record")
)
