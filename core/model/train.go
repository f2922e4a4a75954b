package model

import "fmt"

// TrainRecord holds the attributes of one train for a single planning cycle.
// Records are constructed fresh from the external data adapter each cycle and
// are superseded wholesale on the next refresh; nothing mutates them in place.
type TrainRecord struct {
	ID                   string
	FitnessScore         float64 // composite health metric, 0-100
	Depot                string
	Mileage              float64
	DaysSinceMaintenance float64
	OpenWorkOrders       int
	CertValid            bool
	DaysToCertExpiry     int // negative once the certificate has expired
	BrandingHours        float64
	RecentDelays         int
	MechanicalIssues     int
	DoorFaults           int
	OnTimePerformance    float64 // 0-100
}

// Validate checks that the record is structurally usable.
func (t TrainRecord) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("train record without identifier: %w", ErrMalformedRecord)
	}
	if t.Mileage < 0 {
		return fmt.Errorf("train %s: negative mileage: %w", t.ID, ErrMalformedRecord)
	}
	return nil
}
