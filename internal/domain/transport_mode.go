package domain

import "fmt"

// A transport mode definition from the static catalog.
//
// Numeric fields are pointers so that a record decoded from JSON or SQL can
// be told apart from one that explicitly carries zero: an absent field is a
// MissingField error at evaluation time, a zero cost is a free mode.
type TransportMode struct {
	Name            string   `json:"mode"`
	SpeedKmh        *float64 `json:"speed_kmh"`
	CostPerKm       *float64 `json:"cost_per_km"`
	TransferTimeMin *float64 `json:"transfer_time_min"`
}

// NewTransportMode builds a complete mode record.
func NewTransportMode(name string, speedKmh, costPerKm, transferTimeMin float64) TransportMode {
	return TransportMode{
		Name:            name,
		SpeedKmh:        &speedKmh,
		CostPerKm:       &costPerKm,
		TransferTimeMin: &transferTimeMin,
	}
}

// Validate checks that every field is present and in range.
func (m TransportMode) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("transport mode: %w: mode", ErrMissingField)
	}
	if m.SpeedKmh == nil {
		return fmt.Errorf("transport mode %q: %w: speed_kmh", m.Name, ErrMissingField)
	}
	if m.CostPerKm == nil {
		return fmt.Errorf("transport mode %q: %w: cost_per_km", m.Name, ErrMissingField)
	}
	if m.TransferTimeMin == nil {
		return fmt.Errorf("transport mode %q: %w: transfer_time_min", m.Name, ErrMissingField)
	}

	if *m.SpeedKmh <= 0 {
		return fmt.Errorf("transport mode %q: %w: speed_kmh must be > 0, got %v", m.Name, ErrInvalidField, *m.SpeedKmh)
	}
	if *m.CostPerKm < 0 {
		return fmt.Errorf("transport mode %q: %w: cost_per_km must be >= 0, got %v", m.Name, ErrInvalidField, *m.CostPerKm)
	}
	if *m.TransferTimeMin < 0 {
		return fmt.Errorf("transport mode %q: %w: transfer_time_min must be >= 0, got %v", m.Name, ErrInvalidField, *m.TransferTimeMin)
	}

	return nil
}
