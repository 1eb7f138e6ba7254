package domain

import "strings"

// Travel metrics of one transport mode over one leg.
// TotalTimeMin is always TravelTimeMin + TransferTimeMin.
type LegEvaluation struct {
	Mode            string  `json:"mode"`
	TravelTimeMin   float64 `json:"travel_time_min"`
	TransferTimeMin float64 `json:"transfer_time_min"`
	TotalTimeMin    float64 `json:"total_time_min"`
	Cost            float64 `json:"cost"`
}

// Represents one directed edge between two consecutive stops, with the
// transport mode chosen for it.
type Leg struct {
	From       string        `json:"from"`
	To         string        `json:"to"`
	DistanceKm float64       `json:"distance_km"`
	Selected   LegEvaluation `json:"selected"`
}

// Represents one alternative for the full visiting order.
// An Itinerary is immutable planning data: every alternative owns its Legs.
type Itinerary struct {
	Legs []Leg `json:"legs"`
}

func (it Itinerary) TotalDistanceKm() float64 {
	total := 0.0
	for _, l := range it.Legs {
		total += l.DistanceKm
	}
	return total
}

func (it Itinerary) TotalTimeMin() float64 {
	total := 0.0
	for _, l := range it.Legs {
		total += l.Selected.TotalTimeMin
	}
	return total
}

func (it Itinerary) TotalTransferTimeMin() float64 {
	total := 0.0
	for _, l := range it.Legs {
		total += l.Selected.TransferTimeMin
	}
	return total
}

func (it Itinerary) TotalCost() float64 {
	total := 0.0
	for _, l := range it.Legs {
		total += l.Selected.Cost
	}
	return total
}

// ModeChanges counts how many times the selected mode differs from the one
// before it. Boarding the first mode counts as a change.
func (it Itinerary) ModeChanges() int {
	changes := 0
	last := ""
	for i, l := range it.Legs {
		if i == 0 || l.Selected.Mode != last {
			changes++
			last = l.Selected.Mode
		}
	}
	return changes
}

// Signature is the sequence of selected mode names, used to detect
// alternatives that make identical per-leg choices.
func (it Itinerary) Signature() string {
	modes := make([]string, 0, len(it.Legs))
	for _, l := range it.Legs {
		modes = append(modes, l.Selected.Mode)
	}
	return strings.Join(modes, "\x1f")
}

// Stops returns the visited location names in order.
func (it Itinerary) Stops() []string {
	if len(it.Legs) == 0 {
		return []string{}
	}
	stops := make([]string, 0, len(it.Legs)+1)
	stops = append(stops, it.Legs[0].From)
	for _, l := range it.Legs {
		stops = append(stops, l.To)
	}
	return stops
}

// The optimal visiting order: origin first, then every destination once.
type Path struct {
	Stops           []string `json:"stops"`
	TotalDistanceKm float64  `json:"total_distance_km"`
}

// A pair of locations whose distance could not be computed.
type PairFailure struct {
	A   string
	B   string
	Err error
}

// The result of one planning run for one criterion.
type TripPlan struct {
	Criterion    Criterion
	Path         Path
	Alternatives []Itinerary
	Unavailable  []PairFailure
}
