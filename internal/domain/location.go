package domain

// Immutable geographic coordinates (latitude, longitude) in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lat, lon].
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lat, c.Lon} }

// A named stop of a trip. The origin is a Location with the distinguished
// role of fixed path start; destinations are the stops to visit.
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (l Location) Coords() Coordinates {
	return Coordinates{Lat: l.Latitude, Lon: l.Longitude}
}
