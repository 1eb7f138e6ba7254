package dto

type LocationResponse struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ListLocationsResponse struct {
	Origin       LocationResponse   `json:"origin"`
	Destinations []LocationResponse `json:"destinations"`
}

type ModeResponse struct {
	Mode            string  `json:"mode"`
	SpeedKmh        float64 `json:"speed_kmh"`
	CostPerKm       float64 `json:"cost_per_km"`
	TransferTimeMin float64 `json:"transfer_time_min"`
}

type ListModesResponse struct {
	Modes []ModeResponse `json:"modes"`
}
