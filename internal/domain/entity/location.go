package entity

// Location is the first geocoding match for a searched place name
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1"`
}
