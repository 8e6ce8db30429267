package entity

// PopularRoute is an aggregated origin/destination pair ranked by demand.
type PopularRoute struct {
	OriginCity      string  `json:"originCity"`
	DestinationCity string  `json:"destinationCity"`
	TripCount       int     `json:"tripCount"`
	AveragePrice    float64 `json:"averagePrice"`
}

// CityDemand reports search and booking pressure for a single city.
type CityDemand struct {
	City         string `json:"city"`
	SearchCount  int    `json:"searchCount"`
	BookingCount int    `json:"bookingCount"`
}
