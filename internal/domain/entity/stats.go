package entity

// GrowthMetrics are the month-over-month deltas embedded in PlatformStats.
type GrowthMetrics struct {
	UsersThisMonth    int `json:"usersThisMonth"`
	TripsThisMonth    int `json:"tripsThisMonth"`
	BookingsThisMonth int `json:"bookingsThisMonth"`
}

// PlatformStats is the aggregate counter set behind the dashboard and
// analytics screens.
type PlatformStats struct {
	TotalUsers    int           `json:"totalUsers"`
	ActiveUsers   int           `json:"activeUsers"`
	TotalTrips    int           `json:"totalTrips"`
	ActiveTrips   int           `json:"activeTrips"`
	TotalBookings int           `json:"totalBookings"`
	TotalRevenue  float64       `json:"totalRevenue"`
	GrowthMetrics GrowthMetrics `json:"growthMetrics"`
}

// SeriesPoint is one sample of a derived analytics time series.
type SeriesPoint struct {
	Date     string  `json:"date"`
	Users    int     `json:"users"`
	Trips    int     `json:"trips"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// MonthlyMetric is one bar of the month-over-month comparison chart.
type MonthlyMetric struct {
	Month   string  `json:"month"`
	Users   int     `json:"users"`
	Trips   int     `json:"trips"`
	Revenue float64 `json:"revenue"`
}

// AnalyticsReport bundles everything the analytics screen renders.
type AnalyticsReport struct {
	Stats         *PlatformStats  `json:"stats"`
	Series        []SeriesPoint   `json:"series"`
	Monthly       []MonthlyMetric `json:"monthly"`
	PopularRoutes []PopularRoute  `json:"popularRoutes"`
	CityDemand    []CityDemand    `json:"cityDemand"`
}
