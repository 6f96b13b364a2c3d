package domain

// Aggregate reporting shapes returned by the /analytics endpoints.
// All numbers are computed server-side; the dashboard only renders them.

type SystemAnalytics struct {
	TotalUsers    int     `json:"totalUsers"`
	TotalSalons   int     `json:"totalSalons"`
	PendingSalons int     `json:"pendingSalons"`
	TotalBookings int     `json:"totalBookings"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

type UserAnalytics struct {
	TotalCustomers   int `json:"totalCustomers"`
	TotalSalonOwners int `json:"totalSalonOwners"`
	VerifiedUsers    int `json:"verifiedUsers"`
}

type BookingAnalytics struct {
	Pending      int     `json:"pending"`
	Confirmed    int     `json:"confirmed"`
	Completed    int     `json:"completed"`
	Cancelled    int     `json:"cancelled"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type SalonDirectoryAnalytics struct {
	Approved      int     `json:"approved"`
	Pending       int     `json:"pending"`
	Rejected      int     `json:"rejected"`
	AverageRating float64 `json:"averageRating"`
}

// SalonAnalytics is the per-salon report shown on the owner dashboard.
type SalonAnalytics struct {
	SalonID           string  `json:"salonId"`
	TotalBookings     int     `json:"totalBookings"`
	CompletedBookings int     `json:"completedBookings"`
	CancelledBookings int     `json:"cancelledBookings"`
	Revenue           float64 `json:"revenue"`
	AverageRating     float64 `json:"averageRating"`
}
