package domain

// ServiceDurations are the bookable slot lengths, in minutes.
var ServiceDurations = []int{15, 30, 45, 60, 90, 120}

var ServiceCategories = []string{
	"haircut",
	"coloring",
	"styling",
	"nails",
	"skincare",
	"makeup",
	"massage",
	"spa",
}

func ValidServiceDuration(minutes int) bool {
	for _, d := range ServiceDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

func ValidServiceCategory(category string) bool {
	for _, c := range ServiceCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Service struct {
	ID          string  `json:"id"`
	SalonID     string  `json:"salonId"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Category    string  `json:"category"`
	IsActive    bool    `json:"isActive"`
}
