package domain

type SalonStatus string

const (
	SalonPending  SalonStatus = "pending"
	SalonApproved SalonStatus = "approved"
	SalonRejected SalonStatus = "rejected"
)

func (s SalonStatus) Valid() bool {
	switch s {
	case SalonPending, SalonApproved, SalonRejected:
		return true
	}
	return false
}

// ReviewableBy reports whether an admin decision (approve/reject) still
// applies. Approved and rejected salons are final from the dashboard.
func (s SalonStatus) ReviewableBy(role Role) bool {
	return role == RoleAdmin && s == SalonPending
}

type DaySchedule struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen bool   `json:"isOpen"`
}

// WorkingHours maps lowercase weekday names to that day's schedule.
type WorkingHours map[string]DaySchedule

var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func DefaultWorkingHours() WorkingHours {
	wh := WorkingHours{}
	for _, day := range Weekdays {
		switch day {
		case "saturday":
			wh[day] = DaySchedule{Open: "09:00", Close: "21:00", IsOpen: true}
		case "sunday":
			wh[day] = DaySchedule{Open: "10:00", Close: "19:00", IsOpen: false}
		default:
			wh[day] = DaySchedule{Open: "09:00", Close: "20:00", IsOpen: true}
		}
	}
	return wh
}

type Salon struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Address      string       `json:"address"`
	Phone        string       `json:"phone,omitempty"`
	Email        string       `json:"email,omitempty"`
	Images       []string     `json:"images,omitempty"`
	WorkingHours WorkingHours `json:"workingHours,omitempty"`
	Rating       float64      `json:"rating"`
	ReviewCount  int          `json:"reviewCount"`
	Status       SalonStatus  `json:"status"`
	IsVerified   bool         `json:"isVerified"`
	OwnerID      string       `json:"ownerId"`
	Services     []Service    `json:"services,omitempty"`
}
