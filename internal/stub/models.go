package stub

import (
	"encoding/json"
	"strings"
	"time"

	"salonhub/internal/domain"
)

type userRow struct {
	ID           string `gorm:"primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	Phone        string
	PasswordHash string
	Role         string
	IsVerified   bool
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userRow) TableName() string { return "users" }

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:         r.ID,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Role:       domain.Role(r.Role),
		IsVerified: r.IsVerified,
		Avatar:     r.Avatar,
	}
}

type salonRow struct {
	ID           string `gorm:"primaryKey"`
	OwnerID      string `gorm:"index"`
	Name         string
	Description  string
	Address      string
	Phone        string
	Email        string
	Images       string // JSON array of image references
	WorkingHours string // JSON weekday -> schedule
	Rating       float64
	ReviewCount  int
	Status       string `gorm:"index"`
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (salonRow) TableName() string { return "salons" }

func (r salonRow) toDomain() domain.Salon {
	return domain.Salon{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Address:      r.Address,
		Phone:        r.Phone,
		Email:        r.Email,
		Images:       stringToList(r.Images),
		WorkingHours: stringToHours(r.WorkingHours),
		Rating:       r.Rating,
		ReviewCount:  r.ReviewCount,
		Status:       domain.SalonStatus(r.Status),
		IsVerified:   r.IsVerified,
		OwnerID:      r.OwnerID,
	}
}

type serviceRow struct {
	ID          string `gorm:"primaryKey"`
	SalonID     string `gorm:"index"`
	Name        string
	Description string
	Price       float64
	Duration    int
	Category    string `gorm:"index"`
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (serviceRow) TableName() string { return "services" }

func (r serviceRow) toDomain() domain.Service {
	return domain.Service{
		ID:          r.ID,
		SalonID:     r.SalonID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
		Category:    r.Category,
		IsActive:    r.IsActive,
	}
}

type bookingRow struct {
	ID           string `gorm:"primaryKey"`
	CustomerID   string `gorm:"index"`
	CustomerName string
	SalonID      string `gorm:"index"`
	ServiceID    string
	ServiceName  string
	Date         string
	Time         string
	Status       string `gorm:"index"`
	TotalAmount  float64
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (bookingRow) TableName() string { return "bookings" }

func (r bookingRow) toDomain() domain.Booking {
	return domain.Booking{
		ID:           r.ID,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		SalonID:      r.SalonID,
		ServiceID:    r.ServiceID,
		ServiceName:  r.ServiceName,
		Date:         r.Date,
		Time:         r.Time,
		Status:       domain.BookingStatus(r.Status),
		TotalAmount:  r.TotalAmount,
		Notes:        r.Notes,
	}
}

type resetCodeRow struct {
	Email     string `gorm:"primaryKey"`
	Code      string
	Verified  bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (resetCodeRow) TableName() string { return "password_reset_codes" }

type notificationSettingsRow struct {
	UserID         string `gorm:"primaryKey"`
	EmailEnabled   bool
	SMSEnabled     bool
	BookingAlerts  bool
	ReminderHours  int
	MarketingMails bool
}

func (notificationSettingsRow) TableName() string { return "notification_settings" }

func (r notificationSettingsRow) toDomain() domain.NotificationSettings {
	return domain.NotificationSettings{
		EmailEnabled:   r.EmailEnabled,
		SMSEnabled:     r.SMSEnabled,
		BookingAlerts:  r.BookingAlerts,
		ReminderHours:  r.ReminderHours,
		MarketingMails: r.MarketingMails,
	}
}

// listToString / stringToList keep string slices JSON-encoded in a text
// column so the sqlite and postgres paths behave identically.
func listToString(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	raw, _ := json.Marshal(items)
	return string(raw)
}

func stringToList(s string) []string {
	if s == "" || s == "[]" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return strings.Split(s, ",")
	}
	return items
}

func hoursToString(wh domain.WorkingHours) string {
	if wh == nil {
		wh = domain.DefaultWorkingHours()
	}
	raw, _ := json.Marshal(wh)
	return string(raw)
}

func stringToHours(s string) domain.WorkingHours {
	if s == "" {
		return domain.DefaultWorkingHours()
	}
	var wh domain.WorkingHours
	if err := json.Unmarshal([]byte(s), &wh); err != nil {
		return domain.DefaultWorkingHours()
	}
	return wh
}
