package stub

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"salonhub/internal/domain"
)

// Seed fills an empty database with a demo admin, owner, customer, two
// salons and a handful of services and bookings. Existing data is left
// alone.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&userRow{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := userRow{
		ID:         uuid.NewString(),
		Name:       "Platform Admin",
		Email:      "admin@salonhub.dev",
		Role:       string(domain.RoleAdmin),
		IsVerified: true,
	}
	owner := userRow{
		ID:         uuid.NewString(),
		Name:       "Dana Reeves",
		Email:      "owner@salonhub.dev",
		Phone:      "+15550100200",
		Role:       string(domain.RoleSalonOwner),
		IsVerified: true,
	}
	customer := userRow{
		ID:         uuid.NewString(),
		Name:       "Casey Morgan",
		Email:      "customer@salonhub.dev",
		Role:       string(domain.RoleCustomer),
		IsVerified: true,
	}
	for i, password := range []string{"admin123", "owner123", "customer123"} {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		switch i {
		case 0:
			admin.PasswordHash = string(hash)
		case 1:
			owner.PasswordHash = string(hash)
		case 2:
			customer.PasswordHash = string(hash)
		}
	}
	for _, user := range []userRow{admin, owner, customer} {
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	approved := salonRow{
		ID:           uuid.NewString(),
		OwnerID:      owner.ID,
		Name:         "Velvet & Shears",
		Description:  "Full-service salon in the city center.",
		Address:      "12 Main Street",
		Phone:        "+15550100201",
		Email:        "hello@velvetshears.dev",
		Images:       listToString([]string{"/uploads/velvet-front.jpg"}),
		WorkingHours: hoursToString(domain.DefaultWorkingHours()),
		Rating:       4.6,
		ReviewCount:  38,
		Status:       string(domain.SalonApproved),
		IsVerified:   true,
	}
	pending := salonRow{
		ID:           uuid.NewString(),
		OwnerID:      owner.ID,
		Name:         "Northside Studio",
		Address:      "4 River Road",
		WorkingHours: hoursToString(domain.DefaultWorkingHours()),
		Status:       string(domain.SalonPending),
	}
	for _, salon := range []salonRow{approved, pending} {
		if err := db.Create(&salon).Error; err != nil {
			return err
		}
	}

	haircut := serviceRow{
		ID:       uuid.NewString(),
		SalonID:  approved.ID,
		Name:     "Classic Haircut",
		Price:    35,
		Duration: 45,
		Category: "haircut",
		IsActive: true,
	}
	coloring := serviceRow{
		ID:       uuid.NewString(),
		SalonID:  approved.ID,
		Name:     "Full Coloring",
		Price:    120,
		Duration: 120,
		Category: "coloring",
		IsActive: true,
	}
	for _, service := range []serviceRow{haircut, coloring} {
		if err := db.Create(&service).Error; err != nil {
			return err
		}
	}

	today := time.Now().Format("2006-01-02")
	bookings := []bookingRow{
		{
			ID:           uuid.NewString(),
			CustomerID:   customer.ID,
			CustomerName: customer.Name,
			SalonID:      approved.ID,
			ServiceID:    haircut.ID,
			ServiceName:  haircut.Name,
			Date:         today,
			Time:         "10:00",
			Status:       string(domain.BookingPending),
			TotalAmount:  haircut.Price,
		},
		{
			ID:           uuid.NewString(),
			CustomerID:   customer.ID,
			CustomerName: customer.Name,
			SalonID:      approved.ID,
			ServiceID:    coloring.ID,
			ServiceName:  coloring.Name,
			Date:         today,
			Time:         "14:00",
			Status:       string(domain.BookingCompleted),
			TotalAmount:  coloring.Price,
			Notes:        "Repeat client.",
		},
	}
	for _, booking := range bookings {
		if err := db.Create(&booking).Error; err != nil {
			return err
		}
	}
	return nil
}
