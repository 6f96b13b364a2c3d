package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salonhub/internal/domain"
)

func TestLoginForm(t *testing.T) {
	assert.Empty(t, LoginForm{Email: "dana@example.com", Password: "secret"}.Validate())

	fields := LoginForm{Email: "not-an-email", Password: ""}.Validate()
	assert.Contains(t, fields, "Email")
	assert.Contains(t, fields, "Password")
}

func TestSalonForm(t *testing.T) {
	ok := SalonForm{
		Name:         "Velvet & Shears",
		Address:      "12 Main Street",
		Phone:        "+1 (555) 010-0200",
		WorkingHours: domain.DefaultWorkingHours(),
	}
	assert.Empty(t, ok.Validate())

	fields := SalonForm{Name: "V", Email: "nope", Phone: "abc"}.Validate()
	assert.Contains(t, fields, "Name")
	assert.Contains(t, fields, "Address")
	assert.Contains(t, fields, "Email")
	assert.Contains(t, fields, "Phone")
}

func TestSalonForm_WorkingHours(t *testing.T) {
	form := SalonForm{
		Name:    "Velvet & Shears",
		Address: "12 Main Street",
		WorkingHours: domain.WorkingHours{
			"monday": {Open: "18:00", Close: "09:00", IsOpen: true},
		},
	}
	assert.Contains(t, form.Validate(), "WorkingHours")

	// A closed day is not checked.
	form.WorkingHours = domain.WorkingHours{
		"sunday": {Open: "", Close: "", IsOpen: false},
	}
	assert.Empty(t, form.Validate())

	form.WorkingHours = domain.WorkingHours{
		"monday": {Open: "9am", Close: "17:00", IsOpen: true},
	}
	assert.Contains(t, form.Validate(), "WorkingHours")
}

func TestServiceForm(t *testing.T) {
	ok := ServiceForm{Name: "Classic Haircut", Price: 35, Duration: 45, Category: "haircut"}
	assert.Empty(t, ok.Validate())

	fields := ServiceForm{Name: "Cut", Price: -5, Duration: 50, Category: "plumbing"}.Validate()
	assert.Contains(t, fields, "Price")
	assert.Contains(t, fields, "Duration")
	assert.Contains(t, fields, "Category")
}

func TestRegisterOwnerForm(t *testing.T) {
	ok := RegisterOwnerForm{Name: "Dana", Email: "dana@example.com", Password: "secret1"}
	assert.Empty(t, ok.Validate())

	fields := RegisterOwnerForm{Name: "D", Email: "x", Password: "abc"}.Validate()
	assert.Contains(t, fields, "Name")
	assert.Contains(t, fields, "Email")
	assert.Contains(t, fields, "Password")
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("+15550100200"))
	assert.True(t, ValidPhone("+1 (555) 010-0200"))
	assert.False(t, ValidPhone("call me"))
	assert.False(t, ValidPhone("+0 12"))
}
