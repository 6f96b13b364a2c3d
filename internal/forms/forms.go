// Package forms validates user input before any network call is made.
// Each Validate returns a field -> message map; an empty map means the
// form may be submitted.
package forms

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"salonhub/internal/domain"
)

var validate = validator.New()

var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ValidPhone accepts international numbers with optional separators.
func ValidPhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phoneRegex.MatchString(cleaned)
}

func structErrors(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return map[string]string{}
	}
	fields := map[string]string{}
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "min":
		return "value is too short"
	case "gte":
		return "value must not be negative"
	default:
		return "invalid value"
	}
}

type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (f LoginForm) Validate() map[string]string {
	return structErrors(f)
}

type SalonForm struct {
	Name         string `validate:"required,min=2"`
	Description  string
	Address      string `validate:"required"`
	Phone        string
	Email        string `validate:"omitempty,email"`
	WorkingHours domain.WorkingHours
}

func (f SalonForm) Validate() map[string]string {
	fields := structErrors(f)
	if f.Phone != "" && !ValidPhone(f.Phone) {
		fields["Phone"] = "enter a valid phone number"
	}
	for day, schedule := range f.WorkingHours {
		if !schedule.IsOpen {
			continue
		}
		if !validClockTime(schedule.Open) || !validClockTime(schedule.Close) || schedule.Open >= schedule.Close {
			fields["WorkingHours"] = "invalid hours for " + day
			break
		}
	}
	return fields
}

var clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func validClockTime(s string) bool {
	return clockRegex.MatchString(s)
}

type ServiceForm struct {
	Name     string  `validate:"required,min=2"`
	Price    float64 `validate:"gte=0"`
	Duration int
	Category string `validate:"required"`
}

func (f ServiceForm) Validate() map[string]string {
	fields := structErrors(f)
	if !domain.ValidServiceDuration(f.Duration) {
		fields["Duration"] = "duration must be one of the offered slot lengths"
	}
	if f.Category != "" && !domain.ValidServiceCategory(f.Category) {
		fields["Category"] = "unknown category"
	}
	return fields
}

type RegisterOwnerForm struct {
	Name     string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Phone    string
	Password string `validate:"required,min=6"`
}

func (f RegisterOwnerForm) Validate() map[string]string {
	fields := structErrors(f)
	if f.Phone != "" && !ValidPhone(f.Phone) {
		fields["Phone"] = "enter a valid phone number"
	}
	return fields
}
