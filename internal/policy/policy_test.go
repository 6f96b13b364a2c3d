package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salonhub/internal/domain"
)

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed(domain.RoleSalonOwner, ActionSalonCreate))
	assert.False(t, Allowed(domain.RoleSalonOwner, ActionSalonApprove))
	assert.False(t, Allowed(domain.RoleSalonOwner, ActionUserManage))

	assert.True(t, Allowed(domain.RoleAdmin, ActionSalonApprove))
	assert.True(t, Allowed(domain.RoleAdmin, ActionUserManage))
	assert.False(t, Allowed(domain.RoleAdmin, ActionSalonCreate))

	// Customers and unknown roles get nothing at all.
	assert.False(t, Allowed(domain.RoleCustomer, ActionAnalyticsView))
	assert.False(t, Allowed(domain.Role("ghost"), ActionSalonEdit))
}

func TestNavSections(t *testing.T) {
	assert.Equal(t, []string{"dashboard", "my-salons", "services", "bookings", "analytics"},
		NavSections(domain.RoleSalonOwner))
	assert.Equal(t, []string{"dashboard", "salons", "users", "bookings", "analytics"},
		NavSections(domain.RoleAdmin))
	assert.Nil(t, NavSections(domain.RoleCustomer))
}

func TestBookingActions(t *testing.T) {
	assert.Equal(t, []domain.BookingStatus{domain.BookingConfirmed, domain.BookingCancelled},
		BookingActions(domain.RoleSalonOwner, domain.BookingPending))
	assert.Equal(t, []domain.BookingStatus{domain.BookingCompleted},
		BookingActions(domain.RoleAdmin, domain.BookingConfirmed))
	assert.Empty(t, BookingActions(domain.RoleSalonOwner, domain.BookingCompleted))

	// Role without the capability sees no actions regardless of status.
	assert.Nil(t, BookingActions(domain.RoleCustomer, domain.BookingPending))
}
