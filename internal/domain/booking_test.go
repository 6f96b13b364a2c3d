package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_ExposedActions(t *testing.T) {
	tests := []struct {
		status BookingStatus
		next   []BookingStatus
	}{
		{BookingPending, []BookingStatus{BookingConfirmed, BookingCancelled}},
		{BookingConfirmed, []BookingStatus{BookingCompleted}},
		{BookingCompleted, nil},
		{BookingCancelled, nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.next, tt.status.NextStatuses())
		})
	}
}

func TestBookingStatus_TerminalStatesAllowNothing(t *testing.T) {
	all := []BookingStatus{BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled}
	for _, terminal := range []BookingStatus{BookingCompleted, BookingCancelled} {
		assert.True(t, terminal.Terminal())
		for _, next := range all {
			assert.False(t, terminal.CanTransitionTo(next), "%s -> %s must be rejected", terminal, next)
		}
	}
}

func TestBookingStatus_Transitions(t *testing.T) {
	assert.True(t, BookingPending.CanTransitionTo(BookingConfirmed))
	assert.True(t, BookingPending.CanTransitionTo(BookingCancelled))
	assert.False(t, BookingPending.CanTransitionTo(BookingCompleted))

	assert.True(t, BookingConfirmed.CanTransitionTo(BookingCompleted))
	assert.False(t, BookingConfirmed.CanTransitionTo(BookingPending))
	assert.False(t, BookingConfirmed.CanTransitionTo(BookingCancelled))
}

func TestSalonStatus_Review(t *testing.T) {
	assert.True(t, SalonPending.ReviewableBy(RoleAdmin))
	assert.False(t, SalonPending.ReviewableBy(RoleSalonOwner))
	assert.False(t, SalonApproved.ReviewableBy(RoleAdmin))
	assert.False(t, SalonRejected.ReviewableBy(RoleAdmin))
}

func TestRole_DashboardAccess(t *testing.T) {
	assert.True(t, RoleSalonOwner.DashboardAccess())
	assert.True(t, RoleAdmin.DashboardAccess())
	assert.False(t, RoleCustomer.DashboardAccess())
	assert.False(t, Role("moderator").DashboardAccess())
}

func TestServiceEnums(t *testing.T) {
	assert.True(t, ValidServiceDuration(45))
	assert.False(t, ValidServiceDuration(50))
	assert.True(t, ValidServiceCategory("haircut"))
	assert.False(t, ValidServiceCategory("plumbing"))
}

func TestDefaultWorkingHours_CoversEveryWeekday(t *testing.T) {
	wh := DefaultWorkingHours()
	for _, day := range Weekdays {
		schedule, ok := wh[day]
		assert.True(t, ok, "missing %s", day)
		assert.NotEmpty(t, schedule.Open)
		assert.NotEmpty(t, schedule.Close)
	}
	assert.False(t, wh["sunday"].IsOpen)
}
