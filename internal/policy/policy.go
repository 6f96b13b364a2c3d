// Package policy centralizes role-based capabilities: which navigation
// sections and which actions each role gets. Screens consult this table
// instead of branching on the role inline.
package policy

import "salonhub/internal/domain"

type Action string

const (
	ActionSalonCreate    Action = "salon:create"
	ActionSalonEdit      Action = "salon:edit"
	ActionSalonApprove   Action = "salon:approve"
	ActionSalonReject    Action = "salon:reject"
	ActionSalonDelete    Action = "salon:delete"
	ActionServiceManage  Action = "service:manage"
	ActionBookingUpdate  Action = "booking:update-status"
	ActionUserManage     Action = "user:manage"
	ActionAnalyticsView  Action = "analytics:view"
	ActionAnalyticsAdmin Action = "analytics:system"
)

var capabilities = map[domain.Role]map[Action]bool{
	domain.RoleSalonOwner: {
		ActionSalonCreate:   true,
		ActionSalonEdit:     true,
		ActionServiceManage: true,
		ActionBookingUpdate: true,
		ActionAnalyticsView: true,
	},
	domain.RoleAdmin: {
		ActionSalonEdit:      true,
		ActionSalonApprove:   true,
		ActionSalonReject:    true,
		ActionSalonDelete:    true,
		ActionServiceManage:  true,
		ActionBookingUpdate:  true,
		ActionUserManage:     true,
		ActionAnalyticsView:  true,
		ActionAnalyticsAdmin: true,
	},
}

// Allowed reports whether the role may perform the action. Unknown roles
// (customers included) get nothing.
func Allowed(role domain.Role, action Action) bool {
	return capabilities[role][action]
}

// NavSections lists the dashboard sections visible to the role, in
// display order.
func NavSections(role domain.Role) []string {
	switch role {
	case domain.RoleSalonOwner:
		return []string{"dashboard", "my-salons", "services", "bookings", "analytics"}
	case domain.RoleAdmin:
		return []string{"dashboard", "salons", "users", "bookings", "analytics"}
	}
	return nil
}

// BookingActions resolves the transition buttons shown for a booking:
// the lifecycle decides what is possible, the role decides whether
// transition actions are offered at all.
func BookingActions(role domain.Role, status domain.BookingStatus) []domain.BookingStatus {
	if !Allowed(role, ActionBookingUpdate) {
		return nil
	}
	return status.NextStatuses()
}
