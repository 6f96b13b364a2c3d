package domain

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleSalonOwner Role = "salon_owner"
	RoleAdmin      Role = "admin"
)

// DashboardAccess reports whether the role may sign in to the dashboard.
// Customers use the public site, not this application.
func (r Role) DashboardAccess() bool {
	return r == RoleSalonOwner || r == RoleAdmin
}

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleSalonOwner, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Role       Role   `json:"role"`
	IsVerified bool   `json:"isVerified"`
	Avatar     string `json:"avatar,omitempty"`
}

// Session is the client's cached view of the authenticated identity.
// The token is valid at issue time; expiry is enforced server-side.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
