package domain

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
	RoleSystem   Role = "system"
)

// Session identifies the authenticated caller of an operation. It is passed
// explicitly into usecases instead of being read from ambient state.
type Session struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

func (s Session) Authenticated() bool {
	return s.UserID != ""
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Actor is the party requesting a state change: a customer, an admin, or the
// service itself (payment gateway, stale-order sweeper).
type Actor struct {
	ID   string
	Role Role
}

var SystemActor = Actor{ID: "system", Role: RoleSystem}

func (s Session) Actor() Actor {
	return Actor{ID: s.UserID, Role: s.Role}
}
