package model

// Role gates which destinations a user can reach.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleCook    Role = "Cook"
	RoleWaiter  Role = "Waiter"
	RoleCashier Role = "Cashier"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCook, RoleWaiter, RoleCashier:
		return true
	}
	return false
}

// Destination is a top-level area of the application.
type Destination string

const (
	DestDashboard Destination = "dashboard"
	DestTables    Destination = "tables"
	DestPOS       Destination = "pos"
	DestCash      Destination = "cash"
	DestInventory Destination = "inventory"
	DestReports   Destination = "reports"
)

// Destinations lists every destination in menu order.
var Destinations = []Destination{DestDashboard, DestTables, DestPOS, DestCash, DestInventory, DestReports}

// CanReach reports whether the role is allowed into the destination.
func (r Role) CanReach(d Destination) bool {
	switch d {
	case DestDashboard:
		return r == RoleAdmin || r == RoleCashier || r == RoleCook
	case DestTables, DestPOS:
		return r == RoleAdmin || r == RoleCashier || r == RoleWaiter
	case DestCash:
		return r == RoleAdmin || r == RoleCashier
	case DestInventory, DestReports:
		return r == RoleAdmin
	}
	return false
}

// Reachable returns the destinations the role may open, in menu order.
func (r Role) Reachable() []Destination {
	out := make([]Destination, 0, len(Destinations))
	for _, d := range Destinations {
		if r.CanReach(d) {
			out = append(out, d)
		}
	}
	return out
}

// User is a member of the static roster. Password is the plaintext credential
// from the seed and never leaves the process.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Avatar   string `json:"avatar"`
}
