package model

// Role is the caller's relationship to a particular order.
type Role int

const (
	RoleNeither Role = iota
	RoleClient
	RoleProvider
)

func (r Role) String() string {
	switch r {
	case RoleClient:
		return "client"
	case RoleProvider:
		return "provider"
	}
	return "neither"
}

// IsParty reports whether the role is one of the two parties.
func (r Role) IsParty() bool {
	return r == RoleClient || r == RoleProvider
}
