package authorization

// Role is the closed set of account roles. String comparisons against raw
// role columns are confined to ParseRole; everything else uses these values.
type Role string

const (
	RoleSuperadmin Role = "superadmin"
	RoleAgent      Role = "agent"
	RoleClient     Role = "client"

	// RoleCompanyAdmin is a historical role that may still exist in old rows.
	// It scopes like a company-bound client for reads and is granted no
	// mutations.
	RoleCompanyAdmin Role = "company_admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsSuperadmin() bool {
	return r == RoleSuperadmin
}

func (r Role) IsValid() bool {
	switch r {
	case RoleSuperadmin, RoleAgent, RoleClient, RoleCompanyAdmin:
		return true
	}
	return false
}

// ParseRole parses a stored role string. ok is false for unknown roles;
// callers must treat unknown roles as having no access.
func ParseRole(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}
