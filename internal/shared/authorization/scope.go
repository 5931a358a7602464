// Package authorization holds the role and tenant scoping policy. The whole
// policy table lives in Scope, a pure function, so it can be tested without
// any transport or storage in the loop.
package authorization

// Resource identifies what kind of rows an operation touches.
type Resource string

const (
	ResourceIncident   Resource = "incident"
	ResourceCompany    Resource = "company"
	ResourceUser       Resource = "user"
	ResourceTicketType Resource = "ticket_type"
	ResourceSettings   Resource = "settings"
	ResourceDashboard  Resource = "dashboard"
)

// Operation identifies what an actor wants to do with a resource.
type Operation string

const (
	OpList   Operation = "list"
	OpRead   Operation = "read"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Actor is the authenticated account requesting an operation.
type Actor struct {
	UserID    uint
	Role      Role
	CompanyID *uint
}

// Decision is the effective scope predicate for an operation. When Allow is
// true and no narrowing field is set, the operation is unrestricted. When
// narrowing fields are set, a row is in scope if it matches ANY of them
// (company OR reporter OR assignee OR self), which is how "own company or
// self-reported" composes for clients.
type Decision struct {
	Allow bool

	// CompanyID limits rows to one tenant.
	CompanyID *uint
	// ReporterID limits incidents to those reported by this user.
	ReporterID *uint
	// AssigneeID limits incidents to those assigned to this user.
	AssigneeID *uint
	// SelfID limits user rows to the actor's own record.
	SelfID *uint
}

// Deny is the zero decision.
var Deny = Decision{}

func allowAll() Decision {
	return Decision{Allow: true}
}

// Scope computes the effective predicate for (actor, operation, resource).
// Unknown roles and unsupported operations deny. A client with no assigned
// company degrades to reporter-only visibility; ambiguous tenant context must
// never widen to global visibility.
func Scope(actor Actor, op Operation, res Resource) Decision {
	if !actor.Role.IsValid() {
		return Deny
	}

	if actor.Role.IsSuperadmin() {
		return allowAll()
	}

	switch res {
	case ResourceIncident:
		return scopeIncident(actor, op)
	case ResourceCompany:
		return scopeCompany(actor, op)
	case ResourceUser:
		return scopeUser(actor, op)
	case ResourceTicketType:
		// Read-only reference data for every authenticated role.
		if op == OpList || op == OpRead {
			return allowAll()
		}
		return Deny
	case ResourceSettings:
		// Notification configuration. The historical company_admin role keeps
		// its read access (with the SMTP secret masked at the handler layer).
		if op == OpRead && actor.Role == RoleCompanyAdmin {
			return allowAll()
		}
		return Deny
	case ResourceDashboard:
		return scopeDashboard(actor, op)
	}
	return Deny
}

func scopeIncident(actor Actor, op Operation) Decision {
	switch actor.Role {
	case RoleAgent:
		switch op {
		case OpList, OpRead, OpUpdate:
			uid := actor.UserID
			return Decision{Allow: true, AssigneeID: &uid}
		case OpCreate:
			return allowAll()
		}
	case RoleClient, RoleCompanyAdmin:
		switch op {
		case OpList:
			if actor.CompanyID != nil {
				return Decision{Allow: true, CompanyID: actor.CompanyID}
			}
			uid := actor.UserID
			return Decision{Allow: true, ReporterID: &uid}
		case OpRead, OpUpdate:
			uid := actor.UserID
			if actor.CompanyID != nil {
				return Decision{Allow: true, CompanyID: actor.CompanyID, ReporterID: &uid}
			}
			return Decision{Allow: true, ReporterID: &uid}
		case OpCreate:
			return allowAll()
		}
	}
	return Deny
}

func scopeCompany(actor Actor, op Operation) Decision {
	switch actor.Role {
	case RoleClient, RoleCompanyAdmin:
		if op == OpRead && actor.CompanyID != nil {
			return Decision{Allow: true, CompanyID: actor.CompanyID}
		}
	}
	return Deny
}

func scopeUser(actor Actor, op Operation) Decision {
	// Non-superadmins may read and update only their own record. The update
	// path additionally ignores role, status and company fields for them.
	if op == OpRead || op == OpUpdate {
		uid := actor.UserID
		return Decision{Allow: true, SelfID: &uid}
	}
	return Deny
}

func scopeDashboard(actor Actor, op Operation) Decision {
	if op != OpRead {
		return Deny
	}
	switch actor.Role {
	case RoleAgent:
		uid := actor.UserID
		return Decision{Allow: true, AssigneeID: &uid}
	case RoleClient, RoleCompanyAdmin:
		if actor.CompanyID != nil {
			return Decision{Allow: true, CompanyID: actor.CompanyID}
		}
		uid := actor.UserID
		return Decision{Allow: true, ReporterID: &uid}
	}
	return Deny
}

// PermitsIncident reports whether a concrete incident row is inside the
// decision's scope.
func (d Decision) PermitsIncident(companyID, reporterID uint, assigneeID *uint) bool {
	if !d.Allow {
		return false
	}
	if d.unrestricted() {
		return true
	}
	if d.CompanyID != nil && companyID == *d.CompanyID {
		return true
	}
	if d.ReporterID != nil && reporterID == *d.ReporterID {
		return true
	}
	if d.AssigneeID != nil && assigneeID != nil && *assigneeID == *d.AssigneeID {
		return true
	}
	return false
}

// PermitsCompany reports whether a concrete company row is inside scope.
func (d Decision) PermitsCompany(companyID uint) bool {
	if !d.Allow {
		return false
	}
	if d.unrestricted() {
		return true
	}
	return d.CompanyID != nil && companyID == *d.CompanyID
}

// PermitsUser reports whether a concrete user row is inside scope.
func (d Decision) PermitsUser(userID uint) bool {
	if !d.Allow {
		return false
	}
	if d.unrestricted() {
		return true
	}
	return d.SelfID != nil && userID == *d.SelfID
}

func (d Decision) unrestricted() bool {
	return d.CompanyID == nil && d.ReporterID == nil && d.AssigneeID == nil && d.SelfID == nil
}
