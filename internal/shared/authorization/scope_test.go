package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestScope_Superadmin_Unrestricted(t *testing.T) {
	actor := Actor{UserID: 1, Role: RoleSuperadmin}

	for _, res := range []Resource{ResourceIncident, ResourceCompany, ResourceUser, ResourceTicketType, ResourceSettings, ResourceDashboard} {
		for _, op := range []Operation{OpList, OpRead, OpCreate, OpUpdate, OpDelete} {
			d := Scope(actor, op, res)
			assert.True(t, d.Allow, "superadmin %s %s", op, res)
			assert.Nil(t, d.CompanyID)
			assert.Nil(t, d.ReporterID)
			assert.Nil(t, d.AssigneeID)
			assert.Nil(t, d.SelfID)
		}
	}
}

func TestScope_UnknownRole_Denied(t *testing.T) {
	actor := Actor{UserID: 9, Role: Role("intern")}

	for _, res := range []Resource{ResourceIncident, ResourceCompany, ResourceUser, ResourceTicketType, ResourceSettings, ResourceDashboard} {
		for _, op := range []Operation{OpList, OpRead, OpCreate, OpUpdate, OpDelete} {
			assert.False(t, Scope(actor, op, res).Allow, "unknown role %s %s", op, res)
		}
	}
}

func TestScope_Agent_Incidents(t *testing.T) {
	actor := Actor{UserID: 7, Role: RoleAgent}

	d := Scope(actor, OpList, ResourceIncident)
	require.True(t, d.Allow)
	require.NotNil(t, d.AssigneeID)
	assert.Equal(t, uint(7), *d.AssigneeID)

	d = Scope(actor, OpRead, ResourceIncident)
	require.True(t, d.Allow)
	assert.True(t, d.PermitsIncident(3, 11, uintPtr(7)), "assigned to self")
	assert.False(t, d.PermitsIncident(3, 11, uintPtr(8)), "assigned to someone else")
	assert.False(t, d.PermitsIncident(3, 11, nil), "unassigned")

	assert.True(t, Scope(actor, OpCreate, ResourceIncident).Allow)
	assert.False(t, Scope(actor, OpDelete, ResourceIncident).Allow, "incident deletion is superadmin-only")
}

func TestScope_Agent_AdminResources_Denied(t *testing.T) {
	actor := Actor{UserID: 7, Role: RoleAgent}

	for _, op := range []Operation{OpList, OpRead, OpCreate, OpUpdate, OpDelete} {
		assert.False(t, Scope(actor, op, ResourceCompany).Allow, "company %s", op)
	}
	for _, op := range []Operation{OpCreate, OpUpdate, OpDelete} {
		assert.False(t, Scope(actor, op, ResourceTicketType).Allow, "ticket type %s", op)
		assert.False(t, Scope(actor, op, ResourceSettings).Allow, "settings %s", op)
	}
	assert.True(t, Scope(actor, OpList, ResourceTicketType).Allow, "ticket types are readable reference data")
}

func TestScope_Client_WithCompany(t *testing.T) {
	actor := Actor{UserID: 4, Role: RoleClient, CompanyID: uintPtr(2)}

	d := Scope(actor, OpList, ResourceIncident)
	require.True(t, d.Allow)
	require.NotNil(t, d.CompanyID)
	assert.Equal(t, uint(2), *d.CompanyID)
	assert.Nil(t, d.ReporterID, "company-wide list does not need the reporter predicate")

	d = Scope(actor, OpRead, ResourceIncident)
	assert.True(t, d.PermitsIncident(2, 99, nil), "same tenant")
	assert.True(t, d.PermitsIncident(5, 4, nil), "self-reported in another tenant")
	assert.False(t, d.PermitsIncident(5, 99, nil), "another tenant's incident by direct id")

	d = Scope(actor, OpRead, ResourceCompany)
	assert.True(t, d.PermitsCompany(2))
	assert.False(t, d.PermitsCompany(3))
	assert.False(t, Scope(actor, OpUpdate, ResourceCompany).Allow)
	assert.False(t, Scope(actor, OpList, ResourceCompany).Allow)
}

func TestScope_Client_NoCompany_FallsBackToReporter(t *testing.T) {
	actor := Actor{UserID: 4, Role: RoleClient}

	d := Scope(actor, OpList, ResourceIncident)
	require.True(t, d.Allow)
	assert.Nil(t, d.CompanyID)
	require.NotNil(t, d.ReporterID)
	assert.Equal(t, uint(4), *d.ReporterID)

	d = Scope(actor, OpRead, ResourceIncident)
	assert.True(t, d.PermitsIncident(0, 4, nil), "self-reported")
	assert.False(t, d.PermitsIncident(0, 5, nil), "reported by someone else")

	// No company means no company read either.
	assert.False(t, Scope(actor, OpRead, ResourceCompany).Allow)
}

func TestScope_User_SelfOnly(t *testing.T) {
	for _, role := range []Role{RoleAgent, RoleClient, RoleCompanyAdmin} {
		actor := Actor{UserID: 12, Role: role}

		d := Scope(actor, OpRead, ResourceUser)
		require.True(t, d.Allow, "role %s", role)
		assert.True(t, d.PermitsUser(12))
		assert.False(t, d.PermitsUser(13))

		assert.True(t, Scope(actor, OpUpdate, ResourceUser).Allow)
		assert.False(t, Scope(actor, OpList, ResourceUser).Allow)
		assert.False(t, Scope(actor, OpCreate, ResourceUser).Allow)
		assert.False(t, Scope(actor, OpDelete, ResourceUser).Allow)
	}
}

func TestScope_CompanyAdmin_Historical(t *testing.T) {
	actor := Actor{UserID: 3, Role: RoleCompanyAdmin, CompanyID: uintPtr(8)}

	d := Scope(actor, OpList, ResourceIncident)
	require.True(t, d.Allow)
	require.NotNil(t, d.CompanyID)
	assert.Equal(t, uint(8), *d.CompanyID)

	assert.True(t, Scope(actor, OpRead, ResourceSettings).Allow, "company_admin keeps settings read access")
	assert.False(t, Scope(actor, OpUpdate, ResourceSettings).Allow)
	assert.False(t, Scope(actor, OpCreate, ResourceCompany).Allow)
}

func TestScope_Dashboard(t *testing.T) {
	d := Scope(Actor{UserID: 7, Role: RoleAgent}, OpRead, ResourceDashboard)
	require.True(t, d.Allow)
	assert.Equal(t, uint(7), *d.AssigneeID)

	d = Scope(Actor{UserID: 4, Role: RoleClient, CompanyID: uintPtr(2)}, OpRead, ResourceDashboard)
	require.True(t, d.Allow)
	assert.Equal(t, uint(2), *d.CompanyID)

	d = Scope(Actor{UserID: 4, Role: RoleClient}, OpRead, ResourceDashboard)
	require.True(t, d.Allow)
	require.NotNil(t, d.ReporterID)
	assert.Equal(t, uint(4), *d.ReporterID)
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"superadmin", "agent", "client", "company_admin"} {
		role, ok := ParseRole(s)
		assert.True(t, ok, s)
		assert.Equal(t, s, role.String())
	}

	_, ok := ParseRole("admin")
	assert.False(t, ok)
	_, ok = ParseRole("")
	assert.False(t, ok)
}
