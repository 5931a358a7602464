package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompany(t *testing.T) {
	c, err := NewCompany("Acme Corp", "1 Main St", "ops@acme.test")
	require.NoError(t, err)
	assert.Equal(t, StatusActive, c.Status())
	assert.True(t, c.IsActive())

	_, err = NewCompany("", "", "")
	assert.ErrorContains(t, err, "name is required")
}

func TestCompany_ChangeStatus(t *testing.T) {
	c, err := NewCompany("Acme Corp", "", "")
	require.NoError(t, err)

	// Activating an already-active company is a no-op, not a propagation.
	deactivated, err := c.ChangeStatus(StatusActive)
	require.NoError(t, err)
	assert.False(t, deactivated)

	deactivated, err = c.ChangeStatus(StatusInactive)
	require.NoError(t, err)
	assert.True(t, deactivated)
	assert.False(t, c.IsActive())

	// Reactivation never propagates back to users.
	deactivated, err = c.ChangeStatus(StatusActive)
	require.NoError(t, err)
	assert.False(t, deactivated)
	assert.True(t, c.IsActive())

	_, err = c.ChangeStatus(Status("archived"))
	assert.Error(t, err)
}
