package incident

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIncident(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		priority    Priority
		reporterID  uint
		companyID   uint
		typeID      uint
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid company incident",
			title:      "Printer offline",
			priority:   PriorityMedium,
			reporterID: 7,
			companyID:  3,
			typeID:     1,
		},
		{
			name:       "valid global incident",
			title:      "VPN down",
			priority:   PriorityCritical,
			reporterID: 7,
			companyID:  0,
			typeID:     1,
		},
		{
			name:        "empty title",
			title:       "",
			priority:    PriorityLow,
			reporterID:  7,
			typeID:      1,
			wantErr:     true,
			errContains: "title is required",
		},
		{
			name:        "title too long",
			title:       strings.Repeat("a", 201),
			priority:    PriorityLow,
			reporterID:  7,
			typeID:      1,
			wantErr:     true,
			errContains: "maximum length",
		},
		{
			name:        "invalid priority",
			title:       "Printer offline",
			priority:    Priority("urgent"),
			reporterID:  7,
			typeID:      1,
			wantErr:     true,
			errContains: "invalid priority",
		},
		{
			name:        "missing reporter",
			title:       "Printer offline",
			priority:    PriorityLow,
			reporterID:  0,
			typeID:      1,
			wantErr:     true,
			errContains: "reporter ID is required",
		},
		{
			name:        "missing type",
			title:       "Printer offline",
			priority:    PriorityLow,
			reporterID:  7,
			typeID:      0,
			wantErr:     true,
			errContains: "incident type is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inc, err := NewIncident(tt.title, "details", tt.priority, tt.reporterID, tt.companyID, tt.typeID)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusOpen, inc.Status())
			assert.Nil(t, inc.TicketCode())
			assert.Nil(t, inc.AssigneeID())
			assert.Equal(t, tt.companyID, inc.CompanyID())
		})
	}
}

func TestIncident_SetTicketCode(t *testing.T) {
	inc, err := NewIncident("Printer offline", "", PriorityLow, 7, 3, 1)
	require.NoError(t, err)

	require.NoError(t, inc.SetTicketCode("INC-3-1700000000"))
	require.NotNil(t, inc.TicketCode())
	assert.Equal(t, "INC-3-1700000000", *inc.TicketCode())

	err = inc.SetTicketCode("INC-3-1700000001")
	assert.ErrorContains(t, err, "already set")
}

func TestIncident_Assignment(t *testing.T) {
	inc, err := NewIncident("Printer offline", "", PriorityLow, 7, 3, 1)
	require.NoError(t, err)

	assert.ErrorContains(t, inc.AssignTo(0), "cannot be zero")

	require.NoError(t, inc.AssignTo(42))
	require.NotNil(t, inc.AssigneeID())
	assert.Equal(t, uint(42), *inc.AssigneeID())

	inc.Unassign()
	assert.Nil(t, inc.AssigneeID())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusResolved.IsTerminal())
	assert.True(t, StatusClosed.IsTerminal())
	assert.False(t, StatusOpen.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.False(t, StatusOverdue.IsTerminal())
}

func TestPriority_IsCritical(t *testing.T) {
	assert.True(t, PriorityHigh.IsCritical())
	assert.True(t, PriorityCritical.IsCritical())
	assert.False(t, PriorityLow.IsCritical())
	assert.False(t, PriorityMedium.IsCritical())
}

func TestGenerateTicketCode(t *testing.T) {
	at := time.Unix(1700000000, 0)

	assert.Equal(t, "INC-3-1700000000", GenerateTicketCode(3, at))
	assert.Equal(t, "INC-GLB-1700000000", GenerateTicketCode(0, at))
}

func TestAttachment_SingleParent(t *testing.T) {
	incAtt, err := NewIncidentAttachment(5, "log.txt", "uploads/1700000000000-log.txt", "text/plain", 120)
	require.NoError(t, err)
	require.NotNil(t, incAtt.IncidentID())
	assert.Nil(t, incAtt.CommentID())

	comAtt, err := NewCommentAttachment(9, "screen.png", "uploads/1700000000001-screen.png", "image/png", 2048)
	require.NoError(t, err)
	require.NotNil(t, comAtt.CommentID())
	assert.Nil(t, comAtt.IncidentID())

	_, err = NewIncidentAttachment(0, "log.txt", "p", "text/plain", 1)
	assert.Error(t, err)
	_, err = NewCommentAttachment(3, "", "p", "text/plain", 1)
	assert.ErrorContains(t, err, "file name is required")
	_, err = NewCommentAttachment(3, "a", "p", "text/plain", -1)
	assert.ErrorContains(t, err, "negative")
}
