package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartincident/internal/domain/tickettype"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

var (
	superadmin = authorization.Actor{UserID: 1, Role: authorization.RoleSuperadmin}
	agent      = authorization.Actor{UserID: 2, Role: authorization.RoleAgent}
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func outageType(t *testing.T, id uint) *tickettype.TicketType {
	t.Helper()
	tt, err := tickettype.ReconstructTicketType(id, "outage", "service outage", 30, 240, true,
		time.Now(), time.Now())
	require.NoError(t, err)
	return tt
}

func TestCreateTicketType_Success(t *testing.T) {
	uc := NewCreateTicketTypeUseCase(&mockTicketTypeRepository{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CreateTicketTypeCommand{
		Actor:             superadmin,
		Name:              "outage",
		Description:       "service outage",
		SLAResponseMins:   30,
		SLAResolutionMins: 240,
		Global:            true,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.TypeID)
	assert.Equal(t, "outage", result.Name)
	assert.Equal(t, 30, result.SLAResponseMins)
	assert.True(t, result.Global)
}

func TestCreateTicketType_SuperadminOnly(t *testing.T) {
	uc := NewCreateTicketTypeUseCase(&mockTicketTypeRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateTicketTypeCommand{
		Actor: agent,
		Name:  "outage",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCreateTicketType_DuplicateName(t *testing.T) {
	repo := &mockTicketTypeRepository{
		FindByNameFunc: func(ctx context.Context, name string) (*tickettype.TicketType, error) {
			return outageType(t, 1), nil
		},
	}
	uc := NewCreateTicketTypeUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateTicketTypeCommand{
		Actor: superadmin,
		Name:  "outage",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestCreateTicketType_NegativeSLA(t *testing.T) {
	uc := NewCreateTicketTypeUseCase(&mockTicketTypeRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateTicketTypeCommand{
		Actor:           superadmin,
		Name:            "outage",
		SLAResponseMins: -5,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateTicketType_ChangesSLA(t *testing.T) {
	repo := &mockTicketTypeRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*tickettype.TicketType, error) {
			return outageType(t, id), nil
		},
	}
	uc := NewUpdateTicketTypeUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), UpdateTicketTypeCommand{
		Actor:             superadmin,
		TypeID:            1,
		SLAResolutionMins: intPtr(120),
	})

	require.NoError(t, err)
	assert.Equal(t, 30, result.SLAResponseMins)
	assert.Equal(t, 120, result.SLAResolutionMins)
}

func TestUpdateTicketType_RenameToTakenName(t *testing.T) {
	repo := &mockTicketTypeRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*tickettype.TicketType, error) {
			return outageType(t, id), nil
		},
		FindByNameFunc: func(ctx context.Context, name string) (*tickettype.TicketType, error) {
			other, err := tickettype.ReconstructTicketType(2, name, "", 0, 0, false, time.Now(), time.Now())
			require.NoError(t, err)
			return other, nil
		},
	}
	uc := NewUpdateTicketTypeUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketTypeCommand{
		Actor:  superadmin,
		TypeID: 1,
		Name:   strPtr("request"),
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestUpdateTicketType_NotFound(t *testing.T) {
	uc := NewUpdateTicketTypeUseCase(&mockTicketTypeRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketTypeCommand{
		Actor:  superadmin,
		TypeID: 99,
		Name:   strPtr("request"),
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteTicketType_GoesThroughCascade(t *testing.T) {
	repo := &mockTicketTypeRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*tickettype.TicketType, error) {
			return outageType(t, id), nil
		},
	}
	incidents := &mockIncidentRepository{
		CountByTypeIDFunc: func(ctx context.Context, typeID uint) (int64, error) { return 4, nil },
	}
	cascader := &mockCascadeDeleter{}
	uc := NewDeleteTicketTypeUseCase(repo, incidents, cascader, logger.NewLogger())

	err := uc.Execute(context.Background(), DeleteTicketTypeCommand{Actor: superadmin, TypeID: 1})

	require.NoError(t, err)
	assert.Equal(t, []uint{1}, cascader.Deleted)
}

func TestDeleteTicketType_SuperadminOnly(t *testing.T) {
	cascader := &mockCascadeDeleter{}
	uc := NewDeleteTicketTypeUseCase(&mockTicketTypeRepository{}, &mockIncidentRepository{},
		cascader, logger.NewLogger())

	err := uc.Execute(context.Background(), DeleteTicketTypeCommand{Actor: agent, TypeID: 1})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Empty(t, cascader.Deleted)
}

func TestListTicketTypes_VisibleToEveryRole(t *testing.T) {
	repo := &mockTicketTypeRepository{
		ListFunc: func(ctx context.Context) ([]*tickettype.TicketType, error) {
			return []*tickettype.TicketType{outageType(t, 1)}, nil
		},
	}
	uc := NewListTicketTypesUseCase(repo, logger.NewLogger())

	companyID := uint(3)
	for _, actor := range []authorization.Actor{
		superadmin,
		agent,
		{UserID: 7, Role: authorization.RoleClient, CompanyID: &companyID},
	} {
		results, err := uc.Execute(context.Background(), ListTicketTypesQuery{Actor: actor})
		require.NoError(t, err)
		assert.Len(t, results, 1)
	}
}

func TestGetTicketType_NotFound(t *testing.T) {
	uc := NewGetTicketTypeUseCase(&mockTicketTypeRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), GetTicketTypeQuery{Actor: superadmin, TypeID: 9})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
