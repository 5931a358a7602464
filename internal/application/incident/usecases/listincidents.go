package usecases

import (
	"context"

	"smartincident/internal/domain/company"
	"smartincident/internal/domain/incident"
	"smartincident/internal/domain/user"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type ListIncidentsQuery struct {
	Actor authorization.Actor

	// CompanyID narrows the list to one tenant; honored only when the
	// actor's scope is unrestricted.
	CompanyID *uint
	// AssigneeID narrows to one assignee; ignored when the actor's scope
	// already pins the assignee.
	AssigneeID *uint
	Statuses   []string
	Priority   *string
	Search     string
	Page       int
	PageSize   int
}

type ListIncidentsResult struct {
	Incidents []*IncidentResult
	Total     int64
	Page      int
	PageSize  int
}

type ListIncidentsUseCase struct {
	incidentRepo incident.Repository
	userRepo     user.Repository
	companyRepo  company.Repository
	logger       logger.Interface
}

func NewListIncidentsUseCase(
	incidentRepo incident.Repository,
	userRepo user.Repository,
	companyRepo company.Repository,
	logger logger.Interface,
) *ListIncidentsUseCase {
	return &ListIncidentsUseCase{
		incidentRepo: incidentRepo,
		userRepo:     userRepo,
		companyRepo:  companyRepo,
		logger:       logger,
	}
}

func (uc *ListIncidentsUseCase) Execute(ctx context.Context, query ListIncidentsQuery) (*ListIncidentsResult, error) {
	decision := authorization.Scope(query.Actor, authorization.OpList, authorization.ResourceIncident)
	if !decision.Allow {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	filter, err := buildFilter(decision, query)
	if err != nil {
		return nil, err
	}

	incidents, total, err := uc.incidentRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list incidents", "error", err)
		return nil, errors.NewInternalError("failed to list incidents", err.Error())
	}

	result := &ListIncidentsResult{
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	for _, inc := range incidents {
		result.Incidents = append(result.Incidents, toIncidentResult(inc))
	}
	if err := uc.embedSummaries(ctx, result.Incidents); err != nil {
		uc.logger.Errorw("failed to resolve incident references", "error", err)
		return nil, errors.NewInternalError("failed to list incidents", err.Error())
	}
	return result, nil
}

// embedSummaries batch-resolves the reporter, assignee and company references
// for one page of rows. References that no longer resolve (deleted rows) are
// left nil rather than failing the list.
func (uc *ListIncidentsUseCase) embedSummaries(ctx context.Context, rows []*IncidentResult) error {
	userIDs := make(map[uint]struct{})
	companyIDs := make(map[uint]struct{})
	for _, row := range rows {
		userIDs[row.ReporterID] = struct{}{}
		if row.AssigneeID != nil {
			userIDs[*row.AssigneeID] = struct{}{}
		}
		if row.CompanyID != 0 {
			companyIDs[row.CompanyID] = struct{}{}
		}
	}

	users, err := uc.userRepo.FindByIDs(ctx, keys(userIDs))
	if err != nil {
		return err
	}
	persons := make(map[uint]*PersonSummary, len(users))
	for _, u := range users {
		persons[u.ID()] = &PersonSummary{UserID: u.ID(), Name: u.Name(), Email: u.Email()}
	}

	companies, err := uc.companyRepo.FindByIDs(ctx, keys(companyIDs))
	if err != nil {
		return err
	}
	tenants := make(map[uint]*CompanySummary, len(companies))
	for _, c := range companies {
		tenants[c.ID()] = &CompanySummary{CompanyID: c.ID(), Name: c.Name()}
	}

	for _, row := range rows {
		row.Reporter = persons[row.ReporterID]
		if row.AssigneeID != nil {
			row.Assignee = persons[*row.AssigneeID]
		}
		row.Company = tenants[row.CompanyID]
	}
	return nil
}

func keys(set map[uint]struct{}) []uint {
	out := make([]uint, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// buildFilter combines the caller's requested filters with the scope the
// decision imposes. Scope restrictions always win; the free-form company
// filter is available only to unrestricted actors.
func buildFilter(decision authorization.Decision, query ListIncidentsQuery) (incident.Filter, error) {
	filter := incident.Filter{
		CompanyID:  decision.CompanyID,
		ReporterID: decision.ReporterID,
		AssigneeID: decision.AssigneeID,
		Search:     query.Search,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}

	unrestricted := decision.CompanyID == nil && decision.ReporterID == nil && decision.AssigneeID == nil
	if unrestricted && query.CompanyID != nil {
		filter.CompanyID = query.CompanyID
	}
	if decision.AssigneeID == nil && query.AssigneeID != nil {
		filter.AssigneeID = query.AssigneeID
	}

	for _, s := range query.Statuses {
		status := incident.Status(s)
		if !status.IsValid() {
			return incident.Filter{}, errors.NewValidationError("invalid status: " + s)
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	if query.Priority != nil {
		priority := incident.Priority(*query.Priority)
		if !priority.IsValid() {
			return incident.Filter{}, errors.NewValidationError("invalid priority: " + *query.Priority)
		}
		filter.Priority = &priority
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	return filter, nil
}
