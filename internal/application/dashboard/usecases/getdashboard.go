package usecases

import (
	"context"
	"time"

	"smartincident/internal/domain/incident"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

type GetDashboardQuery struct {
	Actor authorization.Actor

	// CompanyID, From and To narrow the breakdown; honored only when the
	// actor's scope is unrestricted.
	CompanyID *uint
	From      *time.Time
	To        *time.Time
}

// DashboardResult is the incident breakdown for the actor's visible slice:
// everything for superadmins, assigned work for agents, the tenant for
// company-bound users.
type DashboardResult struct {
	Total      int64
	ByStatus   map[string]int64
	ByPriority map[string]int64
	Critical   int64
	Recent     []*RecentIncident
}

// RecentIncident is the trimmed-down row shown on the dashboard feed.
type RecentIncident struct {
	IncidentID uint
	TicketCode string
	Title      string
	Status     string
	Priority   string
	CreatedAt  time.Time
}

const recentFeedSize = 5

type GetDashboardUseCase struct {
	incidentRepo incident.Repository
	logger       logger.Interface
}

func NewGetDashboardUseCase(incidentRepo incident.Repository, logger logger.Interface) *GetDashboardUseCase {
	return &GetDashboardUseCase{incidentRepo: incidentRepo, logger: logger}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*DashboardResult, error) {
	decision := authorization.Scope(query.Actor, authorization.OpRead, authorization.ResourceDashboard)
	if !decision.Allow {
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	filter := incident.Filter{
		CompanyID:  decision.CompanyID,
		ReporterID: decision.ReporterID,
		AssigneeID: decision.AssigneeID,
	}
	if decision.CompanyID == nil && decision.ReporterID == nil && decision.AssigneeID == nil {
		filter.CompanyID = query.CompanyID
		filter.CreatedFrom = query.From
		filter.CreatedTo = query.To
	}

	stats, err := uc.incidentRepo.Stats(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to compute incident stats", "error", err)
		return nil, errors.NewInternalError("failed to load dashboard", err.Error())
	}

	result := &DashboardResult{
		Total:      stats.Total,
		ByStatus:   make(map[string]int64, len(stats.ByStatus)),
		ByPriority: make(map[string]int64, len(stats.ByPriority)),
		Critical:   stats.Critical,
	}
	for status, count := range stats.ByStatus {
		result.ByStatus[status.String()] = count
	}
	for priority, count := range stats.ByPriority {
		result.ByPriority[priority.String()] = count
	}

	recentFilter := filter
	recentFilter.Page = 1
	recentFilter.PageSize = recentFeedSize
	recent, _, err := uc.incidentRepo.List(ctx, recentFilter)
	if err != nil {
		uc.logger.Errorw("failed to load recent incidents", "error", err)
		return nil, errors.NewInternalError("failed to load dashboard", err.Error())
	}
	result.Recent = make([]*RecentIncident, 0, len(recent))
	for _, inc := range recent {
		row := &RecentIncident{
			IncidentID: inc.ID(),
			Title:      inc.Title(),
			Status:     inc.Status().String(),
			Priority:   inc.Priority().String(),
			CreatedAt:  inc.CreatedAt(),
		}
		if code := inc.TicketCode(); code != nil {
			row.TicketCode = *code
		}
		result.Recent = append(result.Recent, row)
	}
	return result, nil
}
