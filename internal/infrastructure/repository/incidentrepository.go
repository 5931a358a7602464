package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"smartincident/internal/domain/incident"
	"smartincident/internal/infrastructure/persistence/mappers"
	"smartincident/internal/infrastructure/persistence/models"
	"smartincident/internal/shared/db"
)

type IncidentRepository struct {
	db     *gorm.DB
	mapper mappers.IncidentMapper
}

func NewIncidentRepository(database *gorm.DB) *IncidentRepository {
	return &IncidentRepository{
		db:     database,
		mapper: mappers.NewIncidentMapper(),
	}
}

func (r *IncidentRepository) Save(ctx context.Context, inc *incident.Incident) error {
	model := r.mapper.ToModel(inc)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save incident: %w", err)
	}

	return inc.SetID(model.ID)
}

func (r *IncidentRepository) Update(ctx context.Context, inc *incident.Incident) error {
	model := r.mapper.ToModel(inc)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.IncidentModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "status", "priority",
			"assignee_id", "type_id", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update incident: %w", result.Error)
	}

	return nil
}

func (r *IncidentRepository) FindByID(ctx context.Context, id uint) (*incident.Incident, error) {
	var model models.IncidentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find incident: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *IncidentRepository) List(ctx context.Context, filter incident.Filter) ([]*incident.Incident, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := applyIncidentFilter(tx.Model(&models.IncidentModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count incidents: %w", err)
	}

	if filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var modelList []models.IncidentModel
	if err := query.Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list incidents: %w", err)
	}

	incidents := make([]*incident.Incident, 0, len(modelList))
	for i := range modelList {
		inc, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		incidents = append(incidents, inc)
	}

	return incidents, total, nil
}

func (r *IncidentRepository) Stats(ctx context.Context, filter incident.Filter) (*incident.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	stats := &incident.Stats{
		ByStatus:   make(map[incident.Status]int64),
		ByPriority: make(map[incident.Priority]int64),
	}

	base := func() *gorm.DB {
		return applyIncidentFilter(tx.Model(&models.IncidentModel{}), filter)
	}

	if err := base().Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count incidents: %w", err)
	}

	type bucket struct {
		Key   string
		Count int64
	}

	var statusBuckets []bucket
	if err := base().
		Select("status AS `key`, COUNT(*) AS count").
		Group("status").
		Scan(&statusBuckets).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate incidents by status: %w", err)
	}
	for _, b := range statusBuckets {
		stats.ByStatus[incident.Status(b.Key)] = b.Count
	}

	var priorityBuckets []bucket
	if err := base().
		Select("priority AS `key`, COUNT(*) AS count").
		Group("priority").
		Scan(&priorityBuckets).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate incidents by priority: %w", err)
	}
	for _, b := range priorityBuckets {
		p := incident.Priority(b.Key)
		stats.ByPriority[p] = b.Count
		if p.IsCritical() {
			stats.Critical += b.Count
		}
	}

	return stats, nil
}

func (r *IncidentRepository) CountByTypeID(ctx context.Context, typeID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.IncidentModel{}).
		Where("type_id = ?", typeID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count incidents by type: %w", err)
	}

	return count, nil
}

// applyIncidentFilter translates the domain filter into WHERE clauses.
// CompanyID and ReporterID set together form an OR group: a company-bound
// user sees their company's incidents plus incidents they reported anywhere.
func applyIncidentFilter(query *gorm.DB, filter incident.Filter) *gorm.DB {
	switch {
	case filter.CompanyID != nil && filter.ReporterID != nil:
		query = query.Where("company_id = ? OR reporter_id = ?", *filter.CompanyID, *filter.ReporterID)
	case filter.CompanyID != nil:
		query = query.Where("company_id = ?", *filter.CompanyID)
	case filter.ReporterID != nil:
		query = query.Where("reporter_id = ?", *filter.ReporterID)
	}

	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, s.String())
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR ticket_code LIKE ?", like, like)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", filter.CreatedFrom.UnixMilli())
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at < ?", filter.CreatedTo.UnixMilli())
	}

	return query
}
