package usecases

import (
	"context"
	"io"

	"smartincident/internal/domain/company"
	"smartincident/internal/domain/incident"
	"smartincident/internal/domain/tickettype"
	"smartincident/internal/domain/user"
	"smartincident/internal/infrastructure/cascade"
	"smartincident/internal/infrastructure/notification"
	"smartincident/internal/infrastructure/storage"
	"smartincident/internal/shared/authorization"
)

type mockIncidentRepository struct {
	SaveFunc     func(ctx context.Context, inc *incident.Incident) error
	UpdateFunc   func(ctx context.Context, inc *incident.Incident) error
	FindByIDFunc func(ctx context.Context, id uint) (*incident.Incident, error)
	ListFunc     func(ctx context.Context, filter incident.Filter) ([]*incident.Incident, int64, error)
	StatsFunc    func(ctx context.Context, filter incident.Filter) (*incident.Stats, error)
}

func (m *mockIncidentRepository) Save(ctx context.Context, inc *incident.Incident) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, inc)
	}
	return inc.SetID(1)
}

func (m *mockIncidentRepository) Update(ctx context.Context, inc *incident.Incident) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, inc)
	}
	return nil
}

func (m *mockIncidentRepository) FindByID(ctx context.Context, id uint) (*incident.Incident, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockIncidentRepository) List(ctx context.Context, filter incident.Filter) ([]*incident.Incident, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockIncidentRepository) Stats(ctx context.Context, filter incident.Filter) (*incident.Stats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, filter)
	}
	return &incident.Stats{}, nil
}

func (m *mockIncidentRepository) CountByTypeID(ctx context.Context, typeID uint) (int64, error) {
	return 0, nil
}

type mockCommentRepository struct {
	SaveFunc           func(ctx context.Context, c *incident.Comment) error
	ListByIncidentFunc func(ctx context.Context, incidentID uint) ([]*incident.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *incident.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockCommentRepository) FindByID(ctx context.Context, id uint) (*incident.Comment, error) {
	return nil, nil
}

func (m *mockCommentRepository) ListByIncident(ctx context.Context, incidentID uint) ([]*incident.Comment, error) {
	if m.ListByIncidentFunc != nil {
		return m.ListByIncidentFunc(ctx, incidentID)
	}
	return nil, nil
}

type mockAttachmentRepository struct {
	SaveFunc func(ctx context.Context, att *incident.Attachment) error
	Saved    []*incident.Attachment
}

func (m *mockAttachmentRepository) Save(ctx context.Context, att *incident.Attachment) error {
	m.Saved = append(m.Saved, att)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, att)
	}
	return att.SetID(uint(len(m.Saved)))
}

func (m *mockAttachmentRepository) ListByIncident(ctx context.Context, incidentID uint) ([]*incident.Attachment, error) {
	return nil, nil
}

func (m *mockAttachmentRepository) ListByComment(ctx context.Context, commentID uint) ([]*incident.Attachment, error) {
	return nil, nil
}

type mockTicketTypeRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*tickettype.TicketType, error)
}

func (m *mockTicketTypeRepository) Save(ctx context.Context, tt *tickettype.TicketType) error {
	return nil
}

func (m *mockTicketTypeRepository) Update(ctx context.Context, tt *tickettype.TicketType) error {
	return nil
}

func (m *mockTicketTypeRepository) FindByID(ctx context.Context, id uint) (*tickettype.TicketType, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketTypeRepository) FindByName(ctx context.Context, name string) (*tickettype.TicketType, error) {
	return nil, nil
}

func (m *mockTicketTypeRepository) List(ctx context.Context) ([]*tickettype.TicketType, error) {
	return nil, nil
}

type mockUserRepository struct {
	FindByIDFunc   func(ctx context.Context, id uint) (*user.User, error)
	FindByIDsFunc  func(ctx context.Context, ids []uint) ([]*user.User, error)
	FindByRoleFunc func(ctx context.Context, role authorization.Role) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) FindByResetToken(ctx context.Context, token string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) FindByRole(ctx context.Context, role authorization.Role) ([]*user.User, error) {
	if m.FindByRoleFunc != nil {
		return m.FindByRoleFunc(ctx, role)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) { return nil, nil }

func (m *mockUserRepository) DeactivateByCompany(ctx context.Context, companyID uint) error {
	return nil
}

type mockCompanyRepository struct {
	FindByIDsFunc func(ctx context.Context, ids []uint) ([]*company.Company, error)
}

func (m *mockCompanyRepository) Save(ctx context.Context, c *company.Company) error   { return nil }
func (m *mockCompanyRepository) Update(ctx context.Context, c *company.Company) error { return nil }

func (m *mockCompanyRepository) FindByID(ctx context.Context, id uint) (*company.Company, error) {
	return nil, nil
}

func (m *mockCompanyRepository) FindByIDs(ctx context.Context, ids []uint) ([]*company.Company, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockCompanyRepository) List(ctx context.Context) ([]*company.Company, error) {
	return nil, nil
}

type mockStorage struct {
	SaveFunc func(originalName string, r io.Reader) (*storage.StoredFile, error)
}

func (m *mockStorage) Save(originalName string, r io.Reader) (*storage.StoredFile, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(originalName, r)
	}
	size, _ := io.Copy(io.Discard, r)
	return &storage.StoredFile{
		Path: "uploads/1-" + originalName,
		URL:  "/uploads/1-" + originalName,
		Size: size,
	}, nil
}

type sentEmail struct {
	To      string
	Code    string
	Subject string
}

type mockEmailSender struct {
	Created  []sentEmail
	Comments []sentEmail
}

func (m *mockEmailSender) SendIncidentCreatedEmail(ctx context.Context, to, ticketCode, title, description string) error {
	m.Created = append(m.Created, sentEmail{To: to, Code: ticketCode, Subject: title})
	return nil
}

func (m *mockEmailSender) SendCommentAddedEmail(ctx context.Context, to, ticketCode, author, content string) error {
	m.Comments = append(m.Comments, sentEmail{To: to, Code: ticketCode, Subject: content})
	return nil
}

type mockDispatcher struct {
	Enqueued []string
	RunTasks bool
}

func (m *mockDispatcher) Enqueue(name string, task notification.Task) {
	m.Enqueued = append(m.Enqueued, name)
	if m.RunTasks {
		_ = task(context.Background())
	}
}

type mockCascadeDeleter struct {
	DeleteFunc func(ctx context.Context, kind cascade.Kind, id uint) error
	Deleted    []uint
}

func (m *mockCascadeDeleter) Delete(ctx context.Context, kind cascade.Kind, id uint) error {
	m.Deleted = append(m.Deleted, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, kind, id)
	}
	return nil
}
