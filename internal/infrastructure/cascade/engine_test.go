package cascade

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"smartincident/internal/infrastructure/persistence/models"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.CompanyModel{},
		&models.UserModel{},
		&models.TicketTypeModel{},
		&models.IncidentModel{},
		&models.CommentModel{},
		&models.AttachmentModel{},
	)
	require.NoError(t, err)

	return db
}

func newTestEngine(db *gorm.DB) *Engine {
	return NewEngine(db, logger.NewLogger())
}

func seedCompany(t *testing.T, db *gorm.DB, name string) uint {
	c := &models.CompanyModel{Name: name, Status: "active"}
	require.NoError(t, db.Create(c).Error)
	return c.ID
}

func seedUser(t *testing.T, db *gorm.DB, email string, companyID *uint) uint {
	u := &models.UserModel{
		Name:      "User " + email,
		Email:     email,
		Role:      "client",
		Status:    "active",
		CompanyID: companyID,
	}
	require.NoError(t, db.Create(u).Error)
	return u.ID
}

func seedTicketType(t *testing.T, db *gorm.DB, name string) uint {
	tt := &models.TicketTypeModel{Name: name}
	require.NoError(t, db.Create(tt).Error)
	return tt.ID
}

func seedIncident(t *testing.T, db *gorm.DB, companyID, reporterID, typeID uint, assigneeID *uint) uint {
	code := fmt.Sprintf("INC-%d-%d", companyID, 1700000000+count(t, db, &models.IncidentModel{}))
	inc := &models.IncidentModel{
		TicketCode: &code,
		Title:      "Incident",
		Status:     "open",
		Priority:   "medium",
		ReporterID: reporterID,
		AssigneeID: assigneeID,
		CompanyID:  companyID,
		TypeID:     typeID,
	}
	require.NoError(t, db.Create(inc).Error)
	return inc.ID
}

func seedComment(t *testing.T, db *gorm.DB, incidentID, authorID uint) uint {
	c := &models.CommentModel{IncidentID: incidentID, AuthorID: authorID, Content: "note"}
	require.NoError(t, db.Create(c).Error)
	return c.ID
}

func seedIncidentAttachment(t *testing.T, db *gorm.DB, incidentID uint) {
	a := &models.AttachmentModel{IncidentID: &incidentID, FileName: "f.txt", FilePath: "uploads/f.txt"}
	require.NoError(t, db.Create(a).Error)
}

func seedCommentAttachment(t *testing.T, db *gorm.DB, commentID uint) {
	a := &models.AttachmentModel{CommentID: &commentID, FileName: "f.png", FilePath: "uploads/f.png"}
	require.NoError(t, db.Create(a).Error)
}

func count(t *testing.T, db *gorm.DB, model any, cond ...any) int64 {
	var n int64
	query := db.Model(model)
	if len(cond) > 0 {
		query = query.Where(cond[0], cond[1:]...)
	}
	require.NoError(t, query.Count(&n).Error)
	return n
}

func TestEngine_DeleteCompany_NoResidue(t *testing.T) {
	db := setupTestDB(t)
	engine := newTestEngine(db)
	ctx := context.Background()

	companyID := seedCompany(t, db, "Acme")
	otherCompanyID := seedCompany(t, db, "Globex")
	typeID := seedTicketType(t, db, "Hardware")

	userID := seedUser(t, db, "u1@acme.test", &companyID)
	otherUserID := seedUser(t, db, "u1@globex.test", &otherCompanyID)

	// Two incidents, each with two comments; attachments on both levels.
	for range 2 {
		incID := seedIncident(t, db, companyID, userID, typeID, nil)
		seedIncidentAttachment(t, db, incID)
		for range 2 {
			commentID := seedComment(t, db, incID, userID)
			seedCommentAttachment(t, db, commentID)
		}
	}
	survivorIncID := seedIncident(t, db, otherCompanyID, otherUserID, typeID, nil)
	survivorCommentID := seedComment(t, db, survivorIncID, otherUserID)
	seedCommentAttachment(t, db, survivorCommentID)

	require.NoError(t, engine.Delete(ctx, KindCompany, companyID))

	assert.Zero(t, count(t, db, &models.CompanyModel{}, "id = ?", companyID))
	assert.Zero(t, count(t, db, &models.UserModel{}, "company_id = ?", companyID))
	assert.Zero(t, count(t, db, &models.IncidentModel{}, "company_id = ?", companyID))
	assert.Zero(t, count(t, db, &models.CommentModel{}, "author_id = ?", userID))
	assert.EqualValues(t, 1, count(t, db, &models.AttachmentModel{}))

	// The other tenant is untouched.
	assert.EqualValues(t, 1, count(t, db, &models.CompanyModel{}))
	assert.EqualValues(t, 1, count(t, db, &models.UserModel{}))
	assert.EqualValues(t, 1, count(t, db, &models.IncidentModel{}))
	assert.EqualValues(t, 1, count(t, db, &models.CommentModel{}))
}

func TestEngine_DeleteUser_AssigneeVsReporter(t *testing.T) {
	db := setupTestDB(t)
	engine := newTestEngine(db)
	ctx := context.Background()

	companyID := seedCompany(t, db, "Acme")
	typeID := seedTicketType(t, db, "Hardware")
	victimID := seedUser(t, db, "victim@acme.test", &companyID)
	reporterID := seedUser(t, db, "reporter@acme.test", &companyID)

	// Assigned to the victim but reported by someone else: survives unassigned.
	assignedIncID := seedIncident(t, db, companyID, reporterID, typeID, &victimID)

	// Reported by the victim: removed with all children.
	reportedIncID := seedIncident(t, db, companyID, victimID, typeID, nil)
	commentID := seedComment(t, db, reportedIncID, reporterID)
	seedCommentAttachment(t, db, commentID)
	seedIncidentAttachment(t, db, reportedIncID)

	require.NoError(t, engine.Delete(ctx, KindUser, victimID))

	assert.Zero(t, count(t, db, &models.UserModel{}, "id = ?", victimID))

	var survivor models.IncidentModel
	require.NoError(t, db.First(&survivor, assignedIncID).Error)
	assert.Nil(t, survivor.AssigneeID)

	assert.Zero(t, count(t, db, &models.IncidentModel{}, "id = ?", reportedIncID))
	assert.Zero(t, count(t, db, &models.CommentModel{}))
	assert.Zero(t, count(t, db, &models.AttachmentModel{}))
}

func TestEngine_DeleteUser_AssignedAndReported(t *testing.T) {
	db := setupTestDB(t)
	engine := newTestEngine(db)
	ctx := context.Background()

	companyID := seedCompany(t, db, "Acme")
	typeID := seedTicketType(t, db, "Hardware")
	victimID := seedUser(t, db, "victim@acme.test", &companyID)

	// Reported by and assigned to the same user: the reporter cascade wins
	// and the incident is removed.
	incID := seedIncident(t, db, companyID, victimID, typeID, &victimID)

	require.NoError(t, engine.Delete(ctx, KindUser, victimID))

	assert.Zero(t, count(t, db, &models.IncidentModel{}, "id = ?", incID))
}

func TestEngine_DeleteTicketType(t *testing.T) {
	db := setupTestDB(t)
	engine := newTestEngine(db)
	ctx := context.Background()

	companyID := seedCompany(t, db, "Acme")
	doomedTypeID := seedTicketType(t, db, "Hardware")
	keptTypeID := seedTicketType(t, db, "Software")
	userID := seedUser(t, db, "u@acme.test", &companyID)

	doomedIncID := seedIncident(t, db, companyID, userID, doomedTypeID, nil)
	commentID := seedComment(t, db, doomedIncID, userID)
	seedCommentAttachment(t, db, commentID)
	keptIncID := seedIncident(t, db, companyID, userID, keptTypeID, nil)

	require.NoError(t, engine.Delete(ctx, KindTicketType, doomedTypeID))

	assert.Zero(t, count(t, db, &models.TicketTypeModel{}, "id = ?", doomedTypeID))
	assert.Zero(t, count(t, db, &models.IncidentModel{}, "type_id = ?", doomedTypeID))
	assert.Zero(t, count(t, db, &models.CommentModel{}))
	assert.Zero(t, count(t, db, &models.AttachmentModel{}))

	assert.EqualValues(t, 1, count(t, db, &models.IncidentModel{}, "id = ?", keptIncID))
	// Users are not part of the ticket-type cascade.
	assert.EqualValues(t, 1, count(t, db, &models.UserModel{}))
}

func TestEngine_DeleteIncident_Direct(t *testing.T) {
	db := setupTestDB(t)
	engine := newTestEngine(db)
	ctx := context.Background()

	companyID := seedCompany(t, db, "Acme")
	typeID := seedTicketType(t, db, "Hardware")
	userID := seedUser(t, db, "u@acme.test", &companyID)

	incID := seedIncident(t, db, companyID, userID, typeID, nil)
	commentID := seedComment(t, db, incID, userID)
	seedCommentAttachment(t, db, commentID)
	seedIncidentAttachment(t, db, incID)

	require.NoError(t, engine.Delete(ctx, KindIncident, incID))

	assert.Zero(t, count(t, db, &models.IncidentModel{}))
	assert.Zero(t, count(t, db, &models.CommentModel{}))
	assert.Zero(t, count(t, db, &models.AttachmentModel{}))

	// The reporter and company survive a direct incident deletion.
	assert.EqualValues(t, 1, count(t, db, &models.UserModel{}))
	assert.EqualValues(t, 1, count(t, db, &models.CompanyModel{}))
}

func TestEngine_UnknownKind(t *testing.T) {
	db := setupTestDB(t)
	engine := newTestEngine(db)

	err := engine.Delete(context.Background(), Kind("session"), 1)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}
