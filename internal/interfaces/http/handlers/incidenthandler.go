package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"smartincident/internal/application/incident/usecases"
	"smartincident/internal/interfaces/http/middleware"
	"smartincident/internal/shared/logger"
	"smartincident/internal/shared/utils"
)

type IncidentHandler struct {
	createUseCase       *usecases.CreateIncidentUseCase
	updateUseCase       *usecases.UpdateIncidentUseCase
	deleteUseCase       *usecases.DeleteIncidentUseCase
	getUseCase          *usecases.GetIncidentUseCase
	listUseCase         *usecases.ListIncidentsUseCase
	addCommentUseCase   *usecases.AddCommentUseCase
	listCommentsUseCase *usecases.ListCommentsUseCase
	logger              logger.Interface
}

func NewIncidentHandler(
	createUseCase *usecases.CreateIncidentUseCase,
	updateUseCase *usecases.UpdateIncidentUseCase,
	deleteUseCase *usecases.DeleteIncidentUseCase,
	getUseCase *usecases.GetIncidentUseCase,
	listUseCase *usecases.ListIncidentsUseCase,
	addCommentUseCase *usecases.AddCommentUseCase,
	listCommentsUseCase *usecases.ListCommentsUseCase,
	logger logger.Interface,
) *IncidentHandler {
	return &IncidentHandler{
		createUseCase:       createUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		getUseCase:          getUseCase,
		listUseCase:         listUseCase,
		addCommentUseCase:   addCommentUseCase,
		listCommentsUseCase: listCommentsUseCase,
		logger:              logger,
	}
}

// formUpload opens an optional multipart file field and adapts it for the
// application layer. The returned closer, when non-nil, must be deferred.
func formUpload(c *gin.Context, field string) (*usecases.Upload, multipart.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}

	return &usecases.Upload{
		FileName: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Content:  file,
	}, file, nil
}

// Create accepts multipart form data so a file can be attached in the same
// request that opens the ticket.
func (h *IncidentHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	typeID, err := strconv.ParseUint(c.PostForm("type_id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid or missing type_id")
		return
	}

	var companyID *uint
	if raw := c.PostForm("company_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid company_id")
			return
		}
		id := uint(parsed)
		companyID = &id
	}

	upload, file, err := formUpload(c, "attachment")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid attachment: "+err.Error())
		return
	}
	if file != nil {
		defer file.Close()
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateIncidentCommand{
		Actor:       actor,
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Priority:    c.PostForm("priority"),
		TypeID:      uint(typeID),
		CompanyID:   companyID,
		Attachment:  upload,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "incident created")
}

type updateIncidentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	AssigneeID  *uint   `json:"assignee_id"`
	Unassign    bool    `json:"unassign"`
}

func (h *IncidentHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	id, err := utils.ParseIDParam(c, "id", "incident")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateIncidentCommand{
		Actor:       actor,
		IncidentID:  id,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
		Unassign:    req.Unassign,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "incident updated", result)
}

func (h *IncidentHandler) Delete(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	id, err := utils.ParseIDParam(c, "id", "incident")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteIncidentCommand{
		Actor:      actor,
		IncidentID: id,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "incident and all related data deleted", nil)
}

func (h *IncidentHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	id, err := utils.ParseIDParam(c, "id", "incident")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetIncidentQuery{
		Actor:      actor,
		IncidentID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *IncidentHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	page, pageSize := utils.ParsePagination(c)

	query := usecases.ListIncidentsQuery{
		Actor:    actor,
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}

	if raw := c.Query("company_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid company_id")
			return
		}
		id := uint(parsed)
		query.CompanyID = &id
	}
	if raw := c.Query("assignee_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid assignee_id")
			return
		}
		id := uint(parsed)
		query.AssigneeID = &id
	}
	if raw := c.Query("status"); raw != "" {
		query.Statuses = strings.Split(raw, ",")
	}
	if raw := c.Query("priority"); raw != "" {
		query.Priority = &raw
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Incidents, result.Total, result.Page, result.PageSize)
}

// AddComment accepts multipart form data so a file can ride along with the
// comment.
func (h *IncidentHandler) AddComment(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	id, err := utils.ParseIDParam(c, "id", "incident")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	upload, file, err := formUpload(c, "attachment")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid attachment: "+err.Error())
		return
	}
	if file != nil {
		defer file.Close()
	}

	result, err := h.addCommentUseCase.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Actor:      actor,
		AuthorName: middleware.GetUserName(c),
		IncidentID: id,
		Content:    c.PostForm("content"),
		Attachment: upload,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "comment added")
}

func (h *IncidentHandler) ListComments(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	id, err := utils.ParseIDParam(c, "id", "incident")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	results, err := h.listCommentsUseCase.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		Actor:      actor,
		IncidentID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", results)
}
