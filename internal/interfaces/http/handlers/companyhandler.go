package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartincident/internal/application/company/usecases"
	"smartincident/internal/interfaces/http/middleware"
	"smartincident/internal/shared/logger"
	"smartincident/internal/shared/utils"
)

type CompanyHandler struct {
	createUseCase *usecases.CreateCompanyUseCase
	updateUseCase *usecases.UpdateCompanyUseCase
	deleteUseCase *usecases.DeleteCompanyUseCase
	getUseCase    *usecases.GetCompanyUseCase
	listUseCase   *usecases.ListCompaniesUseCase
	logger        logger.Interface
}

func NewCompanyHandler(
	createUseCase *usecases.CreateCompanyUseCase,
	updateUseCase *usecases.UpdateCompanyUseCase,
	deleteUseCase *usecases.DeleteCompanyUseCase,
	getUseCase *usecases.GetCompanyUseCase,
	listUseCase *usecases.ListCompaniesUseCase,
	logger logger.Interface,
) *CompanyHandler {
	return &CompanyHandler{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		logger:        logger,
	}
}

type createCompanyRequest struct {
	Name         string `json:"name" binding:"required,max=200"`
	Address      string `json:"address"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateCompanyCommand{
		Name:         req.Name,
		Address:      req.Address,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "company created")
}

type updateCompanyRequest struct {
	Name         *string `json:"name"`
	Status       *string `json:"status"`
	Address      *string `json:"address"`
	ContactEmail *string `json:"contact_email"`
}

func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	if err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateCompanyCommand{
		CompanyID:    id,
		Name:         req.Name,
		Status:       req.Status,
		Address:      req.Address,
		ContactEmail: req.ContactEmail,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "company updated", nil)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteCompanyCommand{
		CompanyID: id,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "company and all related data deleted", nil)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	id, err := utils.ParseIDParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetCompanyQuery{
		Actor:     actor,
		CompanyID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CompanyHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	results, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListCompaniesQuery{Actor: actor})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", results)
}
