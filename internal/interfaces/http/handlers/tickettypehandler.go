package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartincident/internal/application/tickettype/usecases"
	"smartincident/internal/interfaces/http/middleware"
	"smartincident/internal/shared/logger"
	"smartincident/internal/shared/utils"
)

type TicketTypeHandler struct {
	createUseCase *usecases.CreateTicketTypeUseCase
	updateUseCase *usecases.UpdateTicketTypeUseCase
	deleteUseCase *usecases.DeleteTicketTypeUseCase
	getUseCase    *usecases.GetTicketTypeUseCase
	listUseCase   *usecases.ListTicketTypesUseCase
	logger        logger.Interface
}

func NewTicketTypeHandler(
	createUseCase *usecases.CreateTicketTypeUseCase,
	updateUseCase *usecases.UpdateTicketTypeUseCase,
	deleteUseCase *usecases.DeleteTicketTypeUseCase,
	getUseCase *usecases.GetTicketTypeUseCase,
	listUseCase *usecases.ListTicketTypesUseCase,
	logger logger.Interface,
) *TicketTypeHandler {
	return &TicketTypeHandler{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		logger:        logger,
	}
}

type createTicketTypeRequest struct {
	Name              string `json:"name" binding:"required,max=100"`
	Description       string `json:"description"`
	SLAResponseMins   int    `json:"sla_response_mins"`
	SLAResolutionMins int    `json:"sla_resolution_mins"`
	Global            bool   `json:"global"`
}

func (h *TicketTypeHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	var req createTicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateTicketTypeCommand{
		Actor:             actor,
		Name:              req.Name,
		Description:       req.Description,
		SLAResponseMins:   req.SLAResponseMins,
		SLAResolutionMins: req.SLAResolutionMins,
		Global:            req.Global,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "ticket type created")
}

type updateTicketTypeRequest struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	SLAResponseMins   *int    `json:"sla_response_mins"`
	SLAResolutionMins *int    `json:"sla_resolution_mins"`
	Global            *bool   `json:"global"`
}

func (h *TicketTypeHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	id, err := utils.ParseIDParam(c, "id", "ticket type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateTicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateTicketTypeCommand{
		Actor:             actor,
		TypeID:            id,
		Name:              req.Name,
		Description:       req.Description,
		SLAResponseMins:   req.SLAResponseMins,
		SLAResolutionMins: req.SLAResolutionMins,
		Global:            req.Global,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket type updated", result)
}

func (h *TicketTypeHandler) Delete(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	id, err := utils.ParseIDParam(c, "id", "ticket type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteTicketTypeCommand{
		Actor:  actor,
		TypeID: id,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket type and its incidents deleted", nil)
}

func (h *TicketTypeHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	id, err := utils.ParseIDParam(c, "id", "ticket type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetTicketTypeQuery{
		Actor:  actor,
		TypeID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TicketTypeHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	results, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListTicketTypesQuery{Actor: actor})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", results)
}
