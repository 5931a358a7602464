package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartincident/internal/application/settings/usecases"
	"smartincident/internal/interfaces/http/middleware"
	"smartincident/internal/shared/logger"
	"smartincident/internal/shared/utils"
)

type SettingsHandler struct {
	getUseCase       *usecases.GetSettingsUseCase
	updateUseCase    *usecases.UpdateSettingsUseCase
	testEmailUseCase *usecases.SendTestEmailUseCase
	logger           logger.Interface
}

func NewSettingsHandler(
	getUseCase *usecases.GetSettingsUseCase,
	updateUseCase *usecases.UpdateSettingsUseCase,
	testEmailUseCase *usecases.SendTestEmailUseCase,
	logger logger.Interface,
) *SettingsHandler {
	return &SettingsHandler{
		getUseCase:       getUseCase,
		updateUseCase:    updateUseCase,
		testEmailUseCase: testEmailUseCase,
		logger:           logger,
	}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetSettingsQuery{Actor: actor})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type updateSettingsRequest struct {
	SMTPHost  string `json:"smtp_host" binding:"required"`
	SMTPPort  int    `json:"smtp_port" binding:"required,min=1,max=65535"`
	SMTPUser  string `json:"smtp_user"`
	SMTPPass  string `json:"smtp_pass"`
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email" binding:"required,email"`
	Enabled   bool   `json:"enabled"`
}

func (h *SettingsHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	if err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateSettingsCommand{
		Actor:     actor,
		SMTPHost:  req.SMTPHost,
		SMTPPort:  req.SMTPPort,
		SMTPUser:  req.SMTPUser,
		SMTPPass:  req.SMTPPass,
		FromName:  req.FromName,
		FromEmail: req.FromEmail,
		Enabled:   req.Enabled,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "mail settings updated", nil)
}

type testEmailRequest struct {
	To string `json:"to" binding:"required,email"`
}

func (h *SettingsHandler) SendTestEmail(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	var req testEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	if err := h.testEmailUseCase.Execute(c.Request.Context(), usecases.SendTestEmailCommand{
		Actor: actor,
		To:    req.To,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "test email sent", nil)
}
