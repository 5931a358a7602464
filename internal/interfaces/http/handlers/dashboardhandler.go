package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"smartincident/internal/application/dashboard/usecases"
	"smartincident/internal/interfaces/http/middleware"
	"smartincident/internal/shared/logger"
	"smartincident/internal/shared/utils"
)

type DashboardHandler struct {
	getUseCase *usecases.GetDashboardUseCase
	logger     logger.Interface
}

func NewDashboardHandler(getUseCase *usecases.GetDashboardUseCase, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{getUseCase: getUseCase, logger: logger}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	query := usecases.GetDashboardQuery{Actor: actor}

	if raw := c.Query("company_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid company_id")
			return
		}
		id := uint(parsed)
		query.CompanyID = &id
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid from date, expected YYYY-MM-DD")
			return
		}
		query.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid to date, expected YYYY-MM-DD")
			return
		}
		// Inclusive of the named day.
		to := parsed.AddDate(0, 0, 1)
		query.To = &to
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
