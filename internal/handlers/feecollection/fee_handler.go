// internal/handlers/feecollection/fee_handler.go
package feecollection

import (
	"errors"
	"net/http"
	"strconv"

	"gymflow-service/internal/domain/feecollection"
	xerrors "gymflow-service/internal/pkg/errors"
	"gymflow-service/internal/pkg/response"
	service "gymflow-service/internal/service/feecollection"

	"github.com/gin-gonic/gin"
)

type FeeHandler struct {
	feeService *service.FeeService
}

func NewFeeHandler(feeService *service.FeeService) *FeeHandler {
	return &FeeHandler{feeService: feeService}
}

// Collect records a membership fee payment by client document number
func (h *FeeHandler) Collect(c *gin.Context) {
	var req feecollection.CollectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.feeService.Collect(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, "invalid request", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to record fee collection", err)
		return
	}

	if !result.Success {
		response.Denied(c, result.Message)
		return
	}

	response.Success(c, http.StatusCreated, "fee collection recorded", result.FeeCollection)
}

// History retrieves all fee collections for a subscription
func (h *FeeHandler) History(c *gin.Context) {
	subscriptionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid subscription ID", err)
		return
	}

	result, err := h.feeService.History(c.Request.Context(), subscriptionID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load fee collections", err)
		return
	}

	response.Success(c, http.StatusOK, "fee collections retrieved", result)
}

// PaymentStatus reports whether a subscription's latest payment still covers
// today.
func (h *FeeHandler) PaymentStatus(c *gin.Context) {
	subscriptionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid subscription ID", err)
		return
	}

	upToDate, err := h.feeService.IsUpToDate(c.Request.Context(), subscriptionID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to check payment status", err)
		return
	}

	response.Success(c, http.StatusOK, "payment status retrieved", gin.H{
		"subscription_id": subscriptionID,
		"up_to_date":      upToDate,
	})
}
