// internal/handlers/subscription/subscription_handler.go
package subscription

import (
	"errors"
	"net/http"
	"strconv"

	"gymflow-service/internal/domain/subscription"
	xerrors "gymflow-service/internal/pkg/errors"
	"gymflow-service/internal/pkg/response"
	service "gymflow-service/internal/service/subscription"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Create enrolls a client into a membership plan
func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req subscription.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.subscriptionService.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrNotFound):
			response.NotFound(c, "client or membership not found")
		case errors.Is(err, xerrors.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "invalid request", err)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to create subscription", err)
		}
		return
	}

	response.Success(c, http.StatusCreated, "subscription created", result)
}

// Get retrieves a subscription by ID with its relations
func (h *SubscriptionHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid subscription ID", err)
		return
	}

	result, err := h.subscriptionService.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "subscription not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load subscription", err)
		return
	}

	response.Success(c, http.StatusOK, "subscription retrieved", result)
}

// GetCurrent resolves a client's current subscription by document number or
// client ID query param.
func (h *SubscriptionHandler) GetCurrent(c *gin.Context) {
	documentNumber := c.Query("document_number")

	var clientID int64
	if raw := c.Query("client_id"); raw != "" {
		var err error
		clientID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid client ID", err)
			return
		}
	}

	if documentNumber == "" && clientID == 0 {
		response.Error(c, http.StatusBadRequest, "document_number or client_id is required", nil)
		return
	}

	result, err := h.subscriptionService.GetCurrentSubscription(c.Request.Context(), documentNumber, clientID)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "no subscription found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load subscription", err)
		return
	}

	response.Success(c, http.StatusOK, "current subscription retrieved", result)
}

// Cancel moves a client's current subscription to Inactive
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	clientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid client ID", err)
		return
	}

	result, err := h.subscriptionService.MakeClientSubscriptionInactive(c.Request.Context(), clientID)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "no subscription found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to cancel subscription", err)
		return
	}

	response.Success(c, http.StatusOK, "subscription cancelled", result)
}

// SetState moves a subscription to the named lifecycle state. Admin only.
func (h *SubscriptionHandler) SetState(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid subscription ID", err)
		return
	}

	var result interface{}
	switch c.Param("state") {
	case "active":
		result, err = h.subscriptionService.MakeSubscriptionActive(c.Request.Context(), id)
	case "inactive":
		result, err = h.subscriptionService.MakeSubscriptionInactive(c.Request.Context(), id)
	case "suspended":
		result, err = h.subscriptionService.MakeSubscriptionSuspended(c.Request.Context(), id)
	default:
		response.Error(c, http.StatusBadRequest, "unknown state", nil)
		return
	}

	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "subscription not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to change subscription state", err)
		return
	}

	response.Success(c, http.StatusOK, "subscription state changed", result)
}
