// internal/handlers/state/state_handler.go
package state

import (
	"net/http"

	"gymflow-service/internal/domain/state"
	"gymflow-service/internal/pkg/response"
	service "gymflow-service/internal/service/state"

	"github.com/gin-gonic/gin"
)

type StateHandler struct {
	stateService *service.StateService
}

func NewStateHandler(stateService *service.StateService) *StateHandler {
	return &StateHandler{stateService: stateService}
}

// List retrieves all states
func (h *StateHandler) List(c *gin.Context) {
	result, err := h.stateService.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list states", err)
		return
	}

	response.Success(c, http.StatusOK, "states retrieved", result)
}

// Create registers a new state. Admin only.
func (h *StateHandler) Create(c *gin.Context) {
	var req state.CreateStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.stateService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to create state", err)
		return
	}

	response.Success(c, http.StatusCreated, "state created", result)
}
