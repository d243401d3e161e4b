// internal/handlers/client/client_handler.go
package client

import (
	"errors"
	"net/http"
	"strconv"

	"gymflow-service/internal/domain/client"
	xerrors "gymflow-service/internal/pkg/errors"
	"gymflow-service/internal/pkg/response"
	service "gymflow-service/internal/service/client"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientService *service.ClientService
}

func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// Create registers a new gym client
func (h *ClientHandler) Create(c *gin.Context) {
	var req client.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.clientService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrConflict) {
			response.Error(c, http.StatusConflict, "client already exists", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to create client", err)
		return
	}

	response.Success(c, http.StatusCreated, "client created", result)
}

// Get retrieves a client by ID
func (h *ClientHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid client ID", err)
		return
	}

	result, err := h.clientService.FindByID(c.Request.Context(), id)
	if err != nil {
		response.NotFound(c, "client not found")
		return
	}

	response.Success(c, http.StatusOK, "client retrieved", result)
}

// GetByDocumentNumber retrieves a client by document number
func (h *ClientHandler) GetByDocumentNumber(c *gin.Context) {
	documentNumber := c.Param("document_number")

	result, err := h.clientService.FindByDocumentNumber(c.Request.Context(), documentNumber)
	if err != nil {
		response.NotFound(c, "client not found")
		return
	}

	response.Success(c, http.StatusOK, "client retrieved", result)
}

// List retrieves clients with optional search and pagination
func (h *ClientHandler) List(c *gin.Context) {
	var filters client.ClientListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	result, err := h.clientService.List(c.Request.Context(), &filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list clients", err)
		return
	}

	response.Success(c, http.StatusOK, "clients retrieved", result)
}

// Update applies partial changes to a client
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid client ID", err)
		return
	}

	var req client.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.clientService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "client not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to update client", err)
		return
	}

	response.Success(c, http.StatusOK, "client updated", result)
}

// Delete soft-deletes a client
func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid client ID", err)
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "client not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete client", err)
		return
	}

	response.Success(c, http.StatusOK, "client deleted", nil)
}

// SubscriptionHistory retrieves a client's subscriptions, newest first
func (h *ClientHandler) SubscriptionHistory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid client ID", err)
		return
	}

	result, err := h.clientService.SubscriptionHistory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "client not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load subscription history", err)
		return
	}

	response.Success(c, http.StatusOK, "subscription history retrieved", result)
}

// AddObservation records a staff note on a client
func (h *ClientHandler) AddObservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid client ID", err)
		return
	}

	var req client.CreateObservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.clientService.AddObservation(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "client not found")
			return
		}
		if errors.Is(err, xerrors.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to record observation", err)
		return
	}

	response.Success(c, http.StatusCreated, "observation recorded", result)
}

// Observations retrieves a client's observations, newest first
func (h *ClientHandler) Observations(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid client ID", err)
		return
	}

	result, err := h.clientService.Observations(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "client not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load observations", err)
		return
	}

	response.Success(c, http.StatusOK, "observations retrieved", result)
}
