// internal/handlers/membership/membership_handler.go
package membership

import (
	"errors"
	"net/http"
	"strconv"

	"gymflow-service/internal/domain/membership"
	xerrors "gymflow-service/internal/pkg/errors"
	"gymflow-service/internal/pkg/response"
	service "gymflow-service/internal/service/membership"

	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	membershipService *service.MembershipService
}

func NewMembershipHandler(membershipService *service.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// Create registers a new membership plan
func (h *MembershipHandler) Create(c *gin.Context) {
	var req membership.CreateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.membershipService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrConflict) {
			response.Error(c, http.StatusConflict, "membership already exists", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to create membership", err)
		return
	}

	response.Success(c, http.StatusCreated, "membership created", result)
}

// Get retrieves a membership plan
func (h *MembershipHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid membership ID", err)
		return
	}

	result, err := h.membershipService.FindByID(c.Request.Context(), id)
	if err != nil {
		response.NotFound(c, "membership not found")
		return
	}

	response.Success(c, http.StatusOK, "membership retrieved", result)
}

// List retrieves all membership plans
func (h *MembershipHandler) List(c *gin.Context) {
	result, err := h.membershipService.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list memberships", err)
		return
	}

	response.Success(c, http.StatusOK, "memberships retrieved", result)
}

// Update applies partial changes to a plan
func (h *MembershipHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid membership ID", err)
		return
	}

	var req membership.UpdateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.membershipService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "membership not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to update membership", err)
		return
	}

	response.Success(c, http.StatusOK, "membership updated", result)
}

// Delete soft-deletes a membership plan
func (h *MembershipHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid membership ID", err)
		return
	}

	if err := h.membershipService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "membership not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete membership", err)
		return
	}

	response.Success(c, http.StatusOK, "membership deleted", nil)
}
