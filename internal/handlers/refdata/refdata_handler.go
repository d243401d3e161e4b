// internal/handlers/refdata/refdata_handler.go
package refdata

import (
	"errors"
	"net/http"

	"gymflow-service/internal/domain/client"
	xerrors "gymflow-service/internal/pkg/errors"
	"gymflow-service/internal/pkg/response"
	service "gymflow-service/internal/service/refdata"

	"github.com/gin-gonic/gin"
)

type RefDataHandler struct {
	refDataService *service.RefDataService
}

func NewRefDataHandler(refDataService *service.RefDataService) *RefDataHandler {
	return &RefDataHandler{refDataService: refDataService}
}

type createNameRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// ListGenders retrieves all genders
func (h *RefDataHandler) ListGenders(c *gin.Context) {
	result, err := h.refDataService.ListGenders(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list genders", err)
		return
	}

	response.Success(c, http.StatusOK, "genders retrieved", result)
}

// CreateGender registers a new gender. Admin only.
func (h *RefDataHandler) CreateGender(c *gin.Context) {
	var req createNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.refDataService.CreateGender(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, xerrors.ErrConflict) {
			response.Error(c, http.StatusConflict, "gender already exists", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to create gender", err)
		return
	}

	response.Success(c, http.StatusCreated, "gender created", result)
}

// ListBloodTypes retrieves all blood types
func (h *RefDataHandler) ListBloodTypes(c *gin.Context) {
	result, err := h.refDataService.ListBloodTypes(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list blood types", err)
		return
	}

	response.Success(c, http.StatusOK, "blood types retrieved", result)
}

// CreateBloodType registers a new blood type. Admin only.
func (h *RefDataHandler) CreateBloodType(c *gin.Context) {
	var req createNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.refDataService.CreateBloodType(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, xerrors.ErrConflict) {
			response.Error(c, http.StatusConflict, "blood type already exists", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to create blood type", err)
		return
	}

	response.Success(c, http.StatusCreated, "blood type created", result)
}

// ListClientGoals retrieves all client goals
func (h *RefDataHandler) ListClientGoals(c *gin.Context) {
	result, err := h.refDataService.ListClientGoals(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list client goals", err)
		return
	}

	response.Success(c, http.StatusOK, "client goals retrieved", result)
}

// CreateClientGoal registers a new client goal. Admin only.
func (h *RefDataHandler) CreateClientGoal(c *gin.Context) {
	var req client.CreateClientGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.refDataService.CreateClientGoal(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrConflict) {
			response.Error(c, http.StatusConflict, "client goal already exists", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to create client goal", err)
		return
	}

	response.Success(c, http.StatusCreated, "client goal created", result)
}
