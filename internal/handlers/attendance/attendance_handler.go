// internal/handlers/attendance/attendance_handler.go
package attendance

import (
	"net/http"
	"strconv"

	"gymflow-service/internal/domain/attendance"
	"gymflow-service/internal/pkg/response"
	service "gymflow-service/internal/service/attendance"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// CheckIn records a gym visit by client document number. Denials come back as
// 409 with the reason; only infrastructure failures are 5xx.
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req attendance.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.attendanceService.CheckIn(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to record check-in", err)
		return
	}

	if !result.Success {
		response.Denied(c, result.Message)
		return
	}

	response.Success(c, http.StatusCreated, "check-in recorded", result.Attendance)
}

// History retrieves all attendances for a subscription
func (h *AttendanceHandler) History(c *gin.Context) {
	subscriptionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid subscription ID", err)
		return
	}

	result, err := h.attendanceService.History(c.Request.Context(), subscriptionID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load attendances", err)
		return
	}

	response.Success(c, http.StatusOK, "attendances retrieved", result)
}

// WeeklyCount reports how many visits a subscription has used this week
func (h *AttendanceHandler) WeeklyCount(c *gin.Context) {
	subscriptionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid subscription ID", err)
		return
	}

	count, err := h.attendanceService.WeeklyCount(c.Request.Context(), subscriptionID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to count attendances", err)
		return
	}

	response.Success(c, http.StatusOK, "weekly attendance count retrieved", gin.H{
		"subscription_id": subscriptionID,
		"count":           count,
	})
}
