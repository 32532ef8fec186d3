package http

import (
	"net/http"
	"time"

	"github.com/sbexpress/hris-backend-go/internal/domain/activitylog"
	"github.com/sbexpress/hris-backend-go/internal/domain/dashboard"
	"github.com/sbexpress/hris-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetRealtime returns the recomputed realtime snapshot
	GetRealtime(w http.ResponseWriter, r *http.Request)
	// GetAttendanceTrend returns monthly attendance totals
	GetAttendanceTrend(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
	activityService  activitylog.ActivityLogService
	now              func() time.Time
}

func NewDashboardHandler(dashboardService dashboard.DashboardService, activityService activitylog.ActivityLogService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
		activityService:  activityService,
		now:              time.Now,
	}
}

// GetRealtime handles GET /dashboard/realtime
func (h *dashboardHandlerImpl) GetRealtime(w http.ResponseWriter, r *http.Request) {
	// record first so the viewer counts as active in their own snapshot
	h.activityService.Record(r.Context(), viewEntry(r, "Viewed realtime dashboard"))

	result, err := h.dashboardService.GetSnapshot(r.Context(), h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAttendanceTrend handles GET /dashboard/attendance-trend
func (h *dashboardHandlerImpl) GetAttendanceTrend(w http.ResponseWriter, r *http.Request) {
	months, err := queryInt(r, "months")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.GetAttendanceTrend(r.Context(), h.now(), months)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
