package handler

import (
	"net/http"

	"github.com/Arockiam07/College-Voting-System/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetAdminStats handles GET /api/dashboard/admin
func (h *DashboardHandler) GetAdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetAdminStats(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	writeCachedJSON(w, r, 30, stats)
}
