package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ecokosova-dashboard/internal/refresh"
	"ecokosova-dashboard/internal/routes"
	"ecokosova-dashboard/internal/settings"
	"ecokosova-dashboard/internal/stats"
	"ecokosova-dashboard/internal/threshold"
	"ecokosova-dashboard/internal/toast"
	"ecokosova-dashboard/pkg/utils"
)

type ContainerView struct {
	ID          string           `json:"id"`
	ZoneID      string           `json:"zoneId"`
	FillLevel   int              `json:"fillLevel"`
	Operational bool             `json:"operational"`
	Address     string           `json:"address,omitempty"`
	Latitude    float64          `json:"latitude"`
	Longitude   float64          `json:"longitude"`
	Status      threshold.Status `json:"status"`
	StatusText  string           `json:"statusText"`
	StatusColor string           `json:"statusColor"`
}

type DashboardResponse struct {
	Containers []ContainerView     `json:"containers"`
	Statistics stats.Statistics    `json:"statistics"`
	Zones      []stats.ZoneSummary `json:"zones"`
	Thresholds threshold.Config    `json:"thresholds"`
	Error      string              `json:"error,omitempty"`
	UpdatedAt  string              `json:"updatedAt,omitempty"`
}

// GetDashboard serves the latest refreshed snapshot classified with the
// active thresholds
func GetDashboard(ref *refresh.Refresher, cfg *settings.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := ref.Snapshot()
		th := cfg.Thresholds()

		resp := DashboardResponse{
			Containers: make([]ContainerView, 0, len(snap.Containers)),
			Statistics: stats.Summarize(snap.Containers, th),
			Zones:      stats.SummarizeZones(snap.Containers, th),
			Thresholds: th,
			Error:      snap.Error,
		}
		if !snap.UpdatedAt.IsZero() {
			resp.UpdatedAt = snap.UpdatedAt.Format(time.RFC3339)
		}
		for _, c := range snap.Containers {
			resp.Containers = append(resp.Containers, ContainerView{
				ID:          c.ID,
				ZoneID:      c.ZoneID,
				FillLevel:   c.FillLevel,
				Operational: c.Operational,
				Address:     c.Address,
				Latitude:    c.Latitude,
				Longitude:   c.Longitude,
				Status:      threshold.Classify(c.FillLevel, th),
				StatusText:  threshold.StatusText(c.FillLevel, th),
				StatusColor: threshold.StatusColor(c.FillLevel, th),
			})
		}
		utils.RespondJSON(w, http.StatusOK, resp)
	}
}

type FillLevelRequest struct {
	FillLevel int `json:"fillLevel"`
}

// UpdateFillLevel applies a manual reading, then refreshes and drops cached routes
func UpdateFillLevel(ref *refresh.Refresher, routeSvc *routes.Service, toasts *toast.Queue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeBody[FillLevelRequest](w, r)
		if !ok {
			return
		}
		containerID := chi.URLParam(r, "id")
		log.Printf("📥 REQUEST: PUT fill level %s -> %d%%", containerID, req.FillLevel)

		if err := ref.UpdateFillLevel(r.Context(), containerID, req.FillLevel); err != nil {
			toasts.Error(utils.ErrorMessage(err))
			utils.RespondAPIError(w, err)
			return
		}
		routeSvc.Invalidate()

		toasts.Success("Niveli i mbushjes u përditësua")
		utils.RespondJSON(w, http.StatusOK, ref.Snapshot())
	}
}
