package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ecokosova-dashboard/internal/api"
	"ecokosova-dashboard/internal/models"
	"ecokosova-dashboard/internal/notifications"
	"ecokosova-dashboard/internal/reports"
	"ecokosova-dashboard/internal/routes"
	"ecokosova-dashboard/internal/websocket"
	"ecokosova-dashboard/pkg/utils"
)

func wantsText(r *http.Request) bool {
	return r.URL.Query().Get("format") == "text"
}

// GetReport generates a report of the given type. ?format=text renders it.
func GetReport(gw *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := reports.ParseKind(chi.URLParam(r, "type"))
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}

		raw, err := gw.GenerateReport(r.Context(), string(kind))
		if err != nil {
			utils.RespondAPIError(w, err)
			return
		}

		report, err := reports.Decode(*raw)
		if err != nil {
			log.Printf("❌ Unexpected %s report shape: %v", kind, err)
			utils.RespondError(w, http.StatusBadGateway, "Raporti nuk mund të lexohet")
			return
		}

		if wantsText(r) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			if err := reports.Render(w, report); err != nil {
				log.Printf("❌ Render %s report: %v", kind, err)
			}
			return
		}
		utils.RespondJSON(w, http.StatusOK, report)
	}
}

// GetZoneRoute serves a cached or freshly computed collection route
func GetZoneRoute(svc *routes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseRouteQuery(r)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}

		route, err := svc.ZoneRoute(r.Context(), chi.URLParam(r, "zoneId"), q)
		if err != nil {
			utils.RespondAPIError(w, err)
			return
		}

		if wantsText(r) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			reports.RenderRoute(w, route)
			return
		}
		utils.RespondJSON(w, http.StatusOK, route)
	}
}

func GetRouteCacheStats(svc *routes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, svc.Stats())
	}
}

type StatusResponse struct {
	WebsocketClients    int          `json:"websocketClients"`
	UnreadNotifications int          `json:"unreadNotifications"`
	RouteCache          routes.Stats `json:"routeCache"`
}

// GetStatus reports live connections and cache state for operators
func GetStatus(hub *websocket.Hub, svc *routes.Service, store *notifications.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := StatusResponse{
			UnreadNotifications: store.UnreadCount(),
			RouteCache:          svc.Stats(),
		}
		if hub != nil {
			resp.WebsocketClients = hub.GetClientCount()
		}
		utils.RespondJSON(w, http.StatusOK, resp)
	}
}

func parseRouteQuery(r *http.Request) (models.RouteQuery, error) {
	q := models.DefaultRouteQuery()
	params := r.URL.Query()

	if v := params.Get("startLat"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil || lat < -90 || lat > 90 {
			return q, errors.New("invalid startLat")
		}
		q.StartLat = lat
	}
	if v := params.Get("startLon"); v != "" {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil || lon < -180 || lon > 180 {
			return q, errors.New("invalid startLon")
		}
		q.StartLon = lon
	}
	if v := params.Get("strategy"); v != "" {
		if v != models.RouteOptimal && v != models.RoutePriorityBased {
			return q, errors.New("strategy must be OPTIMAL or PRIORITY_BASED")
		}
		q.Strategy = v
	}
	return q, nil
}
