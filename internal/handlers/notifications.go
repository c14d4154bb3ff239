package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ecokosova-dashboard/internal/notifications"
	"ecokosova-dashboard/pkg/utils"
)

type NotificationsResponse struct {
	Notifications []notifications.Notification `json:"notifications"`
	UnreadCount   int                          `json:"unreadCount"`
}

func listResponse(store *notifications.Store) NotificationsResponse {
	return NotificationsResponse{
		Notifications: store.List(),
		UnreadCount:   store.UnreadCount(),
	}
}

func GetNotifications(store *notifications.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, listResponse(store))
	}
}

func MarkNotificationRead(store *notifications.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.MarkAsRead(r.Context(), chi.URLParam(r, "id"))
		utils.RespondJSON(w, http.StatusOK, listResponse(store))
	}
}

func MarkAllNotificationsRead(store *notifications.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.MarkAllAsRead(r.Context())
		utils.RespondJSON(w, http.StatusOK, listResponse(store))
	}
}

func ClearNotifications(store *notifications.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.ClearAll(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}
