package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ecokosova-dashboard/internal/toast"
	"ecokosova-dashboard/pkg/utils"
)

func GetToasts(toasts *toast.Queue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, toasts.Active())
	}
}

func DismissToast(toasts *toast.Queue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toasts.Dismiss(chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}
