package handlers

import (
	"errors"
	"log"
	"net/http"

	"ecokosova-dashboard/internal/settings"
	"ecokosova-dashboard/internal/threshold"
	"ecokosova-dashboard/internal/toast"
	"ecokosova-dashboard/pkg/utils"
)

func GetSettings(cfg *settings.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, cfg.Current())
	}
}

// SaveSettings validates and stores the settings; subscribers re-fetch at once
func SaveSettings(cfg *settings.Manager, toasts *toast.Queue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeBody[settings.Settings](w, r)
		if !ok {
			return
		}

		if err := cfg.Save(r.Context(), req); err != nil {
			log.Printf("❌ Settings rejected: %v", err)
			if errors.Is(err, threshold.ErrInvalidThresholds) || errors.Is(err, settings.ErrInvalidSettings) {
				toasts.Error("Cilësimet janë të pavlefshme")
				utils.RespondError(w, http.StatusBadRequest, err.Error())
				return
			}
			toasts.Error("Cilësimet nuk u ruajtën")
			utils.RespondError(w, http.StatusInternalServerError, "Failed to save settings")
			return
		}

		toasts.Success("Cilësimet u ruajtën me sukses")
		utils.RespondJSON(w, http.StatusOK, cfg.Current())
	}
}
