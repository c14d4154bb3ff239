package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"ecokosova-dashboard/internal/toast"
	"ecokosova-dashboard/pkg/utils"
)

func decodeBody[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		log.Printf("❌ Invalid request body: %v", err)
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return v, false
	}
	return v, true
}

// action runs a user-initiated backend call. Failures push an error toast
// and return the normalized error; success pushes successMsg.
func action[T any](toasts *toast.Queue, status int, successMsg string, call func(r *http.Request) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("📥 REQUEST: %s %s", r.Method, r.URL.Path)

		out, err := call(r)
		if err != nil {
			log.Printf("❌ %s %s failed: %v", r.Method, r.URL.Path, err)
			toasts.Error(utils.ErrorMessage(err))
			utils.RespondAPIError(w, err)
			return
		}

		if successMsg != "" {
			toasts.Success(successMsg)
		}
		if status == http.StatusNoContent {
			w.WriteHeader(status)
			return
		}
		utils.RespondJSON(w, status, out)
	}
}

// query runs a read-only backend call; failures are returned without a toast
func query[T any](call func(r *http.Request) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := call(r)
		if err != nil {
			log.Printf("❌ %s %s failed: %v", r.Method, r.URL.Path, err)
			utils.RespondAPIError(w, err)
			return
		}
		utils.RespondJSON(w, http.StatusOK, out)
	}
}

// withBody decodes the request body before calling fn
func withBody[In, Out any](fn func(r *http.Request, in In) (Out, error)) func(r *http.Request) (Out, error) {
	return func(r *http.Request) (Out, error) {
		var in In
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			var zero Out
			return zero, badRequest("Të dhënat e kërkesës janë të pavlefshme", err)
		}
		return fn(r, in)
	}
}
