package handlers

import (
	"log"
	"net/http"

	"ecokosova-dashboard/internal/models"
	"ecokosova-dashboard/internal/session"
	"ecokosova-dashboard/pkg/utils"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	OK    bool         `json:"ok"`
	Token string       `json:"token,omitempty"`
	User  *models.User `json:"user,omitempty"`
}

// Login signs in and returns a token for the dashboard API
func Login(sessions *session.Store, tokens *session.TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeBody[LoginRequest](w, r)
		if !ok {
			return
		}

		log.Printf("🔐 Login attempt for: %s", req.Email)

		user, ok := sessions.Login(r.Context(), req.Email, req.Password)
		if !ok {
			utils.RespondJSON(w, http.StatusUnauthorized, LoginResponse{OK: false})
			return
		}

		token, err := tokens.Issue(user)
		if err != nil {
			log.Printf("❌ Failed to create token: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "Failed to create token")
			return
		}

		utils.RespondJSON(w, http.StatusOK, LoginResponse{OK: true, Token: token, User: &user})
	}
}

// Logout clears the session and sends the browser back to the entry page
func Logout(sessions *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.Logout(r.Context())
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

type SessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
	Token         string       `json:"token,omitempty"`
}

// GetSession reports the current session. In demo mode the seeded session
// also gets a token so the dashboard works without an explicit login.
func GetSession(sessions *session.Store, tokens *session.TokenIssuer, demo bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := sessions.CurrentUser()
		resp := SessionResponse{Authenticated: user != nil, User: user}
		if user != nil && demo {
			token, err := tokens.Issue(*user)
			if err != nil {
				log.Printf("❌ Failed to create token: %v", err)
				utils.RespondError(w, http.StatusInternalServerError, "Failed to create token")
				return
			}
			resp.Token = token
		}
		utils.RespondJSON(w, http.StatusOK, resp)
	}
}

func GetMe(sessions *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := sessions.CurrentUser()
		if user == nil {
			utils.RespondError(w, http.StatusUnauthorized, "Nuk jeni i kyçur")
			return
		}
		utils.RespondJSON(w, http.StatusOK, user)
	}
}

// UpdateMe merges a partial profile into the session
func UpdateMe(sessions *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeBody[models.UserUpdate](w, r)
		if !ok {
			return
		}

		user, err := sessions.UpdateUser(r.Context(), req)
		if err != nil {
			utils.RespondError(w, http.StatusUnauthorized, "Nuk jeni i kyçur")
			return
		}
		utils.RespondJSON(w, http.StatusOK, user)
	}
}
