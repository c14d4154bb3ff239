package websocket

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"ecokosova-dashboard/internal/middleware"
	"ecokosova-dashboard/internal/session"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// the dashboard is served from another origin in development
		return true
	},
}

// HandleWebSocket upgrades the connection. Browsers cannot set headers on
// WebSocket requests, so the token may come from the query string.
func HandleWebSocket(hub *Hub, tokens *session.TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var claims session.Claims

		if tokenString := r.URL.Query().Get("token"); tokenString != "" {
			parsed, err := tokens.Parse(tokenString)
			if err != nil {
				log.Printf("❌ Invalid token in query parameter: %v", err)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			claims = parsed
		} else {
			var ok bool
			claims, ok = middleware.GetUserFromContext(r)
			if !ok {
				log.Println("❌ No user in context for WebSocket connection")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("❌ WebSocket upgrade failed: %v", err)
			return
		}

		client := NewClient(claims.UserID, claims.Role, conn, hub)
		if !hub.Register(client) {
			log.Println("⚠️ WebSocket hub stopped, closing connection")
			conn.Close()
			return
		}

		go client.WritePump()
		go client.ReadPump()

		log.Printf("✅ WebSocket connection established for user: %s (%s)", claims.Email, claims.UserID)
	}
}
