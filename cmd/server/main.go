package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"ecokosova-dashboard/internal/api"
	"ecokosova-dashboard/internal/config"
	"ecokosova-dashboard/internal/database"
	"ecokosova-dashboard/internal/handlers"
	"ecokosova-dashboard/internal/models"
	"ecokosova-dashboard/internal/notifications"
	"ecokosova-dashboard/internal/prefs"
	"ecokosova-dashboard/internal/refresh"
	"ecokosova-dashboard/internal/routes"
	"ecokosova-dashboard/internal/services"
	"ecokosova-dashboard/internal/session"
	"ecokosova-dashboard/internal/settings"
	"ecokosova-dashboard/internal/toast"
	"ecokosova-dashboard/internal/websocket"
)

func fatal(title string, err error) {
	log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Printf("❌ FATAL ERROR: %s", title)
	log.Printf("   Error: %v", err)
	log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Fatal(err)
}

func main() {
	log.Println("═══════════════════════════════════════════════════════════════════")
	log.Println("🚀 ECOKOSOVA DASHBOARD SERVER STARTING")
	log.Println("═══════════════════════════════════════════════════════════════════")

	cfg, err := config.Load()
	if err != nil {
		fatal("Configuration invalid", err)
	}
	log.Printf("✅ Configuration loaded (backend: %s, prefs: %s, auth: %s)", cfg.BackendBaseURL, cfg.PrefsDriver, cfg.AuthMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	store, closeStore := openPrefs(ctx, cfg)
	defer closeStore()

	// Backend gateway
	var gwOpts []api.Option
	gwOpts = append(gwOpts, api.WithTimeout(cfg.BackendTimeout))
	if cfg.BackendToken != "" {
		token := cfg.BackendToken
		gwOpts = append(gwOpts, api.WithTokenSource(func() string { return token }))
	}
	gateway := api.New(cfg.BackendBaseURL, gwOpts...)
	log.Printf("✅ Backend gateway ready: %s", gateway.BaseURL())

	// Stores
	settingsMgr := settings.NewManager(ctx, store)

	var verifier session.Verifier = session.DemoVerifier{}
	var sessionOpts []session.Option
	if cfg.AuthMode == config.AuthStrict {
		verifier = session.NewBcryptVerifier(cfg.AdminPasswordHash, cfg.AdminEmails...)
		sessionOpts = append(sessionOpts, session.WithoutDefaultUser())
	}
	sessions := session.NewStore(ctx, store, verifier, sessionOpts...)
	tokens := session.NewTokenIssuer(cfg.JWTSecret, session.DefaultTokenTTL)

	notificationStore := notifications.NewStore(ctx, store)
	toasts := toast.NewQueue()
	defer toasts.Close()

	// WebSocket hub
	wsHub := websocket.NewHub()
	go wsHub.Run(ctx)
	log.Println("✅ WebSocket hub started")

	notificationStore.OnAdd(func(n notifications.Notification) {
		wsHub.Broadcast(websocket.EventNotification, n)
	})
	toasts.Subscribe(func(ev toast.Event) {
		wsHub.Broadcast(websocket.EventToast, ev)
	})
	sessions.OnLogout(func(u models.User) {
		if u.ID == "" {
			return
		}
		wsHub.BroadcastToUser(u.ID, websocket.EventSessionEnded, map[string]string{"redirect": "/"})
	})
	sessions.OnUpdate(func(u models.User) {
		wsHub.BroadcastToUser(u.ID, websocket.EventProfileUpdated, u)
	})

	// Firebase Cloud Messaging for critical alerts
	if cfg.PushEnabled() {
		var fcmService *services.FCMService
		if cfg.FirebaseCredentialsBase64 != "" {
			fcmService, err = services.NewFCMServiceFromBase64(ctx, cfg.FirebaseCredentialsBase64, cfg.CriticalAlertTopic)
		} else {
			fcmService, err = services.NewFCMService(ctx, cfg.FirebaseCredentialsFile, cfg.CriticalAlertTopic)
		}
		if err != nil {
			log.Printf("⚠️  Failed to initialize FCM: %v (push notifications disabled)", err)
		} else {
			notificationStore.OnAdd(fcmService.Listener(ctx, func() bool {
				return settingsMgr.Current().Notifications
			}))
			log.Printf("✅ Firebase Cloud Messaging initialized (topic: %s)", cfg.CriticalAlertTopic)
		}
	}

	// Workers
	refresher := refresh.New(gateway, settingsMgr, logger)
	refresher.OnUpdate(func(s refresh.Snapshot) {
		wsHub.Broadcast(websocket.EventContainersUpdated, s.Statistics)
	})
	go refresher.Run(ctx)

	detector := notifications.NewDetector(notificationStore, gateway, settingsMgr, cfg.DetectionInterval, logger)
	go detector.Run(ctx)

	routeCache := routes.NewCache(0, cfg.RouteCacheTTL)
	go routeCache.RunCleanup(ctx, time.Minute)
	routeSvc := routes.NewService(gateway, routeCache)

	go broadcastSettings(ctx, settingsMgr, wsHub)

	r := handlers.NewRouter(handlers.Deps{
		Gateway:       gateway,
		Sessions:      sessions,
		Tokens:        tokens,
		DemoAuth:      cfg.AuthMode == config.AuthDemo,
		Settings:      settingsMgr,
		Notifications: notificationStore,
		Toasts:        toasts,
		Refresher:     refresher,
		Routes:        routeSvc,
		Hub:           wsHub,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Println("🛑 Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Println("═══════════════════════════════════════════════════════════════════")
	log.Println("✅ ALL INITIALIZATION COMPLETE")
	log.Printf("🚀 Server starting on http://localhost:%s", cfg.Port)
	log.Println("🔌 Ready to accept requests!")
	log.Println("═══════════════════════════════════════════════════════════════════")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fatal("Server failed to start", err)
	}

	// hub closes every client connection before returning
	<-wsHub.Stopped()
	log.Println("👋 Server stopped")
}

// broadcastSettings pushes every saved settings value to dashboard clients
func broadcastSettings(ctx context.Context, mgr *settings.Manager, hub *websocket.Hub) {
	changes, unsubscribe := mgr.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case s := <-changes:
			hub.Broadcast(websocket.EventSettingsUpdated, s)
		}
	}
}

func openPrefs(ctx context.Context, cfg config.Config) (prefs.Store, func()) {
	switch cfg.PrefsDriver {
	case config.DriverPostgres:
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			fatal("Database connection failed", err)
		}
		if err := database.Migrate(db); err != nil {
			fatal("Database migrations failed", err)
		}
		log.Println("✅ Preferences stored in PostgreSQL")
		return prefs.NewPostgresStore(db), closeDB(db)

	case config.DriverRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			fatal("Invalid REDIS_URL", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			fatal("Redis connection failed", err)
		}
		log.Println("✅ Preferences stored in Redis")
		return prefs.NewRedisStore(client), func() { client.Close() }

	default:
		log.Println("⚠️  Preferences kept in memory (lost on restart)")
		return prefs.NewMemoryStore(), func() {}
	}
}

func closeDB(db *sqlx.DB) func() {
	return func() { db.Close() }
}
