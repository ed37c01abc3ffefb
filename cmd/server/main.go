package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wgale/warfront/api/internal/config"
	"github.com/wgale/warfront/api/internal/handler"
	"github.com/wgale/warfront/api/internal/logger"
	"github.com/wgale/warfront/api/internal/middleware"
	"github.com/wgale/warfront/api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet; this is the one bare exit.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel)
	log.Info().Str("addr", cfg.Addr).Dur("roomTTL", cfg.RoomTTL).Msg("Config loaded")

	store := service.NewStore(cfg.RoomTTL)
	hub := handler.NewHub()

	roomHandler := handler.NewRoomHandler(store, hub)
	wsHandler := handler.NewWSHandler(hub, store)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("POST /api/create-room", roomHandler.CreateRoom)
	mux.HandleFunc("POST /api/join-room", roomHandler.JoinRoom)
	mux.HandleFunc("POST /api/start-game", roomHandler.StartGame)
	mux.HandleFunc("POST /api/action", roomHandler.ApplyAction)
	mux.HandleFunc("GET /api/state", roomHandler.GetState)
	mux.HandleFunc("GET /api/ws", wsHandler.ServeWS)

	// Presentation assets; the API works without them.
	mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))

	root := middleware.Chain(mux, middleware.Logger, middleware.Recover, middleware.CORS(cfg.AllowedOrigins))

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown error")
	}
	log.Info().Msg("Server stopped")
}
