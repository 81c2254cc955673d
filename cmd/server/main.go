package main

import (
	"context"
	"embed"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workjournal/internal/auth"
	"workjournal/internal/db"
	"workjournal/internal/journal"
	mcpserver "workjournal/internal/mcp"

	"github.com/mark3labs/mcp-go/server"
)

//go:embed static
var staticFS embed.FS

func main() {
	// Config
	mongoURI := getEnv("MONGODB_URI", "mongodb://localhost:27017")
	mongoDB := getEnv("MONGODB_DB", "workjournal")
	port := getEnv("PORT", "8080")
	sessionSecret := getEnv("SESSION_SECRET", "super secret")

	// Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Context for startup
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Connect to MongoDB
	logger.Info("connecting to MongoDB", "uri", mongoURI)
	database, err := db.Connect(ctx, mongoURI, mongoDB)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	logger.Info("connected to MongoDB")

	// Wire dependencies
	entryRepo := journal.NewRepo(database)
	if err := entryRepo.EnsureIndexes(ctx); err != nil {
		logger.Warn("failed to ensure entry indexes", "error", err)
	}
	userRepo := auth.NewUserRepo(database)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logger.Warn("failed to ensure user indexes", "error", err)
	}

	sessions := auth.NewSessions(sessionSecret)
	gate := auth.NewGate(userRepo, sessions, logger)
	authHandler := auth.NewHandler(gate, sessions, logger)

	journalSvc := journal.NewService(entryRepo)
	journalHandler := journal.NewHandler(journalSvc, gate, logger)

	// Create MCP server
	mcpSrv := mcpserver.NewServer(journalSvc)

	// HTTP router
	mux := http.NewServeMux()

	// Static files
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatalf("failed to get static fs: %v", err)
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))

	// Journal pages and forms
	mux.HandleFunc("GET /", journalHandler.JournalPage)
	mux.Handle("POST /entries", gate.RequireUserNoReturn(http.HandlerFunc(journalHandler.CreateEntry)))
	mux.Handle("GET /entries/{id}/edit", gate.RequireUser(http.HandlerFunc(journalHandler.EditEntryPage)))
	mux.Handle("POST /entries/{id}", gate.RequireUserNoReturn(http.HandlerFunc(journalHandler.SubmitEntry)))

	// Auth
	mux.Handle("GET /login", gate.RequireAnonymous(http.HandlerFunc(authHandler.LoginPage)))
	mux.Handle("POST /login", gate.RequireAnonymous(http.HandlerFunc(authHandler.Login)))
	mux.HandleFunc("POST /logout", authHandler.Logout)
	mux.HandleFunc("GET /logout", authHandler.LogoutRedirect)

	// REST API endpoints
	mux.HandleFunc("GET /api/entries", journalHandler.ListEntriesAPI)
	mux.HandleFunc("GET /api/entries/{id}", journalHandler.GetEntryAPI)

	// MCP endpoint (HTTP transport)
	// MCP uses POST for requests and GET for SSE streams
	mcpHTTP := server.NewStreamableHTTPServer(mcpSrv)
	mux.Handle("POST /mcp", mcpHTTP)
	mux.Handle("GET /mcp", mcpHTTP)
	mux.Handle("DELETE /mcp", mcpHTTP)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Start server
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		logger.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	logger.Info("server starting", "port", port)

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}

	logger.Info("server stopped")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
