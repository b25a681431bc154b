package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/metacogna-lab/be-timelesslove-v1.0.0/internal/config"
	"github.com/metacogna-lab/be-timelesslove-v1.0.0/internal/dbpg"
	"github.com/metacogna-lab/be-timelesslove-v1.0.0/internal/di"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system env variables")
	}

	cfg := config.Load()

	db, err := dbpg.NewPostgres(cfg)
	if err != nil {
		log.Fatalf("database initialization error: %v", err)
	}
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		log.Println("database connection closed")
	}()

	handlers := di.InitFeedHandlers(db, cfg)

	router := mux.NewRouter()
	subrouter := router.PathPrefix("/api/v1").Subrouter()
	handlers.RegisterRoutes(subrouter)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Println("feed service running at", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
}
