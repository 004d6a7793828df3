package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/backup"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/config"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/database"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/handlers"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/inventory"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/migration"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/models"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/store"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize database (detects embedded vs external automatically)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 3. Synchronize schema: the whole dataset lives in one documents table
	log.Println("🚀 Synchronizing database schema...")
	if err := db.AutoMigrate(&models.Document{}); err != nil {
		log.Printf("⚠️ Migration warning: %v\n", err)
	} else {
		log.Println("✅ Schema synchronized successfully")
	}

	docStore := store.NewGormStore(db.DB)

	// 4. One-time legacy cache migration, gated by the completion marker
	cache, err := migration.LoadCacheFile(cfg.LegacyCacheFile)
	if err != nil {
		log.Printf("⚠️ Legacy cache unreadable, skipping this start: %v", err)
	} else {
		state, err := migration.NewReconciler(docStore).RunOnce(cache)
		if err != nil {
			log.Printf("⚠️ Legacy migration %s: %v (will retry next start)", state, err)
		} else {
			log.Printf("🔄 Legacy migration: %s", state)
		}
	}

	// 5. Set up HTTP router
	svc := inventory.NewService(docStore)
	router := handlers.NewRouter(svc, backup.NewManager(docStore), cfg)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("🌍 Server listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("⚠️ Forced shutdown: %v", err)
	}
	if err := db.Close(); err != nil {
		log.Printf("⚠️ Database close: %v", err)
	}
	log.Println("✅ Shutdown complete")
}
