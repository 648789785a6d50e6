package main

import (
	"log"
	"net/http"
	"time"

	"github.com/allinlistings/admin/internal/cache"
	"github.com/allinlistings/admin/internal/config"
	"github.com/allinlistings/admin/internal/db"
	"github.com/allinlistings/admin/internal/middleware"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	database := db.InitDB(cfg.DatabasePath)
	defer database.Close()

	if err := db.RunMigrations(database.DB); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	middleware.InitAuth()

	sessionManager := scs.New()
	sessionManager.Lifetime = 24 * time.Hour
	sessionManager.Store = sqlite3store.New(database.DB)

	// Listing pages revalidate hourly even without writes.
	listingCache := cache.New(time.Hour)
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@hourly", listingCache.Purge); err != nil {
		log.Fatal("Failed to schedule cache revalidation:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := newRouter(database, sessionManager, listingCache, cfg)

	log.Println("Server starting on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatal(err)
	}
}
