package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/PlanetSoftweb/sppl/internal/db"
	"github.com/PlanetSoftweb/sppl/internal/imagehost"
	"github.com/PlanetSoftweb/sppl/internal/middleware"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	database := db.InitDB()
	defer database.Close()

	if err := db.RunMigrations(database.DB); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	middleware.InitAuth()

	sessionManager := scs.New()
	sessionManager.Lifetime = 24 * time.Hour
	sessionManager.Store = sqlite3store.New(database.DB)

	images := imagehost.NewClient(os.Getenv("IMGBB_API_KEY"))

	router := newRouter(sessionManager, images)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server starting on http://localhost:" + port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}
