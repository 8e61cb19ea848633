package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/mergington/highschool-gobackend/internal/config"
	"github.com/mergington/highschool-gobackend/internal/db"
	"github.com/mergington/highschool-gobackend/internal/handlers"
	"github.com/mergington/highschool-gobackend/internal/services"
)

func main() {
	// Load .env
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Error loading .env: %s", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to MongoDB
	if err := db.Connect(cfg.MongoURI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	database := db.Database(cfg.DBName)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.SeedTeachers(seedCtx, database); err != nil {
		log.Fatalf("Failed to seed teachers: %v", err)
	}

	// Initialize services and handlers
	teacherService := services.NewTeacherService(database)
	teacherHandler := handlers.NewTeacherHandler(teacherService)

	announcementService := services.NewAnnouncementService(database)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService, teacherService)

	// Set up router
	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET", "HEAD")

	router.HandleFunc("/auth/login", teacherHandler.Login).Methods("POST")
	router.HandleFunc("/auth/check", teacherHandler.CheckSession).Methods("GET")

	router.HandleFunc("/announcements", announcementHandler.GetActiveAnnouncements).Methods("GET")
	router.HandleFunc("/announcements/", announcementHandler.GetActiveAnnouncements).Methods("GET")
	router.HandleFunc("/announcements/manage", announcementHandler.ListAnnouncements).Methods("GET")
	router.HandleFunc("/announcements", announcementHandler.CreateAnnouncement).Methods("POST")
	router.HandleFunc("/announcements/", announcementHandler.CreateAnnouncement).Methods("POST")
	router.HandleFunc("/announcements/{announcementID}", announcementHandler.UpdateAnnouncement).Methods("PUT")
	router.HandleFunc("/announcements/{announcementID}", announcementHandler.DeleteAnnouncement).Methods("DELETE")

	// Start server
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(server.ListenAndServe())
}
