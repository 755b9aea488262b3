package main

import (
	"context"
	"log"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/sajibhasan/blogpost-api/internal/router"
	"github.com/sajibhasan/blogpost-api/pkg/cloudinary"
	"github.com/sajibhasan/blogpost-api/pkg/config"
	"github.com/sajibhasan/blogpost-api/pkg/firebase"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Initialize Cloudinary for post image storage
	media, err := cloudinary.New(cfg.CloudinaryURL)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	// Initialize Firebase (optional; only needed for firebase-login)
	var firebaseAuthClient *fbauth.Client
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err := firebase.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
		firebaseAuthClient = firebaseApp.AuthClient
	} else {
		log.Println("Firebase credentials not configured, firebase-login disabled.")
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Mongo.Database(cfg.MongoDatabase), media, firebaseAuthClient)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
