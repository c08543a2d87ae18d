package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"cloudstream_server/models"
	"cloudstream_server/routes"
	"cloudstream_server/services"
	"cloudstream_server/socket"
	"cloudstream_server/utils"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{
		Client: dynamoClient,
		Table:  envOr("DYNAMO_TABLE", models.CloudStreamTable),
	}
	log.Println("DynamoDB client initialized.")

	s3Service := services.NewS3Service(
		services.InitializeS3Client(),
		os.Getenv("S3_RAW_BUCKET"),
		os.Getenv("S3_PROCESSED_BUCKET"),
	)

	tokens := &utils.TokenManager{
		Secret: []byte(os.Getenv("JWT_SECRET")),
		TTL:    24 * time.Hour,
	}

	// Initialize Services
	userService := &services.UserService{Dynamo: dynamoService}
	videoService := &services.VideoService{Dynamo: dynamoService}
	subscriptionService := &services.SubscriptionService{Dynamo: dynamoService}
	reactionService := &services.ReactionService{Dynamo: dynamoService}

	// Socket hub for "your video is ready" notifications
	hub := socket.NewVideoHub()
	go func() {
		if err := hub.Server.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer hub.Server.Close()

	processingService := &services.ProcessingService{
		Videos: videoService,
		S3:     s3Service,
		Notify: hub.NotifyVideoReady,
	}

	// Set up the server port
	port := envOr("PORT", "8080")
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to CloudStream")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	// Register routes
	routes.RegisterAuthRoutes(r, userService, tokens)
	routes.RegisterVideoRoutes(r, videoService, reactionService, subscriptionService, s3Service, tokens)
	routes.RegisterSubscriptionRoutes(r, subscriptionService, tokens)
	routes.RegisterReactionRoutes(r, reactionService, tokens)
	routes.RegisterProcessingRoutes(r, processingService, os.Getenv("PROCESSING_CALLBACK_TOKEN"))
	r.Handle("/socket.io/", hub.Server)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Callback-Token"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
