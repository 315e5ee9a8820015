package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/venturebridge/backend/internal/config"
	"github.com/venturebridge/backend/internal/handlers"
	"github.com/venturebridge/backend/internal/services"
	"github.com/venturebridge/backend/internal/store"
	"github.com/venturebridge/backend/pkg/logger"
	"github.com/venturebridge/backend/pkg/middleware"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Connect to the external record store
	client := store.NewClient(cfg.StoreBaseURL, cfg.StoreTimeout)

	// --- Stores ---
	userStore := store.NewUserStore(client)
	investorStore := store.NewInvestorStore(client)
	entrepreneurStore := store.NewEntrepreneurStore(client)
	collabStore := store.NewCollabStore(client)

	// --- Services ---
	userService := services.NewUserService(userStore)
	investorService := services.NewInvestorService(investorStore)
	entrepreneurService := services.NewEntrepreneurService(entrepreneurStore)
	collabService := services.NewCollabService(collabStore, investorStore, entrepreneurStore)
	dashboardService := services.NewDashboardService(collabStore, investorStore, entrepreneurStore)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, cfg)
	investorHandler := handlers.NewInvestorHandler(investorService)
	entrepreneurHandler := handlers.NewEntrepreneurHandler(entrepreneurService)
	collabHandler := handlers.NewCollabHandler(collabService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	// Register User routes
	router.HandleFunc("/users/register", userHandler.RegisterUserHandler).Methods("POST")
	router.HandleFunc("/users/login", userHandler.LoginUserHandler).Methods("POST")

	// Protected user routes (only authenticated users can access)
	protectedUserRoutes := router.PathPrefix("/users").Subrouter()
	protectedUserRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedUserRoutes.HandleFunc("/{id}", userHandler.GetUserHandler).Methods("GET")
	protectedUserRoutes.HandleFunc("/{id}", userHandler.UpdateUserHandler).Methods("PATCH")

	// Investor profile routes
	investorRoutes := router.PathPrefix("/investors").Subrouter()
	investorRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	investorRoutes.HandleFunc("", investorHandler.ListInvestorsHandler).Methods("GET")
	investorRoutes.HandleFunc("/{id}", investorHandler.GetInvestorHandler).Methods("GET")

	investorMutationRoutes := router.PathPrefix("/investors").Subrouter()
	investorMutationRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	investorMutationRoutes.Use(middleware.RequireRole("investor"))
	investorMutationRoutes.HandleFunc("", investorHandler.CreateInvestorHandler).Methods("POST")
	investorMutationRoutes.HandleFunc("/{id}", investorHandler.UpdateInvestorHandler).Methods("PUT")
	investorMutationRoutes.HandleFunc("/{id}", investorHandler.DeleteInvestorHandler).Methods("DELETE")

	// Entrepreneur profile routes
	entrepreneurRoutes := router.PathPrefix("/entrepreneurs").Subrouter()
	entrepreneurRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	entrepreneurRoutes.HandleFunc("", entrepreneurHandler.ListEntrepreneursHandler).Methods("GET")
	entrepreneurRoutes.HandleFunc("/{id}", entrepreneurHandler.GetEntrepreneurHandler).Methods("GET")

	entrepreneurMutationRoutes := router.PathPrefix("/entrepreneurs").Subrouter()
	entrepreneurMutationRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	entrepreneurMutationRoutes.Use(middleware.RequireRole("entrepreneur"))
	entrepreneurMutationRoutes.HandleFunc("", entrepreneurHandler.CreateEntrepreneurHandler).Methods("POST")
	entrepreneurMutationRoutes.HandleFunc("/{id}", entrepreneurHandler.UpdateEntrepreneurHandler).Methods("PUT")
	entrepreneurMutationRoutes.HandleFunc("/{id}", entrepreneurHandler.DeleteEntrepreneurHandler).Methods("DELETE")

	// Collaboration request routes
	requestRoutes := router.PathPrefix("/requests").Subrouter()
	requestRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	requestRoutes.HandleFunc("", collabHandler.ListRequestsHandler).Methods("GET")
	requestRoutes.HandleFunc("/{id}", collabHandler.GetRequestHandler).Methods("GET")
	requestRoutes.HandleFunc("/{id}", collabHandler.DeleteRequestHandler).Methods("DELETE")

	sendRequestRoutes := router.PathPrefix("/requests").Subrouter()
	sendRequestRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	sendRequestRoutes.Use(middleware.RequireRole("investor"))
	sendRequestRoutes.HandleFunc("", collabHandler.SendRequestHandler).Methods("POST")

	respondRequestRoutes := router.PathPrefix("/requests").Subrouter()
	respondRequestRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	respondRequestRoutes.Use(middleware.RequireRole("entrepreneur"))
	respondRequestRoutes.HandleFunc("/{id}/respond", collabHandler.RespondToRequestHandler).Methods("POST")

	// Dashboard routes
	dashboardRoutes := router.PathPrefix("/dashboard").Subrouter()
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	dashboardRoutes.HandleFunc("/investor", dashboardHandler.InvestorDashboardHandler).Methods("GET")
	dashboardRoutes.HandleFunc("/entrepreneur", dashboardHandler.EntrepreneurDashboardHandler).Methods("GET")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Start the HTTP server
	port := cfg.Port
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
