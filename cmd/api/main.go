package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/equilease/lease-service/internal/config"
	"github.com/equilease/lease-service/internal/handler"
	"github.com/equilease/lease-service/internal/notify"
	"github.com/equilease/lease-service/internal/repository"
	"github.com/equilease/lease-service/internal/scheduler"
	"github.com/equilease/lease-service/internal/service"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	// Local overrides; absence of a .env file is fine.
	_ = godotenv.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the deal store
	var store repository.DealStore
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.DBConn)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Fatalf("Failed to ping database: %v", err)
		}
		store, err = repository.NewPostgresStore(db)
		if err != nil {
			logger.Fatalf("Failed to initialize postgres store: %v", err)
		}
	default:
		store, err = repository.NewFileStore(cfg.DealsFile)
		if err != nil {
			logger.Fatalf("Failed to initialize file store: %v", err)
		}
	}

	// Initialize layers
	var sender *notify.Sender
	var svcNotifier service.Notifier
	if cfg.EmailEnabled() {
		sender = notify.NewSender(cfg, logger)
		svcNotifier = sender
	}
	svc := service.NewService(store, svcNotifier, logger)
	h := handler.NewHandler(svc)

	// Pending-deals digest
	if cfg.EmailEnabled() && cfg.LandlordEmail != "" {
		sched := scheduler.NewScheduler(cfg, svc, sender, logger)
		if err := sched.Start(); err != nil {
			logger.Fatalf("Failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	}

	// Setup router
	r := mux.NewRouter()
	r.HandleFunc("/deals", h.CreateDeal).Methods("POST")
	r.HandleFunc("/deals", h.ListDeals).Methods("GET")
	r.HandleFunc("/deals/{id}", h.GetDeal).Methods("GET")
	r.HandleFunc("/deals/{id}/status", h.SetStatus).Methods("PATCH")
	r.HandleFunc("/deals/{id}/contract", h.GetContract).Methods("GET")
	r.HandleFunc("/deals/{id}/proposal", h.GetProposal).Methods("GET")
	r.HandleFunc("/deals/{id}/export", h.ExportDeal).Methods("GET")
	r.HandleFunc("/deals/{id}/send", h.SendProposal).Methods("POST")
	r.HandleFunc("/stats", h.Stats).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
