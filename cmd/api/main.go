package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/languagepeople/outreach-backend/internal/entity"
	"github.com/languagepeople/outreach-backend/internal/infra/bootstrap"
	"github.com/languagepeople/outreach-backend/internal/infra/database"
	"github.com/languagepeople/outreach-backend/internal/infra/http/handlers"
	"github.com/languagepeople/outreach-backend/internal/infra/http/middleware"
	"github.com/languagepeople/outreach-backend/internal/infra/queue"
	"github.com/languagepeople/outreach-backend/internal/leadcsv"
	"github.com/languagepeople/outreach-backend/internal/store"
	"github.com/languagepeople/outreach-backend/internal/usecase"
)

func main() {
	godotenv.Load()

	ctx := context.Background()

	agents := entity.DefaultAgents
	if env := os.Getenv("AGENTS"); env != "" {
		agents = nil
		for _, name := range strings.Split(env, ",") {
			if name = strings.TrimSpace(name); name != "" {
				agents = append(agents, name)
			}
		}
	}

	// 1. Persistence
	var db *sql.DB
	var snap store.Snapshotter = store.NoopSnapshotter{}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		var err error
		db, err = database.NewDBConnection(dsn)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()

		repo := database.NewSnapshotRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal(err)
		}
		snap = repo
	} else {
		log.Println("DATABASE_URL not set, leads will not survive a restart")
	}

	leadStore := store.NewLeadStore(snap)

	// 2. Startup load: previous snapshot wins, otherwise pull the
	// bootstrap document. Either failure leaves the store empty.
	if leads, found, err := snap.Load(ctx); err != nil {
		log.Printf("failed to read snapshot: %v", err)
	} else if found && len(leads) > 0 {
		if err := leadStore.Load(ctx, leads); err != nil {
			log.Printf("failed to load snapshot: %v", err)
		}
	} else if csvURL := os.Getenv("CSV_URL"); csvURL != "" {
		fetcher := bootstrap.NewFetcher(csvURL)
		if text, err := fetcher.FetchCSV(ctx); err != nil {
			log.Printf("bootstrap skipped: %v", err)
		} else {
			initial := leadcsv.ImportDocument(text, leadcsv.ModeReplace, nil, agents)
			if err := leadStore.Load(ctx, initial); err != nil {
				log.Printf("failed to persist bootstrap leads: %v", err)
			}
			log.Printf("bootstrapped %d leads from %s", len(initial), csvURL)
		}
	}

	// 3. UseCases
	importUC := usecase.NewImportLeadsUseCase(leadStore, nil, agents)
	outcomeUC := usecase.NewRecordOutcomeUseCase(leadStore, nil)

	// 4. Event bus (optional)
	var rabbitConn *amqp.Connection
	if host := os.Getenv("AMQP_HOST"); host != "" {
		rabbitMQ, err := queue.NewRabbitMQ(
			os.Getenv("AMQP_USER"), os.Getenv("AMQP_PASS"), host, os.Getenv("AMQP_PORT"),
		)
		if err != nil {
			log.Printf("rabbitmq unavailable, lead events disabled: %v", err)
		} else {
			defer rabbitMQ.Conn.Close()
			defer rabbitMQ.Ch.Close()
			rabbitConn = rabbitMQ.Conn

			producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
			importUC.Queue = producer
			outcomeUC.Queue = producer

			worker := queue.NewWorker(rabbitMQ.Ch)
			go worker.Start(queue.QueueName)
		}
	}

	// 5. Handlers
	leadsHandler := handlers.NewLeadsHandler(leadStore)
	agentsHandler := handlers.NewAgentsHandler(agents)
	importHandler := handlers.NewImportHandler(importUC)
	exportHandler := handlers.NewExportHandler(leadStore)
	outcomeHandler := handlers.NewOutcomeHandler(outcomeUC)
	emailHandler := handlers.NewEmailHandler()
	healthHandler := handlers.NewHealthHandler(db, rabbitConn, leadStore)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/agents", agentsHandler.Handle)
	r.Get("/leads", leadsHandler.HandleList)
	r.Get("/leads/stats", leadsHandler.HandleStats)
	r.Post("/leads/{id}/outcome", outcomeHandler.Handle)
	r.Post("/import", importHandler.Handle)
	r.Get("/export", exportHandler.Handle)
	r.Post("/email/draft", emailHandler.Handle)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 Outreach API listening on :%s", port)
	http.ListenAndServe(":"+port, r)
}
