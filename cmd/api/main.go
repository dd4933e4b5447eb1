package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/lead-intake/internal/entity"
	"github.com/xavierca1/lead-intake/internal/infra/database"
	"github.com/xavierca1/lead-intake/internal/infra/http/handlers"
	"github.com/xavierca1/lead-intake/internal/infra/http/middleware"
	"github.com/xavierca1/lead-intake/internal/infra/mail"
	"github.com/xavierca1/lead-intake/internal/infra/queue"
	"github.com/xavierca1/lead-intake/internal/usecase"
)

func main() {
	godotenv.Load()

	// 1. Storage: Postgres when configured, in-memory otherwise.
	var db *sql.DB
	var leadRepo entity.LeadRepository
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		var err error
		db, err = database.NewDBConnection(dsn)
		if err != nil {
			log.Fatalf("❌ database connection failed: %v", err)
		}
		defer db.Close()
		leadRepo = database.NewLeadRepository(db)
	} else {
		log.Println("⚠️ DATABASE_URL not set, using in-memory lead store")
		leadRepo = database.NewInMemoryLeadRepository()
	}

	// 2. Mail sender (worker target and direct fallback).
	var mailSender *mail.EmailSender
	if host := os.Getenv("MAIL_HOST"); host != "" {
		port, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if port == 0 {
			port = 587
		}
		mailSender = mail.NewEmailSender(
			host, port,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"), os.Getenv("INTAKE_NOTIFY_EMAIL"),
		)
	}

	// 3. Queue + notification worker.
	var producer usecase.QueueProducerInterface
	var rabbitConn *queue.RabbitMQ
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		var err error
		rabbitConn, err = queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatalf("❌ RabbitMQ connection failed: %v", err)
		}
		defer rabbitConn.Conn.Close()
		defer rabbitConn.Ch.Close()

		producer = queue.NewProducer(rabbitConn.Conn, rabbitConn.Ch)

		if mailSender != nil {
			worker := queue.NewWorker(rabbitConn.Ch, mailSender)
			go worker.Start(queue.QueueName)
		}
	}

	// 4. Sessions + static accounts.
	sessions := middleware.NewSessionStore()
	authUC := usecase.NewAuthenticateUseCase(staticAccounts(), sessions)

	// 5. UseCases.
	var mailService usecase.MailService
	if mailSender != nil {
		mailService = mailSender
	}
	submitUC := usecase.NewSubmitLeadUseCase(leadRepo, producer, mailService)
	listUC := usecase.NewListLeadsUseCase(leadRepo)
	updateUC := usecase.NewUpdateLeadStatusUseCase(leadRepo)

	// 6. Handlers.
	leadHandler := handlers.NewLeadHandler(submitUC, listUC, updateUC)
	authHandler := handlers.NewAuthHandler(authUC)

	healthHandler := handlers.NewHealthHandler(db, rabbitAMQPConn(rabbitConn))

	// 7. Router.
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins(),
		AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Post("/leads", leadHandler.HandleCreate)
	r.Post("/auth/login", authHandler.HandleLogin)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(sessions))
		r.Get("/leads", leadHandler.HandleList)
		r.Patch("/leads/{id}", leadHandler.HandleUpdateStatus)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 lead-intake listening on :%s", port)
	http.ListenAndServe(":"+port, r)
}

func staticAccounts() []usecase.Account {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Admin User"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
		log.Println("⚠️ ADMIN_PASSWORD not set, using default credentials")
	}

	return []usecase.Account{
		{
			User: entity.User{
				ID:    "1",
				Email: email,
				Name:  name,
				Role:  entity.RoleAdmin,
			},
			Password: password,
		},
	}
}

func rabbitAMQPConn(r *queue.RabbitMQ) *amqp091.Connection {
	if r == nil {
		return nil
	}
	return r.Conn
}

func corsOrigins() []string {
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		return strings.Split(raw, ",")
	}
	return []string{"http://localhost:3000", "*"}
}
