// cmd/server/main.go
package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/svpmedia/bulkmail-backend/internal/config"
	"github.com/svpmedia/bulkmail-backend/internal/controller"
	"github.com/svpmedia/bulkmail-backend/internal/db"
	"github.com/svpmedia/bulkmail-backend/internal/events"
	"github.com/svpmedia/bulkmail-backend/internal/mailer"
	"github.com/svpmedia/bulkmail-backend/internal/ratelimit"
	"github.com/svpmedia/bulkmail-backend/internal/repository"
	"github.com/svpmedia/bulkmail-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}
	cfg := config.Load()

	var sender mailer.Sender
	if cfg.ResendAPIKey != "" && cfg.EmailFrom != "" {
		sender = mailer.NewResendSender(cfg.ResendAPIKey, cfg.EmailFrom)
		log.Println("✅ Email sender initialized")
	} else {
		log.Println("⚠️ Email sender not initialized - check RESEND_API_KEY and EMAIL_FROM")
	}

	logo, err := mailer.LoadLogo(cfg.LogoPath)
	if err != nil {
		log.Println("⚠️ Logo not loaded, emails go out without the inline image:", err)
	}

	// Optional send log (Postgres)
	var sendLog repository.SendLogRepository
	if cfg.DBHost != "" {
		conn, err := db.Connect(db.Config{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			Name:     cfg.DBName,
		})
		if err != nil {
			log.Println("⚠️ Send log disabled:", err)
		} else {
			pg := &repository.PostgresSendLog{DB: conn}
			if err := pg.EnsureSchema(); err != nil {
				log.Println("⚠️ Send log disabled, schema setup failed:", err)
			} else {
				sendLog = pg
				log.Println("✅ Connected to database")
			}
		}
	}

	// Optional campaign events (RabbitMQ)
	var publisher events.Publisher
	if cfg.AMQPURL != "" {
		publisher = &events.AMQPPublisher{URL: cfg.AMQPURL}
		log.Println("✅ Campaign event publisher configured")
	}

	budget := ratelimit.New(cfg.DailyLimit)

	campaignService := &service.CampaignService{
		Sender:      sender,
		Budget:      budget,
		SendLog:     sendLog,
		Events:      publisher,
		Logo:        logo,
		From:        cfg.EmailFrom,
		SendTimeout: cfg.SendTimeout,
	}
	contactService := &service.ContactService{
		Sender:      sender,
		From:        cfg.EmailFrom,
		To:          cfg.EmailTo,
		SendTimeout: cfg.SendTimeout,
	}

	emailController := &controller.EmailController{
		Campaigns:   campaignService,
		Contact:     contactService,
		Budget:      budget,
		SendLog:     sendLog,
		Environment: cfg.Environment,
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Email routes
	r.Route("/api", func(api chi.Router) {
		api.Get("/test", emailController.HealthCheck)
		api.Get("/email-stats", emailController.EmailStats)
		api.Get("/campaigns/recent", emailController.RecentCampaigns)
		api.Post("/send-email", emailController.SendSingleEmail)
		api.Post("/send-bulk-email", emailController.SendBulkEmail)
		api.NotFound(emailController.NotFound)
	})

	// Static composer UI
	r.Handle("/*", http.FileServer(http.Dir("public")))

	log.Println("🚀 Server running on :" + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
