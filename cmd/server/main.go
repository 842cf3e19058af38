package main

import (
	"fmt"
	"log"

	"gstbill/internal/config"
	"gstbill/internal/email/noop"
	"gstbill/internal/email/ses"
	"gstbill/internal/handler"
	"gstbill/internal/port"
	"gstbill/internal/repository/postgres"
	"gstbill/internal/router"
	"gstbill/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	invoiceRepo := postgres.NewInvoiceRepo(db)
	stateRepo := postgres.NewStateCodeRepo(db)

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	invoiceSvc := service.NewInvoiceService(invoiceRepo, stateRepo, emailSender, cfg.Invoice)
	stateCodeSvc := service.NewStateCodeService(stateRepo)

	// Initialize handlers
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	stateCodeH := handler.NewStateCodeHandler(stateCodeSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(invoiceH, stateCodeH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
