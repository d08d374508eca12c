package main

import (
	"fmt"
	"log"

	"faktor/internal/config"
	"faktor/internal/email/noop"
	"faktor/internal/email/ses"
	"faktor/internal/handler"
	"faktor/internal/pdfgen"
	"faktor/internal/port"
	"faktor/internal/repository/postgres"
	"faktor/internal/router"
	"faktor/internal/service"
	s3storage "faktor/internal/storage/s3"
)

// @title Faktor API
// @version 1.0
// @description Persian invoice management and PDF rendering service.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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
	customerRepo := postgres.NewCustomerRepo(db)
	companyRepo := postgres.NewCompanyRepo(db)
	userRepo := postgres.NewUserRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize the invoice renderer
	renderer, err := pdfgen.NewRenderer(pdfgen.Config{
		FontPath:     cfg.PDF.FontPath,
		BoldFontPath: cfg.PDF.BoldFontPath,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}

	// Initialize email delivery
	var sender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		sender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		sender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, customerRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	companySvc := service.NewCompanyService(companyRepo)
	imageSvc := service.NewImageService(s3Client, cfg.S3)
	renderSvc := service.NewRenderService(invoiceRepo, companyRepo, imageSvc, renderer, sender)
	exportSvc := service.NewExportService(invoiceRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc, renderSvc, exportSvc)
	customerH := handler.NewCustomerHandler(customerSvc)
	companyH := handler.NewCompanyHandler(companySvc)
	imageH := handler.NewImageHandler(imageSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, authH, invoiceH, customerH, companyH, imageH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
